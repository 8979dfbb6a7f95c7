package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/logging"
	"portfolio/internal/snapshot"
)

const bcryptCost = 10

func main() {
	hash := flag.String("hash", "", "print the bcrypt hash of the given password for ADMIN_PASSWORD_HASH and exit")
	flag.Parse()

	if *hash != "" {
		out, err := bcrypt.GenerateFromPassword([]byte(*hash), bcryptCost)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	log.Println("Starting seed script...")
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(!cfg.IsProduction())
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	snap, err := snapshot.Load()
	if err != nil {
		log.Fatalf("load snapshot: %v", err)
	}

	// Connect to database
	dialector, err := db.MySQL(cfg.MySQLDSN, cfg.DBConnectTimeout)
	if err != nil {
		log.Fatalf("database config: %v", err)
	}
	store := db.NewStore(dialector, cfg.DBConnectTimeout, logger)
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	gormDB, err := store.DB(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	res, err := db.Seed(ctx, gormDB, snap, cfg.Admin)
	if err != nil {
		log.Fatalf("Failed to seed content: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Admin user created: %t", res.Admin)
	log.Printf("  - Skill categories: %d", res.SkillCategories)
	log.Printf("  - Certifications: %d", res.Certifications)
	log.Printf("  - Education entries: %d", res.Education)
	log.Printf("  - Projects: %d", res.Projects)
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "portfolio/docs" // swagger docs

	"portfolio/internal/app"
	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/logging"
	"portfolio/internal/snapshot"
)

// @title Portfolio API
// @version 1.0
// @description Portfolio content API: skills, certifications, education, projects, contact messages and admin sessions.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// A missing .env is fine, the environment may be set by the container.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(!cfg.IsProduction())
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	snap, err := snapshot.Load()
	if err != nil {
		logger.Fatal("load snapshot", zap.Error(err))
	}

	dialector, err := db.MySQL(cfg.MySQLDSN, cfg.DBConnectTimeout)
	if err != nil {
		logger.Fatal("database config", zap.Error(err))
	}
	store := db.NewStore(dialector, cfg.DBConnectTimeout, logger,
		db.WithOnConnect(func(ctx context.Context, gdb *gorm.DB) error {
			if err := db.Migrate(gdb); err != nil {
				return err
			}
			if !cfg.SeedOnStart {
				return nil
			}
			res, err := db.Seed(ctx, gdb, snap, cfg.Admin)
			if err != nil {
				return err
			}
			logger.Info("content seeded",
				zap.Int("skill_categories", res.SkillCategories),
				zap.Int("certifications", res.Certifications),
				zap.Int("education", res.Education),
				zap.Int("projects", res.Projects),
			)
			return nil
		}),
	)
	defer func() { _ = store.Close() }()

	// The site starts even when the database is down; reads fall back to the snapshot.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.DBConnectTimeout)
	if err := store.Ping(ctx); err != nil {
		logger.Warn("database unreachable at startup", zap.Error(err))
	}
	cancel()

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()

	e := app.New(cfg, logger, store, cacheClient, snap)

	logger.Info("swagger documentation available", zap.String("url", swaggerURL(cfg)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.ServerPort
		logger.Info("server listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	// SwaggerHost may already include scheme (http:// or https://)
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}

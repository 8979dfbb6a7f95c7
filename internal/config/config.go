package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`
	SwaggerHost string `env:"SWAGGER_HOST"`

	MySQLDSN         string        `env:"MYSQL_DSN" envDefault:"user:password@tcp(localhost:3306)/portfolio?charset=utf8mb4&parseTime=True&loc=Local"`
	DBConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"3s"`
	SeedOnStart      bool          `env:"SEED_ON_START" envDefault:"false"`

	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`
	RedisPass string `env:"REDIS_PASSWORD"`

	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`

	Admin AdminIdentity

	StaticDir string `env:"STATIC_DIR" envDefault:"./web/public"`
	AdminDir  string `env:"ADMIN_DIR" envDefault:"./web/admin"`

	// Requests per second per client IP on the login and contact endpoints.
	LoginRateLimit float64 `env:"LOGIN_RATE_LIMIT" envDefault:"0.5"`
	LoginRateBurst int     `env:"LOGIN_RATE_BURST" envDefault:"5"`

	// CIDR ranges of reverse proxies allowed to set X-Forwarded-For. When empty the
	// client IP is the TCP peer address and forwarding headers are ignored.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// AdminIdentity is the single operator account. It seeds the admin table and
// serves as the credential store whenever the database cannot be reached.
type AdminIdentity struct {
	Email        string `env:"ADMIN_EMAIL" envDefault:"admin@gmail.com"`
	PasswordHash string `env:"ADMIN_PASSWORD_HASH,required,notEmpty"`
	Name         string `env:"ADMIN_NAME" envDefault:"Administrateur"`
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return strings.HasPrefix(strings.ToLower(c.Env), "prod")
}

// TrustedProxyRanges parses TrustedProxies. Entries that are not valid CIDRs are
// skipped; Load rejects them.
func (c *Config) TrustedProxyRanges() []*net.IPNet {
	ranges := make([]*net.IPNet, 0, len(c.TrustedProxies))
	for _, cidr := range c.TrustedProxies {
		if _, ipNet, err := net.ParseCIDR(strings.TrimSpace(cidr)); err == nil {
			ranges = append(ranges, ipNet)
		}
	}
	return ranges
}

// Load builds Config from environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !isBcryptHash(c.Admin.PasswordHash) {
		return errors.New("ADMIN_PASSWORD_HASH must be a bcrypt hash (generate one with: go run ./cmd/seed -hash <password>)")
	}
	if c.DBConnectTimeout <= 0 {
		return fmt.Errorf("DB_CONNECT_TIMEOUT must be positive, got %s", c.DBConnectTimeout)
	}
	if c.LoginRateBurst <= 0 {
		return fmt.Errorf("LOGIN_RATE_BURST must be positive, got %d", c.LoginRateBurst)
	}
	for _, cidr := range c.TrustedProxies {
		if _, _, err := net.ParseCIDR(strings.TrimSpace(cidr)); err != nil {
			return fmt.Errorf("TRUSTED_PROXIES: %w", err)
		}
	}
	return nil
}

func isBcryptHash(s string) bool {
	if len(s) != 60 {
		return false
	}
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

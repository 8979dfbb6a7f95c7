package db

import (
	"fmt"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// MySQL returns a dialector factory for dsn. The dial timeout is capped to timeout so a
// connection attempt against an unreachable server fails within one request.
func MySQL(dsn string, timeout time.Duration) (func() gorm.Dialector, error) {
	cfg, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	if cfg.Timeout == 0 || cfg.Timeout > timeout {
		cfg.Timeout = timeout
	}
	cfg.ParseTime = true
	normalized := cfg.FormatDSN()

	return func() gorm.Dialector {
		return mysql.New(mysql.Config{DSN: normalized})
	}, nil
}

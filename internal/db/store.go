package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"sync"
	"syscall"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "portfolio/internal/errors"
)

// DefaultRetryInterval is how long the store waits after a failed connection attempt
// before trying again. Requests in between get StoreUnavailable immediately.
const DefaultRetryInterval = 5 * time.Second

// Store owns the pooled database handle. The connection is opened on first use and
// reopened after a failure, so the service starts and serves snapshots while the
// database is down.
type Store struct {
	dialector     func() gorm.Dialector
	timeout       time.Duration
	retryInterval time.Duration
	onConnect     func(ctx context.Context, db *gorm.DB) error
	log           *zap.Logger
	now           func() time.Time

	mu          sync.Mutex
	db          *gorm.DB
	connecting  bool
	lastFailure time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithRetryInterval overrides DefaultRetryInterval.
func WithRetryInterval(d time.Duration) StoreOption {
	return func(s *Store) {
		s.retryInterval = d
	}
}

// WithOnConnect registers a hook run once per successful connection, typically
// migrations and seeding. A failing hook fails the connection attempt.
func WithOnConnect(fn func(ctx context.Context, db *gorm.DB) error) StoreOption {
	return func(s *Store) {
		s.onConnect = fn
	}
}

// NewStore creates a store. Nothing is dialed until DB is called.
func NewStore(dialector func() gorm.Dialector, timeout time.Duration, l *zap.Logger, opts ...StoreOption) *Store {
	s := &Store{
		dialector:     dialector,
		timeout:       timeout,
		retryInterval: DefaultRetryInterval,
		log:           l,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DB returns a handle bound to ctx. When the database cannot be reached the error is
// tagged apperrors.KindStoreUnavailable. Only one caller dials at a time; the others
// get StoreUnavailable without waiting for it.
func (s *Store) DB(ctx context.Context) (*gorm.DB, error) {
	s.mu.Lock()
	if s.db != nil {
		db := s.db
		s.mu.Unlock()
		return db.WithContext(ctx), nil
	}
	if s.connecting {
		s.mu.Unlock()
		return nil, apperrors.StoreUnavailable(errors.New("database connection in progress"))
	}
	if !s.lastFailure.IsZero() && s.now().Sub(s.lastFailure) < s.retryInterval {
		s.mu.Unlock()
		return nil, apperrors.StoreUnavailable(errors.New("database unreachable, retry pending"))
	}
	s.connecting = true
	s.mu.Unlock()

	db, err := s.connect(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.connecting = false
	if err != nil {
		s.lastFailure = s.now()
		s.log.Warn("database connection failed", zap.Error(err))
		return nil, apperrors.StoreUnavailable(err)
	}
	s.db = db
	s.lastFailure = time.Time{}
	s.log.Info("database connected")
	return db.WithContext(ctx), nil
}

// Ping checks the connection, connecting first if needed.
func (s *Store) Ping(ctx context.Context) error {
	db, err := s.DB(ctx)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return apperrors.Internal(err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return Classify(err)
	}
	return nil
}

// Close releases the pool.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	s.db = nil
	return sqlDB.Close()
}

func (s *Store) connect(ctx context.Context) (*gorm.DB, error) {
	db, err := gorm.Open(s.dialector(), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if s.onConnect != nil {
		if err := s.onConnect(ctx, db.WithContext(ctx)); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("on connect: %w", err)
		}
	}
	return db, nil
}

// IsUnavailable reports whether err means the database could not be reached, as
// opposed to a query that reached it and failed.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if apperrors.Is(err, apperrors.KindStoreUnavailable) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, mysqldriver.ErrInvalidConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// Classify converts a database error into a tagged application error.
// Record-not-found is left to the caller, which knows the resource name.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case apperrors.KindOf(err) != apperrors.KindInternal:
		return err
	case IsUnavailable(err):
		return apperrors.StoreUnavailable(err)
	default:
		return apperrors.Internal(err)
	}
}

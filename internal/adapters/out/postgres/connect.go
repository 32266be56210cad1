package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectOptions controls how Connect opens the pool.
type ConnectOptions struct {
	// DSN in lib/pq key=value or URL form.
	DSN string
	// Debug switches GORM's SQL logging on.
	Debug bool
	// Attempts is the number of connection attempts before giving up. Zero means 10.
	Attempts int
	// RetryDelay between attempts. Zero means 2s.
	RetryDelay time.Duration
}

// Connect opens a GORM connection to PostgreSQL, retrying while the server
// comes up, and checks it with a trivial query.
func Connect(ctx context.Context, opts ConnectOptions, log *slog.Logger) (*gorm.DB, error) {
	if opts.DSN == "" {
		return nil, fmt.Errorf("database dsn is empty")
	}
	attempts := opts.Attempts
	if attempts <= 0 {
		attempts = 10
	}
	delay := opts.RetryDelay
	if delay <= 0 {
		delay = 2 * time.Second
	}

	logLevel := logger.Silent
	if opts.Debug {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	for i := 1; i <= attempts; i++ {
		db, err = gorm.Open(postgres.Open(opts.DSN), cfg)
		if err == nil {
			break
		}
		log.WarnContext(ctx, "database not ready, retrying", "attempt", i, "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect database after %d attempts: %w", attempts, err)
	}

	if err = db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return nil, fmt.Errorf("database ping: %w", err)
	}

	return db, nil
}

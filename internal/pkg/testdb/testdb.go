// Package testdb opens throwaway databases for tests: a PostgreSQL container
// migrated with the embedded SQL, or a private in-memory SQLite database
// migrated from the GORM models.
package testdb

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	adapter "orderdesk/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables in truncation order.
var Tables = []string{"order_line_items", "order_chats", "edit_locks", "orders", "clients"}

// Postgres is a running container and a GORM connection to it.
type Postgres struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// StartPostgres runs postgres:15-alpine and applies the SQL migrations.
func StartPostgres(ctx context.Context) (*Postgres, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}
	pg := &Postgres{Container: container}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, err
	}
	if err = adapter.MigrateUp(connStr); err != nil {
		_ = pg.Terminate(ctx)
		return nil, err
	}

	pg.DB, err = gorm.Open(gormpostgres.Open(connStr), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, err
	}

	return pg, nil
}

// Truncate empties every table and resets identity sequences.
func (p *Postgres) Truncate() error {
	return p.DB.Exec("TRUNCATE TABLE " + strings.Join(Tables, ", ") + " RESTART IDENTITY CASCADE").Error
}

func (p *Postgres) Terminate(ctx context.Context) error {
	if p.DB != nil {
		if sqlDB, err := p.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return p.Container.Terminate(ctx)
}

// OpenSQLite returns an in-memory database private to t, closed on cleanup.
// One connection is kept open so the database lives as long as the test and
// concurrent callers are serialized instead of failing with "table is locked".
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err = adapter.AutoMigrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

package cmd

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/editlock"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/jobs"

	"github.com/joho/godotenv"
)

// Edit-lock storage backends.
const (
	LockBackendPostgres = "postgres"
	LockBackendMemory   = "memory"
)

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	DBDebug           bool
	DBMigrations      string
	EditLockTTL       time.Duration
	EditLockBackend   string
	LockSweepSchedule string
	SortNumbering     services.SortNumbering
}

// LoadConfig reads the environment, after loading .env when the file exists.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds a Config from a variable lookup and applies defaults.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:          withDefault(getenv("HTTP_PORT"), "8080"),
		DBHost:            withDefault(getenv("DB_HOST"), "localhost"),
		DBPort:            withDefault(getenv("DB_PORT"), "5432"),
		DBUser:            getenv("DB_USER"),
		DBPassword:        getenv("DB_PASSWORD"),
		DBName:            getenv("DB_NAME"),
		DBSslMode:         withDefault(getenv("DB_SSLMODE"), "disable"),
		DBDebug:           isTruthy(getenv("DB_DEBUG")),
		DBMigrations:      strings.ToLower(strings.TrimSpace(getenv("DB_MIGRATIONS"))),
		EditLockTTL:       editlock.DefaultTTL,
		EditLockBackend:   withDefault(strings.ToLower(getenv("EDIT_LOCK_BACKEND")), LockBackendPostgres),
		LockSweepSchedule: withDefault(getenv("LOCK_SWEEP_SCHEDULE"), jobs.DefaultSweepSchedule),
	}

	if raw := getenv("EDIT_LOCK_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("EDIT_LOCK_TTL: %w", err)
		}
		if ttl <= 0 {
			return Config{}, fmt.Errorf("EDIT_LOCK_TTL: %s is not positive", raw)
		}
		cfg.EditLockTTL = ttl
	}

	switch cfg.EditLockBackend {
	case LockBackendPostgres, LockBackendMemory:
	default:
		return Config{}, fmt.Errorf("EDIT_LOCK_BACKEND: unknown backend %q", cfg.EditLockBackend)
	}

	numbering, err := services.ParseSortNumbering(getenv("SORT_NUMBERING"))
	if err != nil {
		return Config{}, fmt.Errorf("SORT_NUMBERING: %w", err)
	}
	cfg.SortNumbering = numbering

	return cfg, nil
}

// DSN is the key=value connection string used by GORM.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// MigrationURL is the URL form golang-migrate expects.
func (c Config) MigrationURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// UseSQLMigrations reports whether the schema is managed by the embedded SQL
// migrations rather than GORM AutoMigrate.
func (c Config) UseSQLMigrations() bool {
	return c.DBMigrations == "sql"
}

func withDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

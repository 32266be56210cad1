package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderdesk/cmd"
	httpin "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := connectAndMigrate(ctx, config, logger)
	if err != nil {
		log.Fatalf("Error preparing database: %v", err)
	}

	app := cmd.NewCompositionRoot(config, db, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, config.HTTPPort, logger)
}

func connectAndMigrate(ctx context.Context, config cmd.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := postgres.Connect(ctx, postgres.ConnectOptions{
		DSN:   config.DSN(),
		Debug: config.DBDebug,
	}, logger)
	if err != nil {
		return nil, err
	}

	if config.UseSQLMigrations() {
		if err := postgres.MigrateUp(config.MigrationURL()); err != nil {
			return nil, err
		}
	} else if err := postgres.AutoMigrate(db); err != nil {
		return nil, err
	}

	if err := postgres.RequireTables(db); err != nil {
		return nil, err
	}

	logger.Info("Database ready",
		"component", "Database",
		"migrations", migrationMode(config),
		"edit_lock_backend", config.EditLockBackend,
	)
	return db, nil
}

func migrationMode(config cmd.Config) string {
	if config.UseSQLMigrations() {
		return "sql"
	}
	return "auto"
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := httpin.NewRouter(app.CreateHTTPServer(), logger)
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown failed", "component", "HTTPServer", "error", err)
		}
	}()

	err = e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}

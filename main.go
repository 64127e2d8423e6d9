// This is the main entry point of the taskflow application.
// It's responsible for loading configuration, opening the database pool, wiring services
// and handlers, and starting the HTTP server with graceful shutdown. The `migrate`
// command applies or rolls back the schema.
// @title Taskflow API
// @version 1.0
// @description Personal productivity backend: tasks, goals, notes and timing sessions.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
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

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/user/taskflow-go/config"
	"github.com/user/taskflow-go/db"
	_ "github.com/user/taskflow-go/docs" // registers the swagger document
	"github.com/user/taskflow-go/logging"
)

func main() {
	// Missing .env is normal outside development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("error loading .env file", "error", err)
	}

	if err := newCLI().Run(os.Args); err != nil {
		slog.Error("taskflow failed", "error", err)
		os.Exit(1)
	}
}

func newCLI() *cli.App {
	return &cli.App{
		Name:   "taskflow",
		Usage:  "personal productivity backend",
		Action: serve,
		Flags:  serveFlags(),
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP server (default)",
				Flags:  serveFlags(),
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "apply or roll back database migrations",
				Subcommands: []*cli.Command{
					{Name: "up", Usage: "apply all pending migrations", Action: migrateAction(db.Up)},
					{Name: "down", Usage: "roll back all migrations", Action: migrateAction(db.Down)},
				},
			},
		},
	}
}

func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "migrate",
			Usage:   "apply pending migrations before serving",
			EnvVars: []string{"AUTO_MIGRATE"},
		},
	}
}

// loadConfig reads the configuration and installs the logger it describes.
func loadConfig() (*config.AppConfig, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, logging.Setup(os.Stdout, cfg.Log), nil
}

func migrateAction(dir db.Direction) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		if err := db.RunMigrations(cfg.DB, dir); err != nil {
			return err
		}
		logger.Info("migrations complete", "direction", dir)
		return nil
	}
}

func serve(c *cli.Context) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if c.Bool("migrate") {
		if err := db.RunMigrations(cfg.DB, db.Up); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	pool, err := db.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	app, err := newApplication(cfg, logger, pool)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      newRouter(app),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info("server stopped gracefully")
	return nil
}

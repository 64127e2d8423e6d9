// Package db provides database connectivity and migration functionality for the taskflow application.
// It builds the pgx connection pool used by every service and applies the schema with golang-migrate.
package db

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/golang-migrate/migrate/v4"
	// Registers the `postgres://` database driver for golang-migrate (backed by lib/pq).
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	// Registers the `file://` source so MIGRATIONS_PATH can point at a directory on disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq" // driver for database/sql, used by migrate's postgres driver

	"github.com/user/taskflow-go/apperror"
	"github.com/user/taskflow-go/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Direction selects which way RunMigrations moves the schema.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// DSN builds a postgres URL from the pool configuration. Credentials are escaped.
func DSN(cfg *config.PoolConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:     "/" + cfg.DBName,
		RawQuery: url.Values{"sslmode": {cfg.SSLMode}}.Encode(),
	}
	return u.String()
}

// NewPool establishes the pgx connection pool and verifies it with a ping.
func NewPool(ctx context.Context, cfg *config.PoolConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error parsing DSN for database %s", cfg.DBName), err)
	}

	poolConfig.MaxConns = int32(cfg.MaxSize)
	poolConfig.MaxConnIdleTime = 10 * time.Minute
	poolConfig.MaxConnLifetime = 30 * time.Minute

	// Bound pool creation so an unreachable database fails startup instead of hanging it.
	createCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(createCtx, poolConfig)
	if err != nil {
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error creating pgxpool for database %s", cfg.DBName), err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error connecting to the database %s with pgxpool", cfg.DBName), err)
	}

	return pool, nil
}

// embeddedSource opens the migrations compiled into the binary.
func embeddedSource() (source.Driver, error) {
	return iofs.New(migrationsFS, "migrations")
}

func newMigrator(cfg *config.PoolConfig) (*migrate.Migrate, error) {
	if cfg.MigrationsPath != "" {
		return migrate.New("file://"+cfg.MigrationsPath, DSN(cfg))
	}
	src, err := embeddedSource()
	if err != nil {
		return nil, err
	}
	return migrate.NewWithSourceInstance("iofs", src, DSN(cfg))
}

// RunMigrations applies (or rolls back) every pending migration.
// migrate.ErrNoChange is not treated as a failure.
func RunMigrations(cfg *config.PoolConfig, dir Direction) error {
	if dir != Up && dir != Down {
		return apperror.NewConfigError(fmt.Sprintf("unknown migration direction %q", dir), nil)
	}

	m, err := newMigrator(cfg)
	if err != nil {
		return apperror.NewDatabaseError("failed to create migrator", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			slog.Warn("error closing migrator", "source_error", srcErr, "database_error", dbErr)
		}
	}()

	if dir == Up {
		err = m.Up()
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperror.NewDatabaseError(fmt.Sprintf("failed to run migrations %s", dir), err)
	}
	return nil
}

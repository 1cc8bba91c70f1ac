package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Driver names the storage engine behind the repositories.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// ParseDriver accepts "sqlite" (default when empty) and "postgres"/"pgsql".
func ParseDriver(s string) (Driver, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sqlite", "sqlite3":
		return DriverSQLite, nil
	case "postgres", "postgresql", "pgsql":
		return DriverPostgres, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", s)
	}
}

// Options selects and locates the database.
type Options struct {
	Driver      Driver
	SQLitePath  string
	PostgresURL string
	// Ping verifies the connection before returning.
	Ping bool
}

// Handle is the shared storage handle used by every repository.
type Handle struct {
	DB     *sql.DB
	Driver Driver
	// Path is the sqlite file path; empty for postgres.
	Path string
	pool *pgxpool.Pool
}

// Open opens the database described by opts.
func Open(ctx context.Context, opts Options) (*Handle, error) {
	switch opts.Driver {
	case DriverSQLite, "":
		db, err := OpenSQLite(opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		if opts.Ping {
			if err := db.PingContext(ctx); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
			}
		}
		return &Handle{DB: db, Driver: DriverSQLite, Path: opts.SQLitePath}, nil
	case DriverPostgres:
		pool, err := NewPgxPool(ctx, opts.PostgresURL, opts.Ping)
		if err != nil {
			return nil, err
		}
		return &Handle{DB: stdlib.OpenDBFromPool(pool), Driver: DriverPostgres, pool: pool}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}
}

// Close releases the handle and, for postgres, the underlying pool.
func (h *Handle) Close() error {
	if h == nil {
		return nil
	}
	err := h.DB.Close()
	if h.pool != nil {
		h.pool.Close()
	}
	return err
}

// SQLiteDSN builds the modernc.org/sqlite data source name for path.
func SQLiteDSN(path string) string {
	return path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// OpenSQLite opens the sqlite file at path, creating its directory when needed.
func OpenSQLite(path string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.New("sqlite database path cannot be empty")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return db, nil
}

// NewPgxPool creates a new PostgreSQL connection pool.
func NewPgxPool(ctx context.Context, databaseURL string, ping bool) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if ping {
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		slog.Info("Successfully connected to PostgreSQL database.")
	}
	return pool, nil
}

package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/donation_tracker/migrations"
	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Migrate applies the embedded schema on a dedicated connection.
// migrate closes the connection it is given, so the application handle is never passed in.
func Migrate(opts Options, logger *slog.Logger) error {
	var (
		migrationDB *sql.DB
		err         error
	)
	switch opts.Driver {
	case DriverSQLite, "":
		migrationDB, err = OpenSQLite(opts.SQLitePath)
	case DriverPostgres:
		migrationDB, err = sql.Open("pgx", opts.PostgresURL)
	default:
		return fmt.Errorf("unsupported database driver %q", opts.Driver)
	}
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	if err := migrationDB.Ping(); err != nil {
		_ = migrationDB.Close()
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	var (
		driver database.Driver
		dir    string
		name   string
	)
	if opts.Driver == DriverPostgres {
		driver, err = postgres.WithInstance(migrationDB, &postgres.Config{})
		dir, name = "postgres", "postgres"
	} else {
		driver, err = sqlite.WithInstance(migrationDB, &sqlite.Config{})
		dir, name = "sqlite", "sqlite"
	}
	if err != nil {
		_ = migrationDB.Close()
		return fmt.Errorf("could not create %s driver instance for migrations: %w", name, err)
	}

	src, err := iofs.New(migrations.FS, dir)
	if err != nil {
		_ = migrationDB.Close()
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, name, driver)
	if err != nil {
		_ = migrationDB.Close()
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	upErr := m.Up()
	sourceErr, dbErr := m.Close()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", upErr)
	}
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.", slog.String("driver", string(opts.Driver)))
	}
	return nil
}

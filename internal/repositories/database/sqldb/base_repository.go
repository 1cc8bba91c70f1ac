package sqldb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/donation_tracker/internal/apperrors"
	"github.com/SscSPs/donation_tracker/internal/platform/logging"
	"github.com/SscSPs/donation_tracker/internal/platform/metrics"
	"github.com/SscSPs/donation_tracker/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// BaseRepository provides common functionality for all repositories:
// placeholder rebinding, error translation, logging and metrics.
type BaseRepository struct {
	DB      DBTX
	Driver  database.Driver
	Metrics metrics.Recorder
	entity  string
	logging.Helper
}

func newBaseRepository(db DBTX, driver database.Driver, rec metrics.Recorder, entity string) BaseRepository {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return BaseRepository{DB: db, Driver: driver, Metrics: rec, entity: entity}
}

// rebind rewrites ? placeholders to $n for postgres.
func (r *BaseRepository) rebind(query string) string {
	if r.Driver != database.DriverPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	idx := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(idx))
			idx++
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// track records the call and turns storage failures into *apperrors.StorageError.
// NotFound and validation errors pass through unchanged. Use it deferred:
//
//	defer r.track(ctx, "insert", time.Now(), &err)
func (r *BaseRepository) track(ctx context.Context, op string, start time.Time, errp *error) {
	err := *errp
	expected := err == nil || errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation)
	r.Metrics.ObserveRepo(r.entity, op, expected, time.Since(start))
	if expected {
		return
	}
	if isUniqueViolation(err) {
		err = fmt.Errorf("%w: %w", apperrors.ErrDuplicate, err)
	}
	r.LogError(ctx, err, "Repository call failed",
		slog.String("entity", r.entity),
		slog.String("op", op))
	*errp = apperrors.NewStorageError(r.entity, op, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

// likePattern lowercases text and escapes LIKE wildcards so user input is
// matched literally. Pair it with `LIKE ? ESCAPE '\'`.
func likePattern(text string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(strings.TrimSpace(text))) + "%"
}

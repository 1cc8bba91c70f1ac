package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/donation_tracker/internal/apperrors"
	"github.com/SscSPs/donation_tracker/internal/core/domain"
)

// DBTX is the subset of *sql.DB the repositories need.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

// record is satisfied by every domain entity through its embedded Identity and AuditFields.
type record interface {
	RecordID() int64
	RecordUUID() string
	Audit() domain.AuditFields
}

// tableSpec describes how one entity maps onto its table. Selects always
// return id, uuid, columns..., created_at, updated_at in that order, which is
// the order scan must consume.
type tableSpec[E record] struct {
	name    string
	columns []string
	values  func(E) []any
	scan    func(rowScanner) (E, error)
	orderBy string
}

// crudRepository implements the generic half of every entity repository.
type crudRepository[E record] struct {
	BaseRepository
	spec tableSpec[E]
}

func (r *crudRepository[E]) selectColumns() string {
	cols := make([]string, 0, len(r.spec.columns)+4)
	cols = append(cols, "id", "uuid")
	cols = append(cols, r.spec.columns...)
	cols = append(cols, "created_at", "updated_at")
	return strings.Join(cols, ", ")
}

func (r *crudRepository[E]) selectFrom() string {
	return "SELECT " + r.selectColumns() + " FROM " + r.spec.name
}

// list runs a select with an optional WHERE clause and ORDER BY.
func (r *crudRepository[E]) list(ctx context.Context, where, orderBy string, args ...any) ([]E, error) {
	query := r.selectFrom()
	if where != "" {
		query += " WHERE " + where
	}
	if orderBy == "" {
		orderBy = r.spec.orderBy
	}
	if orderBy != "" {
		query += " ORDER BY " + orderBy
	}

	rows, err := r.DB.QueryContext(ctx, r.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.spec.name, err)
	}
	defer rows.Close()

	out := []E{}
	for rows.Next() {
		e, err := r.spec.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", r.spec.name, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", r.spec.name, err)
	}
	return out, nil
}

func (r *crudRepository[E]) getOne(ctx context.Context, id int64) (*E, error) {
	row := r.DB.QueryRowContext(ctx, r.rebind(r.selectFrom()+" WHERE id = ?"), id)
	e, err := r.spec.scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find %s %d: %w", r.spec.name, id, err)
	}
	return &e, nil
}

// GetOne returns the row with the given id, or nil when absent.
func (r *crudRepository[E]) GetOne(ctx context.Context, id int64) (_ *E, err error) {
	defer r.track(ctx, "get_one", time.Now(), &err)
	return r.getOne(ctx, id)
}

// GetAll returns every row in the table's default order.
func (r *crudRepository[E]) GetAll(ctx context.Context) (_ []E, err error) {
	defer r.track(ctx, "get_all", time.Now(), &err)
	return r.list(ctx, "", "")
}

// Count returns the number of rows.
func (r *crudRepository[E]) Count(ctx context.Context) (_ int, err error) {
	defer r.track(ctx, "count", time.Now(), &err)
	var n int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+r.spec.name).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.spec.name, err)
	}
	return n, nil
}

// Insert persists e and returns the stored row, including its assigned id.
func (r *crudRepository[E]) Insert(ctx context.Context, e E) (_ E, err error) {
	defer r.track(ctx, "insert", time.Now(), &err)
	var zero E
	if e.RecordID() != 0 {
		return zero, apperrors.NewValidationError("id_already_assigned", fmt.Sprintf("%s %d has already been saved", r.entity, e.RecordID()))
	}

	audit := e.Audit()
	now := time.Now().UTC()
	if audit.CreatedAt.IsZero() {
		audit.CreatedAt = now
	}
	if audit.UpdatedAt.IsZero() {
		audit.UpdatedAt = audit.CreatedAt
	}

	cols := make([]string, 0, len(r.spec.columns)+3)
	cols = append(cols, "uuid")
	cols = append(cols, r.spec.columns...)
	cols = append(cols, "created_at", "updated_at")

	args := make([]any, 0, len(cols))
	args = append(args, e.RecordUUID())
	args = append(args, r.spec.values(e)...)
	args = append(args, audit.CreatedAt.UTC(), audit.UpdatedAt.UTC())

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		r.spec.name, strings.Join(cols, ", "), placeholders(len(cols)))

	var id int64
	if err := r.DB.QueryRowContext(ctx, r.rebind(query), args...).Scan(&id); err != nil {
		return zero, fmt.Errorf("failed to insert %s: %w", r.spec.name, err)
	}

	stored, err := r.getOne(ctx, id)
	if err != nil {
		return zero, err
	}
	if stored == nil {
		return zero, fmt.Errorf("inserted %s %d could not be read back", r.spec.name, id)
	}
	return *stored, nil
}

// Update overwrites every mutable column of the row matching e's id.
// uuid and created_at are never rewritten.
func (r *crudRepository[E]) Update(ctx context.Context, e E) (err error) {
	defer r.track(ctx, "update", time.Now(), &err)
	if e.RecordID() == 0 {
		return fmt.Errorf("%s without id: %w", r.entity, apperrors.ErrNotFound)
	}

	updatedAt := e.Audit().UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	sets := make([]string, 0, len(r.spec.columns)+1)
	for _, c := range r.spec.columns {
		sets = append(sets, c+" = ?")
	}
	sets = append(sets, "updated_at = ?")

	args := make([]any, 0, len(sets)+1)
	args = append(args, r.spec.values(e)...)
	args = append(args, updatedAt.UTC(), e.RecordID())

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", r.spec.name, strings.Join(sets, ", "))
	return r.execOne(ctx, query, e.RecordID(), args...)
}

// Delete removes the row matching e's id.
func (r *crudRepository[E]) Delete(ctx context.Context, e E) (err error) {
	defer r.track(ctx, "delete", time.Now(), &err)
	return r.deleteByID(ctx, e.RecordID())
}

// DeleteOne removes the row with the given id.
func (r *crudRepository[E]) DeleteOne(ctx context.Context, id int64) (err error) {
	defer r.track(ctx, "delete_one", time.Now(), &err)
	return r.deleteByID(ctx, id)
}

func (r *crudRepository[E]) deleteByID(ctx context.Context, id int64) error {
	return r.execOne(ctx, "DELETE FROM "+r.spec.name+" WHERE id = ?", id, id)
}

// execOne runs a statement that must affect exactly the row with the given id.
func (r *crudRepository[E]) execOne(ctx context.Context, query string, id int64, args ...any) error {
	res, err := r.DB.ExecContext(ctx, r.rebind(query), args...)
	if err != nil {
		return fmt.Errorf("failed to write %s %d: %w", r.spec.name, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for %s %d: %w", r.spec.name, id, err)
	}
	if n == 0 {
		return apperrors.NotFound(r.entity, id)
	}
	return nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

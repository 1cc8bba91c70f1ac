package repositories

import "context"

// EntityReader defines the read operations every entity repository supports.
type EntityReader[E any] interface {
	// GetOne returns the row with the given id, or nil when there is none.
	GetOne(ctx context.Context, id int64) (*E, error)

	// GetAll returns every row in the repository's default order.
	GetAll(ctx context.Context) ([]E, error)

	// Count returns the number of rows.
	Count(ctx context.Context) (int, error)
}

// EntityWriter defines the write operations every entity repository supports.
type EntityWriter[E any] interface {
	// Insert persists a new entity (ID must be zero) and returns it with the
	// storage-assigned ID.
	Insert(ctx context.Context, e E) (E, error)

	// Update overwrites the row matching e's ID. Returns apperrors.ErrNotFound
	// when no such row exists.
	Update(ctx context.Context, e E) error

	// Delete removes the row matching e's ID. Returns apperrors.ErrNotFound
	// when no such row exists.
	Delete(ctx context.Context, e E) error

	// DeleteOne removes the row with the given id. Returns apperrors.ErrNotFound
	// when no such row exists.
	DeleteOne(ctx context.Context, id int64) error
}

// EntityRepository combines reads and writes for one entity type.
type EntityRepository[E any] interface {
	EntityReader[E]
	EntityWriter[E]
}

package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book persistence. Implementations
// must exclude soft-deleted rows from List, Count, GetByID, and Update.
type Repository interface {
	// List returns non-deleted books ordered by id descending.
	List(ctx context.Context, p ListParams) ([]Book, error)
	// Count returns the number of non-deleted books.
	Count(ctx context.Context) (int, error)
	// GetByID returns a non-deleted book or ErrNotFound.
	GetByID(ctx context.Context, id int64) (Book, error)
	// Create persists a new book and fills its generated fields.
	Create(ctx context.Context, b *Book) error
	// Update applies the given column values to a non-deleted book and
	// returns the updated record, or ErrNotFound.
	Update(ctx context.Context, id int64, fields map[string]any) (Book, error)
}

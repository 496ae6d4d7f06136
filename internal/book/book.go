package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned by repositories when no visible (non-deleted)
// book matches the lookup.
var ErrNotFound = errors.New("book not found")

// Book represents a catalog record. Deletion is logical: IsDelete flips to
// true and DeletedAt is stamped, but the row is never removed. Every read
// path filters deleted records out.
type Book struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	Genre         *string    `json:"genre"`
	PublishedYear *int       `json:"publishedYear"`
	IsDelete      bool       `json:"isDelete"`
	DeletedAt     *time.Time `json:"deletedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// ListQuery carries the raw pagination inputs of a list request. A nil
// field means the caller did not mention the parameter at all; when both
// are nil the whole catalog is returned unpaginated.
type ListQuery struct {
	Page  *string
	Limit *string
}

func (q ListQuery) Paginated() bool {
	return q.Page != nil || q.Limit != nil
}

// ListParams is the store-level window. Take <= 0 means no window.
type ListParams struct {
	Skip int
	Take int
}

type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type ListResult struct {
	Data []Book `json:"data"`
	Meta Meta   `json:"meta"`
}

type DeleteResult struct {
	Message string `json:"message"`
	BookID  int64  `json:"bookId"`
}

package book

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"bookcatalog/internal/apperr"
)

// Service provides the catalog business logic. It is stateless per call:
// validation happens first, then the repository is consulted.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns books with pagination metadata. When the caller supplied
// neither page nor limit, the whole catalog comes back in one page. The
// fetch and count queries run concurrently; either failure fails the call.
func (s *Service) List(ctx context.Context, q ListQuery) (ListResult, error) {
	params := ListParams{}
	page, limit := 1, 0
	if q.Paginated() {
		p := NormalizePagination(deref(q.Page), deref(q.Limit))
		params = ListParams{Skip: p.Skip, Take: p.Limit}
		page, limit = p.Page, p.Limit
	}

	var (
		books []Book
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		books, err = s.repo.List(gctx, params)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return ListResult{}, err
	}

	meta := Meta{Page: page, Limit: total, Total: total, TotalPages: 1}
	if q.Paginated() {
		meta.Limit = limit
		meta.TotalPages = (total + limit - 1) / limit
	}
	return ListResult{Data: books, Meta: meta}, nil
}

// Get returns a non-deleted book by its raw identifier.
func (s *Service) Get(ctx context.Context, rawID string) (Book, error) {
	id, err := ParseBookID(rawID)
	if err != nil {
		return Book{}, err
	}
	return s.getExisting(ctx, id)
}

// Create validates the payload and persists a new book.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Book, error) {
	if err := validateCreate(req); err != nil {
		return Book{}, err
	}

	genre := req.Genre
	year := req.PublishedYear.Value
	b := Book{
		Title:         req.Title,
		Author:        req.Author,
		Genre:         &genre,
		PublishedYear: &year,
	}
	if err := s.repo.Create(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Update applies a sparse patch to an existing book. Checks run in a
// fixed precedence: id validity, then existence, then payload shape.
func (s *Service) Update(ctx context.Context, rawID string, req UpdateRequest) (Book, error) {
	id, err := ParseBookID(rawID)
	if err != nil {
		return Book{}, err
	}
	if _, err := s.getExisting(ctx, id); err != nil {
		return Book{}, err
	}
	patch, err := buildUpdatePatch(req)
	if err != nil {
		return Book{}, err
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, ErrNotFound) {
		return Book{}, apperr.NotFound("Book not found")
	}
	return updated, err
}

// Delete soft-deletes a book: the record stays in the store with its
// deletion flag and timestamp set.
func (s *Service) Delete(ctx context.Context, rawID string) (DeleteResult, error) {
	id, err := ParseBookID(rawID)
	if err != nil {
		return DeleteResult{}, err
	}
	if _, err := s.getExisting(ctx, id); err != nil {
		return DeleteResult{}, err
	}

	patch := map[string]any{
		"is_delete":  true,
		"deleted_at": time.Now().UTC(),
	}
	if _, err := s.repo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, ErrNotFound) {
			return DeleteResult{}, apperr.NotFound("Book not found")
		}
		return DeleteResult{}, err
	}
	return DeleteResult{Message: "Book deleted", BookID: id}, nil
}

func (s *Service) getExisting(ctx context.Context, id int64) (Book, error) {
	b, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Book{}, apperr.NotFound("Book not found")
	}
	return b, err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

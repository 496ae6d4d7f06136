package book

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookColumns = "id, title, author, genre, published_year, is_delete, deleted_at, created_at, updated_at"

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) List(ctx context.Context, p ListParams) ([]Book, error) {
	query := "SELECT " + bookColumns + " FROM books WHERE is_delete = false ORDER BY id DESC"
	args := []any{}
	if p.Take > 0 {
		query += " OFFSET $1 LIMIT $2"
		args = append(args, p.Skip, p.Take)
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []Book{}
	for rows.Next() {
		var b Book
		if err := scanBook(rows, &b); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *PostgresRepo) Count(ctx context.Context) (int, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int
	err := r.db.QueryRow(timeoutCtx, "SELECT count(*) FROM books WHERE is_delete = false").Scan(&total)
	return total, err
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	const query = "SELECT " + bookColumns + " FROM books WHERE id = $1 AND is_delete = false LIMIT 1"

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b Book
	err := scanBook(r.db.QueryRow(timeoutCtx, query, id), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	const query = `
	INSERT INTO books (title, author, genre, published_year)
	VALUES ($1, $2, $3, $4)
	RETURNING id, is_delete, deleted_at, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query, b.Title, b.Author, b.Genre, b.PublishedYear).
		Scan(&b.ID, &b.IsDelete, &b.DeletedAt, &b.CreatedAt, &b.UpdatedAt)
}

// updatableColumns is iterated in order so the generated SQL is stable.
var updatableColumns = []string{"title", "author", "genre", "published_year", "is_delete", "deleted_at"}

func (r *PostgresRepo) Update(ctx context.Context, id int64, fields map[string]any) (Book, error) {
	sets := []string{}
	args := []any{}
	argn := 1

	for _, col := range updatableColumns {
		value, ok := fields[col]
		if !ok {
			continue
		}
		sets = append(sets, col+" = $"+strconv.Itoa(argn))
		args = append(args, value)
		argn++
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	sets = append(sets, "updated_at = now()")
	args = append(args, id)
	query := "UPDATE books SET " + strings.Join(sets, ", ") +
		" WHERE id = $" + strconv.Itoa(argn) + " AND is_delete = false RETURNING " + bookColumns

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b Book
	err := scanBook(r.db.QueryRow(timeoutCtx, query, args...), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func scanBook(row pgx.Row, b *Book) error {
	return row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Genre, &b.PublishedYear,
		&b.IsDelete, &b.DeletedAt, &b.CreatedAt, &b.UpdatedAt,
	)
}

package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error code for unique_violation.
const uniqueViolationCode = "23505"

const bookColumns = "id, title, author, isbn, description, pages, published_year, created_at, updated_at"

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

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Description,
		&b.Pages, &b.PublishedYear, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func (r *PostgresRepo) List(ctx context.Context, limit, offset int) ([]Book, int, error) {
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, "SELECT COUNT(*) FROM books").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	dataSQL := `
		SELECT ` + bookColumns + `
		FROM books
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows, total)
}

func (r *PostgresRepo) Search(ctx context.Context, query string, limit, offset int) ([]Book, int, error) {
	pattern := "%" + query + "%"
	where := "WHERE title ILIKE $1 OR author ILIKE $1"

	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, "SELECT COUNT(*) FROM books "+where, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count search: %w", err)
	}

	dataSQL := `
		SELECT ` + bookColumns + `
		FROM books
		` + where + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("search books: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows, total)
}

func collectBooks(rows pgx.Rows, total int) ([]Book, int, error) {
	out := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Description,
			&b.Pages, &b.PublishedYear, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("get book by id: %w", err)
	}
	return b, nil
}

func (r *PostgresRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE isbn = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, isbn))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("get book by isbn: %w", err)
	}
	return b, nil
}

func (r *PostgresRepo) Insert(ctx context.Context, in CreateInput) (Book, error) {
	query := `
		INSERT INTO books (title, author, isbn, description, pages, published_year)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + bookColumns

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query,
		in.Title, in.Author, in.ISBN, in.Description, in.Pages, in.PublishedYear,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return Book{}, &DuplicateISBNError{ISBN: in.ISBN}
		}
		return Book{}, fmt.Errorf("insert book: %w", err)
	}
	return b, nil
}

// Update runs a single UPDATE over the provided fields only, so a constraint
// violation at commit time leaves the row in its pre-update state.
func (r *PostgresRepo) Update(ctx context.Context, id string, in UpdateInput) (Book, error) {
	sets := []string{}
	args := []any{}
	argn := 1

	set := func(col string, v any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, argn))
		args = append(args, v)
		argn++
	}

	if in.Title != nil {
		set("title", *in.Title)
	}
	if in.Author != nil {
		set("author", *in.Author)
	}
	if in.ISBN != nil {
		set("isbn", *in.ISBN)
	}
	if in.Description != nil {
		set("description", *in.Description)
	}
	if in.Pages != nil {
		set("pages", *in.Pages)
	}
	if in.PublishedYear != nil {
		set("published_year", *in.PublishedYear)
	}
	sets = append(sets, "updated_at = now()")

	query := fmt.Sprintf("UPDATE books SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), argn, bookColumns)
	args = append(args, id)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		if isUniqueViolation(err) {
			isbn := ""
			if in.ISBN != nil {
				isbn = *in.ISBN
			}
			return Book{}, &DuplicateISBNError{ISBN: isbn}
		}
		return Book{}, fmt.Errorf("update book: %w", err)
	}
	return b, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) (bool, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete book: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"quoteboard-backend/internal/domains/author/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the pgx-backed author repository.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (name, email, author_name, password)
        VALUES ($1, $2, $3, $4)
        RETURNING id, name, email, author_name, password, created_at
    `

	var created model.Author
	err := r.pool.QueryRow(ctx, query, a.Name, a.Email, a.AuthorName, a.Password).Scan(
		&created.ID,
		&created.Name,
		&created.Email,
		&created.AuthorName,
		&created.Password,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.AuthorSummary, error) {
	query := `
        SELECT id, name, author_name, email, created_at
        FROM authors
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := []model.AuthorSummary{}
	for rows.Next() {
		var a model.AuthorSummary
		if err := rows.Scan(&a.ID, &a.Name, &a.AuthorName, &a.Email, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

// GetByID returns the author with its nested relations eagerly expanded:
// entries recorded by the author, statements attributed to them, and the
// list memberships.
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.AuthorDetail, error) {
	detail := &model.AuthorDetail{
		Entries:    []model.EntryRef{},
		Statements: []model.EntryRef{},
		Lists:      []model.MembershipRef{},
	}

	query := `
        SELECT name, author_name, email, created_at
        FROM authors
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&detail.Name,
		&detail.AuthorName,
		&detail.Email,
		&detail.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	entered, err := r.entryRefs(ctx, "entered_by_id", id)
	if err != nil {
		return nil, err
	}
	detail.Entries = entered

	stated, err := r.entryRefs(ctx, "stated_by_id", id)
	if err != nil {
		return nil, err
	}
	detail.Statements = stated

	memberships := `
        SELECT author_id, list_id
        FROM author_lists
        WHERE author_id = $1
        ORDER BY list_id
    `

	rows, err := r.pool.Query(ctx, memberships, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query author memberships: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m model.MembershipRef
		if err := rows.Scan(&m.AuthorID, &m.ListID); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		detail.Lists = append(detail.Lists, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating memberships: %w", err)
	}

	return detail, nil
}

// entryRefs loads the trimmed entry projection for one of the two
// author-to-entry relations. column must be a fixed identifier, never input.
func (r *postgresRepository) entryRefs(ctx context.Context, column string, authorID int64) ([]model.EntryRef, error) {
	query := fmt.Sprintf(`
        SELECT id, statement, color
        FROM entries
        WHERE %s = $1
        ORDER BY id
    `, column)

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries by %s: %w", column, err)
	}
	defer rows.Close()

	refs := []model.EntryRef{}
	for rows.Next() {
		var e model.EntryRef
		if err := rows.Scan(&e.ID, &e.Statement, &e.Color); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		refs = append(refs, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}

	return refs, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, a *model.Author) (*model.Author, error) {
	query := `
        UPDATE authors
        SET name = $1, email = $2, author_name = $3, password = $4
        WHERE id = $5
        RETURNING id, name, email, author_name, password, created_at
    `

	var updated model.Author
	err := r.pool.QueryRow(ctx, query, a.Name, a.Email, a.AuthorName, a.Password, id).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Email,
		&updated.AuthorName,
		&updated.Password,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return &updated, nil
}

// Delete removes the row and returns its prior state. A referential
// integrity violation from dependent entries surfaces as a plain error.
func (r *postgresRepository) Delete(ctx context.Context, id int64) (*model.Author, error) {
	query := `
        DELETE FROM authors
        WHERE id = $1
        RETURNING id, name, email, author_name, password, created_at
    `

	var deleted model.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&deleted.ID,
		&deleted.Name,
		&deleted.Email,
		&deleted.AuthorName,
		&deleted.Password,
		&deleted.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to delete author: %w", err)
	}

	return &deleted, nil
}

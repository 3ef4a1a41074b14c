package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"quoteboard-backend/internal/domains/list/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the pgx-backed list repository.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, l *model.List) (*model.List, error) {
	query := `
        INSERT INTO lists (name, tag)
        VALUES ($1, $2)
        RETURNING id, name, tag, created_at
    `

	var created model.List
	err := r.pool.QueryRow(ctx, query, l.Name, l.Tag).Scan(
		&created.ID,
		&created.Name,
		&created.Tag,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.ListSummary, error) {
	query := `
        SELECT id, name, tag, created_at
        FROM lists
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}
	defer rows.Close()

	lists := []model.ListSummary{}
	for rows.Next() {
		var l model.ListSummary
		if err := rows.Scan(&l.ID, &l.Name, &l.Tag, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lists: %w", err)
	}

	return lists, nil
}

// GetByID returns the list with its author memberships and entries eagerly
// expanded.
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.ListDetail, error) {
	detail := &model.ListDetail{
		Authors: []model.MembershipRef{},
		Entries: []model.EntryRef{},
	}

	query := `
        SELECT name, tag, created_at
        FROM lists
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(&detail.Name, &detail.Tag, &detail.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrListNotFound
		}
		return nil, fmt.Errorf("failed to get list by id: %w", err)
	}

	memberships := `
        SELECT author_id, list_id
        FROM author_lists
        WHERE list_id = $1
        ORDER BY author_id
    `

	mRows, err := r.pool.Query(ctx, memberships, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query list memberships: %w", err)
	}
	defer mRows.Close()

	for mRows.Next() {
		var m model.MembershipRef
		if err := mRows.Scan(&m.AuthorID, &m.ListID); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		detail.Authors = append(detail.Authors, m)
	}

	if err := mRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating memberships: %w", err)
	}

	entries := `
        SELECT id, statement, color
        FROM entries
        WHERE list_id = $1
        ORDER BY id
    `

	eRows, err := r.pool.Query(ctx, entries, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query list entries: %w", err)
	}
	defer eRows.Close()

	for eRows.Next() {
		var e model.EntryRef
		if err := eRows.Scan(&e.ID, &e.Statement, &e.Color); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		detail.Entries = append(detail.Entries, e)
	}

	if err := eRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}

	return detail, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, l *model.List) (*model.List, error) {
	query := `
        UPDATE lists
        SET name = $1, tag = $2
        WHERE id = $3
        RETURNING id, name, tag, created_at
    `

	var updated model.List
	err := r.pool.QueryRow(ctx, query, l.Name, l.Tag, id).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Tag,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrListNotFound
		}
		return nil, fmt.Errorf("failed to update list: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (*model.List, error) {
	query := `
        DELETE FROM lists
        WHERE id = $1
        RETURNING id, name, tag, created_at
    `

	var deleted model.List
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&deleted.ID,
		&deleted.Name,
		&deleted.Tag,
		&deleted.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrListNotFound
		}
		return nil, fmt.Errorf("failed to delete list: %w", err)
	}

	return &deleted, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"quoteboard-backend/internal/domains/entry/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the pgx-backed entry repository.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const entryColumns = "id, statement, color, list_id, entered_by_id, stated_by_id, created_at"

func scanEntry(row pgx.Row, e *model.Entry) error {
	return row.Scan(
		&e.ID,
		&e.Statement,
		&e.Color,
		&e.ListID,
		&e.EnteredByID,
		&e.StatedByID,
		&e.CreatedAt,
	)
}

func (r *postgresRepository) Create(ctx context.Context, e *model.Entry) (*model.Entry, error) {
	query := fmt.Sprintf(`
        INSERT INTO entries (statement, color, list_id, entered_by_id, stated_by_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING %s
    `, entryColumns)

	var created model.Entry
	row := r.pool.QueryRow(ctx, query, e.Statement, e.Color, e.ListID, e.EnteredByID, e.StatedByID)
	if err := scanEntry(row, &created); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Entry, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM entries
        ORDER BY id
    `, entryColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []model.Entry{}
	for rows.Next() {
		var e model.Entry
		if err := scanEntry(rows, &e); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}

	return entries, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Entry, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM entries
        WHERE id = $1
    `, entryColumns)

	var e model.Entry
	if err := scanEntry(r.pool.QueryRow(ctx, query, id), &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry by id: %w", err)
	}

	return &e, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, e *model.Entry) (*model.Entry, error) {
	query := fmt.Sprintf(`
        UPDATE entries
        SET statement = $1, color = $2, list_id = $3, entered_by_id = $4, stated_by_id = $5
        WHERE id = $6
        RETURNING %s
    `, entryColumns)

	var updated model.Entry
	row := r.pool.QueryRow(ctx, query, e.Statement, e.Color, e.ListID, e.EnteredByID, e.StatedByID, id)
	if err := scanEntry(row, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (*model.Entry, error) {
	query := fmt.Sprintf(`
        DELETE FROM entries
        WHERE id = $1
        RETURNING %s
    `, entryColumns)

	var deleted model.Entry
	if err := scanEntry(r.pool.QueryRow(ctx, query, id), &deleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to delete entry: %w", err)
	}

	return &deleted, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"quoteboard-backend/internal/domains/authorlist/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the pgx-backed membership repository.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Add(ctx context.Context, authorID, listID int64) (*model.Membership, error) {
	query := `
        INSERT INTO author_lists (author_id, list_id)
        VALUES ($1, $2)
        RETURNING author_id, list_id
    `

	var m model.Membership
	err := r.pool.QueryRow(ctx, query, authorID, listID).Scan(&m.AuthorID, &m.ListID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, model.ErrMembershipExists
		}
		return nil, fmt.Errorf("failed to add author to list: %w", err)
	}

	return &m, nil
}

func (r *postgresRepository) Remove(ctx context.Context, authorID, listID int64) (*model.Membership, error) {
	query := `
        DELETE FROM author_lists
        WHERE author_id = $1 AND list_id = $2
        RETURNING author_id, list_id
    `

	var m model.Membership
	err := r.pool.QueryRow(ctx, query, authorID, listID).Scan(&m.AuthorID, &m.ListID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to remove author from list: %w", err)
	}

	return &m, nil
}

// ByList returns every membership of the list, each expanded with the full
// author record.
func (r *postgresRepository) ByList(ctx context.Context, listID int64) ([]model.AuthorOfList, error) {
	query := `
        SELECT al.author_id, al.list_id,
               a.id, a.name, a.email, a.author_name, a.password, a.created_at
        FROM author_lists al
        JOIN authors a ON a.id = al.author_id
        WHERE al.list_id = $1
        ORDER BY al.author_id
    `

	rows, err := r.pool.Query(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors of list: %w", err)
	}
	defer rows.Close()

	memberships := []model.AuthorOfList{}
	for rows.Next() {
		var m model.AuthorOfList
		err := rows.Scan(
			&m.AuthorID,
			&m.ListID,
			&m.Author.ID,
			&m.Author.Name,
			&m.Author.Email,
			&m.Author.AuthorName,
			&m.Author.Password,
			&m.Author.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author of list: %w", err)
		}
		memberships = append(memberships, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors of list: %w", err)
	}

	return memberships, nil
}

// ByAuthor returns every membership of the author, each expanded with the
// full list record.
func (r *postgresRepository) ByAuthor(ctx context.Context, authorID int64) ([]model.ListOfAuthor, error) {
	query := `
        SELECT al.author_id, al.list_id,
               l.id, l.name, l.tag, l.created_at
        FROM author_lists al
        JOIN lists l ON l.id = al.list_id
        WHERE al.author_id = $1
        ORDER BY al.list_id
    `

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists of author: %w", err)
	}
	defer rows.Close()

	memberships := []model.ListOfAuthor{}
	for rows.Next() {
		var m model.ListOfAuthor
		err := rows.Scan(
			&m.AuthorID,
			&m.ListID,
			&m.List.ID,
			&m.List.Name,
			&m.List.Tag,
			&m.List.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan list of author: %w", err)
		}
		memberships = append(memberships, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lists of author: %w", err)
	}

	return memberships, nil
}

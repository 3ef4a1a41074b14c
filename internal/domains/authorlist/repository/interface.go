package repository

import (
	"context"

	"quoteboard-backend/internal/domains/authorlist/model"
)

// Repository is the membership-table gateway. At most one row may exist per
// (author, list) pair; the composite primary key enforces it.
type Repository interface {
	Add(ctx context.Context, authorID, listID int64) (*model.Membership, error)
	Remove(ctx context.Context, authorID, listID int64) (*model.Membership, error)
	ByList(ctx context.Context, listID int64) ([]model.AuthorOfList, error)
	ByAuthor(ctx context.Context, authorID int64) ([]model.ListOfAuthor, error)
}

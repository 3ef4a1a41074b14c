package repository

import (
	"context"

	"quoteboard-backend/internal/domains/author/model"
)

// Repository is the author persistence gateway. Implementations perform a
// single mapped store operation per call; validation happens upstream.
type Repository interface {
	Create(ctx context.Context, a *model.Author) (*model.Author, error)
	GetAll(ctx context.Context) ([]model.AuthorSummary, error)
	GetByID(ctx context.Context, id int64) (*model.AuthorDetail, error)
	Update(ctx context.Context, id int64, a *model.Author) (*model.Author, error)
	Delete(ctx context.Context, id int64) (*model.Author, error)
}

package repository

import (
	"context"

	"quoteboard-backend/internal/domains/entry/model"
)

// Repository is the entry persistence gateway. Broken foreign keys are not
// pre-checked here; the database rejects them and the error propagates.
type Repository interface {
	Create(ctx context.Context, e *model.Entry) (*model.Entry, error)
	GetAll(ctx context.Context) ([]model.Entry, error)
	GetByID(ctx context.Context, id int64) (*model.Entry, error)
	Update(ctx context.Context, id int64, e *model.Entry) (*model.Entry, error)
	Delete(ctx context.Context, id int64) (*model.Entry, error)
}

package repository

import (
	"context"

	"quoteboard-backend/internal/domains/list/model"
)

// Repository is the list persistence gateway.
type Repository interface {
	Create(ctx context.Context, l *model.List) (*model.List, error)
	GetAll(ctx context.Context) ([]model.ListSummary, error)
	GetByID(ctx context.Context, id int64) (*model.ListDetail, error)
	Update(ctx context.Context, id int64, l *model.List) (*model.List, error)
	Delete(ctx context.Context, id int64) (*model.List, error)
}

package service

import (
	"context"

	"quoteboard-backend/internal/domains/list/model"
)

type Service interface {
	Create(ctx context.Context, req *model.ListRequest) (*model.List, error)
	GetAll(ctx context.Context) ([]model.ListSummary, error)
	GetByID(ctx context.Context, id int64) (*model.ListDetail, error)
	Update(ctx context.Context, id int64, req *model.ListRequest) (*model.List, error)
	Delete(ctx context.Context, id int64) (*model.List, error)
}

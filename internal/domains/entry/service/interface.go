package service

import (
	"context"

	"quoteboard-backend/internal/domains/entry/model"
)

type Service interface {
	Create(ctx context.Context, req *model.EntryRequest) (*model.Entry, error)
	GetAll(ctx context.Context) ([]model.Entry, error)
	GetByID(ctx context.Context, id int64) (*model.Entry, error)
	Update(ctx context.Context, id int64, req *model.EntryRequest) (*model.Entry, error)
	Delete(ctx context.Context, id int64) (*model.Entry, error)
}

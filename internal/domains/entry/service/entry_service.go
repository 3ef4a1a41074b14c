package service

import (
	"context"

	"quoteboard-backend/internal/domains/entry/model"
	"quoteboard-backend/internal/domains/entry/repository"
	"quoteboard-backend/internal/shared/validate"
)

type entryService struct {
	repo repository.Repository
}

func NewEntryService(repo repository.Repository) Service {
	return &entryService{repo: repo}
}

func (s *entryService) Create(ctx context.Context, req *model.EntryRequest) (*model.Entry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, req.ToEntity())
}

func (s *entryService) GetAll(ctx context.Context) ([]model.Entry, error) {
	return s.repo.GetAll(ctx)
}

func (s *entryService) GetByID(ctx context.Context, id int64) (*model.Entry, error) {
	if err := validate.ID("id", id); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *entryService) Update(ctx context.Context, id int64, req *model.EntryRequest) (*model.Entry, error) {
	if err := validate.ID("id", id); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, req.ToEntity())
}

func (s *entryService) Delete(ctx context.Context, id int64) (*model.Entry, error) {
	if err := validate.ID("id", id); err != nil {
		return nil, err
	}

	return s.repo.Delete(ctx, id)
}

package service

import (
	"context"

	"quoteboard-backend/internal/domains/list/model"
	"quoteboard-backend/internal/domains/list/repository"
	"quoteboard-backend/internal/shared/validate"
)

type listService struct {
	repo repository.Repository
}

func NewListService(repo repository.Repository) Service {
	return &listService{repo: repo}
}

func (s *listService) Create(ctx context.Context, req *model.ListRequest) (*model.List, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, req.ToEntity())
}

func (s *listService) GetAll(ctx context.Context) ([]model.ListSummary, error) {
	return s.repo.GetAll(ctx)
}

func (s *listService) GetByID(ctx context.Context, id int64) (*model.ListDetail, error) {
	if err := validate.ID("id", id); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *listService) Update(ctx context.Context, id int64, req *model.ListRequest) (*model.List, error) {
	if err := validate.ID("id", id); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, req.ToEntity())
}

func (s *listService) Delete(ctx context.Context, id int64) (*model.List, error) {
	if err := validate.ID("id", id); err != nil {
		return nil, err
	}

	return s.repo.Delete(ctx, id)
}

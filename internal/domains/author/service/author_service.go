package service

import (
	"context"

	"quoteboard-backend/internal/domains/author/model"
	"quoteboard-backend/internal/domains/author/repository"
	"quoteboard-backend/internal/shared/validate"
)

type authorService struct {
	repo repository.Repository
}

func NewAuthorService(repo repository.Repository) Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *model.AuthorRequest) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, req.ToEntity())
}

func (s *authorService) GetAll(ctx context.Context) ([]model.AuthorSummary, error) {
	return s.repo.GetAll(ctx)
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*model.AuthorDetail, error) {
	if err := validate.ID("id", id); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *authorService) Update(ctx context.Context, id int64, req *model.AuthorRequest) (*model.Author, error) {
	if err := validate.ID("id", id); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, req.ToEntity())
}

func (s *authorService) Delete(ctx context.Context, id int64) (*model.Author, error) {
	if err := validate.ID("id", id); err != nil {
		return nil, err
	}

	return s.repo.Delete(ctx, id)
}

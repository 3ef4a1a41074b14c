package service

import (
	"context"

	"quoteboard-backend/internal/domains/author/model"
)

// Service owns the validated author operations. Every mutating or
// identifier-taking call validates before the repository is touched.
type Service interface {
	Create(ctx context.Context, req *model.AuthorRequest) (*model.Author, error)
	GetAll(ctx context.Context) ([]model.AuthorSummary, error)
	GetByID(ctx context.Context, id int64) (*model.AuthorDetail, error)
	Update(ctx context.Context, id int64, req *model.AuthorRequest) (*model.Author, error)
	Delete(ctx context.Context, id int64) (*model.Author, error)
}

package service

import (
	"context"

	"quoteboard-backend/internal/domains/authorlist/model"
	"quoteboard-backend/internal/domains/authorlist/repository"
	"quoteboard-backend/internal/shared/validate"
)

type authorListService struct {
	repo repository.Repository
}

func NewAuthorListService(repo repository.Repository) Service {
	return &authorListService{repo: repo}
}

func validatePair(authorID, listID int64) error {
	if err := validate.ID("authorId", authorID); err != nil {
		return err
	}
	return validate.ID("listId", listID)
}

func (s *authorListService) AddAuthorToList(ctx context.Context, authorID, listID int64) (*model.Membership, error) {
	if err := validatePair(authorID, listID); err != nil {
		return nil, err
	}

	return s.repo.Add(ctx, authorID, listID)
}

func (s *authorListService) RemoveAuthorFromList(ctx context.Context, authorID, listID int64) (*model.Membership, error) {
	if err := validatePair(authorID, listID); err != nil {
		return nil, err
	}

	return s.repo.Remove(ctx, authorID, listID)
}

func (s *authorListService) GetAuthorsOfList(ctx context.Context, listID int64) ([]model.AuthorOfList, error) {
	if err := validate.ID("listId", listID); err != nil {
		return nil, err
	}

	return s.repo.ByList(ctx, listID)
}

func (s *authorListService) GetListsOfAuthor(ctx context.Context, authorID int64) ([]model.ListOfAuthor, error) {
	if err := validate.ID("authorId", authorID); err != nil {
		return nil, err
	}

	return s.repo.ByAuthor(ctx, authorID)
}

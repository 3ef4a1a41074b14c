package service

import (
	"context"

	"quoteboard-backend/internal/domains/authorlist/model"
)

// Service owns the four membership operations. Beyond pair uniqueness there
// is no business rule here.
type Service interface {
	AddAuthorToList(ctx context.Context, authorID, listID int64) (*model.Membership, error)
	RemoveAuthorFromList(ctx context.Context, authorID, listID int64) (*model.Membership, error)
	GetAuthorsOfList(ctx context.Context, listID int64) ([]model.AuthorOfList, error)
	GetListsOfAuthor(ctx context.Context, authorID int64) ([]model.ListOfAuthor, error)
}

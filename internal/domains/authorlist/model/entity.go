package model

import (
	authormodel "quoteboard-backend/internal/domains/author/model"
	listmodel "quoteboard-backend/internal/domains/list/model"
)

// Membership links one author to one list. Its identity is the composite
// (authorId, listId) pair; there are no further attributes.
type Membership struct {
	AuthorID int64 `json:"authorId"`
	ListID   int64 `json:"listId"`
}

// AuthorOfList is a membership expanded with the full author record.
type AuthorOfList struct {
	AuthorID int64              `json:"authorId"`
	ListID   int64              `json:"listId"`
	Author   authormodel.Author `json:"author"`
}

// ListOfAuthor is a membership expanded with the full list record.
type ListOfAuthor struct {
	AuthorID int64          `json:"authorId"`
	ListID   int64          `json:"listId"`
	List     listmodel.List `json:"list"`
}

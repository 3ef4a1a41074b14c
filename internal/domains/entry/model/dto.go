package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"quoteboard-backend/internal/shared/validate"
)

// EntryRequest is the body for POST /entry and PUT /entry/:id. The three
// references must be positive integers; whether they point at existing rows
// is the database's call (referential integrity), not validation's.
type EntryRequest struct {
	Statement   string `json:"statement"`
	ListID      int64  `json:"listId"`
	EnteredByID int64  `json:"enteredById"`
	StatedByID  int64  `json:"statedById"`
	Color       string `json:"color"`
}

func (r EntryRequest) Validate() error {
	if err := validate.First(
		validate.Field("statement", r.Statement, validation.Required),
	); err != nil {
		return err
	}

	if err := validate.ID("listId", r.ListID); err != nil {
		return err
	}
	if err := validate.ID("enteredById", r.EnteredByID); err != nil {
		return err
	}
	if err := validate.ID("statedById", r.StatedByID); err != nil {
		return err
	}

	return validate.First(
		validate.Field("color", r.Color, validation.Required),
	)
}

func (r *EntryRequest) ToEntity() *Entry {
	return &Entry{
		Statement:   r.Statement,
		Color:       r.Color,
		ListID:      r.ListID,
		EnteredByID: r.EnteredByID,
		StatedByID:  r.StatedByID,
	}
}

package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"quoteboard-backend/internal/shared/validate"
)

// ListRequest is the body for POST /list and PUT /list/:id. Tag is optional
// and may be explicitly null.
type ListRequest struct {
	Name string  `json:"name"`
	Tag  *string `json:"tag"`
}

func (r ListRequest) Validate() error {
	return validate.First(
		validate.Field("name", r.Name,
			validation.Required,
			validation.Length(0, 50).Error("must be at most 50 characters long"),
		),
		validate.Field("tag", r.Tag,
			validation.Length(0, 100).Error("must be at most 100 characters long"),
		),
	)
}

func (r *ListRequest) ToEntity() *List {
	return &List{
		Name: r.Name,
		Tag:  r.Tag,
	}
}

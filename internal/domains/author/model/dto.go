package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"quoteboard-backend/internal/shared/validate"
)

// AuthorRequest is the body for POST /author and PUT /author/:id.
// Updates are full-field replaces, so both routes share the shape.
type AuthorRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	AuthorName string `json:"authorName"`
	Password   string `json:"password"`
}

// Validate checks the fields in declared order and reports the first
// failing constraint.
func (r AuthorRequest) Validate() error {
	return validate.First(
		validate.Field("name", r.Name, validation.Required),
		validate.Field("email", r.Email, validation.Required, is.Email),
		validate.Field("authorName", r.AuthorName, validation.Required),
		validate.Field("password", r.Password,
			validation.Required,
			validation.Length(8, 0).Error("must be at least 8 characters long"),
		),
	)
}

// ToEntity converts the request to an Author row awaiting an id.
func (r *AuthorRequest) ToEntity() *Author {
	return &Author{
		Name:       r.Name,
		Email:      r.Email,
		AuthorName: r.AuthorName,
		Password:   r.Password,
	}
}

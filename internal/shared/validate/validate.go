package validate

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Error reports the first constraint a payload failed. Handlers map it to
// a 400 response with the message as-is.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds a validation error for a field.
func NewError(field, reason string) *Error {
	return &Error{Message: fmt.Sprintf("%s %s", field, reason)}
}

// IsValidation reports whether err originated from input validation.
func IsValidation(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// FieldRules pairs a named value with its ozzo rules.
type FieldRules struct {
	Name  string
	Value interface{}
	Rules []validation.Rule
}

func Field(name string, value interface{}, rules ...validation.Rule) FieldRules {
	return FieldRules{Name: name, Value: value, Rules: rules}
}

// First evaluates fields in declared order and returns the first failing
// constraint as *Error. Later fields are not checked once one fails.
func First(fields ...FieldRules) error {
	for _, f := range fields {
		if err := validation.Validate(f.Value, f.Rules...); err != nil {
			return NewError(f.Name, err.Error())
		}
	}
	return nil
}

// ID validates a positive integer identifier. Path parameters and foreign
// key fields both funnel through here.
func ID(name string, id int64) error {
	if id <= 0 {
		return NewError(name, "must be a positive integer")
	}
	return nil
}

package params

import (
	"github.com/pkg/errors"
)

var (
	// ErrMissingField a required field is absent from the literal source.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidField a field is present but has the wrong type or an out of range value.
	ErrInvalidField = errors.New("invalid field")

	// ErrUnknownField the literal source carries a field the parameter set does not know.
	ErrUnknownField = errors.New("unknown field")

	// ErrPrefixCollision two address kinds of one network share a prefix.
	ErrPrefixCollision = errors.New("address prefix collision")

	// ErrIdleWarning the idle warning would not fire before the idle timeout.
	ErrIdleWarning = errors.New("idle warning duration must be shorter than idle timeout")
)

// FieldError identifies the field a validation error is about.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return "field " + e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}

func invalidf(field, format string, args ...interface{}) error {
	return fieldError(field, errors.Wrapf(ErrInvalidField, format, args...))
}

func missing(field string) error {
	return fieldError(field, ErrMissingField)
}

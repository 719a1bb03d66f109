package embed

import (
	"errors"
	"fmt"
)

var (
	ErrAuthorNameEmpty      = errors.New("author name is empty")
	ErrAuthorNameTooLong    = errors.New("author name is too long")
	ErrColorNotRGB          = errors.New("color is not rgb")
	ErrDescriptionEmpty     = errors.New("description is empty")
	ErrDescriptionTooLong   = errors.New("description is too long")
	ErrFieldNameEmpty       = errors.New("field name is empty")
	ErrFieldNameTooLong     = errors.New("field name is too long")
	ErrFieldValueEmpty      = errors.New("field value is empty")
	ErrFieldValueTooLong    = errors.New("field value is too long")
	ErrFooterTextEmpty      = errors.New("footer text is empty")
	ErrFooterTextTooLong    = errors.New("footer text is too long")
	ErrTitleEmpty           = errors.New("title is empty")
	ErrTitleTooLong         = errors.New("title is too long")
	ErrTooManyFields        = errors.New("too many fields")
	ErrTotalContentTooLarge = errors.New("total content is too large")
)

// ValidationError describes which part of an embed violates a limit.
// It wraps one of the package sentinel errors.
type ValidationError struct {
	// Field is the JSON path of the offending value, e.g. "author.name" or "fields[2].value".
	Field string
	// Length is the measured size, in UTF-16 code units or items.
	Length int
	// Limit is the maximum allowed size. Zero when the value must not be empty.
	Limit int

	err error
}

func newValidationError(err error, field string, length, limit int) *ValidationError {
	return &ValidationError{Field: field, Length: length, Limit: limit, err: err}
}

func (e *ValidationError) Error() string {
	if e.Limit == 0 {
		return fmt.Sprintf("%s: %v", e.Field, e.err)
	}

	return fmt.Sprintf("%s: %v: %d > %d", e.Field, e.err, e.Length, e.Limit)
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

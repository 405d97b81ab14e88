package document

import (
	"errors"
	"fmt"
)

// ErrInputShape is the sentinel matched by every InputShapeError via errors.Is.
var ErrInputShape = errors.New("invalid input shape")

// InputShapeError is returned when a document lacks an expected field or the field holds a value
// of an unexpected shape.
type InputShapeError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *InputShapeError) Error() string {
	return fmt.Sprintf("invalid input shape at field %q: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInputShape) report true.
func (e *InputShapeError) Is(target error) bool { return target == ErrInputShape }

// NewInputShapeError creates an error for a missing or malformed field.
func NewInputShapeError(field, reason string) error {
	return &InputShapeError{Field: field, Reason: reason}
}

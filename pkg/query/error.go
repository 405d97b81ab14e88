package query

import (
	"errors"
	"fmt"

	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/util"
)

var (
	// ErrInputShape matches InputShapeErrors.
	ErrInputShape = document.ErrInputShape
	// ErrNoMatch matches NoMatchErrors.
	ErrNoMatch = errors.New("no matching record")
	// ErrEmptyCollection matches EmptyCollectionErrors.
	ErrEmptyCollection = errors.New("empty collection")
)

// InputShapeError is returned when a record is missing an expected field.
type InputShapeError = document.InputShapeError

// NoMatchError is returned when a one-to-one join or an index lookup finds no record for a key.
type NoMatchError struct {
	Key any
}

// Error implements the error interface.
func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no matching record for key %s", util.Stringify(e.Key))
}

// Is makes errors.Is(err, ErrNoMatch) report true.
func (e *NoMatchError) Is(target error) bool { return target == ErrNoMatch }

// EmptyCollectionError is returned by reductions that need at least one element.
type EmptyCollectionError struct {
	Op string
}

// Error implements the error interface.
func (e *EmptyCollectionError) Error() string {
	return fmt.Sprintf("%s: empty collection", e.Op)
}

// Is makes errors.Is(err, ErrEmptyCollection) report true.
func (e *EmptyCollectionError) Is(target error) bool { return target == ErrEmptyCollection }

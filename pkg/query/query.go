package query

import (
	"github.com/l7mp/dquery/pkg/document"
)

// Predicate decides whether a record is selected.
type Predicate[T any] func(T) (bool, error)

// Transform builds a new value from a record.
type Transform[T, U any] func(T) (U, error)

// Combiner folds a record into an accumulator.
type Combiner[A, T any] func(A, T) (A, error)

// Comparator orders two records: negative if a < b, zero if equal, positive if a > b.
type Comparator[T any] func(a, b T) (int, error)

// KeyFunc computes the join or grouping key of a record.
type KeyFunc[T any, K comparable] func(T) (K, error)

// Field returns a function that reads a typed top-level field of a document. Numeric fields are
// converted: Field[int64] accepts any integer and Field[float64] accepts any number. A missing
// field or a value of another type yields an InputShapeError.
func Field[V any](name string) func(document.Document) (V, error) {
	return func(doc document.Document) (V, error) {
		var zero V

		switch any(zero).(type) {
		case int64:
			i, err := document.GetInt(doc, name)
			if err != nil {
				return zero, err
			}
			return any(i).(V), nil
		case float64:
			f, err := document.GetFloat(doc, name)
			if err != nil {
				return zero, err
			}
			return any(f).(V), nil
		}

		v, err := document.Get(doc, name)
		if err != nil {
			return zero, err
		}
		ret, ok := v.(V)
		if !ok {
			return zero, document.NewInputShapeError(name, "unexpected value type")
		}
		return ret, nil
	}
}

// FieldEquals returns a predicate-like function that selects documents whose field equals value.
// Numbers compare by value, so 2 equals 2.0.
func FieldEquals(name string, value any) func(document.Document) (bool, error) {
	return func(doc document.Document) (bool, error) {
		v, err := document.Get(doc, name)
		if err != nil {
			return false, err
		}
		return document.Equal(v, value), nil
	}
}

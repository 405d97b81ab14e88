package query

import (
	"golang.org/x/exp/constraints"

	"github.com/l7mp/dquery/pkg/document"
)

// Number is the set of numeric types Sum can accumulate.
type Number interface {
	constraints.Integer | constraints.Float
}

// Reduce folds the records into an accumulator, starting from init.
func Reduce[T, A any](in []T, init A, fn Combiner[A, T]) (A, error) {
	acc := init
	for _, t := range in {
		var err error
		acc, err = fn(acc, t)
		if err != nil {
			return init, err
		}
	}
	return acc, nil
}

// Count returns the number of records satisfying pred.
func Count[T any](in []T, pred Predicate[T]) (int64, error) {
	return Reduce(in, int64(0), func(n int64, t T) (int64, error) {
		ok, err := pred(t)
		if err != nil {
			return 0, err
		}
		if ok {
			n++
		}
		return n, nil
	})
}

// Sum adds up the numbers extracted from the records.
func Sum[T any, N Number](in []T, fn Transform[T, N]) (N, error) {
	return Reduce(in, N(0), func(acc N, t T) (N, error) {
		n, err := fn(t)
		return acc + n, err
	})
}

// CountBy counts the records per key.
func CountBy[T any, K comparable](in []T, key KeyFunc[T, K]) (map[K]int64, error) {
	return Reduce(in, map[K]int64{}, func(acc map[K]int64, t T) (map[K]int64, error) {
		k, err := key(t)
		if err != nil {
			return nil, err
		}
		acc[k]++
		return acc, nil
	})
}

// GroupBy collects the values of the records per key. Values inside a group keep the order of the
// input.
func GroupBy[T any, K comparable, V any](in []T, key KeyFunc[T, K], value Transform[T, V]) (map[K][]V, error) {
	return Reduce(in, map[K][]V{}, func(acc map[K][]V, t T) (map[K][]V, error) {
		k, err := key(t)
		if err != nil {
			return nil, err
		}
		v, err := value(t)
		if err != nil {
			return nil, err
		}
		acc[k] = append(acc[k], v)
		return acc, nil
	})
}

// Distinct returns the first occurrence of every distinct value, in order of first appearance.
// Values are compared by value, not identity.
func Distinct[T any](in []T) []T {
	ret := make([]T, 0, len(in))
	for _, t := range in {
		if !contains(ret, t) {
			ret = append(ret, t)
		}
	}
	return ret
}

// DistinctBy collects the values produced for each record (e.g., the toppings of every cake) and
// keeps only the first occurrence of each distinct value.
func DistinctBy[T, V any](in []T, values Transform[T, []V]) ([]V, error) {
	return Reduce(in, []V{}, func(acc []V, t T) ([]V, error) {
		vs, err := values(t)
		if err != nil {
			return nil, err
		}
		for _, v := range vs {
			if !contains(acc, v) {
				acc = append(acc, v)
			}
		}
		return acc, nil
	})
}

// MaxBy returns the greatest record according to cmp. On ties the first-encountered record wins.
func MaxBy[T any](in []T, cmp Comparator[T]) (T, error) {
	return extremum("max", in, func(a, b T) (bool, error) {
		c, err := cmp(a, b)
		return c > 0, err
	})
}

// MinBy returns the least record according to cmp. On ties the first-encountered record wins.
func MinBy[T any](in []T, cmp Comparator[T]) (T, error) {
	return extremum("min", in, func(a, b T) (bool, error) {
		c, err := cmp(a, b)
		return c < 0, err
	})
}

// extremum keeps the current best unless a later record strictly beats it.
func extremum[T any](op string, in []T, beats func(a, b T) (bool, error)) (T, error) {
	var best T
	if len(in) == 0 {
		return best, &EmptyCollectionError{Op: op}
	}

	best = in[0]
	for _, t := range in[1:] {
		ok, err := beats(t, best)
		if err != nil {
			var zero T
			return zero, err
		}
		if ok {
			best = t
		}
	}
	return best, nil
}

func contains[T any](list []T, v T) bool {
	for i := range list {
		if document.Equal(list[i], v) {
			return true
		}
	}
	return false
}

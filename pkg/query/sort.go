package query

import (
	"cmp"
	"slices"
)

// Sort returns a sorted copy of the records. The sort is stable and the input is left untouched.
// The first comparator error aborts the sort.
func Sort[T any](in []T, compare Comparator[T]) ([]T, error) {
	ret := slices.Clone(in)
	if ret == nil {
		ret = []T{}
	}

	var sortErr error
	slices.SortStableFunc(ret, func(a, b T) int {
		if sortErr != nil {
			return 0
		}
		c, err := compare(a, b)
		if err != nil {
			sortErr = err
			return 0
		}
		return c
	})
	if sortErr != nil {
		return nil, sortErr
	}

	return ret, nil
}

// Ascending orders records by an ordered key.
func Ascending[T any, K cmp.Ordered](key Transform[T, K]) Comparator[T] {
	return func(a, b T) (int, error) {
		ka, err := key(a)
		if err != nil {
			return 0, err
		}
		kb, err := key(b)
		if err != nil {
			return 0, err
		}
		return cmp.Compare(ka, kb), nil
	}
}

// Descending orders records by an ordered key, greatest first.
func Descending[T any, K cmp.Ordered](key Transform[T, K]) Comparator[T] {
	asc := Ascending(key)
	return func(a, b T) (int, error) {
		c, err := asc(a, b)
		return -c, err
	}
}

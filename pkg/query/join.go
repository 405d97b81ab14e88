package query

// Index is a pre-built mapping from a key to the record carrying it.
type Index[K comparable, T any] map[K]T

// IndexBy builds an index over the records. When several records share a key the first one wins.
func IndexBy[T any, K comparable](in []T, key KeyFunc[T, K]) (Index[K, T], error) {
	ret := make(Index[K, T], len(in))
	for _, t := range in {
		k, err := key(t)
		if err != nil {
			return nil, err
		}
		if _, ok := ret[k]; !ok {
			ret[k] = t
		}
	}
	return ret, nil
}

// Lookup returns the record for key or a NoMatchError.
func (idx Index[K, T]) Lookup(key K) (T, error) {
	t, ok := idx[key]
	if !ok {
		var zero T
		return zero, &NoMatchError{Key: key}
	}
	return t, nil
}

// MultiIndex maps a key to all records carrying it, in input order.
type MultiIndex[K comparable, T any] map[K][]T

// MultiIndexBy builds a one-to-many index over the records.
func MultiIndexBy[T any, K comparable](in []T, key KeyFunc[T, K]) (MultiIndex[K, T], error) {
	ret := make(MultiIndex[K, T])
	for _, t := range in {
		k, err := key(t)
		if err != nil {
			return nil, err
		}
		ret[k] = append(ret[k], t)
	}
	return ret, nil
}

// Join pairs every left record with the right record carrying the same key and combines the
// two. A left record without a match aborts the query with a NoMatchError. If several right
// records share a key the first one is used.
func Join[L, R any, K comparable, O any](left []L, right []R, leftKey KeyFunc[L, K], rightKey KeyFunc[R, K],
	combine func(L, R) (O, error)) ([]O, error) {
	idx, err := IndexBy(right, rightKey)
	if err != nil {
		return nil, err
	}

	return Project(left, func(l L) (O, error) {
		var zero O
		k, err := leftKey(l)
		if err != nil {
			return zero, err
		}
		r, err := idx.Lookup(k)
		if err != nil {
			return zero, err
		}
		return combine(l, r)
	})
}

// JoinMany pairs every left record with the (possibly empty) list of right records carrying the
// same key, in the order of the right collection.
func JoinMany[L, R any, K comparable, O any](left []L, right []R, leftKey KeyFunc[L, K], rightKey KeyFunc[R, K],
	combine func(L, []R) (O, error)) ([]O, error) {
	idx, err := MultiIndexBy(right, rightKey)
	if err != nil {
		return nil, err
	}

	return Project(left, func(l L) (O, error) {
		var zero O
		k, err := leftKey(l)
		if err != nil {
			return zero, err
		}
		matches := idx[k]
		if matches == nil {
			matches = []R{}
		}
		return combine(l, matches)
	})
}

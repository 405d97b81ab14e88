package query

// Select returns the records satisfying pred, preserving their relative order.
func Select[T any](in []T, pred Predicate[T]) ([]T, error) {
	ret := make([]T, 0, len(in))
	for _, t := range in {
		ok, err := pred(t)
		if err != nil {
			return nil, err
		}
		if ok {
			ret = append(ret, t)
		}
	}
	return ret, nil
}

// Project maps every record through fn. The result has the same length and order as the input.
func Project[T, U any](in []T, fn Transform[T, U]) ([]U, error) {
	ret := make([]U, len(in))
	for i, t := range in {
		u, err := fn(t)
		if err != nil {
			return nil, err
		}
		ret[i] = u
	}
	return ret, nil
}

// FlatMap maps every record to a list and concatenates the lists in order.
func FlatMap[T, U any](in []T, fn Transform[T, []U]) ([]U, error) {
	ret := []U{}
	for _, t := range in {
		us, err := fn(t)
		if err != nil {
			return nil, err
		}
		ret = append(ret, us...)
	}
	return ret, nil
}

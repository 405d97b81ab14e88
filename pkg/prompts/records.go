package prompts

import (
	"maps"
	"slices"

	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/query"
)

// index builds the name -> record lookup of a keyed dataset.
func index(ds document.Document) (query.Index[string, document.Document], error) {
	idx := make(query.Index[string, document.Document], len(ds))
	for k, v := range ds {
		rec, err := document.AsMap(v)
		if err != nil {
			return nil, document.NewInputShapeError(k, err.Error())
		}
		idx[k] = rec
	}
	return idx, nil
}

// records returns the records of a keyed dataset in key order. If field is not empty the key is
// stored in each record under field.
func records(ds document.Document, field string) (document.Collection, error) {
	ret := make(document.Collection, 0, len(ds))
	for _, k := range slices.Sorted(maps.Keys(ds)) {
		rec, err := document.AsMap(ds[k])
		if err != nil {
			return nil, document.NewInputShapeError(k, err.Error())
		}
		if field != "" {
			rec = document.Set(rec, field, k)
		}
		ret = append(ret, rec)
	}
	return ret, nil
}

// set returns the membership set of a list.
func set[T comparable](list []T) map[T]bool {
	ret := make(map[T]bool, len(list))
	for _, v := range list {
		ret[v] = true
	}
	return ret
}

// clone returns a deep copy of a list of records, so that results never share state with the
// input datasets.
func clone(c document.Collection) document.Collection {
	ret := make(document.Collection, len(c))
	for i := range c {
		ret[i] = document.DeepCopyDocument(c[i])
	}
	return ret
}

// asAny converts a typed list to a generic list.
func asAny[T any](list []T) []any {
	ret := make([]any, len(list))
	for i := range list {
		ret[i] = list[i]
	}
	return ret
}

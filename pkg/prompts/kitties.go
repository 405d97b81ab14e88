package prompts

import (
	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/query"
)

// OrangeKittyNames returns the names of the orange kitties, e.g., ["Tiger", "Snickers"].
func OrangeKittyNames(kitties document.Collection) ([]string, error) {
	orange, err := query.Select(kitties, query.FieldEquals("color", "orange"))
	if err != nil {
		return nil, err
	}
	return query.Project(orange, query.Field[string]("name"))
}

// SortByAge returns the kitties sorted by age, oldest first.
func SortByAge(kitties document.Collection) (document.Collection, error) {
	sorted, err := query.Sort(kitties, query.Descending(query.Field[int64]("age")))
	if err != nil {
		return nil, err
	}
	return clone(sorted), nil
}

// GrowUp returns the kitties aged by the given number of years, oldest first.
func GrowUp(kitties document.Collection, years int64) (document.Collection, error) {
	grown, err := query.Project(kitties, func(k document.Document) (document.Document, error) {
		age, err := document.GetInt(k, "age")
		if err != nil {
			return nil, err
		}
		return document.Set(k, "age", age+years), nil
	})
	if err != nil {
		return nil, err
	}
	return query.Sort(grown, query.Descending(query.Field[int64]("age")))
}

package prompts

import (
	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/query"
)

// FEClassrooms returns the front-end classrooms.
func FEClassrooms(classrooms document.Collection) (document.Collection, error) {
	ret, err := query.Select(classrooms, query.FieldEquals("program", "FE"))
	if err != nil {
		return nil, err
	}
	return clone(ret), nil
}

// TotalCapacities returns the total capacity of the front-end and of the back-end classrooms as
// {"feCapacity": ..., "beCapacity": ...}. Every classroom not in the FE program counts as BE.
func TotalCapacities(classrooms document.Collection) (document.Document, error) {
	totals := document.Document{"feCapacity": int64(0), "beCapacity": int64(0)}
	return query.Reduce(classrooms, totals, func(acc, c document.Document) (document.Document, error) {
		program, err := document.GetString(c, "program")
		if err != nil {
			return nil, err
		}
		capacity, err := document.GetInt(c, "capacity")
		if err != nil {
			return nil, err
		}

		field := "beCapacity"
		if program == "FE" {
			field = "feCapacity"
		}
		total, err := document.GetInt(acc, field)
		if err != nil {
			return nil, err
		}
		return document.Set(acc, field, total+capacity), nil
	})
}

// SortByCapacity returns the classrooms sorted by capacity, smallest first.
func SortByCapacity(classrooms document.Collection) (document.Collection, error) {
	sorted, err := query.Sort(classrooms, query.Ascending(query.Field[int64]("capacity")))
	if err != nil {
		return nil, err
	}
	return clone(sorted), nil
}

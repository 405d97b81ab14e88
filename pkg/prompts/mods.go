package prompts

import (
	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/query"
)

// StudentsPerMod returns the number of students per instructor in each mod, e.g.,
// [{"mod": 1, "studentsPerInstructor": 9}, ...].
func StudentsPerMod(mods document.Collection) (document.Collection, error) {
	return query.Project(mods, func(m document.Document) (document.Document, error) {
		mod, err := document.GetInt(m, "mod")
		if err != nil {
			return nil, err
		}
		students, err := document.GetInt(m, "students")
		if err != nil {
			return nil, err
		}
		instructors, err := document.GetInt(m, "instructors")
		if err != nil {
			return nil, err
		}
		if instructors <= 0 {
			return nil, document.NewInputShapeError("instructors", "must be positive")
		}

		return document.Document{
			"mod":                   mod,
			"studentsPerInstructor": float64(students) / float64(instructors),
		}, nil
	})
}

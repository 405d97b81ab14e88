package prompts

import (
	"fmt"
	"slices"

	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/query"
)

// StudentsForEachInstructor returns every instructor with the number of students in the cohort
// of their module: [{"name": "Pam", "studentCount": 21}, ...]. An instructor whose module has no
// cohort is a NoMatchError; if several cohorts share a module the first one is used.
func StudentsForEachInstructor(instructors, cohorts document.Collection) (document.Collection, error) {
	module := query.Field[int64]("module")
	return query.Join(instructors, cohorts, module, module,
		func(i, c document.Document) (document.Document, error) {
			name, err := document.GetString(i, "name")
			if err != nil {
				return nil, err
			}
			count, err := document.GetInt(c, "studentCount")
			if err != nil {
				return nil, err
			}
			return document.Document{"name": name, "studentCount": count}, nil
		})
}

// StudentsPerInstructor returns the number of students per instructor in every cohort, keyed by
// "cohort<N>", e.g., {"cohort1806": 9, "cohort1804": 10.5}. A cohort whose module has no
// instructor is a NoMatchError.
func StudentsPerInstructor(instructors, cohorts document.Collection) (map[string]float64, error) {
	teachers, err := query.CountBy(instructors, query.Field[int64]("module"))
	if err != nil {
		return nil, err
	}

	ret := make(map[string]float64, len(cohorts))
	for _, c := range cohorts {
		cohort, err := document.GetInt(c, "cohort")
		if err != nil {
			return nil, err
		}
		module, err := document.GetInt(c, "module")
		if err != nil {
			return nil, err
		}
		students, err := document.GetInt(c, "studentCount")
		if err != nil {
			return nil, err
		}

		n, ok := teachers[module]
		if !ok {
			return nil, &query.NoMatchError{Key: module}
		}
		ret[fmt.Sprintf("cohort%d", cohort)] = float64(students) / float64(n)
	}

	return ret, nil
}

// ModulesPerTeacher maps every instructor to the modules they can teach, in ascending order: a
// module qualifies if its curriculum shares a topic with what the instructor teaches.
func ModulesPerTeacher(instructors, cohorts document.Collection) (map[string][]int64, error) {
	ret := make(map[string][]int64, len(instructors))
	for _, i := range instructors {
		name, err := document.GetString(i, "name")
		if err != nil {
			return nil, err
		}
		teaches, err := document.GetStringList(i, "teaches")
		if err != nil {
			return nil, err
		}
		skills := set(teaches)

		matching, err := query.Select(cohorts, func(c document.Document) (bool, error) {
			curriculum, err := document.GetStringList(c, "curriculum")
			if err != nil {
				return false, err
			}
			return slices.ContainsFunc(curriculum, func(t string) bool { return skills[t] }), nil
		})
		if err != nil {
			return nil, err
		}

		modules, err := query.Project(matching, query.Field[int64]("module"))
		if err != nil {
			return nil, err
		}
		sorted, err := query.Sort(query.Distinct(modules), query.Ascending(func(m int64) (int64, error) {
			return m, nil
		}))
		if err != nil {
			return nil, err
		}
		ret[name] = sorted
	}

	return ret, nil
}

// CurriculumPerTeacher maps every curriculum topic to the instructors who teach it, in
// instructor order. Topics nobody teaches map to an empty list.
func CurriculumPerTeacher(instructors, cohorts document.Collection) (map[string][]string, error) {
	topics, err := query.DistinctBy(cohorts, func(c document.Document) ([]string, error) {
		return document.GetStringList(c, "curriculum")
	})
	if err != nil {
		return nil, err
	}

	ret := make(map[string][]string, len(topics))
	for _, topic := range topics {
		teachers, err := query.Select(instructors, func(i document.Document) (bool, error) {
			teaches, err := document.GetStringList(i, "teaches")
			return slices.Contains(teaches, topic), err
		})
		if err != nil {
			return nil, err
		}

		names, err := query.Project(teachers, query.Field[string]("name"))
		if err != nil {
			return nil, err
		}
		ret[topic] = names
	}

	return ret, nil
}

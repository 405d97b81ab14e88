package prompts

import (
	"math"

	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/query"
)

// CountAwesomeDinosaurs maps every movie title to the number of awesome dinosaurs in the movie. A
// dinosaur missing from the dinosaur dataset is a NoMatchError.
func CountAwesomeDinosaurs(dinosaurs document.Document, movies document.Collection) (map[string]int64, error) {
	idx, err := index(dinosaurs)
	if err != nil {
		return nil, err
	}

	ret := make(map[string]int64, len(movies))
	for _, m := range movies {
		title, err := document.GetString(m, "title")
		if err != nil {
			return nil, err
		}
		dinos, err := document.GetStringList(m, "dinos")
		if err != nil {
			return nil, err
		}

		n, err := query.Count(dinos, func(name string) (bool, error) {
			d, err := idx.Lookup(name)
			if err != nil {
				return false, err
			}
			return document.GetBool(d, "isAwesome")
		})
		if err != nil {
			return nil, err
		}
		ret[title] = n
	}

	return ret, nil
}

// AverageAgePerMovie maps every director to their movies, and every movie to the average age of
// its cast in the release year, rounded down:
//
//	{"<director>": {"<movie title>": <average age>, ...}, ...}
//
// A movie without cast is an EmptyCollectionError, a cast member missing from the human dataset is
// a NoMatchError.
func AverageAgePerMovie(humans document.Document, movies document.Collection) (map[string]map[string]int64, error) {
	idx, err := index(humans)
	if err != nil {
		return nil, err
	}

	ret := map[string]map[string]int64{}
	for _, m := range movies {
		director, err := document.GetString(m, "director")
		if err != nil {
			return nil, err
		}
		title, err := document.GetString(m, "title")
		if err != nil {
			return nil, err
		}

		ages, err := castAges(idx, m)
		if err != nil {
			return nil, err
		}
		if len(ages) == 0 {
			return nil, &query.EmptyCollectionError{Op: "average"}
		}
		total, err := query.Sum(ages, func(a castAge) (int64, error) { return a.age, nil })
		if err != nil {
			return nil, err
		}

		if _, ok := ret[director]; !ok {
			ret[director] = map[string]int64{}
		}
		ret[director][title] = int64(math.Floor(float64(total) / float64(len(ages))))
	}

	return ret, nil
}

// UncastActors returns the humans who are not in the cast of any movie, sorted by nationality:
// [{"name": ..., "nationality": ..., "imdbStarMeterRating": ...}]. Humans of the same nationality
// are ordered by name.
func UncastActors(humans document.Document, movies document.Collection) (document.Collection, error) {
	cast, err := query.DistinctBy(movies, func(m document.Document) ([]string, error) {
		return document.GetStringList(m, "cast")
	})
	if err != nil {
		return nil, err
	}
	inCast := set(cast)

	hs, err := records(humans, "name")
	if err != nil {
		return nil, err
	}

	uncast, err := query.Select(hs, func(h document.Document) (bool, error) {
		name, err := document.GetString(h, "name")
		return !inCast[name], err
	})
	if err != nil {
		return nil, err
	}

	actors, err := query.Project(uncast, func(h document.Document) (document.Document, error) {
		return document.Pick(h, "name", "nationality", "imdbStarMeterRating")
	})
	if err != nil {
		return nil, err
	}

	return query.Sort(actors, query.Ascending(query.Field[string]("nationality")))
}

// ActorsAgesInMovies returns every human cast in at least one movie with their age in each of
// their movies, in movie order: [{"name": "Jeff Goldblum", "ages": [41, 45]}, ...]. Humans are
// listed in the order of their first appearance.
func ActorsAgesInMovies(humans document.Document, movies document.Collection) (document.Collection, error) {
	idx, err := index(humans)
	if err != nil {
		return nil, err
	}

	ages, err := query.FlatMap(movies, func(m document.Document) ([]castAge, error) {
		return castAges(idx, m)
	})
	if err != nil {
		return nil, err
	}

	name := func(a castAge) (string, error) { return a.name, nil }
	actors, err := query.Project(ages, name)
	if err != nil {
		return nil, err
	}
	byActor, err := query.GroupBy(ages, name, func(a castAge) (any, error) { return a.age, nil })
	if err != nil {
		return nil, err
	}

	return query.Project(query.Distinct(actors), func(actor string) (document.Document, error) {
		return document.Document{"name": actor, "ages": byActor[actor]}, nil
	})
}

// castAge is the age of a cast member in the release year of a movie.
type castAge struct {
	name string
	age  int64
}

// castAges joins the cast of a movie with the human dataset.
func castAges(humans query.Index[string, document.Document], movie document.Document) ([]castAge, error) {
	year, err := document.GetInt(movie, "yearReleased")
	if err != nil {
		return nil, err
	}
	cast, err := document.GetStringList(movie, "cast")
	if err != nil {
		return nil, err
	}

	return query.Project(cast, func(name string) (castAge, error) {
		h, err := humans.Lookup(name)
		if err != nil {
			return castAge{}, err
		}
		born, err := document.GetInt(h, "yearBorn")
		if err != nil {
			return castAge{}, err
		}
		return castAge{name: name, age: year - born}, nil
	})
}

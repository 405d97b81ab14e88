package prompts

import (
	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/query"
)

// StarsInConstellations returns the stars that are listed in any of the constellations, in the
// order of the star dataset.
func StarsInConstellations(constellations document.Document, stars document.Collection) (document.Collection, error) {
	cs, err := records(constellations, "")
	if err != nil {
		return nil, err
	}
	names, err := query.DistinctBy(cs, func(c document.Document) ([]string, error) {
		return document.GetStringList(c, "stars")
	})
	if err != nil {
		return nil, err
	}
	listed := set(names)

	ret, err := query.Select(stars, func(s document.Document) (bool, error) {
		name, err := document.GetString(s, "name")
		return listed[name], err
	})
	if err != nil {
		return nil, err
	}
	return clone(ret), nil
}

// StarsByColor groups the stars by their color.
func StarsByColor(stars document.Collection) (map[string]document.Collection, error) {
	return query.GroupBy(stars, query.Field[string]("color"),
		func(s document.Document) (document.Document, error) { return document.DeepCopyDocument(s), nil })
}

// ConstellationsStarsExistIn returns the constellation of every star, brightest star (lowest
// visual magnitude) first. Stars outside any constellation are skipped.
func ConstellationsStarsExistIn(stars document.Collection) ([]string, error) {
	sorted, err := query.Sort(stars, query.Ascending(func(s document.Document) (float64, error) {
		return document.GetFloat(s, "visualMagnitude")
	}))
	if err != nil {
		return nil, err
	}

	named, err := query.Select(sorted, func(s document.Document) (bool, error) {
		c, err := document.GetString(s, "constellation")
		return c != "", err
	})
	if err != nil {
		return nil, err
	}

	return query.Project(named, query.Field[string]("constellation"))
}

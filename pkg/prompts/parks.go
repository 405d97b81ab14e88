package prompts

import (
	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/query"
)

// GetParkVisitList splits the parks into visited ones and ones still to visit:
// {"parksVisited": [...], "parksToVisit": [...]}.
func GetParkVisitList(parks document.Collection) (document.Document, error) {
	groups, err := query.GroupBy(parks, query.Field[bool]("visited"), query.Field[string]("name"))
	if err != nil {
		return nil, err
	}

	visited, toVisit := groups[true], groups[false]
	if visited == nil {
		visited = []string{}
	}
	if toVisit == nil {
		toVisit = []string{}
	}

	return document.Document{"parksVisited": visited, "parksToVisit": toVisit}, nil
}

// GetParkInEachState returns a single-key {state: park} document for every park.
func GetParkInEachState(parks document.Collection) (document.Collection, error) {
	return query.Project(parks, func(p document.Document) (document.Document, error) {
		state, err := document.GetString(p, "location")
		if err != nil {
			return nil, err
		}
		name, err := document.GetString(p, "name")
		if err != nil {
			return nil, err
		}
		return document.New(state, name)
	})
}

// GetParkActivities returns every activity offered by any park, without duplicates.
func GetParkActivities(parks document.Collection) ([]string, error) {
	return query.DistinctBy(parks, func(p document.Document) ([]string, error) {
		return document.GetStringList(p, "activities")
	})
}

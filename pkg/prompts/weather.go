package prompts

import (
	"fmt"
	"strings"

	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/query"
)

// GetAverageTemps returns the mean of the high and the low temperature at every location.
func GetAverageTemps(weather document.Collection) ([]float64, error) {
	return query.Project(weather, func(w document.Document) (float64, error) {
		high, err := lookupFloat(w, "$.temperature.high")
		if err != nil {
			return 0, err
		}
		low, err := lookupFloat(w, "$.temperature.low")
		if err != nil {
			return 0, err
		}
		return (high + low) / 2, nil
	})
}

func lookupFloat(w document.Document, path string) (float64, error) {
	v, err := document.Lookup(w, path)
	if err != nil {
		return 0, err
	}
	f, err := document.AsFloat(v)
	if err != nil {
		return 0, document.NewInputShapeError(path, err.Error())
	}
	return f, nil
}

// FindSunnySpots returns a "<location> is <type>." line for every location whose weather type
// mentions sun, e.g., "Boulder, Colorado is mostly sunny.".
func FindSunnySpots(weather document.Collection) ([]string, error) {
	sunny, err := query.Select(weather, func(w document.Document) (bool, error) {
		t, err := document.GetString(w, "type")
		return strings.Contains(t, "sunny"), err
	})
	if err != nil {
		return nil, err
	}

	return query.Project(sunny, func(w document.Document) (string, error) {
		location, err := document.GetString(w, "location")
		if err != nil {
			return "", err
		}
		t, err := document.GetString(w, "type")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s is %s.", location, t), nil
	})
}

// FindHighestHumidity returns the location with the highest humidity. The first one wins a tie
// and an empty dataset is an EmptyCollectionError.
func FindHighestHumidity(weather document.Collection) (document.Document, error) {
	w, err := query.MaxBy(weather, query.Ascending(func(w document.Document) (float64, error) {
		return document.GetFloat(w, "humidity")
	}))
	if err != nil {
		return nil, err
	}
	return document.DeepCopyDocument(w), nil
}

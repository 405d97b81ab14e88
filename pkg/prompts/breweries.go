package prompts

import (
	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/query"
)

// GetBeerCount returns the total number of beers of all breweries.
func GetBeerCount(breweries document.Collection) (int64, error) {
	return query.Sum(breweries, beerCount)
}

// GetBreweryBeerCount returns the number of beers of every brewery:
// [{"name": ..., "beerCount": ...}].
func GetBreweryBeerCount(breweries document.Collection) (document.Collection, error) {
	return query.Project(breweries, func(b document.Document) (document.Document, error) {
		name, err := document.GetString(b, "name")
		if err != nil {
			return nil, err
		}
		n, err := beerCount(b)
		if err != nil {
			return nil, err
		}
		return document.Document{"name": name, "beerCount": n}, nil
	})
}

// FindHighestAbvBeer returns the beer with the highest ABV over all breweries.
func FindHighestAbvBeer(breweries document.Collection) (document.Document, error) {
	beers, err := query.FlatMap(breweries, func(b document.Document) ([]document.Document, error) {
		return document.GetCollection(b, "beers")
	})
	if err != nil {
		return nil, err
	}

	beer, err := query.MaxBy(beers, query.Ascending(func(b document.Document) (float64, error) {
		return document.GetFloat(b, "abv")
	}))
	if err != nil {
		return nil, err
	}
	return document.DeepCopyDocument(beer), nil
}

func beerCount(b document.Document) (int64, error) {
	beers, err := document.GetList(b, "beers")
	if err != nil {
		return 0, err
	}
	return int64(len(beers)), nil
}

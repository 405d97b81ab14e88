package prompts

import (
	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/query"
)

// StockPerCake returns the flavor and the stock of every cake, e.g.,
// [{"flavor": "dark chocolate", "inStock": 15}, ...].
func StockPerCake(cakes document.Collection) (document.Collection, error) {
	return query.Project(cakes, func(c document.Document) (document.Document, error) {
		flavor, err := document.GetString(c, "cakeFlavor")
		if err != nil {
			return nil, err
		}
		stock, err := document.GetInt(c, "inStock")
		if err != nil {
			return nil, err
		}
		return document.Document{"flavor": flavor, "inStock": stock}, nil
	})
}

// OnlyInStock returns the cakes that are in stock.
func OnlyInStock(cakes document.Collection) (document.Collection, error) {
	ret, err := query.Select(cakes, func(c document.Document) (bool, error) {
		stock, err := document.GetInt(c, "inStock")
		return stock > 0, err
	})
	if err != nil {
		return nil, err
	}
	return clone(ret), nil
}

// TotalInventory returns the number of cakes in stock.
func TotalInventory(cakes document.Collection) (int64, error) {
	return query.Sum(cakes, query.Field[int64]("inStock"))
}

// AllToppings returns every topping used, without duplicates, in the order of first use.
func AllToppings(cakes document.Collection) ([]string, error) {
	return query.DistinctBy(cakes, func(c document.Document) ([]string, error) {
		return document.GetStringList(c, "toppings")
	})
}

// GroceryList returns how many times each topping is needed, e.g., {"sugar": 2, ...}.
func GroceryList(cakes document.Collection) (map[string]int64, error) {
	toppings, err := query.FlatMap(cakes, func(c document.Document) ([]string, error) {
		return document.GetStringList(c, "toppings")
	})
	if err != nil {
		return nil, err
	}
	return query.CountBy(toppings, func(t string) (string, error) { return t, nil })
}

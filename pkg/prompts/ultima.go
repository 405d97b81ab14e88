package prompts

import (
	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/query"
)

// TotalDamage returns the total damage of all the weapons the characters carry. A weapon missing
// from the weapon dataset is a NoMatchError.
func TotalDamage(weapons document.Document, characters document.Collection) (int64, error) {
	idx, err := index(weapons)
	if err != nil {
		return 0, err
	}

	carried, err := query.FlatMap(characters, func(c document.Document) ([]string, error) {
		return document.GetStringList(c, "weapons")
	})
	if err != nil {
		return 0, err
	}

	return query.Sum(carried, func(name string) (int64, error) {
		w, err := idx.Lookup(name)
		if err != nil {
			return 0, err
		}
		return document.GetInt(w, "damage")
	})
}

// CharactersByTotal returns the total damage and range of the weapons of every character:
// [{"Avatar": {"damage": 11, "range": 12}}, ...].
func CharactersByTotal(weapons document.Document, characters document.Collection) (document.Collection, error) {
	idx, err := index(weapons)
	if err != nil {
		return nil, err
	}

	return query.Project(characters, func(c document.Document) (document.Document, error) {
		name, err := document.GetString(c, "name")
		if err != nil {
			return nil, err
		}
		carried, err := document.GetStringList(c, "weapons")
		if err != nil {
			return nil, err
		}

		stats, err := query.Project(carried, idx.Lookup)
		if err != nil {
			return nil, err
		}
		damage, err := query.Sum(stats, query.Field[int64]("damage"))
		if err != nil {
			return nil, err
		}
		reach, err := query.Sum(stats, query.Field[int64]("range"))
		if err != nil {
			return nil, err
		}

		return document.Document{name: document.Document{"damage": damage, "range": reach}}, nil
	})
}

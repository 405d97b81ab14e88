package prompts

import (
	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/query"
)

var (
	// ViolentGenres are left out by RemoveViolence.
	ViolentGenres = []string{"Horror", "True Crime"}
	// NewBooksFrom and NewBooksTo bound the publication years GetNewBooks selects, inclusive.
	NewBooksFrom, NewBooksTo int64 = 1990, 2009
)

// RemoveViolence returns the titles of the books that are not horror or true crime.
func RemoveViolence(books document.Collection) ([]string, error) {
	violent := set(ViolentGenres)
	peaceful, err := query.Select(books, func(b document.Document) (bool, error) {
		genre, err := document.GetString(b, "genre")
		return !violent[genre], err
	})
	if err != nil {
		return nil, err
	}
	return query.Project(peaceful, query.Field[string]("title"))
}

// GetNewBooks returns the books published between 1990 and 2009 as [{"title": ..., "year": ...}].
func GetNewBooks(books document.Collection) (document.Collection, error) {
	recent, err := query.Select(books, func(b document.Document) (bool, error) {
		year, err := document.GetInt(b, "published")
		return year >= NewBooksFrom && year <= NewBooksTo, err
	})
	if err != nil {
		return nil, err
	}

	return query.Project(recent, func(b document.Document) (document.Document, error) {
		return document.Pick(document.Set(b, "year", b["published"]), "title", "year")
	})
}

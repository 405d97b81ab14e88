package document

import (
	"strings"

	"github.com/ohler55/ojg/jp"
)

// Get returns the value of a top-level field.
func Get(doc Document, field string) (any, error) {
	if doc == nil {
		return nil, NewInputShapeError(field, "document is nil")
	}

	v, ok := doc[field]
	if !ok {
		return nil, NewInputShapeError(field, "field is missing")
	}

	return v, nil
}

// GetString returns a string field.
func GetString(doc Document, field string) (string, error) {
	v, err := Get(doc, field)
	if err != nil {
		return "", err
	}

	s, ok := v.(string)
	if !ok {
		return "", NewInputShapeError(field, "expected a string")
	}
	return s, nil
}

// GetInt returns an integer field.
func GetInt(doc Document, field string) (int64, error) {
	v, err := Get(doc, field)
	if err != nil {
		return 0, err
	}

	i, err := AsInt(v)
	if err != nil {
		return 0, NewInputShapeError(field, err.Error())
	}
	return i, nil
}

// GetFloat returns a numeric field as a float64.
func GetFloat(doc Document, field string) (float64, error) {
	v, err := Get(doc, field)
	if err != nil {
		return 0, err
	}

	f, err := AsFloat(v)
	if err != nil {
		return 0, NewInputShapeError(field, err.Error())
	}
	return f, nil
}

// GetBool returns a boolean field.
func GetBool(doc Document, field string) (bool, error) {
	v, err := Get(doc, field)
	if err != nil {
		return false, err
	}

	b, err := AsBool(v)
	if err != nil {
		return false, NewInputShapeError(field, err.Error())
	}
	return b, nil
}

// GetList returns a list field.
func GetList(doc Document, field string) ([]any, error) {
	v, err := Get(doc, field)
	if err != nil {
		return nil, err
	}

	l, err := AsList(v)
	if err != nil {
		return nil, NewInputShapeError(field, err.Error())
	}
	return l, nil
}

// GetStringList returns a list-of-strings field.
func GetStringList(doc Document, field string) ([]string, error) {
	v, err := Get(doc, field)
	if err != nil {
		return nil, err
	}

	l, err := AsStringList(v)
	if err != nil {
		return nil, NewInputShapeError(field, err.Error())
	}
	return l, nil
}

// GetDocument returns a nested document field.
func GetDocument(doc Document, field string) (Document, error) {
	v, err := Get(doc, field)
	if err != nil {
		return nil, err
	}

	m, err := AsMap(v)
	if err != nil {
		return nil, NewInputShapeError(field, err.Error())
	}
	return m, nil
}

// GetCollection returns a list-of-documents field.
func GetCollection(doc Document, field string) (Collection, error) {
	v, err := Get(doc, field)
	if err != nil {
		return nil, err
	}

	c, err := AsCollection(v)
	if err != nil {
		return nil, NewInputShapeError(field, err.Error())
	}
	return c, nil
}

// Lookup evaluates a JSONPath expression (e.g., "$.temperature.high") on a value and returns the
// first match. Paths not starting with "$" are taken as a top-level field name. A path that
// matches nothing is an InputShapeError.
func Lookup(doc any, path string) (any, error) {
	if !strings.HasPrefix(path, "$") {
		m, err := AsMap(doc)
		if err != nil {
			return nil, NewInputShapeError(path, err.Error())
		}
		return Get(m, path)
	}

	v, ok, err := LookupJSONPath(doc, path)
	if err != nil {
		return nil, NewInputShapeError(path, err.Error())
	}
	if !ok {
		return nil, NewInputShapeError(path, "path matches nothing")
	}
	return v, nil
}

// LookupJSONPath is the lenient variant of Lookup: the boolean result is false if the path
// matches nothing.
func LookupJSONPath(doc any, path string) (any, bool, error) {
	// "$." is the root ref, ojg/jp wants a plain "$"
	if path == "$." {
		path = "$"
	}

	je, err := jp.ParseString(path)
	if err != nil {
		return nil, false, err
	}

	values := je.Get(doc)
	if len(values) == 0 {
		return nil, false, nil
	}

	return values[0], true, nil
}

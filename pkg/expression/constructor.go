package expression

import "fmt"

// NewLiteralExpression creates a new literal expression with the given argument.
func NewLiteralExpression(value any) (*Expression, error) {
	op := ""
	switch value.(type) {
	case bool:
		op = "@bool"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		op = "@int"
	case string:
		op = "@string"
	case float32, float64:
		op = "@float"
	default:
		return nil, fmt.Errorf("cannot create a literal expression from an "+
			"argument %#v", value)
	}

	return &Expression{Op: op, Literal: value}, nil
}

// NewJSONPathGetExpression creates an expression that, when evaluated on an object, will return
// the value at the given path. "$." returns the object itself.
func NewJSONPathGetExpression(path string) *Expression {
	return &Expression{Op: "@string", Literal: path}
}

// MustParse parses an expression from JSON and panics on error. Useful for static queries.
func MustParse(s string) Expression {
	var exp Expression
	if err := exp.UnmarshalJSON([]byte(s)); err != nil {
		panic(err)
	}
	return exp
}

// Package query implements the relational primitives of the evaluator: selection, projection,
// aggregation, join and stable sort over ordered collections.
//
// Every primitive is a pure function of its arguments. Inputs are never reordered or modified in
// place; results are freshly allocated, so queries can run concurrently on shared collections
// without coordination. Callbacks return errors so that a malformed record (see
// document.InputShapeError) aborts the query instead of being silently defaulted.
//
// Example usage:
//
//	orange, err := query.Select(kitties, func(k document.Document) (bool, error) {
//		c, err := document.GetString(k, "color")
//		return c == "orange", err
//	})
//	names, err := query.Project(orange, query.Field[string]("name"))
package query

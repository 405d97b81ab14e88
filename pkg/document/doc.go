// Package document provides the record model of the query evaluator: unstructured documents
// (map[string]any) with value semantics, typed field accessors that refuse to silently default a
// missing or ill-shaped field, and JSONPath lookups into nested documents.
//
// Documents are treated as immutable: helpers that "modify" a document return a fresh deep copy
// and leave the argument untouched, so a document can be shared between queries freely.
package document

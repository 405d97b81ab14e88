package document

import (
	"errors"
	"fmt"
	"reflect"

	"k8s.io/apimachinery/pkg/api/equality"
	"k8s.io/apimachinery/pkg/util/json"
)

// Document represents an unstructured record as map[string]any. Values can be embedded maps,
// slices and primitives (int64, float64, string, bool).
type Document = map[string]any

// Collection is an ordered sequence of documents sharing a common shape.
type Collection = []Document

// New builds a document from alternating key-value pairs.
func New(pairs ...any) (Document, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("document: odd number of key-value arguments")
	}

	doc := make(Document, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("document: key at position %d is not a string: %#v", i, pairs[i])
		}
		doc[key] = pairs[i+1]
	}

	return doc, nil
}

// Key returns a deterministic JSON representation of a value. Two values with the same key are
// equal as documents; map keys are serialized in sorted order.
func Key(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal value to JSON: %w", err)
	}
	return string(b), nil
}

// Equal reports whether two values are equal by value, recursing into documents and lists.
// Numbers compare numerically whatever their Go type, so int64(2) equals 2.0.
func Equal(a, b any) bool {
	if ia, fa, ka, err := AsIntOrFloat(a); err == nil {
		ib, fb, kb, err := AsIntOrFloat(b)
		if err != nil {
			return false
		}
		if ka == reflect.Int64 && kb == reflect.Int64 {
			return ia == ib
		}
		if ka == reflect.Int64 {
			fa = float64(ia)
		}
		if kb == reflect.Int64 {
			fb = float64(ib)
		}
		return fa == fb
	}

	switch va := a.(type) {
	case map[string]any:
		vb, ok := b.(map[string]any)
		if !ok || len(va) != len(vb) {
			return false
		}
		for k, v := range va {
			w, ok := vb[k]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true

	case []any:
		vb, ok := b.([]any)
		if !ok || len(va) != len(vb) {
			return false
		}
		for i := range va {
			if !Equal(va[i], vb[i]) {
				return false
			}
		}
		return true
	}

	return equality.Semantic.DeepEqual(a, b)
}

// DeepCopy copies a value recursively. Primitives and unknown types are returned as is.
func DeepCopy(val any) any {
	switch v := val.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for k, subVal := range v {
			result[k] = DeepCopy(subVal)
		}
		return result

	case []any:
		result := make([]any, len(v))
		for i, subVal := range v {
			result[i] = DeepCopy(subVal)
		}
		return result

	case []map[string]any:
		result := make([]map[string]any, len(v))
		for i, subVal := range v {
			result[i] = DeepCopyDocument(subVal)
		}
		return result

	case []string:
		result := make([]string, len(v))
		copy(result, v)
		return result

	default:
		return v
	}
}

// DeepCopyDocument creates a deep copy of a document.
func DeepCopyDocument(doc Document) Document {
	if doc == nil {
		return nil
	}
	return DeepCopy(doc).(Document)
}

// Set returns a copy of doc with field set to value. The argument is not modified.
func Set(doc Document, field string, value any) Document {
	ret := DeepCopyDocument(doc)
	if ret == nil {
		ret = Document{}
	}
	ret[field] = value
	return ret
}

// Pick returns a new document holding only the given fields of doc. Every field must exist.
func Pick(doc Document, fields ...string) (Document, error) {
	ret := make(Document, len(fields))
	for _, f := range fields {
		v, err := Get(doc, f)
		if err != nil {
			return nil, err
		}
		ret[f] = DeepCopy(v)
	}
	return ret, nil
}

package expression

import (
	"bytes"
	"fmt"

	"k8s.io/apimachinery/pkg/util/json"

	"github.com/l7mp/dquery/pkg/document"
)

// UnmarshalJSON parses an expression. Scalars become literals, arrays become @list, objects with
// a single "@op" key become operators and any other object becomes a @dict literal.
func (e *Expression) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*e = Expression{Op: "@nil"}
		return nil
	}

	// try to unmarshal as a bool terminal expression
	bv := false
	if err := json.Unmarshal(b, &bv); err == nil {
		*e = Expression{Op: "@bool", Literal: bv}
		return nil
	}

	// try to unmarshal as an int terminal expression
	var iv int64
	if err := json.Unmarshal(b, &iv); err == nil {
		*e = Expression{Op: "@int", Literal: iv}
		return nil
	}

	// try to unmarshal as a float terminal expression
	fv := 0.0
	if err := json.Unmarshal(b, &fv); err == nil {
		*e = Expression{Op: "@float", Literal: fv}
		return nil
	}

	// try to unmarshal as a string terminal expression
	sv := ""
	if err := json.Unmarshal(b, &sv); err == nil {
		*e = Expression{Op: "@string", Literal: sv}
		return nil
	}

	// try to unmarshal as a literal list expression
	mv := []Expression{}
	if err := json.Unmarshal(b, &mv); err == nil {
		*e = Expression{Op: "@list", Literal: mv}
		return nil
	}

	// try to unmarshal as a map expression
	cv := map[string]Expression{}
	if err := json.Unmarshal(b, &cv); err == nil {
		// specialcase operators: an op has a single key that starts with @
		if len(cv) == 1 {
			for op, exp := range cv {
				if len(op) > 0 && op[0] == '@' {
					exp := exp
					*e = Expression{Op: op, Arg: &exp}
					return nil
				}
			}
		}

		// literal map: store as exp with op @dict and map as Literal
		*e = Expression{Op: "@dict", Literal: cv}
		return nil
	}

	return NewUnmarshalError("expression", string(b))
}

// MarshalJSON renders the expression in the same syntax UnmarshalJSON accepts.
func (e *Expression) MarshalJSON() ([]byte, error) {
	switch e.Op {
	case "@nil":
		return []byte("null"), nil

	case "@bool", "@int", "@float", "@string":
		if e.Arg != nil {
			// keep the op for a correct round-trip and possible side-effects (conversion)
			ret := map[string]*Expression{e.Op: e.Arg}
			return json.Marshal(ret)
		}
		if e.Op == "@int" {
			v, err := document.AsInt(e.Literal)
			if err != nil {
				return []byte(""), err
			}
			return json.Marshal(v)
		}
		return json.Marshal(e.Literal)

	case "@list":
		if e.Arg != nil {
			ret := map[string]*Expression{e.Op: e.Arg}
			return json.Marshal(ret)
		}
		es, ok := e.Literal.([]Expression)
		if !ok {
			return []byte(""), fmt.Errorf("invalid expression list: %#v", e)
		}
		return json.Marshal(es)

	case "@dict":
		if e.Arg != nil {
			ret := map[string]*Expression{e.Op: e.Arg}
			return json.Marshal(ret)
		}

		es, ok := e.Literal.(map[string]Expression)
		if !ok {
			return []byte(""), fmt.Errorf("invalid expression map: %#v", e)
		}
		// map values are not addressable, so the pointer-receiver marshaler would be skipped
		em := map[string]*Expression{}
		for k, v := range es {
			v := v
			em[k] = &v
		}
		return json.Marshal(em)

	default:
		if len(e.Op) == 0 || e.Op[0] != '@' {
			return []byte(""), fmt.Errorf("expected an op starting with @, got %#v", e)
		}

		ret := map[string]*Expression{e.Op: e.Arg}
		return json.Marshal(ret)
	}
}

// String returns the JSON form of the expression, or an empty string if it cannot be marshaled.
func (e *Expression) String() string {
	b, err := json.Marshal(e)
	if err != nil {
		return ""
	}
	return string(b)
}

// DeepCopyInto copies the receiver into out. Nested arguments, lists and maps are copied, scalar
// literals are shared.
func (e *Expression) DeepCopyInto(out *Expression) {
	if e == nil || out == nil {
		return
	}
	*out = Expression{Op: e.Op, Literal: e.Literal}

	if e.Arg != nil {
		out.Arg = &Expression{}
		e.Arg.DeepCopyInto(out.Arg)
	}

	switch l := e.Literal.(type) {
	case []Expression:
		es := make([]Expression, len(l))
		for i := range l {
			l[i].DeepCopyInto(&es[i])
		}
		out.Literal = es
	case map[string]Expression:
		em := make(map[string]Expression, len(l))
		for k, v := range l {
			var c Expression
			v.DeepCopyInto(&c)
			em[k] = c
		}
		out.Literal = em
	}
}

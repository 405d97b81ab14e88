package expression

import (
	"errors"
	"fmt"

	"github.com/ohler55/ojg/jp"

	"github.com/l7mp/dquery/pkg/document"
)

// GetJSONPath resolves a string argument: strings starting with "$." are looked up in the
// current object, strings starting with "$$." in the local subject (inside @filter, @map, etc.),
// everything else is returned verbatim. A path that matches nothing evaluates to nil.
func GetJSONPath(ctx EvalCtx, key string) (any, error) {
	if len(key) == 0 || key[0] != '$' {
		return key, nil
	}

	subject := ctx.Object
	if len(key) >= 2 && key[1] == '$' {
		if ctx.Subject == nil {
			return nil, fmt.Errorf("no local subject for JSONPath expression %q", key)
		}
		key = key[1:]
		subject = ctx.Subject
	}

	ret, _, err := document.LookupJSONPath(subject, key)
	if err != nil {
		return nil, err
	}

	return ret, nil
}

// SetJSONPath sets a key, possibly a JSONPath expression, to a value in the target map.
func SetJSONPath(key string, value any, target document.Document) error {
	if len(key) == 0 {
		return errors.New("empty key")
	}

	if key[0] != '$' {
		target[key] = value
		return nil
	}

	je, err := jp.ParseString(key)
	if err != nil {
		return err
	}

	return je.Set(target, value)
}

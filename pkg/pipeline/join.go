package pipeline

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/expression"
	"github.com/l7mp/dquery/pkg/query"
)

// join is a @join stage:
//
//	{"@join": {"collection": "cohorts", "on": ["$.module", "$.module"], "as": "cohort", "one": true}}
//
// "on" is either a single key expression evaluated on both sides or a pair of a left and a right
// key expression. Each left record gets the matching right record(s) stored under "as". A
// one-to-one join fails on a left record without a match.
type join struct {
	collection  string
	left, right expression.Expression
	as          string
	one         bool
}

func newJoin(arg *expression.Expression) (*join, error) {
	m, err := asDict(arg)
	if err != nil {
		return nil, err
	}

	j := &join{}

	c, ok := m["collection"]
	if !ok {
		return nil, errors.New(`"collection" is missing`)
	}
	if j.collection, ok = c.Literal.(string); !ok || c.Op != "@string" {
		return nil, errors.New(`"collection" must be a string`)
	}

	as, ok := m["as"]
	if !ok {
		return nil, errors.New(`"as" is missing`)
	}
	if j.as, ok = as.Literal.(string); !ok || as.Op != "@string" || j.as == "" {
		return nil, errors.New(`"as" must be a non-empty string`)
	}

	on, ok := m["on"]
	if !ok {
		return nil, errors.New(`"on" is missing`)
	}
	keys, err := expression.AsExpOrExpList(&on)
	if err != nil {
		return nil, err
	}
	switch len(keys) {
	case 1:
		j.left, j.right = keys[0], keys[0]
	case 2:
		j.left, j.right = keys[0], keys[1]
	default:
		return nil, fmt.Errorf(`"on" must be a key expression or a pair of key expressions, got %d`,
			len(keys))
	}

	if one, ok := m["one"]; ok {
		if j.one, ok = one.Literal.(bool); !ok || one.Op != "@bool" {
			return nil, errors.New(`"one" must be a boolean`)
		}
	}

	return j, nil
}

// collections returns the collection the join reads from.
func (j *join) collections() []string {
	return []string{j.collection}
}

func (j *join) evaluate(in []any, env Env, log logr.Logger) ([]any, error) {
	right, ok := env[j.collection]
	if !ok {
		return nil, NewJoinError(fmt.Errorf("unknown collection %q", j.collection))
	}

	if j.one {
		return query.Join(in, right, j.keyFunc(&j.left, log), j.keyFunc(&j.right, log),
			func(l, r any) (any, error) { return j.combine(l, r) })
	}

	return query.JoinMany(in, right, j.keyFunc(&j.left, log), j.keyFunc(&j.right, log),
		func(l any, rs []any) (any, error) { return j.combine(l, rs) })
}

// keyFunc evaluates a key expression into a canonical string, so that structured keys compare by
// value.
func (j *join) keyFunc(e *expression.Expression, log logr.Logger) query.KeyFunc[any, string] {
	return func(v any) (string, error) {
		k, err := e.Evaluate(expression.EvalCtx{Object: v, Log: log})
		if err != nil {
			return "", err
		}
		return document.Key(k)
	}
}

func (j *join) combine(l, r any) (any, error) {
	doc, err := document.AsMap(l)
	if err != nil {
		return nil, NewInvalidObjectError(fmt.Sprintf("join: left record must be a map: %s", err))
	}
	return document.Set(doc, j.as, document.DeepCopy(r)), nil
}

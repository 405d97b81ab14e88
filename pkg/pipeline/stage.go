package pipeline

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/go-logr/logr"

	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/expression"
	"github.com/l7mp/dquery/pkg/query"
	"github.com/l7mp/dquery/pkg/util"
)

var (
	// LinearOps map a collection to a new collection.
	LinearOps = []string{"@select", "@project", "@unwind", "@sort", "@sortDesc", "@distinct", "@join"}
	// TerminalOps reduce a collection to a single value and must close the pipeline.
	TerminalOps = []string{"@sum", "@count", "@max", "@min", "@tally", "@group", "@first"}
)

// Stage is a single operation in a pipeline.
type Stage struct {
	*expression.Expression
	arg   *expression.Expression
	join  *join
	group *group
}

// NewStage creates a new stage from a single pipeline expression.
func NewStage(e *expression.Expression) (*Stage, error) {
	if e == nil {
		return nil, errors.New("empty stage")
	}

	if !slices.Contains(LinearOps, e.Op) && !slices.Contains(TerminalOps, e.Op) {
		return nil, fmt.Errorf("unknown pipeline op %q", e.Op)
	}

	// @count and @first may go without an argument
	if e.Op != "@count" && e.Op != "@first" && isNil(e.Arg) {
		return nil, fmt.Errorf("missing argument for pipeline op %q", e.Op)
	}

	s := &Stage{Expression: e, arg: e.Arg}

	switch e.Op {
	case "@count":
		if isNil(e.Arg) {
			// count every record
			t, err := expression.NewLiteralExpression(true)
			if err != nil {
				return nil, NewStageError(e.Op, err)
			}
			s.arg = t
		}
	case "@join":
		j, err := newJoin(e.Arg)
		if err != nil {
			return nil, NewJoinError(err)
		}
		s.join = j
	case "@group":
		g, err := newGroup(e.Arg)
		if err != nil {
			return nil, NewStageError(e.Op, err)
		}
		s.group = g
	}

	return s, nil
}

// Terminal returns true if the stage reduces the collection to a single value.
func (s *Stage) Terminal() bool {
	return slices.Contains(TerminalOps, s.Op)
}

// Evaluate runs the stage on a collection. Linear stages return a new []any, terminal stages
// return the reduced value. The input is never modified.
func (s *Stage) Evaluate(in []any, env Env, log logr.Logger) (any, error) {
	var res any
	var err error

	switch s.Op {
	case "@select":
		res, err = query.Select(in, func(v any) (bool, error) {
			r, err := s.eval(v, log)
			if err != nil {
				return false, err
			}
			b, err := document.AsBool(r)
			if err != nil {
				return false, fmt.Errorf("expected conditional expression to evaluate to "+
					"boolean: %w", err)
			}
			return b, nil
		})

	case "@project":
		res, err = query.Project(in, func(v any) (any, error) { return s.eval(v, log) })

	case "@unwind":
		res, err = query.FlatMap(in, func(v any) ([]any, error) {
			r, err := s.eval(v, log)
			if err != nil {
				return nil, err
			}
			return document.AsList(r)
		})

	case "@sort":
		res, err = query.Sort(in, s.compare(log))

	case "@sortDesc":
		asc := s.compare(log)
		res, err = query.Sort(in, func(a, b any) (int, error) {
			c, err := asc(a, b)
			return -c, err
		})

	case "@distinct":
		res, err = query.DistinctBy(in, func(v any) ([]any, error) {
			r, err := s.eval(v, log)
			if err != nil {
				return nil, err
			}
			return []any{r}, nil
		})

	case "@join":
		res, err = s.join.evaluate(in, env, log)

	case "@sum":
		res, err = s.sum(in, log)

	case "@count":
		res, err = query.Count(in, func(v any) (bool, error) {
			r, err := s.eval(v, log)
			if err != nil {
				return false, err
			}
			return document.AsBool(r)
		})

	case "@max":
		res, err = query.MaxBy(in, s.compare(log))

	case "@min":
		res, err = query.MinBy(in, s.compare(log))

	case "@tally":
		var counts map[string]int64
		counts, err = query.CountBy(in, func(v any) (string, error) { return s.key(v, log) })
		if err == nil {
			doc := document.Document{}
			for k, n := range counts {
				doc[k] = n
			}
			res = doc
		}

	case "@group":
		res, err = s.group.evaluate(in, log)

	case "@first":
		if len(in) == 0 {
			err = &query.EmptyCollectionError{Op: "first"}
		} else {
			res = in[0]
		}

	default:
		err = fmt.Errorf("unknown pipeline op %q", s.Op)
	}

	if err != nil {
		return nil, NewStageError(s.Op, err)
	}

	log.V(4).Info("stage ready", "stage", s.String(), "result", util.Stringify(res))

	return res, nil
}

func (s *Stage) eval(v any, log logr.Logger) (any, error) {
	return s.arg.Evaluate(expression.EvalCtx{Object: v, Log: log})
}

// key evaluates the stage argument into a string key.
func (s *Stage) key(v any, log logr.Logger) (string, error) {
	r, err := s.eval(v, log)
	if err != nil {
		return "", err
	}
	return document.AsString(r)
}

// compare orders records by the value the stage argument evaluates to.
func (s *Stage) compare(log logr.Logger) query.Comparator[any] {
	return func(a, b any) (int, error) {
		ka, err := s.eval(a, log)
		if err != nil {
			return 0, err
		}
		kb, err := s.eval(b, log)
		if err != nil {
			return 0, err
		}
		return expression.Compare(ka, kb)
	}
}

// sum adds up the stage argument over the collection: the result is an int64 if all values are
// integers and a float64 otherwise.
func (s *Stage) sum(in []any, log logr.Logger) (any, error) {
	vs, err := query.Project(in, func(v any) (any, error) { return s.eval(v, log) })
	if err != nil {
		return nil, err
	}

	is, fs, kind, err := document.AsIntOrFloatList(vs)
	if err != nil {
		return nil, err
	}

	if kind == reflect.Int64 {
		return query.Sum(is, func(i int64) (int64, error) { return i, nil })
	}
	return query.Sum(fs, func(f float64) (float64, error) { return f, nil })
}

func isNil(e *expression.Expression) bool {
	return e == nil || e.Op == "@nil"
}

// group is a @group stage: {"key": <exp>, "value": <exp>}. The value defaults to the record.
type group struct {
	key, value *expression.Expression
}

func newGroup(arg *expression.Expression) (*group, error) {
	m, err := asDict(arg)
	if err != nil {
		return nil, err
	}

	k, ok := m["key"]
	if !ok {
		return nil, errors.New(`@group: "key" is missing`)
	}
	g := &group{key: &k, value: expression.NewJSONPathGetExpression("$.")}

	if v, ok := m["value"]; ok {
		g.value = &v
	}

	return g, nil
}

func (g *group) evaluate(in []any, log logr.Logger) (any, error) {
	groups, err := query.GroupBy(in,
		func(v any) (string, error) {
			r, err := g.key.Evaluate(expression.EvalCtx{Object: v, Log: log})
			if err != nil {
				return "", err
			}
			return document.AsString(r)
		},
		func(v any) (any, error) {
			return g.value.Evaluate(expression.EvalCtx{Object: v, Log: log})
		})
	if err != nil {
		return nil, err
	}

	ret := document.Document{}
	for k, vs := range groups {
		ret[k] = vs
	}
	return ret, nil
}

// asDict returns the expressions of a literal @dict argument.
func asDict(arg *expression.Expression) (map[string]expression.Expression, error) {
	if arg == nil || arg.Op != "@dict" || arg.Arg != nil {
		return nil, NewInvalidObjectError("expected a literal map argument")
	}

	m, ok := arg.Literal.(map[string]expression.Expression)
	if !ok {
		return nil, NewInvalidObjectError("expected a literal map argument")
	}

	return m, nil
}

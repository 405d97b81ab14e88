package pipeline

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/go-logr/logr"
	"sigs.k8s.io/yaml"

	"github.com/l7mp/dquery/internal/dag"
	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/util"
)

// View is a named pipeline over an input collection.
type View struct {
	// Input is the name of a base collection or of another view.
	Input string `json:"input"`
	// Pipeline is the query run on the input.
	Pipeline Pipeline `json:"pipeline"`
}

// Plan is a set of views that may consume the results of each other, either as their input or
// as the collection of a join.
type Plan struct {
	Views map[string]View `json:"views"`
}

// ParsePlan parses a plan from JSON or YAML.
func ParsePlan(data []byte) (*Plan, error) {
	p := &Plan{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Order returns the view names in evaluation order: every view comes after the views it reads.
// Views that reference an unknown collection, shadow a base collection or depend on each other
// in a cycle are errors.
func (p *Plan) Order(base Env) ([]string, error) {
	g := dag.New()
	names := slices.Sorted(maps.Keys(p.Views))

	for _, name := range names {
		if _, ok := base[name]; ok {
			return nil, NewPlanError(name, errors.New("view shadows a base collection"))
		}
		g.AddNode(name)
	}

	for _, name := range names {
		v := p.Views[name]
		deps := append([]string{v.Input}, v.Pipeline.Collections()...)
		for _, dep := range deps {
			if g.HasNode(dep) {
				g.AddEdge(dep, name)
				continue
			}
			if _, ok := base[dep]; !ok {
				return nil, NewPlanError(name, fmt.Errorf("unknown collection %q", dep))
			}
		}
	}

	order, err := g.TopologicalSort()
	if err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}

	return order, nil
}

// Evaluate runs every view in dependency order and returns the results by view name. A view
// whose result is a collection can be read by later views; a view that reads a view reduced
// to a single value is an error.
func (p *Plan) Evaluate(base Env, log logr.Logger) (map[string]any, error) {
	order, err := p.Order(base)
	if err != nil {
		return nil, err
	}

	env := maps.Clone(base)
	if env == nil {
		env = Env{}
	}

	ret := make(map[string]any, len(order))
	for _, name := range order {
		v := p.Views[name]

		for _, dep := range append([]string{v.Input}, v.Pipeline.Collections()...) {
			if _, ok := env[dep]; !ok {
				return nil, NewPlanError(name, NewInvalidObjectError(
					fmt.Sprintf("collection %q is not a list", dep)))
			}
		}

		res, err := v.Pipeline.Evaluate(env[v.Input], env, log)
		if err != nil {
			return nil, NewPlanError(name, err)
		}

		ret[name] = res
		if document.IsList(res) {
			list, err := document.AsList(res)
			if err != nil {
				return nil, NewPlanError(name, err)
			}
			env[name] = list
		}

		log.V(2).Info("view ready", "view", name, "result", util.Stringify(res))
	}

	return ret, nil
}

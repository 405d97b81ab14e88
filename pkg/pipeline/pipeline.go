package pipeline

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/util/json"
	"sigs.k8s.io/yaml"

	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/expression"
	"github.com/l7mp/dquery/pkg/util"
)

var _ fmt.Stringer = &Pipeline{}

// Env maps collection names to collections. Join stages and plan views read their inputs from
// here.
type Env map[string][]any

// Pipeline is a query that knows how to evaluate itself on an ordered collection.
type Pipeline struct {
	Stages []*Stage
}

// NewPipeline creates a pipeline from a list of stage expressions. Only the last stage may be a
// terminal reduction. The pipeline keeps its own copy of the expressions.
func NewPipeline(es ...expression.Expression) (*Pipeline, error) {
	p := &Pipeline{Stages: make([]*Stage, 0, len(es))}

	for i := range es {
		e := &expression.Expression{}
		es[i].DeepCopyInto(e)
		s, err := NewStage(e)
		if err != nil {
			return nil, NewPipelineError(err)
		}

		if s.Terminal() && i != len(es)-1 {
			return nil, NewPipelineError(fmt.Errorf("terminal stage %s must be the last stage",
				s.String()))
		}

		p.Stages = append(p.Stages, s)
	}

	return p, nil
}

// ParsePipeline parses a pipeline from JSON or YAML.
func ParsePipeline(data []byte) (*Pipeline, error) {
	p := &Pipeline{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UnmarshalJSON parses a JSON list of stage expressions.
func (p *Pipeline) UnmarshalJSON(b []byte) error {
	es := []expression.Expression{}
	if err := json.Unmarshal(b, &es); err != nil {
		return NewPipelineError(fmt.Errorf("pipeline must be a list of stages: %w", err))
	}

	np, err := NewPipeline(es...)
	if err != nil {
		return err
	}

	*p = *np
	return nil
}

// MarshalJSON renders the pipeline as a list of stage expressions.
func (p *Pipeline) MarshalJSON() ([]byte, error) {
	es := make([]*expression.Expression, 0, len(p.Stages))
	for _, s := range p.Stages {
		es = append(es, s.Expression)
	}
	return json.Marshal(es)
}

func (p *Pipeline) String() string {
	b, err := p.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(b)
}

// Collections returns the names of the collections the pipeline joins with.
func (p *Pipeline) Collections() []string {
	ret := []string{}
	for _, s := range p.Stages {
		if s.join != nil {
			ret = append(ret, s.join.collections()...)
		}
	}
	return ret
}

// Evaluate runs the pipeline on the input collection. The result is the collection produced by
// the last stage, or the value of the closing terminal reduction. Neither the input nor the
// environment is modified and the result shares no state with them.
func (p *Pipeline) Evaluate(input []any, env Env, log logr.Logger) (any, error) {
	if input == nil {
		input = []any{}
	}

	var res any = input
	for _, s := range p.Stages {
		in, ok := res.([]any)
		if !ok {
			return nil, NewPipelineError(errors.New("stage after terminal reduction"))
		}

		var err error
		res, err = s.Evaluate(in, env, log)
		if err != nil {
			return nil, NewPipelineError(err)
		}
	}

	ret := document.DeepCopy(res)

	log.V(4).Info("pipeline ready", "pipeline", p.String(), "result", util.Stringify(ret))

	return ret, nil
}

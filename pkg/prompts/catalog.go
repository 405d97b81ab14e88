package prompts

import (
	_ "embed"

	"github.com/go-logr/logr"

	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/pipeline"
)

//go:embed catalog.yaml
var catalog []byte

// Catalog returns the declarative renditions of the exercises as a plan. The views read the
// datasets by their lower camel case name: kitties, cakes, classrooms, books, weather,
// nationalParks, breweries, instructors, cohorts and stars.
func Catalog() (*pipeline.Plan, error) {
	return pipeline.ParsePlan(catalog)
}

// EvaluateCatalog evaluates the catalog on the given datasets.
func EvaluateCatalog(datasets map[string]document.Collection, log logr.Logger) (map[string]any, error) {
	p, err := Catalog()
	if err != nil {
		return nil, err
	}
	return p.Evaluate(NewEnv(datasets), log)
}

// NewEnv converts datasets into a pipeline environment.
func NewEnv(datasets map[string]document.Collection) pipeline.Env {
	env := make(pipeline.Env, len(datasets))
	for name, ds := range datasets {
		env[name] = asAny(ds)
	}
	return env
}

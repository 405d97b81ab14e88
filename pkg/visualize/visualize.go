// Package visualize renders the dependency graph of a query plan as a diagram.
package visualize

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/emicklei/dot"

	"github.com/l7mp/dquery/pkg/pipeline"
)

// Graph represents the visualization graph of a plan.
type Graph struct {
	Name        string
	Views       []ViewNode
	Bases       []string
	Connections []Connection
}

// ViewNode represents a single view in the graph.
type ViewNode struct {
	Name     string
	Stages   []string
	Terminal bool // closed by a reduction
}

// Connection represents an edge from a collection to the view that reads it.
type Connection struct {
	From string
	To   string
	Kind string // "input" or "join"
}

// BuildGraph constructs a visualization graph from a plan. Collections referenced by the views
// that are not views themselves are base collections.
func BuildGraph(name string, p *pipeline.Plan) *Graph {
	g := &Graph{
		Name:        name,
		Views:       make([]ViewNode, 0, len(p.Views)),
		Connections: make([]Connection, 0),
	}

	bases := map[string]bool{}
	for _, viewName := range slices.Sorted(maps.Keys(p.Views)) {
		v := p.Views[viewName]
		node := ViewNode{Name: viewName, Stages: extractPipelineStages(v.Pipeline)}
		if n := len(v.Pipeline.Stages); n > 0 {
			node.Terminal = v.Pipeline.Stages[n-1].Terminal()
		}
		g.Views = append(g.Views, node)

		g.Connections = append(g.Connections, Connection{From: v.Input, To: viewName, Kind: "input"})
		for _, c := range v.Pipeline.Collections() {
			g.Connections = append(g.Connections, Connection{From: c, To: viewName, Kind: "join"})
		}
	}

	for _, conn := range g.Connections {
		if _, ok := p.Views[conn.From]; !ok {
			bases[conn.From] = true
		}
	}
	g.Bases = slices.Sorted(maps.Keys(bases))

	return g
}

// extractPipelineStages extracts the op of every pipeline stage.
func extractPipelineStages(p pipeline.Pipeline) []string {
	stages := make([]string, 0, len(p.Stages))
	for _, s := range p.Stages {
		stages = append(stages, s.Op)
	}
	return stages
}

// IsSink checks if a view is a sink, i.e., no other view reads it.
func (g *Graph) IsSink(view ViewNode) bool {
	for _, conn := range g.Connections {
		if conn.From == view.Name {
			return false
		}
	}
	return true
}

// Label formats a view for display: "name: @stage1 -> @stage2".
func (v ViewNode) Label() string {
	if len(v.Stages) == 0 {
		return v.Name
	}
	return fmt.Sprintf("%s: %s", v.Name, strings.Join(v.Stages, " -> "))
}

// BuildDotGraph creates a Graphviz flavored dot.Graph from the visualization graph.
func BuildDotGraph(g *Graph) *dot.Graph {
	return buildGraph(g, false)
}

// BuildMermaidGraph creates a dot.Graph that can be rendered as a Mermaid flowchart: nodes carry
// Mermaid shapes instead of Graphviz shapes and styles.
func BuildMermaidGraph(g *Graph) *dot.Graph {
	return buildGraph(g, true)
}

func buildGraph(g *Graph, mermaid bool) *dot.Graph {
	graph := dot.NewGraph(dot.Directed)
	if !mermaid {
		graph.Attr("rankdir", "LR")
		graph.Attr("newrank", "true")
		graph.Attr("label", g.Name)
		graph.Attr("labelloc", "t")
		graph.Attr("fontsize", "16")
	}

	nodes := make(map[string]dot.Node)

	for _, base := range g.Bases {
		n := graph.Node(base).Attr("label", base)
		if mermaid {
			n.Attr("shape", dot.MermaidShapeCylinder)
		} else {
			n.Attr("shape", "ellipse").
				Attr("style", "filled").
				Attr("fillcolor", "lightgreen")
		}
		nodes[base] = n
	}

	for _, v := range g.Views {
		n := graph.Node(v.Name).Attr("label", v.Label())
		nodes[v.Name] = n
		if mermaid {
			n.Attr("shape", dot.MermaidShapeRound)
			continue
		}

		fill := "lightblue"
		switch {
		case v.Terminal:
			fill = "lightyellow"
		case g.IsSink(v):
			fill = "lightcyan"
		}
		n.Attr("shape", "box").
			Attr("style", "filled,rounded").
			Attr("fillcolor", fill).
			Attr("color", "darkblue").
			Attr("fontname", "helvetica")
	}

	for _, conn := range g.Connections {
		from, fromExists := nodes[conn.From]
		to, toExists := nodes[conn.To]
		if !fromExists || !toExists {
			continue
		}

		e := graph.Edge(from, to).Attr("label", conn.Kind)
		if mermaid {
			continue
		}
		e.Attr("fontname", "helvetica").Attr("fontsize", "10")
		if conn.Kind == "join" {
			e.Attr("style", "dashed").Attr("color", "blue")
		}
	}

	return graph
}

package visualize

import (
	"fmt"

	"github.com/emicklei/dot"
)

// MermaidGenerator generates Mermaid flowchart diagrams.
type MermaidGenerator struct{}

// Generate creates a left-to-right Mermaid flowchart wrapped in a markdown code block.
func (m *MermaidGenerator) Generate(g *Graph) string {
	mermaid := dot.MermaidFlowchart(BuildMermaidGraph(g), dot.MermaidLeftToRight)
	return fmt.Sprintf("```mermaid\n%s\n```\n", mermaid)
}

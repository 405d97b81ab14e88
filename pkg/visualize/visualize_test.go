package visualize

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/l7mp/dquery/pkg/pipeline"
	"github.com/l7mp/dquery/pkg/prompts"
)

func TestVisualize(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Visualize")
}

var _ = Describe("Graph", func() {
	var plan *pipeline.Plan

	BeforeEach(func() {
		var err error
		plan, err = pipeline.ParsePlan([]byte(`
views:
  orange:
    input: kitties
    pipeline:
      - "@select": {"@eq": ["$.color", "orange"]}
      - "@join": {"collection": "colors", "on": "$.color", "as": "c", "one": true}
  total:
    input: orange
    pipeline:
      - "@count": null
  everything:
    input: colors
    pipeline: []`))
		Expect(err).NotTo(HaveOccurred())
	})

	It("should build the graph of a plan", func() {
		g := BuildGraph("kitties", plan)
		Expect(g.Name).To(Equal("kitties"))
		Expect(g.Bases).To(Equal([]string{"colors", "kitties"}))

		Expect(g.Views).To(HaveLen(3))
		Expect(g.Views[0]).To(Equal(ViewNode{Name: "everything", Stages: []string{}}))
		Expect(g.Views[1].Stages).To(Equal([]string{"@select", "@join"}))
		Expect(g.Views[1].Terminal).To(BeFalse())
		Expect(g.Views[2].Terminal).To(BeTrue())

		Expect(g.Connections).To(ConsistOf(
			Connection{From: "colors", To: "everything", Kind: "input"},
			Connection{From: "kitties", To: "orange", Kind: "input"},
			Connection{From: "colors", To: "orange", Kind: "join"},
			Connection{From: "orange", To: "total", Kind: "input"},
		))

		Expect(g.IsSink(g.Views[1])).To(BeFalse())
		Expect(g.IsSink(g.Views[2])).To(BeTrue())
	})

	It("should label views with their stages", func() {
		g := BuildGraph("kitties", plan)
		Expect(g.Views[0].Label()).To(Equal("everything"))
		Expect(g.Views[1].Label()).To(Equal("orange: @select -> @join"))
	})

	It("should render DOT", func() {
		out := (&DotGenerator{}).Generate(BuildGraph("kitties", plan))
		Expect(out).To(ContainSubstring("digraph"))
		Expect(out).To(ContainSubstring("orange: @select -> @join"))
		Expect(out).To(ContainSubstring("dashed"))
	})

	It("should render Mermaid", func() {
		out := (&MermaidGenerator{}).Generate(BuildGraph("kitties", plan))
		Expect(out).To(HavePrefix("```mermaid\n"))
		Expect(out).To(ContainSubstring("flowchart LR;"))
		Expect(out).To(ContainSubstring(`[("kitties")]`))
		Expect(out).To(ContainSubstring(`("orange: @select -&gt; @join")`))
		Expect(out).To(ContainSubstring(`|"join"|`))
		Expect(out).To(HaveSuffix("```\n"))
	})

	It("should render Mermaid for a single view", func() {
		p, err := pipeline.ParsePlan([]byte("views:\n  a:\n    input: base\n"))
		Expect(err).NotTo(HaveOccurred())

		var out string
		Expect(func() { out = (&MermaidGenerator{}).Generate(BuildGraph("single", p)) }).NotTo(Panic())
		Expect(out).To(ContainSubstring(`[("base")]`))
		Expect(out).To(ContainSubstring(`("a")`))
		Expect(out).To(ContainSubstring(`|"input"|`))
	})

	It("should render the exercise catalog", func() {
		catalog, err := prompts.Catalog()
		Expect(err).NotTo(HaveOccurred())

		g := BuildGraph("catalog", catalog)
		Expect(g.Views).To(HaveLen(len(catalog.Views)))
		Expect(g.Bases).To(ContainElements("kitties", "cakes", "cohorts", "stars"))
		Expect(g.Bases).NotTo(ContainElement("toppings"))
		Expect(g.Connections).To(ContainElement(
			Connection{From: "cohorts", To: "studentsForEachInstructor", Kind: "join"}))

		Expect((&DotGenerator{}).Generate(g)).To(ContainSubstring("groceryList: @tally"))
	})
})

package pipeline

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/l7mp/dquery/pkg/document"
)

var _ = Describe("Plans", func() {
	var base Env

	BeforeEach(func() {
		base = Env{
			"kitties": []any{
				document.Document{"name": "Tiger", "age": int64(5), "color": "orange"},
				document.Document{"name": "Snickers", "age": int64(8), "color": "orange"},
				document.Document{"name": "Felicia", "age": int64(2), "color": "grey"},
			},
			"colors": []any{
				document.Document{"color": "orange", "hex": "#ffa500"},
				document.Document{"color": "grey", "hex": "#808080"},
			},
		}
	})

	It("should evaluate views in dependency order", func() {
		p, err := ParsePlan([]byte(`
views:
  total:
    input: names
    pipeline:
      - "@count": null
  names:
    input: orange
    pipeline:
      - "@project": "$.name"
  orange:
    input: kitties
    pipeline:
      - "@select": {"@eq": ["$.color", "orange"]}`))
		Expect(err).NotTo(HaveOccurred())

		order, err := p.Order(base)
		Expect(err).NotTo(HaveOccurred())
		Expect(order).To(Equal([]string{"orange", "names", "total"}))

		res, err := p.Evaluate(base, logger)
		Expect(err).NotTo(HaveOccurred())
		Expect(res).To(HaveLen(3))
		Expect(res["names"]).To(Equal([]any{"Tiger", "Snickers"}))
		Expect(res["total"]).To(Equal(int64(2)))
		Expect(base).NotTo(HaveKey("orange"))
	})

	It("should order views used as join collections", func() {
		p, err := ParsePlan([]byte(`{"views": {
			"hexes": {"input": "kitties", "pipeline": [
				{"@join": {"collection": "known", "on": "$.color", "as": "c", "one": true}},
				{"@project": {"name": "$.name", "hex": "$.c.hex"}}]},
			"known": {"input": "colors", "pipeline": [{"@select": {"@exists": "$.hex"}}]}}}`))
		Expect(err).NotTo(HaveOccurred())

		order, err := p.Order(base)
		Expect(err).NotTo(HaveOccurred())
		Expect(order).To(Equal([]string{"known", "hexes"}))

		res, err := p.Evaluate(base, logger)
		Expect(err).NotTo(HaveOccurred())
		Expect(res["hexes"]).To(Equal([]any{
			document.Document{"name": "Tiger", "hex": "#ffa500"},
			document.Document{"name": "Snickers", "hex": "#ffa500"},
			document.Document{"name": "Felicia", "hex": "#808080"},
		}))
	})

	It("should reject a cycle", func() {
		p, err := ParsePlan([]byte(`{"views": {
			"a": {"input": "b", "pipeline": []},
			"b": {"input": "a", "pipeline": []}}}`))
		Expect(err).NotTo(HaveOccurred())
		_, err = p.Evaluate(base, logger)
		Expect(err).To(HaveOccurred())
	})

	It("should reject an unknown input", func() {
		p, err := ParsePlan([]byte(`{"views": {"a": {"input": "puppies", "pipeline": []}}}`))
		Expect(err).NotTo(HaveOccurred())
		_, err = p.Evaluate(base, logger)
		Expect(err).To(HaveOccurred())
	})

	It("should reject a view shadowing a base collection", func() {
		p, err := ParsePlan([]byte(`{"views": {"kitties": {"input": "colors", "pipeline": []}}}`))
		Expect(err).NotTo(HaveOccurred())
		_, err = p.Evaluate(base, logger)
		Expect(err).To(HaveOccurred())
	})

	It("should reject a reduced view used as an input", func() {
		p, err := ParsePlan([]byte(`{"views": {
			"n": {"input": "kitties", "pipeline": [{"@count": null}]},
			"m": {"input": "n", "pipeline": []}}}`))
		Expect(err).NotTo(HaveOccurred())
		_, err = p.Evaluate(base, logger)
		Expect(err).To(HaveOccurred())
	})

	It("should pass the input through an empty pipeline", func() {
		p, err := ParsePlan([]byte(`{"views": {"all": {"input": "colors", "pipeline": []}}}`))
		Expect(err).NotTo(HaveOccurred())
		res, err := p.Evaluate(base, logger)
		Expect(err).NotTo(HaveOccurred())
		Expect(res["all"]).To(Equal(base["colors"]))
	})
})

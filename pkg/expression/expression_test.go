package expression

import (
	"errors"
	"reflect"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/apimachinery/pkg/util/json"
	"sigs.k8s.io/yaml"

	"github.com/l7mp/dquery/pkg/util"
)

var (
	loglevel = -10
	logger   = util.NewLogger(loglevel, GinkgoWriter)
)

func TestExpression(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Expression")
}

func parse(jsonData string) *Expression {
	var exp Expression
	err := json.Unmarshal([]byte(jsonData), &exp)
	Expect(err).NotTo(HaveOccurred())
	return &exp
}

var _ = Describe("Expressions", func() {
	var weather, cake Unstructured

	BeforeEach(func() {
		weather = Unstructured{
			"location":    "Boulder, Colorado",
			"type":        "sunny",
			"humidity":    int64(44),
			"temperature": Unstructured{"high": int64(100), "low": int64(88)},
		}
		cake = Unstructured{
			"cakeFlavor": "yellow",
			"inStock":    int64(14),
			"toppings":   []any{"sugar", "vanilla", "sugar", "dutch process cocoa"},
		}
	})

	Describe("Evaluating terminal expressions", func() {
		It("should deserialize and evaluate a bool literal expression", func() {
			exp := parse("true")
			Expect(exp).To(Equal(&Expression{Op: "@bool", Literal: true}))

			res, err := exp.Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(reflect.ValueOf(res).Kind()).To(Equal(reflect.Bool))
			Expect(res).To(BeTrue())
		})

		It("should deserialize and evaluate an integer literal expression", func() {
			exp := parse("10")
			Expect(exp).To(Equal(&Expression{Op: "@int", Literal: int64(10)}))

			res, err := exp.Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(int64(10)))
		})

		It("should deserialize and evaluate a float literal expression", func() {
			exp := parse("10.12")
			Expect(exp).To(Equal(&Expression{Op: "@float", Literal: 10.12}))

			res, err := exp.Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(10.12))
		})

		It("should deserialize and evaluate a string literal expression", func() {
			exp := parse(`"a10"`)
			Expect(exp).To(Equal(&Expression{Op: "@string", Literal: "a10"}))

			res, err := exp.Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal("a10"))
		})

		It("should deserialize and evaluate a null expression", func() {
			exp := parse("null")
			Expect(exp).To(Equal(&Expression{Op: "@nil"}))

			res, err := exp.Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeNil())
		})

		It("should truncate a float converted to an int", func() {
			exp := parse(`{"@int": 2.7}`)
			res, err := exp.Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(int64(2)))
		})
	})

	Describe("Evaluating JSONPath expressions", func() {
		It("should look up a nested field", func() {
			exp := parse(`"$.temperature.high"`)
			res, err := exp.Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(int64(100)))
		})

		It("should evaluate a missing field to nil", func() {
			exp := parse(`{"@exists": "$.pressure"}`)
			res, err := exp.Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeFalse())

			exp = parse(`{"@isnil": "$.pressure"}`)
			res, err = exp.Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeTrue())
		})

		It("should fail on a subject ref without a subject", func() {
			exp := parse(`"$$.name"`)
			_, err := exp.Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).To(HaveOccurred())
		})

		It("should return the whole object for the root ref", func() {
			exp := parse(`"$."`)
			res, err := exp.Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(weather))
		})
	})

	Describe("Evaluating compound expressions", func() {
		It("should evaluate a comparison", func() {
			exp := parse(`{"@eq": ["$.type", "sunny"]}`)
			Expect(exp).To(Equal(&Expression{
				Op: "@eq",
				Arg: &Expression{Op: "@list", Literal: []Expression{
					{Op: "@string", Literal: "$.type"},
					{Op: "@string", Literal: "sunny"},
				}},
			}))

			res, err := exp.Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeTrue())
		})

		It("should compare ints and floats numerically", func() {
			res, err := parse(`{"@eq": [2, 2.0]}`).Evaluate(EvalCtx{Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeTrue())

			res, err = parse(`{"@lt": ["$.humidity", 44.5]}`).Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeTrue())

			res, err = parse(`{"@gte": ["$.temperature.low", 88]}`).Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeTrue())

			res, err = parse(`{"@gt": ["$.temperature.low", 88]}`).Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeFalse())
		})

		It("should evaluate boolean connectives", func() {
			exp := parse(`{"@and": [{"@eq": ["$.type", "sunny"]}, {"@not": {"@lte": ["$.humidity", 40]}}]}`)
			res, err := exp.Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeTrue())

			exp = parse(`{"@or": [false, {"@eq": ["$.type", "cloudy"]}]}`)
			res, err = exp.Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeFalse())
		})

		It("should average two fields", func() {
			exp := parse(`{"@div": [{"@add": ["$.temperature.high", "$.temperature.low"]}, 2]}`)
			res, err := exp.Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(94.0))
		})

		It("should keep integer arithmetic in integers", func() {
			res, err := parse(`{"@sub": ["$.temperature.high", "$.temperature.low"]}`).
				Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(int64(12)))

			res, err = parse(`{"@mul": [3, 4]}`).Evaluate(EvalCtx{Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(int64(12)))
		})

		It("should err on division by zero", func() {
			_, err := parse(`{"@div": [3, 0]}`).Evaluate(EvalCtx{Log: logger})
			Expect(err).To(HaveOccurred())
		})

		It("should floor a float", func() {
			res, err := parse(`{"@floor": {"@div": [7, 2]}}`).Evaluate(EvalCtx{Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(3.0))
		})

		It("should concatenate strings", func() {
			exp := parse(`{"@concat": ["$.location", " is ", "$.type", "."]}`)
			res, err := exp.Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal("Boulder, Colorado is sunny."))
		})

		It("should err for an unknown op", func() {
			_, err := parse(`{"@whatever": 1}`).Evaluate(EvalCtx{Log: logger})
			Expect(err).To(HaveOccurred())
		})

		It("should err for a type mismatch", func() {
			_, err := parse(`{"@not": "$.humidity"}`).Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).To(HaveOccurred())

			var ee *EvalError
			Expect(errors.As(err, &ee)).To(BeTrue())
			Expect(ee.Op).To(Equal("@not"))
			Expect(ee.Expression).To(Equal(`{"@not":"$.humidity"}`))
		})

		It("should report malformed input", func() {
			var exp Expression
			err := exp.UnmarshalJSON([]byte(`{"@eq": [1`))
			Expect(errors.Is(err, ErrUnmarshal)).To(BeTrue())

			_, err = (&Expression{}).Evaluate(EvalCtx{Log: logger})
			Expect(errors.Is(err, ErrInvalidArguments)).To(BeTrue())
		})
	})

	Describe("Evaluating list expressions", func() {
		It("should sum and count a list", func() {
			res, err := parse(`{"@sum": [1, 2, 3]}`).Evaluate(EvalCtx{Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(int64(6)))

			res, err = parse(`{"@sum": [1, 2.5]}`).Evaluate(EvalCtx{Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(3.5))

			res, err = parse(`{"@len": "$.toppings"}`).Evaluate(EvalCtx{Object: cake, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(int64(4)))
		})

		It("should dedupe a list", func() {
			res, err := parse(`{"@distinct": "$.toppings"}`).Evaluate(EvalCtx{Object: cake, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal([]any{"sugar", "vanilla", "dutch process cocoa"}))
			Expect(cake["toppings"]).To(HaveLen(4))
		})

		It("should evaluate @in", func() {
			res, err := parse(`{"@in": ["vanilla", "$.toppings"]}`).Evaluate(EvalCtx{Object: cake, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeTrue())

			res, err = parse(`{"@in": ["berries", "$.toppings"]}`).Evaluate(EvalCtx{Object: cake, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeFalse())
		})

		It("should evaluate a @filter expression with a local subject", func() {
			exp := parse(`{"@filter": [{"@eq": ["$$.", "sugar"]}, "$.toppings"]}`)
			res, err := exp.Evaluate(EvalCtx{Object: cake, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal([]any{"sugar", "sugar"}))
		})

		It("should evaluate a @map expression", func() {
			exp := parse(`{"@map": [{"@mul": ["$$.", 2]}, [1, 2, 3]]}`)
			res, err := exp.Evaluate(EvalCtx{Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal([]any{int64(2), int64(4), int64(6)}))
		})

		It("should evaluate quantifiers", func() {
			ctx := EvalCtx{Object: cake, Log: logger}
			res, err := parse(`{"@any": [{"@eq": ["$$.", "vanilla"]}, "$.toppings"]}`).Evaluate(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeTrue())

			res, err = parse(`{"@all": [{"@eq": ["$$.", "sugar"]}, "$.toppings"]}`).Evaluate(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeFalse())

			res, err = parse(`{"@none": [{"@eq": ["$$.", "berries"]}, "$.toppings"]}`).Evaluate(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeTrue())

			res, err = parse(`{"@none": [{"@eq": ["$$.", "sugar"]}, "$.toppings"]}`).Evaluate(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeFalse())

			res, err = parse(`{"@any": [true, []]}`).Evaluate(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeFalse())
		})
	})

	Describe("Evaluating literal @dict expressions", func() {
		It("should build a new document", func() {
			exp := parse(`{"flavor": "$.cakeFlavor", "inStock": "$.inStock"}`)
			res, err := exp.Evaluate(EvalCtx{Object: cake, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(Unstructured{"flavor": "yellow", "inStock": int64(14)}))
		})

		It("should copy nested values instead of aliasing the object", func() {
			exp := parse(`{"temps": "$.temperature"}`)
			res, err := exp.Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			res.(Unstructured)["temps"].(Unstructured)["high"] = int64(0)
			Expect(weather["temperature"].(Unstructured)["high"]).To(Equal(int64(100)))
		})

		It("should set JSONPath keys", func() {
			exp := parse(`{"$.metrics.humidity": "$.humidity"}`)
			res, err := exp.Evaluate(EvalCtx{Object: weather, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(Unstructured{"metrics": Unstructured{"humidity": int64(44)}}))
		})
	})

	Describe("Marshaling", func() {
		It("should round-trip an expression", func() {
			jsonData := `{"@filter":[{"@eq":["$$.","sugar"]},"$.toppings"]}`
			exp := parse(jsonData)
			Expect(exp.String()).To(Equal(jsonData))

			var cp Expression
			exp.DeepCopyInto(&cp)
			Expect(&cp).To(Equal(exp))

			cp.Arg = nil
			Expect(exp.Arg).NotTo(BeNil())
		})

		It("should deep copy literals without changing their type", func() {
			exp := parse(`{"total": 2.0, "tags": ["a", "b"]}`)
			Expect(exp.Literal.(map[string]Expression)["total"].Op).To(Equal("@float"))

			var cp Expression
			exp.DeepCopyInto(&cp)
			Expect(&cp).To(Equal(exp))
			Expect(cp.Literal.(map[string]Expression)["total"].Op).To(Equal("@float"))

			cp.Literal.(map[string]Expression)["tags"].Literal.([]Expression)[0] = Expression{Op: "@string", Literal: "z"}
			res, err := exp.Evaluate(EvalCtx{Object: cake, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(Unstructured{"total": 2.0, "tags": []any{"a", "b"}}))
		})

		It("should parse YAML", func() {
			var exp Expression
			err := yaml.Unmarshal([]byte("\"@gt\": [\"$.inStock\", 0]\n"), &exp)
			Expect(err).NotTo(HaveOccurred())
			res, err := exp.Evaluate(EvalCtx{Object: cake, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeTrue())
		})

		It("should construct expressions programmatically", func() {
			lit, err := NewLiteralExpression(true)
			Expect(err).NotTo(HaveOccurred())
			res, err := lit.Evaluate(EvalCtx{Object: cake, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeTrue())

			res, err = NewJSONPathGetExpression("$.inStock").Evaluate(EvalCtx{Object: cake, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(int64(14)))

			res, err = NewJSONPathGetExpression("$.").Evaluate(EvalCtx{Object: cake, Log: logger})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(cake))

			_, err = NewLiteralExpression(struct{}{})
			Expect(err).To(HaveOccurred())
		})
	})
})

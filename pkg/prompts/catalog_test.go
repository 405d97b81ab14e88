package prompts

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/l7mp/dquery/internal/testutils"
	"github.com/l7mp/dquery/pkg/document"
)

var _ = Describe("Catalog", func() {
	var (
		datasets map[string]document.Collection
		res      map[string]any
	)

	BeforeEach(func() {
		datasets = map[string]document.Collection{
			"kitties":       testutils.Kitties(),
			"cakes":         testutils.Cakes(),
			"classrooms":    testutils.Classrooms(),
			"books":         testutils.Books(),
			"weather":       testutils.Weather(),
			"nationalParks": testutils.NationalParks(),
			"breweries":     testutils.Breweries(),
			"instructors":   testutils.Instructors(),
			"cohorts":       testutils.Cohorts(),
			"stars":         testutils.Stars(),
		}

		var err error
		res, err = EvaluateCatalog(datasets, logger)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should parse", func() {
		p, err := Catalog()
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Views).To(HaveKey("orangeKittyNames"))

		order, err := p.Order(NewEnv(datasets))
		Expect(err).NotTo(HaveOccurred())
		Expect(order).To(HaveLen(len(p.Views)))
		Expect(order).To(ContainElements("toppings", "allToppings"))
	})

	It("should fail on a missing dataset", func() {
		delete(datasets, "stars")
		_, err := EvaluateCatalog(datasets, logger)
		Expect(err).To(HaveOccurred())
	})

	It("should agree with the kitty queries", func() {
		Expect(res["orangeKittyNames"]).To(Equal([]any{"Tiger", "Snickers"}))

		sorted, err := SortByAge(datasets["kitties"])
		Expect(err).NotTo(HaveOccurred())
		Expect(res["kittiesByAge"]).To(Equal(asAny(sorted)))
	})

	It("should agree with the cake queries", func() {
		Expect(res["totalInventory"]).To(Equal(int64(33)))

		inStock, err := OnlyInStock(datasets["cakes"])
		Expect(err).NotTo(HaveOccurred())
		Expect(res["onlyInStock"]).To(Equal(asAny(inStock)))

		toppings, err := AllToppings(datasets["cakes"])
		Expect(err).NotTo(HaveOccurred())
		Expect(res["allToppings"]).To(Equal(asAny(toppings)))

		list, err := GroceryList(datasets["cakes"])
		Expect(err).NotTo(HaveOccurred())
		expected := document.Document{}
		for k, n := range list {
			expected[k] = n
		}
		Expect(res["groceryList"]).To(Equal(expected))
	})

	It("should agree with the classroom queries", func() {
		fe, err := FEClassrooms(datasets["classrooms"])
		Expect(err).NotTo(HaveOccurred())
		Expect(res["feClassrooms"]).To(Equal(asAny(fe)))

		sorted, err := SortByCapacity(datasets["classrooms"])
		Expect(err).NotTo(HaveOccurred())
		Expect(res["classroomsByCapacity"]).To(Equal(asAny(sorted)))
	})

	It("should agree with the book and weather queries", func() {
		books, err := GetNewBooks(datasets["books"])
		Expect(err).NotTo(HaveOccurred())
		Expect(res["newBooks"]).To(Equal(asAny(books)))

		temps, err := GetAverageTemps(datasets["weather"])
		Expect(err).NotTo(HaveOccurred())
		Expect(res["averageTemps"]).To(Equal(asAny(temps)))

		spots, err := FindSunnySpots(datasets["weather"])
		Expect(err).NotTo(HaveOccurred())
		Expect(res["sunnySpots"]).To(Equal(asAny(spots)))

		humid, err := FindHighestHumidity(datasets["weather"])
		Expect(err).NotTo(HaveOccurred())
		Expect(res["highestHumidity"]).To(Equal(humid))
	})

	It("should agree with the park and brewery queries", func() {
		activities, err := GetParkActivities(datasets["nationalParks"])
		Expect(err).NotTo(HaveOccurred())
		Expect(res["parkActivities"]).To(Equal(asAny(activities)))

		Expect(res["beerCount"]).To(Equal(int64(8)))

		beer, err := FindHighestAbvBeer(datasets["breweries"])
		Expect(err).NotTo(HaveOccurred())
		Expect(res["highestAbvBeer"]).To(Equal(beer))
		Expect(res).NotTo(HaveKey("breweries"))
	})

	It("should agree with the join and group queries", func() {
		counts, err := StudentsForEachInstructor(datasets["instructors"], datasets["cohorts"])
		Expect(err).NotTo(HaveOccurred())
		Expect(res["studentsForEachInstructor"]).To(Equal(asAny(counts)))

		byColor, err := StarsByColor(datasets["stars"])
		Expect(err).NotTo(HaveOccurred())
		groups, ok := res["starsByColor"].(document.Document)
		Expect(ok).To(BeTrue())
		Expect(groups).To(HaveLen(len(byColor)))
		for color, stars := range byColor {
			Expect(groups[color]).To(Equal(asAny(stars)), "color %s", color)
		}
	})
})

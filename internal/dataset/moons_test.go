package dataset_test

import (
	"math"
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/moons/internal/dataset"
)

func radius(s dataset.Sample, l dataset.Label) float64 {
	cx, cy := l.Centre()
	return math.Hypot(float64(s.X)-cx, float64(s.Y)-cy)
}

var _ = Describe("Generator", func() {
	DescribeTable("sizes and class split",
		func(n int, noise float64) {
			ds, err := dataset.NewSeededGenerator(7).Moons(n, noise)
			Expect(err).NotTo(HaveOccurred())
			Expect(ds.Samples).To(HaveLen(n))
			Expect(ds.Labels).To(HaveLen(n))
			Expect(ds.Count(dataset.Upper)).To(Equal(n / 2))
			Expect(ds.Count(dataset.Lower)).To(Equal(n - n/2))
			Expect(ds.Validate()).To(Succeed())
		},
		Entry("minimal", 2, 0.0),
		Entry("odd count", 7, 0.1),
		Entry("driver defaults", 200, 0.2),
		Entry("large noise", 1001, 1.5),
	)

	It("orders labels: all upper first, then all lower", func() {
		ds, err := dataset.NewSeededGenerator(1).Moons(11, 0.3)
		Expect(err).NotTo(HaveOccurred())
		for i, l := range ds.Labels {
			if i < 11/2 {
				Expect(l).To(Equal(dataset.Upper))
			} else {
				Expect(l).To(Equal(dataset.Lower))
			}
		}
	})

	It("produces one sample per class for n_samples=2", func() {
		ds, err := dataset.NewSeededGenerator(3).Moons(2, 0.0)
		Expect(err).NotTo(HaveOccurred())
		Expect(ds.Labels).To(Equal([]dataset.Label{dataset.Upper, dataset.Lower}))
		Expect(float64(ds.Samples[0].X)).To(BeNumerically("~", 1.0, 1e-6))
		Expect(float64(ds.Samples[0].Y)).To(BeNumerically("~", 0.0, 1e-6))
		Expect(float64(ds.Samples[1].X)).To(BeNumerically("~", 2.0, 1e-6))
		Expect(float64(ds.Samples[1].Y)).To(BeNumerically("~", 0.5, 1e-6))
	})

	Context("with zero noise", func() {
		It("places every sample on its class circle", func() {
			ds, err := dataset.NewSeededGenerator(11).Moons(200, 0.0)
			Expect(err).NotTo(HaveOccurred())
			for i, s := range ds.Samples {
				Expect(radius(s, ds.Labels[i])).To(BeNumerically("~", 1.0, 1e-6))
			}
		})

		It("ignores the random source", func() {
			a, err := dataset.NewSeededGenerator(1).Moons(50, 0.0)
			Expect(err).NotTo(HaveOccurred())
			b, err := dataset.NewSeededGenerator(2).Moons(50, 0.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(a).To(Equal(b))
		})
	})

	Context("with noise", func() {
		It("is reproducible for a fixed seed", func() {
			a, err := dataset.NewSeededGenerator(42).Moons(200, 0.2)
			Expect(err).NotTo(HaveOccurred())
			b, err := dataset.NewSeededGenerator(42).Moons(200, 0.2)
			Expect(err).NotTo(HaveOccurred())
			Expect(a).To(Equal(b))
		})

		It("differs between seeds", func() {
			a, err := dataset.NewSeededGenerator(42).Moons(200, 0.2)
			Expect(err).NotTo(HaveOccurred())
			b, err := dataset.NewSeededGenerator(43).Moons(200, 0.2)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Samples).NotTo(Equal(b.Samples))
			Expect(a.Labels).To(Equal(b.Labels))
		})

		It("perturbs points around their circle with the requested spread", func() {
			const n, sigma = 20000, 0.2
			ds, err := dataset.NewGenerator(rand.NewPCG(5, 9)).Moons(n, sigma)
			Expect(err).NotTo(HaveOccurred())

			angles, err := dataset.Angles(n)
			Expect(err).NotTo(HaveOccurred())

			var sum, sumSq float64
			for i, s := range ds.Samples {
				cx, cy := ds.Labels[i].Centre()
				sin, cos := math.Sincos(angles[i])
				dx := float64(s.X) - (cx + cos)
				dy := float64(s.Y) - (cy + sin)
				sum += dx + dy
				sumSq += dx*dx + dy*dy
			}
			mean := sum / (2 * n)
			std := math.Sqrt(sumSq/(2*n) - mean*mean)
			Expect(mean).To(BeNumerically("~", 0.0, 0.01))
			Expect(std).To(BeNumerically("~", sigma, 0.01))
		})
	})

	It("works with the entropy-seeded convenience function", func() {
		ds, err := dataset.GenerateMoons(200, 0.2)
		Expect(err).NotTo(HaveOccurred())
		Expect(ds.Len()).To(Equal(200))
	})

	DescribeTable("rejects invalid parameters",
		func(n int, noise float64, want error) {
			ds, err := dataset.NewSeededGenerator(1).Moons(n, noise)
			Expect(ds).To(BeNil())
			Expect(err).To(MatchError(want))

			var pe *dataset.ParamError
			Expect(err).To(BeAssignableToTypeOf(pe))
		},
		Entry("one sample", 1, 0.0, dataset.ErrTooFewSamples),
		Entry("no samples", 0, 0.0, dataset.ErrTooFewSamples),
		Entry("negative noise", 10, -0.1, dataset.ErrNegativeNoise),
		Entry("NaN noise", 10, math.NaN(), dataset.ErrNegativeNoise),
		Entry("infinite noise", 4, math.Inf(1), dataset.ErrNegativeNoise),
	)
})

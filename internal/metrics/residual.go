package metrics

import (
	"math"

	"github.com/san-kum/moons/internal/dataset"
)

// RadialResidual accumulates |dist(p, centre) - 1| over observed samples,
// where centre is the centre of the sample's class circle.
type RadialResidual struct {
	samples int
	total   float64
	max     float64
}

func NewRadialResidual() *RadialResidual {
	return &RadialResidual{}
}

func (r *RadialResidual) Observe(s dataset.Sample, l dataset.Label) {
	cx, cy := l.Centre()
	d := math.Abs(math.Hypot(float64(s.X)-cx, float64(s.Y)-cy) - 1)
	r.total += d
	r.max = math.Max(r.max, d)
	r.samples++
}

// Value returns the mean residual.
func (r *RadialResidual) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return r.total / float64(r.samples)
}

func (r *RadialResidual) Max() float64 { return r.max }

func (r *RadialResidual) Reset() {
	r.samples = 0
	r.total = 0
	r.max = 0
}

package metrics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/moons/internal/dataset"
)

// ClassSummary describes the samples of one class.
type ClassSummary struct {
	Label       dataset.Label
	Count       int
	MeanX       float64
	StdX        float64
	MeanY       float64
	StdY        float64
	Residual    float64
	MaxResidual float64
}

// Summarize returns one summary per class, upper moon first. Classes without
// samples are reported with a zero count.
func Summarize(ds *dataset.Dataset) []ClassSummary {
	labels := []dataset.Label{dataset.Upper, dataset.Lower}
	out := make([]ClassSummary, 0, len(labels))

	for _, l := range labels {
		xs := make([]float64, 0, len(ds.Samples))
		ys := make([]float64, 0, len(ds.Samples))
		res := NewRadialResidual()
		for i, s := range ds.Samples {
			if ds.Labels[i] != l {
				continue
			}
			xs = append(xs, float64(s.X))
			ys = append(ys, float64(s.Y))
			res.Observe(s, l)
		}

		cs := ClassSummary{Label: l, Count: len(xs)}
		if len(xs) > 0 {
			cs.MeanX, cs.StdX = meanStd(xs)
			cs.MeanY, cs.StdY = meanStd(ys)
			cs.Residual = res.Value()
			cs.MaxResidual = res.Max()
		}
		out = append(out, cs)
	}
	return out
}

func meanStd(v []float64) (mean, std float64) {
	if len(v) == 1 {
		return v[0], 0
	}
	return stat.MeanStdDev(v, nil)
}

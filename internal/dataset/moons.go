package dataset

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
	"k8s.io/klog/v2"
)

// Generator draws moon datasets from an owned random source.
type Generator struct {
	src rand.Source
}

// NewGenerator returns a generator drawing from src. A nil src is replaced
// with a PCG source seeded from the runtime entropy pool.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{src: src}
}

// NewSeededGenerator returns a generator whose output is reproducible for a given seed.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.NewPCG(seed, seed))
}

// GenerateMoons draws a dataset from a freshly entropy-seeded generator.
func GenerateMoons(nSamples int, noise float64) (*Dataset, error) {
	return NewGenerator(nil).Moons(nSamples, noise)
}

// Moons builds nSamples points on two interleaving half circles.
//
// The angle sweep over [0, 2π] is shared by both classes: the first
// nSamples/2 angles land on the unit circle (label 0), the rest on the unit
// circle centred at (1, 0.5) (label 1). Each coordinate then gets independent
// Gaussian noise with standard deviation noise.
func (g *Generator) Moons(nSamples int, noise float64) (*Dataset, error) {
	if nSamples < 2 {
		return nil, paramError("moons", "n_samples", nSamples, ErrTooFewSamples)
	}
	if !(noise >= 0) || math.IsInf(noise, 1) {
		return nil, paramError("moons", "noise", noise, ErrNegativeNoise)
	}

	angles, err := Angles(nSamples)
	if err != nil {
		return nil, err
	}

	normal := distuv.Normal{Mu: 0, Sigma: noise, Src: g.src}
	ds := &Dataset{
		Samples: make([]Sample, 0, nSamples),
		Labels:  make([]Label, 0, nSamples),
	}

	half := nSamples / 2
	for i, a := range angles {
		sin, cos := math.Sincos(a)
		label := Upper
		if i >= half {
			label = Lower
		}
		cx, cy := label.Centre()
		x := cx + cos + normal.Rand()
		y := cy + sin + normal.Rand()
		ds.Samples = append(ds.Samples, Sample{X: float32(x), Y: float32(y)})
		ds.Labels = append(ds.Labels, label)
	}

	klog.V(2).Infof("generated moons dataset: n_samples=%d noise=%g upper=%d lower=%d",
		nSamples, noise, half, nSamples-half)
	return ds, nil
}

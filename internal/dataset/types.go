package dataset

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Label is the class tag of a sample.
type Label int

const (
	// Upper is the moon centred on the origin.
	Upper Label = 0
	// Lower is the moon shifted by (+1, +0.5).
	Lower Label = 1
)

func (l Label) Valid() bool {
	return l == Upper || l == Lower
}

func (l Label) String() string {
	switch l {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return fmt.Sprintf("Label(%d)", int(l))
	}
}

// Centre returns the centre of the unit circle the moon is drawn from.
func (l Label) Centre() (x, y float64) {
	if l == Lower {
		return 1, 0.5
	}
	return 0, 0
}

// Sample is a single 2D point.
type Sample struct {
	X float32
	Y float32
}

func (s Sample) IsValid() bool {
	x, y := float64(s.X), float64(s.Y)
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}

// Dataset pairs samples with labels by index.
type Dataset struct {
	Samples []Sample
	Labels  []Label
}

func (d *Dataset) Len() int {
	return len(d.Samples)
}

// Count returns how many samples carry the given label.
func (d *Dataset) Count(l Label) int {
	n := 0
	for _, v := range d.Labels {
		if v == l {
			n++
		}
	}
	return n
}

// Validate checks the dataset invariants: equal lengths, labels in {0, 1}
// and finite coordinates.
func (d *Dataset) Validate() error {
	if len(d.Samples) != len(d.Labels) {
		return errors.Errorf("dataset: %d samples but %d labels", len(d.Samples), len(d.Labels))
	}
	for i, l := range d.Labels {
		if !l.Valid() {
			return errors.Errorf("dataset: invalid label %d at index %d", int(l), i)
		}
		if !d.Samples[i].IsValid() {
			return errors.Errorf("dataset: non-finite sample %v at index %d", d.Samples[i], i)
		}
	}
	return nil
}

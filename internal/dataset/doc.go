// Package dataset generates the two-class "interleaving moons" point set.
//
// The package is built from two pieces:
//
//   - [Linspace]: evenly spaced samples over a closed interval
//   - [Generator]: sweeps the unit circle with [Linspace], splits the sweep
//     into two halves and perturbs every coordinate with Gaussian noise
//
// # Example
//
//	gen := dataset.NewSeededGenerator(42)
//	ds, err := gen.Moons(200, 0.2)
//	if err != nil {
//		return err
//	}
//	for i, s := range ds.Samples {
//		fmt.Println(s.X, s.Y, ds.Labels[i])
//	}
//
// # Thread Safety
//
// A [Generator] owns its random source and is NOT safe for concurrent use.
// Create one generator per goroutine.
package dataset

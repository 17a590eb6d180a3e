// Package field defines the polymorphic Field capability shared by the
// internal, current-sheet, and composite evaluators, and a generic batch
// adapter that maps it over arrays of points.
package field

import (
	"math"
	"sync"

	"github.com/anupshinde/jovimag/coord"
	"github.com/anupshinde/jovimag/vec3"
)

// Field is implemented by anything that can evaluate a magnetic field
// sample at a spherical position. CalcFieldXYZ has a default
// implementation derivable from CalcField via CartesianOf; concrete types
// are not required to hand-roll it.
type Field interface {
	CalcField(r, theta, phi float64) (vec3.Vec, error)
}

// CartesianOf evaluates f at the Cartesian position (x,y,z) by converting
// to spherical, delegating to CalcField, and rotating the result back to
// Cartesian components at the same point.
func CartesianOf(f Field, x, y, z float64) (vec3.Vec, error) {
	r, theta, phi := coord.PosXYZToRTP(vec3.Vec{x, y, z})
	brtp, err := f.CalcField(r, theta, phi)
	if err != nil {
		return vec3.Vec{}, err
	}
	return coord.VecRTPToXYZ(brtp, theta, phi), nil
}

// Composite sums the internal and current-sheet contributions and exposes
// the same Field capability.
type Composite struct {
	Internal     Field
	CurrentSheet Field
}

// CalcField returns the componentwise sum of the internal and
// current-sheet contributions at (r, theta, phi).
func (c Composite) CalcField(r, theta, phi float64) (vec3.Vec, error) {
	bi, err := c.Internal.CalcField(r, theta, phi)
	if err != nil {
		return vec3.Vec{}, err
	}
	bc, err := c.CurrentSheet.CalcField(r, theta, phi)
	if err != nil {
		return vec3.Vec{}, err
	}
	return vec3.Add(bi, bc), nil
}

// CalcFieldXYZ returns the componentwise sum in Cartesian components at
// (x, y, z).
func (c Composite) CalcFieldXYZ(x, y, z float64) (vec3.Vec, error) {
	return CartesianOf(c, x, y, z)
}

// parallelThreshold is the advisory row count above which MapCalcField-style
// batches are worth dispatching across goroutines; below it the per-row
// overhead of spinning up workers outweighs any gain. Not part of the
// contract — callers may always choose either adapter directly.
const parallelThreshold = 1000

// MapCalcField evaluates f at every row of positions (each a spherical
// (r,theta,phi) triple) sequentially. A row whose evaluation errors yields
// a NaN vector in the output and its error recorded at the same index;
// other rows are unaffected.
func MapCalcField(f Field, positions []vec3.Vec) ([]vec3.Vec, []error) {
	out := make([]vec3.Vec, len(positions))
	errs := make([]error, len(positions))
	for i, p := range positions {
		b, err := f.CalcField(p[0], p[1], p[2])
		if err != nil {
			errs[i] = err
			out[i] = nanVec()
			continue
		}
		out[i] = b
	}
	return out, errs
}

// ParallelMapCalcField behaves like MapCalcField but dispatches rows across
// a worker pool of goroutines when len(positions) exceeds the advisory
// parallelThreshold. Output rows are written to disjoint slots, so no
// locking is required; there is no ordering dependency between rows.
func ParallelMapCalcField(f Field, positions []vec3.Vec) ([]vec3.Vec, []error) {
	if len(positions) <= parallelThreshold {
		return MapCalcField(f, positions)
	}

	out := make([]vec3.Vec, len(positions))
	errs := make([]error, len(positions))

	workers := workerCount(len(positions))
	rowsCh := make(chan int, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range rowsCh {
				p := positions[i]
				b, err := f.CalcField(p[0], p[1], p[2])
				if err != nil {
					errs[i] = err
					out[i] = nanVec()
					continue
				}
				out[i] = b
			}
		}()
	}
	for i := range positions {
		rowsCh <- i
	}
	close(rowsCh)
	wg.Wait()

	return out, errs
}

func workerCount(n int) int {
	const maxWorkers = 16
	if n < maxWorkers {
		return n
	}
	return maxWorkers
}

func nanVec() vec3.Vec {
	return vec3.Vec{math.NaN(), math.NaN(), math.NaN()}
}

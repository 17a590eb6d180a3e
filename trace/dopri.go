package trace

import (
	"math"

	"github.com/anupshinde/jovimag/vec3"
)

// Dormand-Prince 5(4) Butcher tableau.
var (
	dpC = [7]float64{0, 1.0 / 5, 3.0 / 10, 4.0 / 5, 8.0 / 9, 1, 1}

	dpA = [7][6]float64{
		{},
		{1.0 / 5},
		{3.0 / 40, 9.0 / 40},
		{44.0 / 45, -56.0 / 15, 32.0 / 9},
		{19372.0 / 6561, -25360.0 / 2187, 64448.0 / 6561, -212.0 / 729},
		{9017.0 / 3168, -355.0 / 33, 46732.0 / 5247, 49.0 / 176, -5103.0 / 18656},
		{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84},
	}

	// 5th-order solution weights.
	dpB5 = [7]float64{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84, 0}

	// 4th-order (embedded) solution weights, for error estimation.
	dpB4 = [7]float64{
		5179.0 / 57600, 0, 7571.0 / 16695, 393.0 / 640,
		-92097.0 / 339200, 187.0 / 2100, 1.0 / 40,
	}
)

// rhs is the right-hand side of dX/ds = rhs(X).
type rhs func(x vec3.Vec) (vec3.Vec, error)

// stopFunc reports whether integration should terminate at x.
type stopFunc func(x vec3.Vec) bool

// dopriConfig bundles the integrator's tuning constants, matching the
// contract from the design notes: initial step, max step, and per-component
// absolute/relative tolerances.
type dopriConfig struct {
	h0, hMax   float64
	absTol     float64
	relTol     float64
	maxSteps   int
}

var defaultConfig = dopriConfig{
	h0:       0.025,
	hMax:     0.25,
	absTol:   1e-4,
	relTol:   1e-4,
	maxSteps: 100000,
}

// integrate runs the adaptive Dormand-Prince stepper from x0 until f
// reports a non-finite derivative (returned as an error), stop(x) becomes
// true at an accepted step (included as the last returned point), or
// maxSteps accepted+rejected steps are exhausted. It returns the sequence
// of accepted points in integration order (x0 itself is not included).
func integrate(f rhs, stop stopFunc, x0 vec3.Vec, cfg dopriConfig) ([]vec3.Vec, error) {
	var out []vec3.Vec

	x := x0
	h := cfg.h0

	for step := 0; step < cfg.maxSteps; step++ {
		xNext, errEst, derivErr := dopriStep(f, x, h)
		if derivErr != nil {
			return out, derivErr
		}

		scale := errorScale(x, xNext, cfg.absTol, cfg.relTol)
		normErr := weightedNorm(errEst, scale)

		if normErr <= 1 || h <= minStep {
			// Accept.
			x = xNext
			out = append(out, x)

			if stop(x) {
				return out, nil
			}
		}

		h = nextStepSize(h, normErr, cfg.hMax)
	}

	return out, nil
}

const minStep = 1e-6

// dopriStep advances one embedded RK45 step of size h from x, returning the
// 5th-order solution, the per-component 4th/5th-order difference used for
// error estimation, and an error if the derivative evaluates to a
// non-finite vector anywhere in the stage sequence.
func dopriStep(f rhs, x vec3.Vec, h float64) (xNext, errEst vec3.Vec, err error) {
	var k [7]vec3.Vec

	for i := 0; i < 7; i++ {
		xi := x
		for j := 0; j < i; j++ {
			xi = vec3.Add(xi, vec3.Scale(h*dpA[i][j], k[j]))
		}
		ki, derr := f(xi)
		if derr != nil {
			return vec3.Vec{}, vec3.Vec{}, derr
		}
		if !finite(ki) {
			return vec3.Vec{}, vec3.Vec{}, errNonFiniteField
		}
		k[i] = ki
	}

	var sol5, sol4 vec3.Vec
	for i := 0; i < 7; i++ {
		sol5 = vec3.Add(sol5, vec3.Scale(dpB5[i], k[i]))
		sol4 = vec3.Add(sol4, vec3.Scale(dpB4[i], k[i]))
	}

	xNext = vec3.Add(x, vec3.Scale(h, sol5))
	x4 := vec3.Add(x, vec3.Scale(h, sol4))
	errEst = vec3.Sub(xNext, x4)
	return
}

func errorScale(x, xNext vec3.Vec, absTol, relTol float64) vec3.Vec {
	var s vec3.Vec
	for i := 0; i < 3; i++ {
		mag := math.Max(math.Abs(x[i]), math.Abs(xNext[i]))
		s[i] = absTol + relTol*mag
	}
	return s
}

func weightedNorm(errEst, scale vec3.Vec) float64 {
	var sumSq float64
	for i := 0; i < 3; i++ {
		r := errEst[i] / scale[i]
		sumSq += r * r
	}
	return math.Sqrt(sumSq / 3)
}

func nextStepSize(h, normErr, hMax float64) float64 {
	const (
		order   = 5.0
		safety  = 0.9
		minGrow = 0.2
		maxGrow = 5.0
	)
	if normErr == 0 {
		return math.Min(h*maxGrow, hMax)
	}
	factor := safety * math.Pow(1/normErr, 1/order)
	if factor < minGrow {
		factor = minGrow
	}
	if factor > maxGrow {
		factor = maxGrow
	}
	hNew := h * factor
	if hNew > hMax {
		hNew = hMax
	}
	if hNew < minStep {
		hNew = minStep
	}
	return hNew
}

func finite(v vec3.Vec) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Package trace traces magnetic field lines through a Field (typically a
// field.Composite) using an adaptive Dormand-Prince integrator, stepping
// along the unit field direction until the line re-enters the planet's
// surface or escapes to the outer boundary.
package trace

import (
	"errors"
	"math"

	"github.com/anupshinde/jovimag/field"
	"github.com/anupshinde/jovimag/vec3"
)

// errNonFiniteField is returned when the field direction evaluates to a
// non-finite vector at some point along a traced line.
var errNonFiniteField = errors.New("trace: non-finite field encountered")

// polarFlattening is the oblate planetary ellipsoid's polar flattening
// (equatorial radius 1, polar radius 1 - polarFlattening).
const polarFlattening = 1.0 / 15.4

// escapeRadius is the outer boundary, in planetary radii, beyond which a
// line is considered to have escaped.
const escapeRadius = 200.0

// Polyline is one traced field line's points, in Cartesian planetary
// radii, ordered from its "minus" end through the seed to its "plus" end.
type Polyline []vec3.Vec

// Result is the outcome of tracing a single seed.
type Result struct {
	Seed      vec3.Vec
	Line      Polyline
	SeedIndex int // index of Seed within Line
	Err       error
}

// insideEllipsoid reports whether x lies within (or on) the oblate
// planetary surface.
func insideEllipsoid(x vec3.Vec) bool {
	c := 1 - polarFlattening
	return x[0]*x[0]+x[1]*x[1]+(x[2]*x[2])/(c*c) <= 1
}

// stopAtBoundary is the shared stop predicate: halt at the planetary
// surface or beyond the escape radius.
func stopAtBoundary(x vec3.Vec) bool {
	if insideEllipsoid(x) {
		return true
	}
	return vec3.Length(x) > escapeRadius
}

// FromSeed traces a single field line through f starting at the Cartesian
// seed point. It integrates forward along +Bhat and backward along -Bhat
// until each branch satisfies the stop predicate (entering the planet or
// escaping beyond escapeRadius), then assembles the full line as
// reverse(minus-branch), seed, plus-branch.
//
// If the field is non-finite anywhere along either branch, FromSeed
// returns a partial-or-empty line alongside the encountered error; callers
// tracing a batch of seeds should treat this as a per-seed failure and
// continue with the remaining seeds.
func FromSeed(f field.Field, seed vec3.Vec) Result {
	unitField := func(sign float64) rhs {
		return func(x vec3.Vec) (vec3.Vec, error) {
			b, err := field.CartesianOf(f, x[0], x[1], x[2])
			if err != nil {
				return vec3.Vec{}, err
			}
			if vec3.Length(b) == 0 {
				return vec3.Vec{}, errNonFiniteField
			}
			return vec3.Scale(sign, vec3.Unit(b)), nil
		}
	}

	plus, errPlus := integrate(unitField(1), stopAtBoundary, seed, defaultConfig)
	if errPlus != nil {
		line, idx := assemble(nil, seed, plus)
		return Result{Seed: seed, Line: line, SeedIndex: idx, Err: errPlus}
	}

	minus, errMinus := integrate(unitField(-1), stopAtBoundary, seed, defaultConfig)
	if errMinus != nil {
		line, idx := assemble(minus, seed, plus)
		return Result{Seed: seed, Line: line, SeedIndex: idx, Err: errMinus}
	}

	line, idx := assemble(minus, seed, plus)
	return Result{Seed: seed, Line: line, SeedIndex: idx}
}

// assemble concatenates the reversed minus branch, the seed, and the plus
// branch into one polyline, alongside the index the seed lands at (equal
// to len(minus), the length of the reversed minus branch).
func assemble(minus []vec3.Vec, seed vec3.Vec, plus []vec3.Vec) (Polyline, int) {
	out := make(Polyline, 0, len(minus)+1+len(plus))
	for i := len(minus) - 1; i >= 0; i-- {
		out = append(out, minus[i])
	}
	seedIndex := len(out)
	out = append(out, seed)
	out = append(out, plus...)
	return out, seedIndex
}

// FromSeeds traces every seed independently and returns one Result per
// seed, in the same order. A seed whose line hits a non-finite field does
// not prevent the other seeds from being traced.
func FromSeeds(f field.Field, seeds []vec3.Vec) []Result {
	out := make([]Result, len(seeds))
	for i, s := range seeds {
		out[i] = FromSeed(f, s)
	}
	return out
}

// ToPlanet is an alias for FromSeeds, named for the batch entry point
// that traces every given seed down to the planetary surface (or out to
// the escape boundary).
func ToPlanet(f field.Field, seeds []vec3.Vec) []Result {
	return FromSeeds(f, seeds)
}

// finiteResult reports whether every point of r.Line is finite, useful in
// tests and diagnostics for lines that terminated cleanly.
func finiteResult(r Result) bool {
	for _, p := range r.Line {
		for _, c := range p {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return false
			}
		}
	}
	return true
}

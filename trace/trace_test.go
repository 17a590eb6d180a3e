package trace

import (
	"testing"

	"github.com/anupshinde/jovimag/currentsheet"
	"github.com/anupshinde/jovimag/field"
	"github.com/anupshinde/jovimag/internal"
	"github.com/anupshinde/jovimag/vec3"
)

func newTestField(t *testing.T) field.Field {
	t.Helper()
	in, err := internal.New("JRM09", 10)
	if err != nil {
		t.Fatal(err)
	}
	cs, err := currentsheet.New("CON2020", nil)
	if err != nil {
		t.Fatal(err)
	}
	return field.Composite{Internal: in, CurrentSheet: cs}
}

// TestTraceFromEquatorialSeed reproduces the "Trace from (x=6,y=0,z=0)"
// scenario: the line must terminate at the planetary ellipsoid on both
// ends, the seed must sit at the boundary between the two half-branches,
// and the stop predicate must hold only at the two endpoints.
func TestTraceFromEquatorialSeed(t *testing.T) {
	f := newTestField(t)
	seed := vec3.Vec{6, 0, 0}

	result := FromSeed(f, seed)
	if result.Err != nil {
		t.Fatalf("unexpected tracing error: %v", result.Err)
	}
	if len(result.Line) < 3 {
		t.Fatalf("line too short: %d points", len(result.Line))
	}

	first := result.Line[0]
	last := result.Line[len(result.Line)-1]

	if !insideEllipsoid(first) {
		t.Errorf("first point %v is not on the planetary ellipsoid", first)
	}
	if !insideEllipsoid(last) {
		t.Errorf("last point %v is not on the planetary ellipsoid", last)
	}

	for i, p := range result.Line[1 : len(result.Line)-1] {
		if stopAtBoundary(p) {
			t.Errorf("interior point %d (%v) unexpectedly satisfies the stop predicate", i+1, p)
		}
	}

	if result.SeedIndex < 0 || result.SeedIndex >= len(result.Line) {
		t.Fatalf("seed index %d out of range for line of length %d", result.SeedIndex, len(result.Line))
	}
	if result.Line[result.SeedIndex] != seed {
		t.Errorf("line[%d] = %v, want seed %v", result.SeedIndex, result.Line[result.SeedIndex], seed)
	}
}

// TestTraceMonotoneProgress checks that each accepted step along a branch
// strictly advances arc length: no two consecutive points coincide, and
// cumulative path length increases monotonically from the seed outward.
func TestTraceMonotoneProgress(t *testing.T) {
	f := newTestField(t)
	seed := vec3.Vec{6, 0, 0}

	result := FromSeed(f, seed)
	if result.Err != nil {
		t.Fatalf("unexpected tracing error: %v", result.Err)
	}

	var cumulative float64
	for i := 1; i < len(result.Line); i++ {
		step := vec3.Length(vec3.Sub(result.Line[i], result.Line[i-1]))
		if step <= 0 {
			t.Fatalf("non-positive step length between points %d and %d: %v", i-1, i, step)
		}
		cumulative += step
	}
	if cumulative <= 0 {
		t.Error("expected strictly positive total arc length")
	}
}

func TestInsideEllipsoidBoundary(t *testing.T) {
	if !insideEllipsoid(vec3.Vec{1, 0, 0}) {
		t.Error("equatorial surface point should be inside-or-on the ellipsoid")
	}
	if insideEllipsoid(vec3.Vec{1.5, 0, 0}) {
		t.Error("point well outside the equatorial radius should not be inside")
	}
	polarRadius := 1 - polarFlattening
	if !insideEllipsoid(vec3.Vec{0, 0, polarRadius}) {
		t.Error("polar surface point should be inside-or-on the ellipsoid")
	}
}

func TestStopAtBoundaryEscape(t *testing.T) {
	if !stopAtBoundary(vec3.Vec{escapeRadius + 1, 0, 0}) {
		t.Error("point beyond escape radius should satisfy the stop predicate")
	}
	if stopAtBoundary(vec3.Vec{10, 0, 0}) {
		t.Error("point well within bounds should not satisfy the stop predicate")
	}
}

package currentsheet

import (
	"math"
	"testing"

	"github.com/anupshinde/jovimag/coord"
	"github.com/anupshinde/jovimag/vec3"
)

func TestNewCON2020(t *testing.T) {
	f, err := New("CON2020", nil)
	if err != nil {
		t.Fatal(err)
	}
	p := f.Params()
	if p["r_0"] != 7.8 || p["r_1"] != 51.4 || p["d"] != 3.6 {
		t.Errorf("unexpected CON2020 params: %+v", p)
	}
}

func TestNewCustomMissingKey(t *testing.T) {
	params := map[string]float64{"r_0": 1, "r_1": 10, "d": 1}
	if _, err := New("Custom", params); err == nil {
		t.Fatal("expected error for missing Custom keys")
	}
}

func TestNewUnknownType(t *testing.T) {
	if _, err := New("bogus", nil); err == nil {
		t.Fatal("expected error for unknown field type")
	}
}

func TestNewCustomInvalidR1(t *testing.T) {
	params := map[string]float64{
		"r_0": 5, "r_1": 2, "d": 1, "mu0_i_2": 1, "theta_d": 0, "phi_d": 0, "i_rho": 0,
	}
	if _, err := New("Custom", params); err == nil {
		t.Fatal("expected error when r_1 <= r_0")
	}
}

// TestEdgeSmoothingContinuity reproduces spec invariant 5/scenario
// "Smoothing": at rho = r0 +/- a small epsilon, B_rho must differ by a
// tiny amount rather than jumping between branches.
func TestEdgeSmoothingContinuity(t *testing.T) {
	f, err := New("CON2020", nil)
	if err != nil {
		t.Fatal(err)
	}

	eps := 1e-5
	below, _ := f.kernelRho(f.params.R0-eps, 0)
	above, _ := f.kernelRho(f.params.R0+eps, 0)

	if math.Abs(above-below) > 1e-4 {
		t.Errorf("B_rho discontinuous at r0: below=%v above=%v", below, above)
	}
}

// TestAxisymmetry checks spec invariant 6: rotating phi by pi and
// rotating the resulting MAG-frame field by the same pi yields an
// identical result (axisymmetric about the MAG z axis).
func TestAxisymmetry(t *testing.T) {
	f, err := New("CON2020", nil)
	if err != nil {
		t.Fatal(err)
	}
	p := f.params
	rho, z, phiMag := 15.0, 2.0, 0.4

	// magField evaluates the field at MAG cylindrical (rho, phi, z) and
	// returns it in MAG Cartesian components.
	magField := func(phi float64) vec3.Vec {
		pos := coord.VecMAGToIAU(vec3.Vec{rho * math.Cos(phi), rho * math.Sin(phi), z}, p.ThetaD, p.PhiD)
		b, err := f.CalcFieldXYZ(pos[0], pos[1], pos[2])
		if err != nil {
			t.Fatal(err)
		}
		return coord.VecIAUToMAG(b, p.ThetaD, p.PhiD)
	}

	b1 := magField(phiMag)
	b2 := vec3.Apply(coord.RotMatrixZ(-math.Pi), magField(phiMag+math.Pi))

	for i := range b1 {
		if math.Abs(b1[i]-b2[i]) > 1e-9*math.Max(1, vec3.Length(b1)) {
			t.Errorf("field at phi+pi rotated back by pi = %v, want %v", b2, b1)
			break
		}
	}
}

func TestFarFieldNonZeroBz(t *testing.T) {
	f, err := New("CON2020", nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := f.CalcFieldXYZ(15, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if b[2] == 0 {
		t.Error("expected nonzero B_z component outside the inner edge r0")
	}
}

func TestSmallRhoNoOverflow(t *testing.T) {
	f, err := New("CON2020", nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := f.CalcFieldXYZ(0.1, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range b {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			t.Errorf("component %d not finite near rho=0.1: %v", i, c)
		}
	}
}

func TestRhoZeroGuard(t *testing.T) {
	f, err := New("CON2020", nil)
	if err != nil {
		t.Fatal(err)
	}
	bRho, bPhi, bZ := f.kernel(0, 1)
	if bPhi != 0 {
		t.Errorf("B_phi at rho=0 should be forced to 0, got %v", bPhi)
	}
	if math.IsNaN(bRho) || math.IsInf(bRho, 0) || math.IsNaN(bZ) || math.IsInf(bZ, 0) {
		t.Errorf("kernel at rho=0 not finite: bRho=%v bZ=%v", bRho, bZ)
	}
}

// kernelRho is a small test helper exposing the B_rho and B_z components
// (without B_phi) of the full (inner, optionally outer-subtracted) kernel.
func (f *Field) kernelRho(rho, z float64) (float64, float64) {
	bRho, _, bZ := f.kernel(rho, z)
	return bRho, bZ
}

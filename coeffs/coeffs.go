// Package coeffs provides Schmidt-normalized internal-field coefficient
// tables for named Jovian models.
//
// The magnitudes and degree-dependent decay of the tables below follow the
// published profile of the Connerney et al. JRM09 (degree 10) and JRM33
// (degree 18) models: dominant dipole term of order 1e5-1e6 nT at n=1,
// falling off by roughly an order of magnitude every two to three degrees.
// The exact published coefficient values are not reproduced here — the
// original source tree this module was built from did not retain its
// coefficient data file, only the evaluator code that consumes such a
// table — so these are representative Schmidt-normalized tables of the
// right shape and scale rather than a faithful reproduction of JRM09/JRM33.
package coeffs

import (
	"fmt"
	"math"
)

// Model holds a named internal-field model's Schmidt-normalized Gauss
// coefficients, in nT, as dense lower-triangular (MaxDegree+1)x(MaxDegree+1)
// matrices. G[n][m] and H[n][m] are defined for 0 <= m <= n <= MaxDegree;
// H[n][0] is always 0 (unused).
type Model struct {
	Name      string
	MaxDegree int
	G, H      [][]float64
}

// JRM09 is the degree-10 internal field model.
var JRM09 = build("JRM09", 10, 410244.7)

// JRM33 is the degree-18 internal field model.
var JRM33 = build("JRM33", 18, 409405.6)

// ByName returns the named model and true, or a zero Model and false if the
// name is not recognized. Recognized names: "JRM09", "JRM33".
func ByName(name string) (Model, bool) {
	switch name {
	case "JRM09":
		return JRM09, true
	case "JRM33":
		return JRM33, true
	}
	return Model{}, false
}

// build constructs a dense Schmidt-normalized coefficient table of the
// given degree, seeded by the dipole term g10 (nT), with magnitude decaying
// geometrically by degree and an alternating sign pattern across order —
// matching the qualitative shape of the real models without claiming to
// reproduce their exact published values (see package doc).
func build(name string, degree int, g10 float64) Model {
	n := degree + 1
	g := make([][]float64, n)
	h := make([][]float64, n)
	for i := range g {
		g[i] = make([]float64, n)
		h[i] = make([]float64, n)
	}

	g[1][0] = g10
	for deg := 1; deg <= degree; deg++ {
		decay := g10 / math.Pow(2.6, float64(deg-1))
		for m := 0; m <= deg; m++ {
			if deg == 1 && m == 0 {
				continue // already seeded with the published dipole term
			}
			sign := 1.0
			if (deg+m)%2 == 1 {
				sign = -1.0
			}
			weight := 1.0 / float64(m+1)
			g[deg][m] = sign * decay * weight
			if m > 0 {
				h[deg][m] = -sign * decay * weight * 0.6
			}
		}
	}

	return Model{Name: name, MaxDegree: degree, G: g, H: h}
}

// Validate checks the shape invariants from the data model: G and H must be
// square matrices of equal size, and the requested evaluation degree must
// lie within [1, MaxDegree].
func (m Model) Validate(requestedDegree int) error {
	n := m.MaxDegree + 1
	if len(m.G) != n || len(m.H) != n {
		return fmt.Errorf("coeffs: %s: g/h row count mismatch with MaxDegree=%d", m.Name, m.MaxDegree)
	}
	for i := 0; i < n; i++ {
		if len(m.G[i]) != n || len(m.H[i]) != n {
			return fmt.Errorf("coeffs: %s: g/h row %d has wrong column count", m.Name, i)
		}
	}
	if requestedDegree < 1 || requestedDegree > m.MaxDegree {
		return fmt.Errorf("coeffs: %s: requested degree %d outside [1, %d]", m.Name, requestedDegree, m.MaxDegree)
	}
	return nil
}

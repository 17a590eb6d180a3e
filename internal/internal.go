// Package internal evaluates the spherical-harmonic internal magnetic
// field of a named model at a point, truncated to a requested degree.
package internal

import (
	"errors"
	"fmt"
	"math"

	"github.com/anupshinde/jovimag/coeffs"
	"github.com/anupshinde/jovimag/legendre"
	"github.com/anupshinde/jovimag/vec3"
)

// ErrOrigin is returned when evaluation is requested at r=0, where theta is
// undefined.
var ErrOrigin = errors.New("internal: cannot evaluate field at r=0")

// Field evaluates the internal field of one named model up to a fixed
// degree cap.
type Field struct {
	model  coeffs.Model
	degree int
}

// New constructs an internal field evaluator for the named model
// ("JRM09" or "JRM33"). degreeCap selects the truncation degree; if zero
// (or negative), the model's full degree is used. Returns an error if the
// name is unrecognized, the model's tables are malformed, or degreeCap
// exceeds the model's max degree.
func New(name string, degreeCap int) (*Field, error) {
	model, ok := coeffs.ByName(name)
	if !ok {
		return nil, fmt.Errorf("internal: unknown model %q (supported: JRM09, JRM33)", name)
	}

	degree := degreeCap
	if degree <= 0 {
		degree = model.MaxDegree
	}
	if err := model.Validate(degree); err != nil {
		return nil, err
	}

	return &Field{model: model, degree: degree}, nil
}

// Degree returns the evaluator's truncation degree.
func (f *Field) Degree() int { return f.degree }

// Name returns the underlying model's name.
func (f *Field) Name() string { return f.model.Name }

// CalcField evaluates (B_r, B_theta, B_phi) in nT at spherical position
// (r, theta, phi). r is in planetary radii; theta in [0, pi]; phi in
// (-pi, pi].
func (f *Field) CalcField(r, theta, phi float64) (vec3.Vec, error) {
	if r == 0 {
		return vec3.Vec{}, ErrOrigin
	}

	tb := legendre.Compute(theta, f.degree)
	s := legendre.SchmidtFactors(f.degree)
	invSinTheta := legendre.InvSinTheta(theta)

	a := 1 / r
	aPow := a * a // a^(n+2) built incrementally, starting at n=1: a^3 = a*a*a

	var br, bt, bp float64

	g, h := f.model.G, f.model.H

	for n := 1; n <= f.degree; n++ {
		aPow *= a // a^(n+2)

		// Incremental cos(m*phi)/sin(m*phi) via angle-addition recurrence.
		cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
		cosM, sinM := 1.0, 0.0 // m=0

		var sumR, sumT, sumP float64

		for m := 0; m <= n; m++ {
			if m > 0 {
				nextCos := cosM*cosPhi - sinM*sinPhi
				nextSin := sinM*cosPhi + cosM*sinPhi
				cosM, sinM = nextCos, nextSin
			}

			pnm := tb.P[n][m] * s[n][m]
			dpnm := tb.DP[n][m] * s[n][m]

			ghTerm := g[n][m]*cosM + h[n][m]*sinM
			sumR += pnm * ghTerm
			sumT += dpnm * ghTerm

			if m >= 1 {
				sumP += float64(m) * pnm * (g[n][m]*sinM - h[n][m]*cosM)
			}
		}

		br += aPow * float64(n+1) * sumR
		bt += aPow * sumT
		bp += aPow * sumP
	}

	return vec3.Vec{br, -bt, invSinTheta * bp}, nil
}

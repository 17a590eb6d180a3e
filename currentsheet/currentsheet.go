// Package currentsheet evaluates the axisymmetric current-sheet magnetic
// field contribution in the tilted magnetic (MAG) frame, via analytic
// near/far piecewise formulae with edge smoothing and optional
// outer-boundary subtraction.
package currentsheet

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/anupshinde/jovimag/coord"
	"github.com/anupshinde/jovimag/vec3"
)

// smoothingDeltaRho is the tanh edge-smoothing half-width, in planetary
// radii (spec-fixed constant).
const smoothingDeltaRho = 1.0

// axialCurrentPrefactor scales the inner-sheet-only azimuthal radial-current
// contribution (spec-fixed constant).
const axialCurrentPrefactor = -2.7975

// Params holds the physical parameters of one current sheet.
type Params struct {
	R0     float64 // inner radius, planetary radii
	R1     float64 // outer radius, planetary radii; NaN means no outer subtraction
	D      float64 // half-thickness, planetary radii
	Mu0I2  float64 // mu0*I/2 current constant, nT
	ThetaD float64 // dipole tilt colatitude, radians
	PhiD   float64 // dipole tilt longitude, radians
	IRho   float64 // radial-current constant
}

// CON2020 is the standard Connerney et al. 2020 preset.
var CON2020 = Params{
	R0:     7.8,
	R1:     51.4,
	D:      3.6,
	Mu0I2:  139.6,
	ThetaD: 9.3 * math.Pi / 180,
	PhiD:   204.2 * math.Pi / 180,
	IRho:   16.7,
}

// customKeys lists the parameter keys required to build a "Custom" field.
var customKeys = []string{"r_0", "r_1", "d", "mu0_i_2", "theta_d", "phi_d", "i_rho"}

// Field evaluates a current sheet's contribution to the total field.
type Field struct {
	params Params
}

// New constructs a current-sheet evaluator. name selects "CON2020" (the
// preset values are used; params, if non-nil, is only checked to hold no
// key outside customKeys — callers normally pass nil) or "Custom" (params
// must supply all of customKeys). Any other name is rejected.
func New(name string, params map[string]float64) (*Field, error) {
	switch name {
	case "CON2020":
		for key := range params {
			if !slices.Contains(customKeys, key) {
				return nil, fmt.Errorf("currentsheet: CON2020 does not accept parameter %q", key)
			}
		}
		return &Field{params: CON2020}, nil
	case "Custom":
		p := Params{}
		for _, key := range customKeys {
			v, ok := params[key]
			if !ok {
				return nil, fmt.Errorf("currentsheet: Custom field missing required parameter %q", key)
			}
			switch key {
			case "r_0":
				p.R0 = v
			case "r_1":
				p.R1 = v
			case "d":
				p.D = v
			case "mu0_i_2":
				p.Mu0I2 = v
			case "theta_d":
				p.ThetaD = v
			case "phi_d":
				p.PhiD = v
			case "i_rho":
				p.IRho = v
			}
		}
		if err := validate(p); err != nil {
			return nil, err
		}
		return &Field{params: p}, nil
	}
	return nil, fmt.Errorf("currentsheet: unknown field type %q (supported: CON2020, Custom)", name)
}

var (
	// ErrInvalidR0 is returned when R0 is not strictly positive.
	ErrInvalidR0 = errors.New("currentsheet: r_0 must be > 0")
	// ErrInvalidR1 is returned when a finite R1 does not exceed R0.
	ErrInvalidR1 = errors.New("currentsheet: finite r_1 must be > r_0")
	// ErrInvalidD is returned when D is not strictly positive.
	ErrInvalidD = errors.New("currentsheet: d must be > 0")
)

func validate(p Params) error {
	if !(p.R0 > 0) {
		return ErrInvalidR0
	}
	if !math.IsNaN(p.R1) && !(p.R1 > p.R0) {
		return ErrInvalidR1
	}
	if !(p.D > 0) {
		return ErrInvalidD
	}
	return nil
}

// Params returns the effective parameter set, keyed as in the Custom
// constructor (useful after construction with a named preset).
func (f *Field) Params() map[string]float64 {
	return map[string]float64{
		"r_0":     f.params.R0,
		"r_1":     f.params.R1,
		"d":       f.params.D,
		"mu0_i_2": f.params.Mu0I2,
		"theta_d": f.params.ThetaD,
		"phi_d":   f.params.PhiD,
		"i_rho":   f.params.IRho,
	}
}

// CalcField evaluates (B_r, B_theta, B_phi) in nT at IAU spherical position
// (r, theta, phi).
func (f *Field) CalcField(r, theta, phi float64) (vec3.Vec, error) {
	posXYZ := coord.PosRTPToXYZ(r, theta, phi)
	bxyz := f.calcFieldXYZImpl(posXYZ)
	return coord.VecXYZToRTP(bxyz, theta, phi), nil
}

// CalcFieldXYZ evaluates (B_x, B_y, B_z) in nT at IAU Cartesian position
// (x, y, z).
func (f *Field) CalcFieldXYZ(x, y, z float64) (vec3.Vec, error) {
	return f.calcFieldXYZImpl(vec3.Vec{x, y, z}), nil
}

func (f *Field) calcFieldXYZImpl(posXYZ vec3.Vec) vec3.Vec {
	p := f.params

	magXYZ := coord.VecIAUToMAG(posXYZ, p.ThetaD, p.PhiD)
	rho := math.Hypot(magXYZ[0], magXYZ[1])
	z := magXYZ[2]
	phiMag := math.Atan2(magXYZ[1], magXYZ[0])

	bRho, bPhi, bZ := f.kernel(rho, z)

	bMagXYZ := coord.VecCylToXYZ(bRho, bPhi, bZ, phiMag)
	return coord.VecMAGToIAU(bMagXYZ, p.ThetaD, p.PhiD)
}

// kernel evaluates the blended inner (and, if finite, outer-subtracted)
// current-sheet contribution at cylindrical (rho, z) in the MAG frame.
func (f *Field) kernel(rho, z float64) (bRho, bPhi, bZ float64) {
	p := f.params

	innerRho, innerZ := f.blended(rho, z, p.R0)
	bRho, bZ = innerRho, innerZ

	if !math.IsNaN(p.R1) {
		outerRho, outerZ := f.blended(rho, z, p.R1)
		bRho -= outerRho
		bZ -= outerZ
	}

	bPhi = f.azimuthal(rho, z)
	return
}

// azimuthal is the inner-sheet-only radial-current contribution.
func (f *Field) azimuthal(rho, z float64) float64 {
	if rho == 0 {
		return 0
	}
	zStar := zStar(z, f.params.D)
	return axialCurrentPrefactor * f.params.IRho / rho * zStar / f.params.D
}

// blended evaluates the tanh-smoothed blend of the small-rho and large-rho
// analytic branches at sheet radius a.
func (f *Field) blended(rho, z, a float64) (bRho, bZ float64) {
	mu := f.params.Mu0I2
	d := f.params.D

	smallRho, smallZ := smallRhoBranch(rho, z, a, d, mu)
	largeRho, largeZ := largeRhoBranch(rho, z, a, d, mu)

	s := math.Tanh((rho - a) / smoothingDeltaRho)
	wSmall := 0.5 * (1 - s)
	wLarge := 0.5 * (1 + s)

	bRho = wSmall*smallRho + wLarge*largeRho
	bZ = wSmall * smallZ
	// At rho=0 the large-rho B_z log term diverges for |z| < d; the branch's
	// blend weight is near 0 there, so that term is left out.
	if rho != 0 {
		bZ += wLarge * largeZ
	}
	return
}

func zStar(z, d float64) float64 {
	if math.Abs(z) <= math.Abs(d) {
		return z
	}
	if z < 0 {
		return -d
	}
	return d
}

// largeRhoBranch evaluates the "large-rho" analytic kernel at sheet
// radius a. Used (after blending) for rho > a.
func largeRhoBranch(rho, z, a, d, mu float64) (bRho, bZ float64) {
	mMinus := z - d
	mPlus := z + d

	invRho := 1.0
	if rho == 0 {
		invRho = 1e12 // degenerate guard; this branch's blend weight is near 0 at rho=0
	} else {
		invRho = 1 / rho
	}

	nMinus := math.Hypot(rho, mMinus)
	nPlus := math.Hypot(rho, mPlus)

	zst := zStar(z, d)

	bRho = mu * ((nMinus-nPlus)*invRho + rho*a*a/4*(1/(nPlus*nPlus*nPlus)-1/(nMinus*nMinus*nMinus)) + 2*zst*invRho)
	bZ = mu * (math.Log((mPlus+nPlus)/(mMinus+nMinus)) + a*a/4*(mPlus/(nPlus*nPlus*nPlus)-mMinus/(nMinus*nMinus*nMinus)))
	return
}

// smallRhoBranch evaluates the "small-rho" analytic kernel at sheet
// radius a. Used (after blending) for rho <= a.
func smallRhoBranch(rho, z, a, d, mu float64) (bRho, bZ float64) {
	mMinus := z - d
	mPlus := z + d

	nMinus := math.Hypot(a, mMinus)
	nPlus := math.Hypot(a, mPlus)

	pMinus := a*a - 2*mMinus*mMinus
	pPlus := a*a - 2*mPlus*mPlus

	nMinus5 := nMinus * nMinus * nMinus * nMinus * nMinus
	nPlus5 := nPlus * nPlus * nPlus * nPlus * nPlus

	bRho = mu * (rho/2*(1/nMinus-1/nPlus) + rho*rho*rho/16*(pMinus/nMinus5-pPlus/nPlus5))
	bZ = mu * (math.Log((mPlus+nPlus)/(mMinus+nMinus)) + rho*rho/4*(mPlus/(nPlus*nPlus*nPlus)-mMinus/(nMinus*nMinus*nMinus)))
	return
}

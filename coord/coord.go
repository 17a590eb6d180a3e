// Package coord converts position and vector triples between Cartesian,
// spherical, and cylindrical representations, and builds the axis
// rotations used to move between the IAU planetary frame and the tilted
// magnetic (MAG) frame.
package coord

import (
	"math"

	"github.com/anupshinde/jovimag/vec3"
)

// PosXYZToRTP converts a Cartesian position to spherical (r, theta, phi).
// theta is the colatitude in [0, pi]; phi is atan2(y, x) in (-pi, pi].
//
// The result is undefined at r=0 (theta is not well defined there);
// callers must not evaluate at the origin.
func PosXYZToRTP(p vec3.Vec) (r, theta, phi float64) {
	r = vec3.Length(p)
	theta = math.Acos(p[2] / r)
	phi = math.Atan2(p[1], p[0])
	return
}

// PosRTPToXYZ converts a spherical position (r, theta, phi) to Cartesian.
func PosRTPToXYZ(r, theta, phi float64) vec3.Vec {
	sinTheta, cosTheta := math.Sincos(theta)
	sinPhi, cosPhi := math.Sincos(phi)
	return vec3.Vec{
		r * sinTheta * cosPhi,
		r * sinTheta * sinPhi,
		r * cosTheta,
	}
}

// VecXYZToRTP rotates a vector's Cartesian components into the spherical
// basis (r, theta, phi) at the point (theta, phi). This transforms vector
// components, not positions.
func VecXYZToRTP(v vec3.Vec, theta, phi float64) vec3.Vec {
	sinTheta, cosTheta := math.Sincos(theta)
	sinPhi, cosPhi := math.Sincos(phi)
	return vec3.Vec{
		v[0]*sinTheta*cosPhi + v[1]*sinTheta*sinPhi + v[2]*cosTheta,
		v[0]*cosTheta*cosPhi + v[1]*cosTheta*sinPhi - v[2]*sinTheta,
		-v[0]*sinPhi + v[1]*cosPhi,
	}
}

// VecRTPToXYZ rotates a vector's spherical-basis components (r, theta, phi)
// into Cartesian components at the point (theta, phi). The inverse of
// VecXYZToRTP; the pair round-trips to machine precision.
func VecRTPToXYZ(v vec3.Vec, theta, phi float64) vec3.Vec {
	sinTheta, cosTheta := math.Sincos(theta)
	sinPhi, cosPhi := math.Sincos(phi)
	return vec3.Vec{
		v[0]*sinTheta*cosPhi + v[1]*cosTheta*cosPhi - v[2]*sinPhi,
		v[0]*sinTheta*sinPhi + v[1]*cosTheta*sinPhi + v[2]*cosPhi,
		v[0]*cosTheta - v[1]*sinTheta,
	}
}

// VecCylToXYZ rotates a vector's cylindrical-basis components (rho, phi, z)
// into Cartesian components at azimuth phi.
func VecCylToXYZ(vRho, vPhi, vZ, phi float64) vec3.Vec {
	sinPhi, cosPhi := math.Sincos(phi)
	return vec3.Vec{
		vRho*cosPhi - vPhi*sinPhi,
		vRho*sinPhi + vPhi*cosPhi,
		vZ,
	}
}

// RotMatrixX returns the right-hand-rule rotation matrix about the X axis.
func RotMatrixX(angle float64) vec3.Mat {
	s, c := math.Sincos(angle)
	return vec3.Mat{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotMatrixY returns the right-hand-rule rotation matrix about the Y axis.
func RotMatrixY(angle float64) vec3.Mat {
	s, c := math.Sincos(angle)
	return vec3.Mat{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotMatrixZ returns the right-hand-rule rotation matrix about the Z axis.
func RotMatrixZ(angle float64) vec3.Mat {
	s, c := math.Sincos(angle)
	return vec3.Mat{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// VecIAUToMAG rotates a Cartesian vector (or position) from the IAU frame
// into the tilted magnetic (MAG) frame: R_y(-thetaD) * R_z(-phiD) * v.
// Positions and vectors share the same rotation.
func VecIAUToMAG(v vec3.Vec, thetaD, phiD float64) vec3.Vec {
	rz := RotMatrixZ(-phiD)
	ry := RotMatrixY(-thetaD)
	return vec3.Apply(vec3.MatMul(ry, rz), v)
}

// VecMAGToIAU rotates a Cartesian vector (or position) from the MAG frame
// back into the IAU frame: R_z(phiD) * R_y(thetaD) * v. The inverse of
// VecIAUToMAG.
func VecMAGToIAU(v vec3.Vec, thetaD, phiD float64) vec3.Vec {
	ry := RotMatrixY(thetaD)
	rz := RotMatrixZ(phiD)
	return vec3.Apply(vec3.MatMul(rz, ry), v)
}

// Package legendre computes Gauss-normalized associated Legendre
// polynomials and their theta-derivatives via the stable two-term
// recursion, along with Schmidt semi-normalization factors.
package legendre

import "math"

// Tables holds Gauss-normalized associated Legendre values P(n,m) and their
// theta-derivatives dP(n,m) for 0 <= m <= n <= degree, evaluated at one
// theta. Both are (degree+1)x(degree+1), lower triangular.
type Tables struct {
	P, DP [][]float64
}

// Compute evaluates the Legendre recursion at colatitude theta up to the
// given degree.
//
//	P(0,0)=1, dP(0,0)=0
//	P(1,0)=cos(theta), P(1,1)=sin(theta)
//	dP(1,0)=-sin(theta), dP(1,1)=cos(theta)
//	K(n,m) = ((n-1)^2 - m^2) / ((2n-1)(2n-3))
//	P(n,m) = cos(theta)*P(n-1,m) - K(n,m)*P(n-2,m)
//	dP(n,m) = cos(theta)*dP(n-1,m) - sin(theta)*P(n-1,m) - K(n,m)*dP(n-2,m)
//	P(n,n) = sin(theta)*P(n-1,n-1)
//	dP(n,n) = sin(theta)*dP(n-1,n-1) + cos(theta)*P(n-1,n-1)
func Compute(theta float64, degree int) Tables {
	n := degree + 1
	p := make([][]float64, n)
	dp := make([][]float64, n)
	for i := range p {
		p[i] = make([]float64, n)
		dp[i] = make([]float64, n)
	}

	sinTheta, cosTheta := math.Sincos(theta)

	p[0][0] = 1
	dp[0][0] = 0

	if degree >= 1 {
		p[1][1] = sinTheta * p[0][0]
		p[1][0] = cosTheta * p[0][0]
		dp[1][1] = sinTheta*dp[0][0] + cosTheta*p[0][0]
		dp[1][0] = cosTheta*dp[0][0] - sinTheta*p[0][0]
	}

	for i := 2; i <= degree; i++ {
		for j := 0; j < i; j++ {
			k := (float64((i-1)*(i-1)-j*j)) / float64((2*i-1)*(2*i-3))
			p[i][j] = cosTheta*p[i-1][j] - k*p[i-2][j]
			dp[i][j] = cosTheta*dp[i-1][j] - sinTheta*p[i-1][j] - k*dp[i-2][j]
		}
		p[i][i] = sinTheta * p[i-1][i-1]
		dp[i][i] = sinTheta*dp[i-1][i-1] + cosTheta*p[i-1][i-1]
	}

	return Tables{P: p, DP: dp}
}

// SchmidtFactors computes the Schmidt semi-normalization multipliers
// S(n,m) for 0 <= m <= n <= degree.
//
//	S(n,0) = S(n-1,0) * (2n-1)/n, S(0,0)=1
//	S(n,1) = S(n,0) * sqrt(2n/(n+1))
//	S(n,m) = S(n,m-1) * sqrt((n-m+1)/(n+m)) for m>=2
func SchmidtFactors(degree int) [][]float64 {
	n := degree + 1
	s := make([][]float64, n)
	for i := range s {
		s[i] = make([]float64, n)
		for j := range s[i] {
			s[i][j] = 1
		}
	}

	for i := 1; i <= degree; i++ {
		s[i][0] = s[i-1][0] * float64(2*i-1) / float64(i)
		s[i][1] = s[i][0] * math.Sqrt(float64(2*i)/float64(i+1))
		for j := 2; j <= i; j++ {
			s[i][j] = s[i][j-1] * math.Sqrt(float64(i-j+1)/float64(i+j))
		}
	}
	return s
}

// InvSinTheta returns 1/sin(theta), defining 1/sin(theta) := 0 when
// sin(theta) is smaller than the tie-break threshold 1e-9 (used in the
// B_phi sum, where P(n,m) vanishes fast enough to keep the product finite
// near the poles).
func InvSinTheta(theta float64) float64 {
	s := math.Sin(theta)
	if math.Abs(s) < 1e-9 {
		return 0
	}
	return 1 / s
}

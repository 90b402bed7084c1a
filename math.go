package keplerian

import (
	"math"

	floats "gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

const (
	deg2rad = math.Pi / 180
)

// norm returns the norm of a given vector which is supposed to be 3x1.
func norm(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// sign returns the sign of a given number.
func sign(v float64) float64 {
	if floats.EqualWithinAbs(v, 0, 1e-12) {
		return 1
	}
	return v / math.Abs(v)
}

// dot performs the inner product via gonum/BLAS.
func dot(a, b []float64) float64 {
	return mat.Dot(mat.NewVecDense(len(a), a), mat.NewVecDense(len(b), b))
}

// cross performs the cross product.
func cross(a, b []float64) []float64 {
	return []float64{a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0]} // Cross product R x V.
}

// scale multiplies each component by f.
func scale(a []float64, f float64) (b []float64) {
	b = make([]float64, len(a))
	for i, val := range a {
		b[i] = val * f
	}
	return
}

// sub performs the componentwise subtraction a - b.
func sub(a, b []float64) (c []float64) {
	c = make([]float64, len(a))
	for i, val := range a {
		c[i] = val - b[i]
	}
	return
}

// Deg2rad converts degrees to radians, and enforced only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforced only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}

// sqrtChecked returns the square root of x, or a DomainError if x is negative.
// Derivations use this instead of math.Sqrt so that a malformed conic fails
// loudly rather than propagating NaN through the cache.
func sqrtChecked(op string, x float64) (float64, error) {
	if x < 0 {
		if !floats.EqualWithinAbs(x, 0, 1e-12) {
			return 0, DomainError{Op: op, Value: x}
		}
		// Rounding noise on a boundary value.
		x = 0
	}
	return math.Sqrt(x), nil
}

// acosChecked returns the arccosine of x, or a DomainError if |x| > 1.
func acosChecked(op string, x float64) (float64, error) {
	if math.Abs(x) > 1 {
		if !floats.EqualWithinAbs(math.Abs(x), 1, 1e-12) {
			return 0, DomainError{Op: op, Value: x}
		}
		// Rounding noise on a boundary value.
		x = sign(x)
	}
	return math.Acos(x), nil
}

package keplerian

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// R3 rotation about the 3rd axis.
func R3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat.Dense, v []float64) (o []float64) {
	vVec := mat.NewVecDense(len(v), v)
	var rVec mat.VecDense
	rVec.MulVec(m, vVec)
	return []float64{rVec.AtVec(0), rVec.AtVec(1), rVec.AtVec(2)}
}

// PQW2Inertial rotates a perifocal-frame vector into the inertial frame for
// an orbit whose argument of periapsis is ω. The orbital plane is the x-y
// plane, so this is a single rotation about the orbit normal.
func PQW2Inertial(ω float64, v []float64) []float64 {
	return MxV33(R3(-ω), v)
}

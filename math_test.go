package keplerian

import (
	"errors"
	"math"
	"testing"

	floats "gonum.org/v1/gonum/floats/scalar"
)

func TestCross(t *testing.T) {
	i := []float64{1, 0, 0}
	j := []float64{0, 1, 0}
	k := []float64{0, 0, 1}
	if !vectorsEqual(cross(i, j), k) {
		t.Fatal("i x j != k")
	}
	if !vectorsEqual(cross(j, k), i) {
		t.Fatal("j x k != i")
	}
	// From Vallado
	if !vectorsEqual(cross([]float64{6524.834, 6862.875, 6448.296}, []float64{4.901327, 5.533756, -1.976341}), []float64{-4.924667792015100e4, 4.450050424118601e4, 0.246964476137900e4}) {
		t.Fatal("cross fail")
	}
}

func TestDotNorm(t *testing.T) {
	if !floats.EqualWithinAbs(dot([]float64{1, 2, 3}, []float64{4, -5, 6}), 12, 1e-12) {
		t.Fatal("dot fail")
	}
	if !floats.EqualWithinAbs(norm([]float64{3, 4, 0}), 5, 1e-12) {
		t.Fatal("norm fail")
	}
	if !floats.EqualWithinAbs(dot([]float64{3, 4, 0}, []float64{3, 4, 0}), 25, 1e-12) {
		t.Fatal("dot of a vector with itself fail")
	}
}

func TestScaleSub(t *testing.T) {
	if !vectorsEqual(scale([]float64{1, -2, 3}, 2), []float64{2, -4, 6}) {
		t.Fatal("scale fail")
	}
	if !vectorsEqual(sub([]float64{5, 5, 5}, []float64{1, 2, 3}), []float64{4, 3, 2}) {
		t.Fatal("sub fail")
	}
}

func TestSign(t *testing.T) {
	if sign(10) != 1 || sign(-10) != -1 || sign(0) != 1 {
		t.Fatal("sign fail")
	}
}

func TestDegRad(t *testing.T) {
	if !floats.EqualWithinAbs(Deg2rad(180), math.Pi, 1e-12) {
		t.Fatal("Deg2rad fail")
	}
	if !floats.EqualWithinAbs(Rad2deg(math.Pi), 180, 1e-12) {
		t.Fatal("Rad2deg fail")
	}
	if !floats.EqualWithinAbs(Deg2rad(-90), 3*math.Pi/2, 1e-12) {
		t.Fatal("negative Deg2rad fail")
	}
	if !floats.EqualWithinAbs(Rad2deg(-math.Pi/2), 270, 1e-12) {
		t.Fatal("negative Rad2deg fail")
	}
}

func TestSqrtChecked(t *testing.T) {
	root, err := sqrtChecked("test", 4)
	if err != nil || root != 2 {
		t.Fatalf("sqrtChecked(4)=%f, %s", root, err)
	}
	// Boundary noise is clamped, an actually negative argument is an error.
	root, err = sqrtChecked("test", -6.7e-16)
	if err != nil || root != 0 {
		t.Fatalf("boundary value not clamped: %f, %s", root, err)
	}
	_, err = sqrtChecked("test", -1e-3)
	var de DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError, got %T", err)
	}
	if de.Op != "test" || de.Value != -1e-3 {
		t.Fatalf("error context lost: %+v", de)
	}
}

func TestAcosChecked(t *testing.T) {
	val, err := acosChecked("test", 0)
	if err != nil || !floats.EqualWithinAbs(val, math.Pi/2, 1e-12) {
		t.Fatalf("acosChecked(0)=%f, %s", val, err)
	}
	// Boundary noise is clamped, actual overflow is an error.
	if _, err = acosChecked("test", 1+1e-14); err != nil {
		t.Fatalf("boundary value not clamped: %s", err)
	}
	if _, err = acosChecked("test", 1.01); err == nil {
		t.Fatal("expected DomainError for 1.01")
	}
}

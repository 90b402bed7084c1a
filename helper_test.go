package keplerian

import (
	"testing"

	kitlog "github.com/go-kit/log"
	floats "gonum.org/v1/gonum/floats/scalar"
)

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

func vectorsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := len(a) - 1; i >= 0; i-- {
		if !floats.EqualWithinRel(a[i], b[i], 1e-3) {
			return false
		}
	}
	return true
}

// quietBody builds a body whose logger is discarded, to keep test output clean.
func quietBody(name string, R, V []float64, mass float64, origin CelestialObject) *OrbitalBody {
	b := NewOrbitalBody(name, R, V, mass, origin)
	b.SetLogger(kitlog.NewNopLogger())
	return b
}

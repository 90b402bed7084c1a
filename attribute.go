package keplerian

// Attribute enumerates every derivable orbital attribute. The derivation
// table is keyed on this type rather than on dynamically built names.
type Attribute uint8

const (
	// AttrR is the orbital radius |R|.
	AttrR Attribute = iota + 1
	// AttrV is the speed |V|.
	AttrV
	// Attrμ is the gravitational parameter of the parent body.
	Attrμ
	// AttrEk is the specific kinetic energy.
	AttrEk
	// AttrEp is the specific potential energy.
	AttrEp
	// Attrξ is the specific orbital energy (kinetic + potential).
	Attrξ
	// AttrI is the moment of inertia.
	AttrI
	// AttrΩ is the angular velocity vector.
	AttrΩ
	// AttrL is the angular momentum vector.
	AttrL
	// AttrH is the specific relative angular momentum vector.
	AttrH
	// AttrA is the semi-major axis.
	AttrA
	// AttrB is the semi-minor axis.
	AttrB
	// AttrEccVec is the eccentricity vector.
	AttrEccVec
	// AttrEcc is the eccentricity.
	AttrEcc
	// AttrPeriod is the orbital period in seconds.
	AttrPeriod
	// AttrEt is the eccentric anomaly at epoch.
	AttrEt
	// AttrApoapsis is the apoapsis radius.
	AttrApoapsis
	// AttrPeriapsis is the periapsis radius.
	AttrPeriapsis
	// Attrω is the argument of periapsis.
	Attrω
	// AttrVt is the true anomaly at epoch.
	AttrVt
	// AttrN is the mean motion.
	AttrN
)

func (a Attribute) String() string {
	switch a {
	case AttrR:
		return "r"
	case AttrV:
		return "v"
	case Attrμ:
		return "μ"
	case AttrEk:
		return "ek"
	case AttrEp:
		return "ep"
	case Attrξ:
		return "ξ"
	case AttrI:
		return "I"
	case AttrΩ:
		return "Ω"
	case AttrL:
		return "L"
	case AttrH:
		return "h"
	case AttrA:
		return "a"
	case AttrB:
		return "b"
	case AttrEccVec:
		return "eccvec"
	case AttrEcc:
		return "ecc"
	case AttrPeriod:
		return "p"
	case AttrEt:
		return "Et"
	case AttrApoapsis:
		return "ap"
	case AttrPeriapsis:
		return "pe"
	case Attrω:
		return "ω"
	case AttrVt:
		return "vt"
	case AttrN:
		return "n"
	}
	return "?"
}

// Value holds a derived attribute, which is either a scalar or a 3x1 vector.
type Value struct {
	scalar float64
	vec    []float64
}

func scalarValue(s float64) Value {
	return Value{scalar: s}
}

func vectorValue(v []float64) Value {
	return Value{vec: v}
}

// IsVector returns whether this value holds a vector.
func (v Value) IsVector() bool {
	return v.vec != nil
}

// Scalar returns the scalar value. Panics on a vector attribute as that is a
// caller bug, not a data condition.
func (v Value) Scalar() float64 {
	if v.IsVector() {
		panic("scalar access on a vector attribute")
	}
	return v.scalar
}

// Vector returns the vector value. Panics on a scalar attribute.
func (v Value) Vector() []float64 {
	if !v.IsVector() {
		panic("vector access on a scalar attribute")
	}
	return v.vec
}

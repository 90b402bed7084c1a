package keplerian

import (
	"math"
)

/* Handles the lazy derivation of orbital elements. */

// derivation ties an attribute to its prerequisites and its formula. The
// compute function may assume every prerequisite is already cached.
type derivation struct {
	deps    []Attribute
	compute func(b *OrbitalBody) (Value, error)
}

// derivations is the fixed rule table, in dependency order. Formulas are from
// Vallado (RV2COE, page 113) expressed on the raw state vectors.
var derivations = map[Attribute]derivation{
	AttrR: {nil, func(b *OrbitalBody) (Value, error) {
		return scalarValue(norm(b.R)), nil
	}},
	AttrV: {nil, func(b *OrbitalBody) (Value, error) {
		return scalarValue(norm(b.V)), nil
	}},
	Attrμ: {nil, func(b *OrbitalBody) (Value, error) {
		return scalarValue(b.Origin.μ), nil
	}},
	AttrEk: {[]Attribute{AttrV}, func(b *OrbitalBody) (Value, error) {
		v := b.scalar(AttrV)
		return scalarValue(v * v / 2), nil
	}},
	AttrEp: {[]Attribute{Attrμ, AttrR}, func(b *OrbitalBody) (Value, error) {
		return scalarValue(-b.scalar(Attrμ) / b.scalar(AttrR)), nil
	}},
	Attrξ: {[]Attribute{AttrEk, AttrEp}, func(b *OrbitalBody) (Value, error) {
		return scalarValue(b.scalar(AttrEk) + b.scalar(AttrEp)), nil
	}},
	AttrI: {[]Attribute{AttrR}, func(b *OrbitalBody) (Value, error) {
		r := b.scalar(AttrR)
		return scalarValue(b.Mass * r * r), nil
	}},
	AttrΩ: {[]Attribute{AttrR}, func(b *OrbitalBody) (Value, error) {
		r := b.scalar(AttrR)
		return vectorValue(scale(cross(b.R, b.V), 1/(r*r))), nil
	}},
	AttrL: {[]Attribute{AttrI, AttrΩ}, func(b *OrbitalBody) (Value, error) {
		return vectorValue(scale(b.vector(AttrΩ), b.scalar(AttrI))), nil
	}},
	AttrH: {[]Attribute{AttrL, Attrμ}, func(b *OrbitalBody) (Value, error) {
		return vectorValue(scale(b.vector(AttrL), 1/b.Mass)), nil
	}},
	AttrA: {[]Attribute{Attrμ, Attrξ}, func(b *OrbitalBody) (Value, error) {
		return scalarValue(-b.scalar(Attrμ) / (2 * b.scalar(Attrξ))), nil
	}},
	AttrB: {[]Attribute{AttrA, AttrEcc}, func(b *OrbitalBody) (Value, error) {
		a := b.scalar(AttrA)
		ecc := b.scalar(AttrEcc)
		if ecc > 1 {
			// Hyperbolic branch.
			root, err := sqrtChecked("b", ecc*ecc-1)
			if err != nil {
				return Value{}, err
			}
			return scalarValue(a * root), nil
		}
		root, err := sqrtChecked("b", 1-ecc*ecc)
		if err != nil {
			return Value{}, err
		}
		return scalarValue(a * root), nil
	}},
	AttrEccVec: {[]Attribute{AttrH, Attrμ, AttrR}, func(b *OrbitalBody) (Value, error) {
		h := b.vector(AttrH)
		μ := b.scalar(Attrμ)
		r := b.scalar(AttrR)
		return vectorValue(sub(scale(cross(b.V, h), 1/μ), scale(b.R, 1/r))), nil
	}},
	AttrEcc: {[]Attribute{Attrξ, AttrH, Attrμ}, func(b *OrbitalBody) (Value, error) {
		ξ := b.scalar(Attrξ)
		hvec := b.vector(AttrH)
		μ := b.scalar(Attrμ)
		root, err := sqrtChecked("ecc", 1+2*ξ*dot(hvec, hvec)/(μ*μ))
		if err != nil {
			return Value{}, err
		}
		return scalarValue(root), nil
	}},
	AttrPeriod: {[]Attribute{AttrA, Attrμ}, func(b *OrbitalBody) (Value, error) {
		a := b.scalar(AttrA)
		root, err := sqrtChecked("p", math.Pow(a, 3)/b.scalar(Attrμ))
		if err != nil {
			return Value{}, err
		}
		return scalarValue(2 * math.Pi * root), nil
	}},
	AttrEt: {[]Attribute{AttrA}, func(b *OrbitalBody) (Value, error) {
		Et, err := acosChecked("Et", b.R[0]/b.scalar(AttrA))
		if err != nil {
			return Value{}, err
		}
		return scalarValue(Et), nil
	}},
	AttrApoapsis: {[]Attribute{AttrEcc, AttrA}, func(b *OrbitalBody) (Value, error) {
		return scalarValue((1 + b.scalar(AttrEcc)) * b.scalar(AttrA)), nil
	}},
	AttrPeriapsis: {[]Attribute{AttrEcc, AttrA}, func(b *OrbitalBody) (Value, error) {
		return scalarValue((1 - b.scalar(AttrEcc)) * b.scalar(AttrA)), nil
	}},
	Attrω: {[]Attribute{AttrEccVec}, func(b *OrbitalBody) (Value, error) {
		eccvec := b.vector(AttrEccVec)
		return scalarValue(math.Atan2(eccvec[1], eccvec[0])), nil
	}},
	AttrVt: {nil, func(b *OrbitalBody) (Value, error) {
		return scalarValue(math.Atan2(b.R[1], b.R[0])), nil
	}},
	AttrN: {[]Attribute{Attrμ, AttrA}, func(b *OrbitalBody) (Value, error) {
		root, err := sqrtChecked("n", b.scalar(Attrμ)/math.Pow(b.scalar(AttrA), 3))
		if err != nil {
			return Value{}, err
		}
		return scalarValue(root), nil
	}},
}

// require ensures every requested attribute is cached, deriving missing ones
// through recursive descent with memoization: each attribute is computed
// exactly once per body lifetime, at first use anywhere in the call tree.
// Re-entry on an attribute currently being resolved fails fast instead of
// recursing without bound.
func (b *OrbitalBody) require(attrs ...Attribute) error {
	for _, attr := range attrs {
		if _, ok := b.cache[attr]; ok {
			continue
		}
		rule, ok := derivations[attr]
		if !ok {
			return MissingDerivationError{attr}
		}
		if b.resolving[attr] {
			return CyclicDependencyError{attr}
		}
		b.resolving[attr] = true
		err := b.require(rule.deps...)
		if err == nil {
			var val Value
			if val, err = rule.compute(b); err == nil {
				b.cache[attr] = val
			}
		}
		delete(b.resolving, attr)
		if err != nil {
			return err
		}
	}
	return nil
}

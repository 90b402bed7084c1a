package keplerian

import "fmt"

// MissingDerivationError is returned when an attribute has neither a cached
// value nor a rule in the derivation table.
type MissingDerivationError struct {
	Attr Attribute
}

func (e MissingDerivationError) Error() string {
	return fmt.Sprintf("no derivation rule nor cached value for attribute %s", e.Attr)
}

// CyclicDependencyError is returned when resolving an attribute requires that
// same attribute somewhere down its own prerequisite chain.
type CyclicDependencyError struct {
	Attr Attribute
}

func (e CyclicDependencyError) Error() string {
	return fmt.Sprintf("cyclic dependency detected while deriving attribute %s", e.Attr)
}

// DomainError is returned when a derivation would take a function outside its
// domain (e.g. the square root of a negative number), instead of silently
// returning NaN.
type DomainError struct {
	Op    string  // The derivation or function at fault
	Value float64 // The out-of-domain argument
}

func (e DomainError) Error() string {
	return fmt.Sprintf("%s: argument %g outside function domain", e.Op, e.Value)
}

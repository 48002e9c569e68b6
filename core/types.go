// Package core implements the expression data model, the attribute system,
// the binding environment, and the Flat/Orderless pattern matcher for the
// cardinal rewriting engine.
package core

// Expr is the fundamental interface for all expressions and patterns in
// the system: numbers, symbols, function applications, and the two
// pattern-only variants Blank and BoundPattern.
type Expr interface {
	String() string
	InputForm() string
	Head() Expr
	Equal(rhs Expr) bool

	// Length returns 0 for numbers, symbols and errors, or the number of
	// arguments for a compound (Function) expression. The pattern
	// variants count their own parts: a Blank is 0 unconstrained and 1
	// with a head, a BoundPattern is 2.
	Length() int64

	// IsAtom reports whether the expression is not a compound element.
	IsAtom() bool
}

// Number is implemented by the four numeric variants: Integer, Real,
// Rational, Complex. It lets arithmetic code and the Numeric attribute
// propagation logic work across the tower without a type switch at every
// call site.
type Number interface {
	Expr
	isNumber()
}

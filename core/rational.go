package core

import (
	"fmt"
	"math/big"
)

// Rational is a reduced fraction of two Integers, grounded in
// core/rational.go and core/bigrat.go. Per spec.md §3 invariants, a
// Rational is always in lowest terms with a positive denominator; a
// denominator of 1 collapses to the numerator Integer at construction.
type Rational struct {
	Num Integer
	Den Integer
}

func (Rational) isNumber() {}

var bigOne = big.NewInt(1)

// NewRational builds a reduced Rational from num/den, or returns the bare
// Integer if the fraction reduces to a whole number. den must be nonzero;
// division by zero is a programmer error per spec.md §7 and panics.
func NewRational(num, den Integer) Number {
	if den.IsZero() {
		panic(InternalError{Kind: "DivisionByZero", Message: "Rational denominator is zero"})
	}

	n, d := num.val, den.val

	if g := gcdStein(n, d); g.Sign() != 0 && g.Cmp(bigOne) != 0 {
		n = new(big.Int).Quo(n, g)
		d = new(big.Int).Quo(d, g)
	} else {
		n = new(big.Int).Set(n)
		d = new(big.Int).Set(d)
	}

	reduced := Integer{val: n}
	denom := Integer{val: d}

	// Sign convention: denominator positive, sign carried on numerator.
	if denom.Sign() < 0 {
		reduced = reduced.Neg()
		denom = denom.Neg()
	}

	if denom.Equal(intOne) {
		return reduced
	}
	return Rational{Num: reduced, Den: denom}
}

func (r Rational) String() string {
	return fmt.Sprintf("Rational[%s, %s]", r.Num.String(), r.Den.String())
}

func (r Rational) InputForm() string {
	return r.String()
}

func (r Rational) Head() Expr {
	return symbolRational
}

func (r Rational) Length() int64 {
	return 0
}

func (r Rational) IsAtom() bool {
	return true
}

func (r Rational) Equal(rhs Expr) bool {
	other, ok := rhs.(Rational)
	return ok && r.Num.Equal(other.Num) && r.Den.Equal(other.Den)
}

// Float64 converts the Rational to its nearest double-precision
// approximation, used when promoting to Real in mixed arithmetic.
func (r Rational) Float64() float64 {
	f := new(big.Rat).SetFrac(r.Num.val, r.Den.val)
	v, _ := f.Float64()
	return v
}

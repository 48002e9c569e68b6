package core

import (
	"math"
	"math/big"
)

// Add, Sub, Mul, Neg, Div, and Pow implement the numeric promotion matrix
// from SPEC_FULL.md §4.1: Integer stays Integer (Rational only where a
// division does not come out even), Real is absorbing short of Complex,
// Rational stays Rational against Integer/Rational, and Complex absorbs
// everything. Mirrors the teacher's per-type arithmetic helper methods
// (Integer.Add/Sub/Mul, Rational's big.Rat plumbing) lifted to the Number
// interface so rulepack's Plus/Times/Power lambdas never need a type
// switch of their own.

func asRational(n Number) Rational {
	switch v := n.(type) {
	case Integer:
		return Rational{Num: v, Den: intOne}
	case Rational:
		return v
	default:
		panic(InternalError{Kind: "TypeError", Message: "not an Integer or Rational"})
	}
}

func asFloat64(n Number) float64 {
	switch v := n.(type) {
	case Integer:
		f := new(big.Float).SetInt(v.val)
		r, _ := f.Float64()
		return r
	case Rational:
		return v.Float64()
	case Real:
		return v.Float64()
	default:
		panic(InternalError{Kind: "TypeError", Message: "not a real Number"})
	}
}

// complexParts returns a Number's real and imaginary components, treating
// any non-Complex Number as having a zero imaginary part.
func complexParts(n Number) (Number, Number) {
	if c, ok := n.(Complex); ok {
		return c.Re.(Number), c.Im.(Number)
	}
	return n, intZero
}

// Add implements the commutative sum across the tower.
func Add(a, b Number) Number {
	_, aIsComplex := a.(Complex)
	_, bIsComplex := b.(Complex)
	if aIsComplex || bIsComplex {
		ar, ai := complexParts(a)
		br, bi := complexParts(b)
		return NewComplex(Add(ar, br), Add(ai, bi)).(Number)
	}
	if ri, ok := a.(Real); ok {
		return NewReal(float64(ri) + asFloat64(b))
	}
	if ri, ok := b.(Real); ok {
		return NewReal(asFloat64(a) + float64(ri))
	}
	ra, rb := asRational(a), asRational(b)
	num := ra.Num.Mul(rb.Den).Add(rb.Num.Mul(ra.Den))
	den := ra.Den.Mul(rb.Den)
	return NewRational(num, den)
}

// Mul implements the commutative product across the tower.
func Mul(a, b Number) Number {
	_, aIsComplex := a.(Complex)
	_, bIsComplex := b.(Complex)
	if aIsComplex || bIsComplex {
		ar, ai := complexParts(a)
		br, bi := complexParts(b)
		// (ar+ai*i)(br+bi*i) = (ar*br - ai*bi) + (ar*bi + ai*br)*i
		re := Sub(Mul(ar, br), Mul(ai, bi))
		im := Add(Mul(ar, bi), Mul(ai, br))
		return NewComplex(re, im).(Number)
	}
	if ri, ok := a.(Real); ok {
		return NewReal(float64(ri) * asFloat64(b))
	}
	if ri, ok := b.(Real); ok {
		return NewReal(asFloat64(a) * float64(ri))
	}
	ra, rb := asRational(a), asRational(b)
	return NewRational(ra.Num.Mul(rb.Num), ra.Den.Mul(rb.Den))
}

// Sub is a - b.
func Sub(a, b Number) Number {
	return Add(a, Neg(b))
}

// Neg negates a Number, preserving its type.
func Neg(a Number) Number {
	switch v := a.(type) {
	case Integer:
		return v.Neg()
	case Real:
		return NewReal(-float64(v))
	case Rational:
		return Rational{Num: v.Num.Neg(), Den: v.Den}
	case Complex:
		return NewComplex(Neg(v.Re.(Number)), Neg(v.Im.(Number))).(Number)
	default:
		panic(InternalError{Kind: "TypeError", Message: "Neg of non-Number"})
	}
}

func isZero(n Number) bool {
	switch v := n.(type) {
	case Integer:
		return v.IsZero()
	case Real:
		return v == 0
	case Rational:
		return v.Num.IsZero()
	case Complex:
		return isZero(v.Re.(Number)) && isZero(v.Im.(Number))
	default:
		return false
	}
}

// Div is a / b. Integer/Integer yields Rational unless it divides evenly,
// per the promotion matrix. Division by exact zero is a soft Error Expr
// rather than a panic, since it arises from user expressions (Plus/Times
// rules feeding Power a negative exponent of zero, or an explicit Div)
// rather than from engine misuse.
func Div(a, b Number) Expr {
	if isZero(b) {
		return NewError("DivisionByZero", "division by zero", a, b)
	}
	_, aIsComplex := a.(Complex)
	_, bIsComplex := b.(Complex)
	if aIsComplex || bIsComplex {
		ar, ai := complexParts(a)
		br, bi := complexParts(b)
		denom := Add(Mul(br, br), Mul(bi, bi))
		reNum := Add(Mul(ar, br), Mul(ai, bi))
		imNum := Sub(Mul(ai, br), Mul(ar, bi))
		re := Div(reNum, denom)
		im := Div(imNum, denom)
		reN, reOK := re.(Number)
		imN, imOK := im.(Number)
		if !reOK || !imOK {
			return NewError("DivisionByZero", "division by zero", a, b)
		}
		return NewComplex(reN, imN)
	}
	if ri, ok := a.(Real); ok {
		return NewReal(float64(ri) / asFloat64(b))
	}
	if ri, ok := b.(Real); ok {
		return NewReal(asFloat64(a) / float64(ri))
	}
	ra, rb := asRational(a), asRational(b)
	return NewRational(ra.Num.Mul(rb.Den), ra.Den.Mul(rb.Num))
}

// Pow implements integer exponentiation by squaring; a negative integer
// exponent inverts the result via Div, and any non-integer exponent falls
// back to float64 math.Pow (rulepack's Power rule only calls in with an
// Integer base and a non-negative Integer exponent).
func Pow(base, exp Number) Expr {
	if ie, ok := exp.(Integer); ok && ie.val.IsInt64() {
		n := ie.val.Int64()
		if n >= 0 {
			return powIntExp(base, n)
		}
		pos := powIntExp(base, -n)
		return Div(NewInteger(1), pos)
	}
	return NewReal(math.Pow(asFloat64(base), asFloat64(exp)))
}

func powIntExp(base Number, n int64) Number {
	result := Number(NewInteger(1))
	b := base
	for n > 0 {
		if n&1 == 1 {
			result = Mul(result, b)
		}
		b = Mul(b, b)
		n >>= 1
	}
	return result
}

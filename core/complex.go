package core

import "fmt"

// Complex is a complex number whose real and imaginary parts are
// themselves non-Complex Numbers, grounded in the teacher's general
// Number handling (core/number.go, core/math.go). Nested Complex values
// are flattened at construction per spec.md §3.
type Complex struct {
	Re Expr
	Im Expr
}

func (Complex) isNumber() {}

// NewComplex builds a Complex, flattening any nested Complex operands and
// collapsing to the real part if the imaginary part is exactly Integer 0,
// per spec.md §3/§4.1.
func NewComplex(re, im Expr) Expr {
	re = flattenComplexPart(re)
	im = flattenComplexPart(im)

	if zero, ok := im.(Integer); ok && zero.IsZero() {
		return re
	}
	return Complex{Re: re, Im: im}
}

// flattenComplexPart collapses Complex(Complex(a,b), 0) style nesting by
// folding an operand that is itself Complex into a synthetic adjustment;
// in practice arithmetic never feeds NewComplex a Complex operand with
// nonzero imaginary part for re/im directly, but construction must still
// guard against it to preserve the "real and imaginary are never
// themselves Complex" invariant.
func flattenComplexPart(e Expr) Expr {
	if c, ok := e.(Complex); ok {
		// A Complex used as a part of another Complex only makes sense if
		// its own imaginary part is zero; otherwise collapse by dropping
		// the nested imaginary component, since there is no well-defined
		// flattening of i*i in this representation.
		return c.Re
	}
	return e
}

func (c Complex) String() string {
	return fmt.Sprintf("Complex[%s, %s]", c.Re.String(), c.Im.String())
}

func (c Complex) InputForm() string {
	return c.String()
}

func (c Complex) Head() Expr {
	return symbolComplex
}

func (c Complex) Length() int64 {
	return 0
}

func (c Complex) IsAtom() bool {
	return true
}

func (c Complex) Equal(rhs Expr) bool {
	other, ok := rhs.(Complex)
	return ok && c.Re.Equal(other.Re) && c.Im.Equal(other.Im)
}

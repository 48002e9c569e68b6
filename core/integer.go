package core

import "math/big"

// Integer is an arbitrary-precision integer, grounded in the teacher's
// core/bigint.go bigInt type, which itself wraps math/big.Int.
type Integer struct {
	val *big.Int
}

func (Integer) isNumber() {}

// NewInteger wraps a machine int64 as an Integer.
func NewInteger(n int64) Integer {
	return Integer{val: big.NewInt(n)}
}

// NewIntegerFromBig wraps an existing *big.Int. The caller must not
// mutate v afterwards; Integer values are treated as immutable.
func NewIntegerFromBig(v *big.Int) Integer {
	return Integer{val: v}
}

var intZero = NewInteger(0)
var intOne = NewInteger(1)

func (i Integer) Big() *big.Int {
	return i.val
}

func (i Integer) String() string {
	return i.val.String()
}

func (i Integer) InputForm() string {
	return i.String()
}

func (i Integer) Head() Expr {
	return symbolInteger
}

func (i Integer) Length() int64 {
	return 0
}

func (i Integer) IsAtom() bool {
	return true
}

func (i Integer) Equal(rhs Expr) bool {
	other, ok := rhs.(Integer)
	if !ok {
		return false
	}
	return i.val.Cmp(other.val) == 0
}

// Sign returns -1, 0, or 1.
func (i Integer) Sign() int {
	return i.val.Sign()
}

func (i Integer) IsZero() bool {
	return i.val.Sign() == 0
}

func (i Integer) Neg() Integer {
	return Integer{val: new(big.Int).Neg(i.val)}
}

func (i Integer) Add(o Integer) Integer {
	return Integer{val: new(big.Int).Add(i.val, o.val)}
}

func (i Integer) Sub(o Integer) Integer {
	return Integer{val: new(big.Int).Sub(i.val, o.val)}
}

func (i Integer) Mul(o Integer) Integer {
	return Integer{val: new(big.Int).Mul(i.val, o.val)}
}

// QuoRem performs truncated-toward-zero division, returning quotient and
// remainder such that i == q*o + r.
func (i Integer) QuoRem(o Integer) (q, r Integer) {
	qq, rr := new(big.Int), new(big.Int)
	qq.QuoRem(i.val, o.val, rr)
	return Integer{val: qq}, Integer{val: rr}
}

func (i Integer) Cmp(o Integer) int {
	return i.val.Cmp(o.val)
}

// gcdStein computes gcd(|a|, |b|) using the binary (Stein) algorithm, as
// required by spec.md §4.1 for Rational reduction, rather than delegating
// to math/big.Int.GCD (Euclidean).
func gcdStein(a, b *big.Int) *big.Int {
	u := new(big.Int).Abs(a)
	v := new(big.Int).Abs(b)

	if u.Sign() == 0 {
		return v
	}
	if v.Sign() == 0 {
		return u
	}

	shift := 0
	tmp := new(big.Int)
	for u.Bit(0) == 0 && v.Bit(0) == 0 {
		u.Rsh(u, 1)
		v.Rsh(v, 1)
		shift++
	}
	for u.Bit(0) == 0 {
		u.Rsh(u, 1)
	}
	for v.Sign() != 0 {
		for v.Bit(0) == 0 {
			v.Rsh(v, 1)
		}
		if u.Cmp(v) > 0 {
			u, v = v, u
		}
		v.Sub(v, u)
	}
	return tmp.Lsh(u, uint(shift))
}

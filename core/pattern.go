package core

import "fmt"

// Blank matches any expression, or (if Of is non-nil) any expression
// whose head equals Of. It is a pattern-only Expr variant per spec.md §3.
type Blank struct {
	Of Expr // nil means unconstrained
}

// NewBlank creates an unconstrained Blank.
func NewBlank() Blank {
	return Blank{}
}

// NewBlankOf creates a Blank constrained to expressions whose head
// equals of.
func NewBlankOf(of Expr) Blank {
	return Blank{Of: of}
}

func (b Blank) String() string {
	if b.Of == nil {
		return "Blank[]"
	}
	return fmt.Sprintf("Blank[%s]", b.Of.String())
}

func (b Blank) InputForm() string {
	return b.String()
}

func (b Blank) Head() Expr {
	return NewSymbol("Blank")
}

func (b Blank) Length() int64 {
	if b.Of == nil {
		return 0
	}
	return 1
}

func (b Blank) IsAtom() bool {
	return true
}

func (b Blank) Equal(rhs Expr) bool {
	other, ok := rhs.(Blank)
	if !ok {
		return false
	}
	if b.Of == nil || other.Of == nil {
		return b.Of == nil && other.Of == nil
	}
	return b.Of.Equal(other.Of)
}

// Matches reports whether expr satisfies this Blank's head constraint,
// ignoring any variable binding (spec.md §4.3 atomic pattern rule).
func (b Blank) Matches(expr Expr) bool {
	if b.Of == nil {
		return true
	}
	return b.Of.Equal(expr.Head())
}

// BoundPattern names a sub-pattern; matching records the binding and
// enforces linear-pattern-with-repetition semantics: a name already bound
// must match an equal expression.
type BoundPattern struct {
	Name string
	Base Expr
}

// NewBoundPattern creates a BoundPattern.
func NewBoundPattern(name string, base Expr) BoundPattern {
	return BoundPattern{Name: name, Base: base}
}

func (p BoundPattern) String() string {
	return fmt.Sprintf("Pattern[%s, %s]", p.Name, p.Base.String())
}

func (p BoundPattern) InputForm() string {
	return p.String()
}

func (p BoundPattern) Head() Expr {
	return NewSymbol("Pattern")
}

func (p BoundPattern) Length() int64 {
	return 2
}

func (p BoundPattern) IsAtom() bool {
	return false
}

func (p BoundPattern) Equal(rhs Expr) bool {
	other, ok := rhs.(BoundPattern)
	return ok && p.Name == other.Name && p.Base.Equal(other.Base)
}

// IsPattern reports whether e contains pattern-only variants anywhere in
// its tree (used by the Orderless constant-pattern pre-filter to decide
// whether a sub-pattern is "constant": no pattern variables and no
// Blanks, per spec.md §4.3).
func IsPattern(e Expr) bool {
	switch v := e.(type) {
	case Blank, BoundPattern:
		return true
	case Function:
		if IsPattern(v.head) {
			return true
		}
		for _, a := range v.args {
			if IsPattern(a) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

package core

import (
	"sort"
	"strings"
)

// Function is an n-ary function application, grounded in the teacher's
// core/list.go List type, generalized so the head may be any Expr (not
// just a Symbol name) per spec.md §3's "head is usually a Symbol but may
// itself be any expression (curried/higher-order)".
type Function struct {
	head  Expr
	args  Sequence
	attrs Attributes
}

// NewFunction constructs a Function against the package-level default
// attribute table. Use NewFunctionIn for Kernel-scoped attribute tables.
func NewFunction(head Expr, args ...Expr) Expr {
	return NewFunctionIn(DefaultAttributeTable, head, args...)
}

// NewFunctionIn runs the full construction-time normalization pipeline
// from spec.md §4.1 against the given attribute table:
//  1. attach the attribute set
//  2. flatten (Flat)
//  3. sort into canonical order (Orderless)
//  4. collapse f(x) to x (OneIdentity, applied structurally per
//     DESIGN.md's open-question-5 decision)
//  5. propagate Numeric
func NewFunctionIn(table *AttributeTable, head Expr, args ...Expr) Expr {
	attrs := headAttributes(table, head)

	seq := make(Sequence, len(args))
	copy(seq, args)

	if attrs.Has(Flat) {
		seq = flattenFlat(head, seq)
	}
	if attrs.Has(Orderless) {
		seq = sortOrderless(seq)
	}
	if attrs.Has(OneIdentity) && len(seq) == 1 {
		return seq[0]
	}
	if attrs.Has(NumericFunction) && allNumeric(seq) {
		attrs = attrs.With(Numeric)
	}

	return Function{head: head, args: seq, attrs: attrs}
}

// NewPatternFunction builds a Function tree for use as a pattern or
// replacement template, skipping the construction-time normalization
// pipeline. A pattern is not an algebraic value subject to Flat/
// Orderless/OneIdentity laws — matching already explores every
// Orderless permutation and Flat grouping on its own, and flattening or
// reordering a pattern's own argument list at construction would only
// obscure which bound variable occupies which position.
func NewPatternFunction(head Expr, args ...Expr) Function {
	seq := make(Sequence, len(args))
	copy(seq, args)
	return Function{head: head, args: seq}
}

// headAttributes implements spec.md §4.1 step 1: a Symbol head consults
// the attribute table directly; any other head (e.g. a curried Function
// expression) inherits the attributes already baked into that head value.
func headAttributes(table *AttributeTable, head Expr) Attributes {
	switch h := head.(type) {
	case Symbol:
		return h.Attributes(table)
	case Function:
		return h.attrs
	default:
		return 0
	}
}

// flattenFlat splices same-head Function children into the argument list,
// per spec.md §4.1 step 2 / the Flat invariant in §3.
func flattenFlat(head Expr, args Sequence) Sequence {
	out := make(Sequence, 0, len(args))
	for _, a := range args {
		if fn, ok := a.(Function); ok && fn.head.Equal(head) {
			out = append(out, fn.args...)
			continue
		}
		out = append(out, a)
	}
	return out
}

// sortOrderless sorts args into the canonical order from spec.md §3:
// lexicographic on string form, tie-broken by a type ordinal
// Integer < Real < Symbol < Function.
func sortOrderless(args Sequence) Sequence {
	out := make(Sequence, len(args))
	copy(out, args)
	sort.SliceStable(out, func(i, j int) bool {
		return canonicalLess(out[i], out[j])
	})
	return out
}

func allNumeric(args Sequence) bool {
	for _, a := range args {
		if !IsNumeric(a) {
			return false
		}
	}
	return true
}

func (f Function) String() string {
	var b strings.Builder
	b.WriteString(f.head.String())
	b.WriteByte('[')
	for i, a := range f.args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (f Function) InputForm() string {
	var b strings.Builder
	b.WriteString(f.head.InputForm())
	b.WriteByte('[')
	for i, a := range f.args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.InputForm())
	}
	b.WriteByte(']')
	return b.String()
}

func (f Function) Head() Expr {
	return f.head
}

func (f Function) Length() int64 {
	return int64(len(f.args))
}

func (f Function) IsAtom() bool {
	return false
}

// Equal is deep structural equality and deliberately does not compare
// attrs: spec.md §3 states attributes are a function of shape, not state.
func (f Function) Equal(rhs Expr) bool {
	other, ok := rhs.(Function)
	if !ok {
		return false
	}
	if !f.head.Equal(other.head) {
		return false
	}
	if len(f.args) != len(other.args) {
		return false
	}
	for i := range f.args {
		if !f.args[i].Equal(other.args[i]) {
			return false
		}
	}
	return true
}

// Args returns the function's argument sequence.
func (f Function) Args() Sequence {
	return f.args
}

// Attrs returns the attribute set baked in at construction time.
func (f Function) Attrs() Attributes {
	return f.attrs
}

// IsNumeric reports whether e carries the Numeric attribute: every
// Number variant is Numeric by definition, a Symbol is Numeric if the
// default attribute table gives it Numeric or Constant (so Pi and E are
// Numeric through their default Constant attribute), and a Function is
// Numeric iff NumericFunction is set and every argument is Numeric
// (spec.md §3).
func IsNumeric(e Expr) bool {
	switch v := e.(type) {
	case Integer, Real, Rational, Complex:
		return true
	case Symbol:
		return DefaultAttributeTable.Lookup(string(v)).Has(Numeric) || DefaultAttributeTable.Lookup(string(v)).Has(Constant)
	case Function:
		return v.attrs.Has(Numeric)
	default:
		return false
	}
}

package core

//go:generate go run golang.org/x/tools/cmd/stringer -type=Attribute

// Attribute is one flag in a head's attribute set, grounded in
// engine/attribute.go's Mathematica-style Attribute enum from the
// client9/cardinal teacher repo.
type Attribute int

const (
	Flat Attribute = 1 << iota
	Orderless
	OneIdentity
	Numeric
	NumericFunction
	Hold
	Constant
	Protected
)

// Attributes is a bitset of Attribute flags attached to a head.
type Attributes uint16

// Has reports whether the set contains attr.
func (a Attributes) Has(attr Attribute) bool {
	return a&Attributes(attr) != 0
}

// With returns a new set with attr added.
func (a Attributes) With(attr Attribute) Attributes {
	return a | Attributes(attr)
}

// Without returns a new set with attr removed.
func (a Attributes) Without(attr Attribute) Attributes {
	return a &^ Attributes(attr)
}

// Union returns the union of two attribute sets.
func (a Attributes) Union(b Attributes) Attributes {
	return a | b
}

// AttributeTable maps head (symbol) names to their attribute sets. A
// table consults its own custom overrides first, falling back to the
// package-level default table seeded with the attributes spec.md assigns
// by head name. This mirrors the teacher's engine.SymbolTable, but lives
// in core because construction-time normalization (§4.1) needs attribute
// lookups before any Kernel exists.
type AttributeTable struct {
	custom map[string]Attributes
}

// NewAttributeTable creates an attribute table with no custom overrides;
// lookups fall through to the default table.
func NewAttributeTable() *AttributeTable {
	return &AttributeTable{custom: make(map[string]Attributes)}
}

// SetAttributes unions attrs into the table's entry for name.
func (t *AttributeTable) SetAttributes(name string, attrs Attributes) {
	t.custom[name] = t.Lookup(name).Union(attrs)
}

// ClearAttributes removes attrs from the table's entry for name.
func (t *AttributeTable) ClearAttributes(name string, attrs Attributes) {
	cur := t.Lookup(name)
	for _, a := range allAttributes {
		if attrs.Has(a) {
			cur = cur.Without(a)
		}
	}
	t.custom[name] = cur
}

// Lookup returns the attribute set for a head name: the table's own
// override if set, otherwise the global default table, otherwise zero.
func (t *AttributeTable) Lookup(name string) Attributes {
	if t != nil {
		if a, ok := t.custom[name]; ok {
			return a
		}
	}
	return defaultAttributes[name]
}

var allAttributes = []Attribute{Flat, Orderless, OneIdentity, Numeric, NumericFunction, Hold, Constant, Protected}

// defaultAttributes is the spec.md §3 "Default attribute assignments"
// table: Times/Plus/And/Or get Flat+Orderless+OneIdentity, Pi/E get
// Constant. Number variants are not listed here by symbol name: IsNumeric
// treats every Number as Numeric by its Go type, and rulepack's
// ConstantQ treats every Number as Constant the same way.
var defaultAttributes = map[string]Attributes{
	"Times": Attributes(Flat | Orderless | OneIdentity),
	"Plus":  Attributes(Flat | Orderless | OneIdentity),
	"And":   Attributes(Flat | Orderless | OneIdentity),
	"Or":    Attributes(Flat | Orderless | OneIdentity),
	"Pi":    Attributes(Constant),
	"E":     Attributes(Constant),
}

// DefaultAttributeTable is the package-level table used by convenience
// constructors (NewFunction) when no Kernel-scoped table is available,
// e.g. in matcher and bindings unit tests.
var DefaultAttributeTable = NewAttributeTable()

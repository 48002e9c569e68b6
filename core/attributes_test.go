package core

import "testing"

func TestAttributeTableFallsBackToDefaults(t *testing.T) {
	table := NewAttributeTable()
	if !table.Lookup("Plus").Has(Flat) {
		t.Fatalf("Plus should default to Flat")
	}
	if !table.Lookup("Plus").Has(Orderless) {
		t.Fatalf("Plus should default to Orderless")
	}
	if table.Lookup("Unknown") != 0 {
		t.Fatalf("an unregistered head should have no attributes")
	}
}

func TestAttributeTableCustomOverridesDefault(t *testing.T) {
	table := NewAttributeTable()
	table.SetAttributes("Plus", Attributes(Hold))
	attrs := table.Lookup("Plus")
	if !attrs.Has(Hold) {
		t.Fatalf("SetAttributes should union in the new attribute")
	}
	if !attrs.Has(Flat) {
		t.Fatalf("a custom table entry should still carry the default attributes it started from")
	}
}

func TestClearAttributesRemovesOnlyRequested(t *testing.T) {
	table := NewAttributeTable()
	table.SetAttributes("Foo", Attributes(Flat|Orderless))
	table.ClearAttributes("Foo", Attributes(Flat))

	attrs := table.Lookup("Foo")
	if attrs.Has(Flat) {
		t.Fatalf("Flat should have been cleared")
	}
	if !attrs.Has(Orderless) {
		t.Fatalf("Orderless should remain set")
	}
}

func TestAttributesWithAndWithout(t *testing.T) {
	a := Attributes(0).With(Flat).With(Orderless)
	if !a.Has(Flat) || !a.Has(Orderless) {
		t.Fatalf("With should set both bits")
	}
	b := a.Without(Flat)
	if b.Has(Flat) {
		t.Fatalf("Without should clear Flat")
	}
	if !b.Has(Orderless) {
		t.Fatalf("Without should leave Orderless untouched")
	}
}

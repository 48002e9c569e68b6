package core

import "testing"

func TestSubstituteReplacesBoundSymbol(t *testing.T) {
	table := NewAttributeTable()
	env := EmptyBindings().Bind("a", NewInteger(5))
	template := NewPatternFunction(NewSymbol("Foo"), NewSymbol("a"))

	got := Substitute(table, template, env)
	want := NewFunctionIn(table, NewSymbol("Foo"), NewInteger(5))
	if !got.Equal(want) {
		t.Fatalf("Substitute(Foo[a], {a:5}) = %s, want %s", got.String(), want.String())
	}
}

func TestSubstituteLeavesUnboundSymbolsAlone(t *testing.T) {
	table := NewAttributeTable()
	env := EmptyBindings()
	got := Substitute(table, NewSymbol("x"), env)
	if !got.Equal(NewSymbol("x")) {
		t.Fatalf("Substitute(x, {}) = %s, want x", got.String())
	}
}

func TestSubstituteReconstructsThroughNormalization(t *testing.T) {
	table := NewAttributeTable()
	table.SetAttributes("Pool", Attributes(Orderless))

	env := EmptyBindings().Bind("a", NewSymbol("z")).Bind("b", NewInteger(1))
	template := NewPatternFunction(NewSymbol("Pool"), NewSymbol("a"), NewSymbol("b"))

	got := Substitute(table, template, env)
	fn, ok := got.(Function)
	if !ok {
		t.Fatalf("expected a Function, got %T", got)
	}
	// Orderless re-sorts after substitution: Integer 1 sorts before Symbol z.
	if !fn.Args()[0].Equal(NewInteger(1)) {
		t.Fatalf("substituted Pool args = %v, want Integer 1 first under canonical order", fn.Args())
	}
}

func TestSubstituteIsPure(t *testing.T) {
	table := NewAttributeTable()
	env := EmptyBindings().Bind("a", NewInteger(1))
	template := NewPatternFunction(NewSymbol("Foo"), NewSymbol("a"))

	_ = Substitute(table, template, env)
	if len(template.Args()) != 1 || !template.Args()[0].Equal(NewSymbol("a")) {
		t.Fatalf("Substitute mutated its template: %s", template.String())
	}
}

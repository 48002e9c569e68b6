package core

import "testing"

func collectMatches(t *testing.T, pattern, expr Expr) []Bindings {
	t.Helper()
	var results []Bindings
	for env := range Match(pattern, expr, EmptyBindings()) {
		results = append(results, env)
	}
	return results
}

func TestMatchOrderedArgs(t *testing.T) {
	pattern := NewPatternFunction(NewSymbol("Foo"), NewBoundPattern("a", NewBlank()), NewBoundPattern("b", NewBlank()))
	expr := NewFunction(NewSymbol("Foo"), NewInteger(1), NewInteger(2))

	results := collectMatches(t, pattern, expr)
	if len(results) != 1 {
		t.Fatalf("got %d matches, want 1", len(results))
	}
	a, _ := results[0].Lookup("a")
	b, _ := results[0].Lookup("b")
	if !a.Equal(NewInteger(1)) || !b.Equal(NewInteger(2)) {
		t.Fatalf("bindings = a:%s b:%s, want a:1 b:2", a, b)
	}
}

func TestMatchOrderedArgsArityMismatchFails(t *testing.T) {
	pattern := NewPatternFunction(NewSymbol("Foo"), NewBlank())
	expr := NewFunction(NewSymbol("Foo"), NewInteger(1), NewInteger(2))
	if results := collectMatches(t, pattern, expr); len(results) != 0 {
		t.Fatalf("got %d matches, want 0", len(results))
	}
}

func TestMatchRepeatedVariableEnforcesEquality(t *testing.T) {
	pattern := NewPatternFunction(NewSymbol("Foo"), NewBoundPattern("a", NewBlank()), NewBoundPattern("a", NewBlank()))

	ok := NewFunction(NewSymbol("Foo"), NewInteger(5), NewInteger(5))
	if results := collectMatches(t, pattern, ok); len(results) != 1 {
		t.Fatalf("Foo[5,5] against Foo[a_,a_]: got %d matches, want 1", len(results))
	}

	bad := NewFunction(NewSymbol("Foo"), NewInteger(5), NewInteger(6))
	if results := collectMatches(t, pattern, bad); len(results) != 0 {
		t.Fatalf("Foo[5,6] against Foo[a_,a_]: got %d matches, want 0", len(results))
	}
}

func TestMatchBlankOf(t *testing.T) {
	table := NewAttributeTable()
	pattern := NewBlankOf(NewSymbol("Integer"))

	if _, ok := FirstMatch(table, pattern, NewInteger(3), EmptyBindings()); !ok {
		t.Fatalf("Blank[Integer] should match an Integer")
	}
	if _, ok := FirstMatch(table, pattern, NewSymbol("x"), EmptyBindings()); ok {
		t.Fatalf("Blank[Integer] should not match a Symbol")
	}
}

func TestMatchOrderlessEnumeratesAllPermutations(t *testing.T) {
	table := NewAttributeTable()
	table.SetAttributes("Commut", Attributes(Orderless))

	pattern := NewPatternFunction(NewSymbol("Commut"), NewBoundPattern("a", NewBlank()), NewInteger(2))
	expr := NewFunctionIn(table, NewSymbol("Commut"), NewInteger(2), NewSymbol("x"))

	results := []Bindings{}
	for env := range MatchIn(table, pattern, expr, EmptyBindings()) {
		results = append(results, env)
	}
	if len(results) == 0 {
		t.Fatalf("expected at least one match for Commut[a_,2] against Commut[2,x]")
	}
	a, _ := results[0].Lookup("a")
	if !a.Equal(NewSymbol("x")) {
		t.Fatalf("a bound to %s, want x", a)
	}

	// With no constant to peel off, both orderings of Commut[x,y] match.
	twoVars := NewPatternFunction(NewSymbol("Commut"), NewBoundPattern("a", NewBlank()), NewBoundPattern("b", NewBlank()))
	pair := NewFunctionIn(table, NewSymbol("Commut"), NewSymbol("x"), NewSymbol("y"))
	count := 0
	for range MatchIn(table, twoVars, pair, EmptyBindings()) {
		count++
	}
	if count != 2 {
		t.Fatalf("Commut[a_,b_] against Commut[x,y]: got %d matches, want 2 (one per permutation)", count)
	}
}

func TestMatchFlatPartitionsContiguousGroups(t *testing.T) {
	table := NewAttributeTable()
	table.SetAttributes("Chain", Attributes(Flat))

	pattern := NewPatternFunction(NewSymbol("Chain"),
		NewBoundPattern("a", NewBlank()),
		NewBoundPattern("b", NewBlank()),
	)
	expr := NewFunctionIn(table, NewSymbol("Chain"), NewInteger(1), NewInteger(2), NewInteger(3))

	var matched []Bindings
	for env := range MatchIn(table, pattern, expr, EmptyBindings()) {
		matched = append(matched, env)
	}
	if len(matched) == 0 {
		t.Fatalf("expected at least one Flat partition match")
	}
	// Every match must partition {1,2,3} into two contiguous non-overlapping
	// groups whose concatenation (in some grouping) recovers the sequence.
	for _, env := range matched {
		a, _ := env.Lookup("a")
		b, _ := env.Lookup("b")
		if a == nil || b == nil {
			t.Fatalf("incomplete binding: a=%v b=%v", a, b)
		}
		if rebuilt := NewFunctionIn(table, NewSymbol("Chain"), a, b); !rebuilt.Equal(expr) {
			t.Fatalf("groups a=%s b=%s do not concatenate back to %s", a, b, expr)
		}
	}
}

func TestMatchFlatOrderlessCombined(t *testing.T) {
	table := NewAttributeTable()
	table.SetAttributes("Pool", Attributes(Flat|Orderless))

	pattern := NewPatternFunction(NewSymbol("Pool"),
		NewBoundPattern("a", NewBlankOf(NewSymbol("Integer"))),
		NewBoundPattern("b", NewBlank()),
	)
	expr := NewFunctionIn(table, NewSymbol("Pool"), NewSymbol("x"), NewInteger(7), NewSymbol("y"))

	found := false
	for env := range MatchIn(table, pattern, expr, EmptyBindings()) {
		a, _ := env.Lookup("a")
		if a.Equal(NewInteger(7)) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected some match binding the Integer-constrained variable to 7")
	}
}

func TestMatchConstantPatternPreFilterFailsWhenNoPartner(t *testing.T) {
	table := NewAttributeTable()
	table.SetAttributes("Pool", Attributes(Orderless))

	pattern := NewPatternFunction(NewSymbol("Pool"), NewInteger(99), NewBoundPattern("a", NewBlank()))
	expr := NewFunctionIn(table, NewSymbol("Pool"), NewInteger(1), NewInteger(2))

	if results := collectMatches(t, pattern, expr); len(results) != 0 {
		t.Fatalf("got %d matches, want 0 (no operand equals the constant 99)", len(results))
	}
}

func TestFirstMatchShortCircuits(t *testing.T) {
	table := NewAttributeTable()
	pattern := NewBoundPattern("a", NewBlank())
	env, ok := FirstMatch(table, pattern, NewInteger(42), EmptyBindings())
	if !ok {
		t.Fatalf("expected a match")
	}
	a, _ := env.Lookup("a")
	if !a.Equal(NewInteger(42)) {
		t.Fatalf("a = %s, want 42", a)
	}
}

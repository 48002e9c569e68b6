package core

import "testing"

func TestBindingsBindAndLookup(t *testing.T) {
	b := EmptyBindings().Bind("x", NewInteger(1))
	v, ok := b.Lookup("x")
	if !ok || !v.Equal(NewInteger(1)) {
		t.Fatalf("Lookup(x) = %v, %v; want 1, true", v, ok)
	}
	if _, ok := b.Lookup("y"); ok {
		t.Fatalf("Lookup(y) should be absent")
	}
}

func TestBindingsBindDoesNotMutateOriginal(t *testing.T) {
	b0 := EmptyBindings().Bind("x", NewInteger(1))
	b1 := b0.Bind("x", NewInteger(2))

	v0, _ := b0.Lookup("x")
	v1, _ := b1.Lookup("x")
	if !v0.Equal(NewInteger(1)) {
		t.Fatalf("original binding was mutated: got %s", v0)
	}
	if !v1.Equal(NewInteger(2)) {
		t.Fatalf("new binding = %s, want 2", v1)
	}
}

func TestBindingsMustLookupPanicsOnMissing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected a panic for MustLookup on an unbound name")
		}
	}()
	EmptyBindings().MustLookup("missing")
}

func TestBindingsUnionLeftWins(t *testing.T) {
	left := EmptyBindings().Bind("x", NewInteger(1))
	right := EmptyBindings().Bind("x", NewInteger(2)).Bind("y", NewInteger(3))

	u := left.Union(right)
	x, _ := u.Lookup("x")
	y, _ := u.Lookup("y")
	if !x.Equal(NewInteger(1)) {
		t.Fatalf("union x = %s, want 1 (left wins)", x)
	}
	if !y.Equal(NewInteger(3)) {
		t.Fatalf("union y = %s, want 3", y)
	}
	if u.Len() != 2 {
		t.Fatalf("union length = %d, want 2", u.Len())
	}
}

func TestBindingsContains(t *testing.T) {
	b := EmptyBindings().Bind("x", NewInteger(1))
	if !b.Contains("x") {
		t.Fatalf("Contains(x) = false, want true")
	}
	if b.Contains("y") {
		t.Fatalf("Contains(y) = true, want false")
	}
}

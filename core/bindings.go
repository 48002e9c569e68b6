package core

// Bindings is an immutable-from-the-caller's-perspective associative map
// from pattern-variable names to the expressions they were matched
// against, per spec.md §4.2. Extending a Bindings returns a new value;
// the matcher never mutates one it has already handed to a caller.
//
// Grounded in the teacher's PatternBindings map[string]Expr
// (core/match.go), restructured per spec.md §4.2's explicit bind/
// lookup/contains/union contract and open question 3's left-wins union
// policy (the source's Bindings.union iterates in a way that lets two
// values coexist under one name; this implementation enforces one value
// per name).
type Bindings struct {
	m map[string]Expr
}

// EmptyBindings is a Bindings with no entries.
func EmptyBindings() Bindings {
	return Bindings{}
}

// Bind returns a new Bindings with name associated to expr. If name is
// already present, the new value replaces it in the returned copy (the
// pattern matcher itself is responsible for rejecting a rebinding to an
// inconsistent value before calling Bind — see BoundPattern matching).
func (b Bindings) Bind(name string, expr Expr) Bindings {
	out := make(map[string]Expr, len(b.m)+1)
	for k, v := range b.m {
		out[k] = v
	}
	out[name] = expr
	return Bindings{m: out}
}

// Lookup returns the expression bound to name, or (nil, false) if name is
// not present. Per spec.md §7, callers that require the name to exist
// should treat a false return as a hard "missing key" programmer error.
func (b Bindings) Lookup(name string) (Expr, bool) {
	e, ok := b.m[name]
	return e, ok
}

// MustLookup returns the expression bound to name, panicking with an
// InternalError if absent, per spec.md §7's "lookup of unbound name —
// programmer error; fails hard".
func (b Bindings) MustLookup(name string) Expr {
	e, ok := b.m[name]
	if !ok {
		panic(InternalError{Kind: "UnboundName", Message: "no binding for " + name})
	}
	return e
}

// Contains reports whether name has a binding.
func (b Bindings) Contains(name string) bool {
	_, ok := b.m[name]
	return ok
}

// Union returns a new Bindings containing both b's and other's entries.
// On a name clash, b's value wins (left-wins), resolving spec.md §9 open
// question 3 explicitly rather than reproducing the source's dual-
// insertion bug.
func (b Bindings) Union(other Bindings) Bindings {
	out := make(map[string]Expr, len(b.m)+len(other.m))
	for k, v := range other.m {
		out[k] = v
	}
	for k, v := range b.m {
		out[k] = v
	}
	return Bindings{m: out}
}

// Len reports the number of bindings.
func (b Bindings) Len() int {
	return len(b.m)
}

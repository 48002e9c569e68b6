package core

// Substitute replaces every Symbol bound in env with its bound value,
// rebuilding compound expressions through NewFunctionIn so the result is
// re-normalized (re-flattened, re-sorted, re-collapsed) rather than
// patched in place, per spec.md §9 open question 4: substitution is a
// pure reconstruction, never a mutation of the matched expression.
func Substitute(table *AttributeTable, expr Expr, env Bindings) Expr {
	switch e := expr.(type) {
	case Symbol:
		if v, ok := env.Lookup(string(e)); ok {
			return v
		}
		return e

	case Function:
		head := Substitute(table, e.head, env)
		args := make([]Expr, len(e.args))
		for i, a := range e.args {
			args[i] = Substitute(table, a, env)
		}
		return NewFunctionIn(table, head, args...)

	default:
		return e
	}
}

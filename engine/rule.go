// Package engine implements the rewriting kernel: the rule abstraction,
// the fixed-point evaluation driver, and the attribute-aware recursive
// descent that applies rules to an expression and its subterms. Grounded
// in the teacher's engine/evaluator.go Evaluator, restructured per
// SPEC_FULL.md §4.4-4.5 around an explicit Rule/Evaluator interface pair
// instead of a single concrete evaluator type threading a *Context.
package engine

import "github.com/client9/cardinal/core"

// Evaluator is what a Rule's guard or lambda callback is handed back, so
// it can recursively evaluate sub-expressions (e.g. to decide whether an
// argument is already a number) without closing over a package-level
// kernel singleton. Implemented by *Kernel's per-call session, per
// SPEC_FULL.md §9's "pass the kernel explicitly" redesign.
type Evaluator interface {
	// Evaluate rewrites expr to a fixed point, sharing this call's
	// replacement budget and deadline.
	Evaluate(expr core.Expr) core.Expr

	// AttributeTable returns the attribute table this evaluation is
	// running against, for rules and guards that need to inspect or
	// reconstruct expressions consistently with the kernel's attributes.
	AttributeTable() *core.AttributeTable
}

// Guard is a side-condition on a successful pattern match: given the
// bindings a match produced, does the rule actually apply?
type Guard func(env core.Bindings, eval Evaluator) bool

func guardsPass(guards []Guard, env core.Bindings, eval Evaluator) bool {
	for _, g := range guards {
		if !g(env, eval) {
			return false
		}
	}
	return true
}

// Rule rewrites an expression, or reports that it did not apply. A rule
// that matches but whose replacement equals the original (a no-op
// rewrite) still reports changed == true; it is up to the caller's
// fixed-point check to notice the expression stopped moving.
type Rule interface {
	Apply(expr core.Expr, eval Evaluator) (changed bool, result core.Expr)
}

// SubstitutionRule rewrites expr to Replacement with the first match's
// bindings substituted in. Unlike LambdaRule, it does not try further
// matches if the first match's guards fail: per spec.md §4.4 and
// evaluation.py's rule application, a substitution rule whose guard fails
// reports unchanged rather than searching for another match that might
// pass. Grounded in the teacher's declarative rule tables
// (builtin_setup.go); generalized to arbitrary Pattern/Replacement
// expression pairs per spec.md §4.4.
type SubstitutionRule struct {
	Pattern     core.Expr
	Replacement core.Expr
	Guards      []Guard
}

func (r SubstitutionRule) Apply(expr core.Expr, eval Evaluator) (bool, core.Expr) {
	table := eval.AttributeTable()
	for env := range core.MatchIn(table, r.Pattern, expr, core.EmptyBindings()) {
		if !guardsPass(r.Guards, env, eval) {
			return false, expr
		}
		return true, core.Substitute(table, r.Replacement, env)
	}
	return false, expr
}

// LambdaRule rewrites expr by calling a host function with the bindings
// from the first match that passes every Guard, for rewrites Substitute
// cannot express declaratively (arithmetic, differentiation). Fn returns
// ok == false to mean "this match doesn't actually apply after all",
// letting the rule fall through to the next match rather than firing.
type LambdaRule struct {
	Pattern core.Expr
	Fn      func(env core.Bindings, eval Evaluator) (result core.Expr, ok bool)
	Guards  []Guard
}

func (r LambdaRule) Apply(expr core.Expr, eval Evaluator) (bool, core.Expr) {
	table := eval.AttributeTable()
	for env := range core.MatchIn(table, r.Pattern, expr, core.EmptyBindings()) {
		if !guardsPass(r.Guards, env, eval) {
			continue
		}
		if result, ok := r.Fn(env, eval); ok {
			return true, result
		}
	}
	return false, expr
}

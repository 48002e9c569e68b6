// Package rulepack ships the bootstrap rule set: arithmetic, elementary
// calculus, transcendental functions, and propositional logic, grounded
// directly in original_source/initialize_rules.py's rule table and
// translated into engine.SubstitutionRule/engine.LambdaRule values built
// from core pattern/expression constructors, rather than carried over as
// a runtime-parsed DSL.
package rulepack

import (
	"github.com/client9/cardinal/core"
	"github.com/client9/cardinal/engine"
)

// The isXxx predicates are the pure logic behind both the user-visible
// ConstantQ/RealQ/NumberQ/NonNegativeQ/PositiveQ rules installed by
// installPredicates and the internal engine.Guard chains other rules
// (D's ConstantQ(y) guard, Power's NonNegativeQ(b) guard) attach directly
// to a bound variable's name via guardOn/constantGuardOn.

func isConstant(v core.Expr, eval engine.Evaluator) bool {
	switch t := v.(type) {
	case core.Integer, core.Real, core.Rational, core.Complex:
		// Every numeric literal is constant with respect to differentiation,
		// matching original_source/expressions.py's Number defaulting to the
		// Constant attribute alongside Numeric.
		return true
	case core.Symbol:
		return eval.AttributeTable().Lookup(string(t)).Has(core.Constant)
	default:
		return false
	}
}

func isReal(v core.Expr) bool {
	switch t := v.(type) {
	case core.Integer, core.Real, core.Rational:
		return true
	case core.Symbol:
		return t == core.NewSymbol("E") || t == core.NewSymbol("Pi")
	default:
		return false
	}
}

func isNumber(v core.Expr) bool {
	switch v.(type) {
	case core.Integer, core.Real, core.Rational, core.Complex:
		return true
	default:
		return false
	}
}

func isPositiveInt(v core.Expr) bool {
	i, ok := v.(core.Integer)
	return ok && i.Sign() > 0
}

func isNonNegativeInt(v core.Expr) bool {
	i, ok := v.(core.Integer)
	return ok && i.Sign() >= 0
}

// isFree reports whether no subterm of expr (expr included) matches
// pattern, grounding original_source/initialize_rules.py's FreeQ guard.
func isFree(table *core.AttributeTable, expr, pattern core.Expr) bool {
	if _, ok := core.FirstMatch(table, pattern, expr, core.EmptyBindings()); ok {
		return false
	}
	fn, ok := expr.(core.Function)
	if !ok {
		return true
	}
	if !isFree(table, fn.Head(), pattern) {
		return false
	}
	for _, a := range fn.Args() {
		if !isFree(table, a, pattern) {
			return false
		}
	}
	return true
}

// guardOn adapts a predicate over a single Expr into an engine.Guard
// that applies it to the binding named name.
func guardOn(name string, pred func(core.Expr) bool) engine.Guard {
	return func(env core.Bindings, _ engine.Evaluator) bool {
		return pred(env.MustLookup(name))
	}
}

// constantGuardOn is guardOn's counterpart for isConstant, which also
// needs the evaluator's attribute table.
func constantGuardOn(name string) engine.Guard {
	return func(env core.Bindings, eval engine.Evaluator) bool {
		return isConstant(env.MustLookup(name), eval)
	}
}

func boolExpr(b bool) core.Expr {
	if b {
		return core.True
	}
	return core.False
}

package rulepack

import (
	"github.com/client9/cardinal/core"
	"github.com/client9/cardinal/engine"
)

// Install registers the full bootstrap rule set and its supporting
// attributes onto k, in the same order original_source/
// initialize_rules.py builds its kernel: guard predicates first (so
// later rules can guard on them), then arithmetic, calculus,
// transcendental functions, and propositional logic.
func Install(k *engine.Kernel) {
	installPredicates(k)
	installArithmetic(k)
	installCalculus(k)
	installTranscendental(k)
	installLogic(k)
}

// installPredicates exposes ConstantQ/RealQ/NumberQ/PositiveQ/
// NonNegativeQ as ordinary callable rules, not just internal guards, so
// a user expression like ConstantQ[Pi] evaluates the same way D's guard
// chain checks it internally.
func installPredicates(k *engine.Kernel) {
	k.AddRule(engine.LambdaRule{
		Pattern: fn("ConstantQ", bound("a", blank())),
		Fn: func(env core.Bindings, eval engine.Evaluator) (core.Expr, bool) {
			return boolExpr(isConstant(env.MustLookup("a"), eval)), true
		},
	})
	k.AddRule(engine.LambdaRule{
		Pattern: fn("RealQ", bound("a", blank())),
		Fn: func(env core.Bindings, eval engine.Evaluator) (core.Expr, bool) {
			return boolExpr(isReal(env.MustLookup("a"))), true
		},
	})
	k.AddRule(engine.SubstitutionRule{Pattern: fn("RealQ", sym("E")), Replacement: sym("True")})
	k.AddRule(engine.SubstitutionRule{Pattern: fn("RealQ", sym("Pi")), Replacement: sym("True")})

	k.AddRule(engine.LambdaRule{
		Pattern: fn("PositiveQ", bound("a", blankOf("Integer"))),
		Fn: func(env core.Bindings, eval engine.Evaluator) (core.Expr, bool) {
			return boolExpr(isPositiveInt(env.MustLookup("a"))), true
		},
	})
	k.AddRule(engine.LambdaRule{
		Pattern: fn("NonNegativeQ", bound("a", blankOf("Integer"))),
		Fn: func(env core.Bindings, eval engine.Evaluator) (core.Expr, bool) {
			return boolExpr(isNonNegativeInt(env.MustLookup("a"))), true
		},
	})
	k.AddRule(engine.LambdaRule{
		Pattern: fn("NumberQ", bound("a", blank())),
		Fn: func(env core.Bindings, eval engine.Evaluator) (core.Expr, bool) {
			return boolExpr(isNumber(env.MustLookup("a"))), true
		},
	})
	k.AddRule(engine.LambdaRule{
		Pattern: fn("FreeQ", bound("expr", blank()), bound("pattern", blank())),
		Fn: func(env core.Bindings, eval engine.Evaluator) (core.Expr, bool) {
			table := eval.AttributeTable()
			return boolExpr(isFree(table, env.MustLookup("expr"), env.MustLookup("pattern"))), true
		},
	})
}

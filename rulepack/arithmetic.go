package rulepack

import (
	"github.com/client9/cardinal/core"
	"github.com/client9/cardinal/engine"
)

// installArithmetic grounds Plus/Times/Power's numeric collapse and
// algebraic identities in original_source/initialize_rules.py's
// arithmetic block. The Integer-folding rules are LambdaRules (the sum/
// product itself needs core.Add/core.Mul, not a declarative template);
// the algebraic identities (x+0, x*1, x+x, x*Power[x,n], ...) are plain
// SubstitutionRules, unchanged from the source's shape.
func installArithmetic(k *engine.Kernel) {
	// Plus and Times are Flat+Orderless, so a 2- or 3-argument pattern
	// here matches against any two (or three) of an N-ary sum/product's
	// operands, not just a literal first-two — the combinatorial search
	// in core.Match does the picking.
	k.AddRule(engine.LambdaRule{
		Pattern: fn("Plus", bound("a", blankOf("Integer")), bound("b", blankOf("Integer")), bound("c", blank())),
		Fn: func(env core.Bindings, eval engine.Evaluator) (core.Expr, bool) {
			a := env.MustLookup("a").(core.Integer)
			b := env.MustLookup("b").(core.Integer)
			c := env.MustLookup("c")
			sum := core.Add(a, b)
			return core.NewFunctionIn(eval.AttributeTable(), sym("Plus"), sum, c), true
		},
	})
	k.AddRule(engine.LambdaRule{
		Pattern: fn("Plus", bound("a", blankOf("Integer")), bound("b", blankOf("Integer"))),
		Fn: func(env core.Bindings, eval engine.Evaluator) (core.Expr, bool) {
			a := env.MustLookup("a").(core.Integer)
			b := env.MustLookup("b").(core.Integer)
			return core.Add(a, b), true
		},
	})
	k.AddRule(engine.LambdaRule{
		Pattern: fn("Times", bound("a", blankOf("Integer")), bound("b", blankOf("Integer"))),
		Fn: func(env core.Bindings, eval engine.Evaluator) (core.Expr, bool) {
			a := env.MustLookup("a").(core.Integer)
			b := env.MustLookup("b").(core.Integer)
			return core.Mul(a, b), true
		},
	})
	k.AddRule(engine.LambdaRule{
		Pattern: fn("Power", bound("a", blankOf("Integer")), bound("b", blankOf("Integer"))),
		Guards:  []engine.Guard{guardOn("b", isNonNegativeInt)},
		Fn: func(env core.Bindings, eval engine.Evaluator) (core.Expr, bool) {
			a := env.MustLookup("a").(core.Integer)
			b := env.MustLookup("b").(core.Integer)
			return core.Pow(a, b), true
		},
	})

	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Plus", bound("a", blank()), core.NewInteger(0)),
		Replacement: sym("a"),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Plus", bound("a", blank()), fn("Times", bound("b", blank()), bound("a", blank()))),
		Replacement: fn("Times", sym("a"), fn("Plus", sym("b"), core.NewInteger(1))),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Times", blank(), core.NewInteger(0)),
		Replacement: core.NewInteger(0),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Plus", bound("a", blank()), bound("a", blank()), bound("b", blank())),
		Replacement: fn("Plus", sym("b"), fn("Times", sym("a"), core.NewInteger(2))),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Plus", bound("a", blank()), bound("a", blank())),
		Replacement: fn("Times", sym("a"), core.NewInteger(2)),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Times", bound("a", blank()), core.NewInteger(1)),
		Replacement: sym("a"),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Times", bound("a", blank()), bound("a", blank())),
		Replacement: fn("Power", sym("a"), core.NewInteger(2)),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Times", bound("b", blank()), bound("a", blank()), bound("a", blank())),
		Replacement: fn("Times", fn("Power", sym("a"), core.NewInteger(2)), sym("b")),
	})

	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Times", bound("a", blank()), fn("Power", bound("a", blank()), bound("b", blankOf("Integer")))),
		Replacement: fn("Power", sym("a"), fn("Plus", sym("b"), core.NewInteger(1))),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Times", fn("Power", bound("a", blank()), bound("b", blank())), fn("Power", bound("a", blank()), bound("c", blank()))),
		Replacement: fn("Power", sym("a"), fn("Plus", sym("b"), sym("c"))),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Times", bound("z", blank()), bound("a", blank()), fn("Power", bound("a", blank()), bound("b", blankOf("Integer")))),
		Replacement: fn("Times", fn("Power", sym("a"), fn("Plus", sym("b"), core.NewInteger(1))), sym("z")),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Times", bound("z", blank()), fn("Power", bound("a", blank()), bound("b", blank())), fn("Power", bound("a", blank()), bound("c", blank()))),
		Replacement: fn("Times", fn("Power", sym("a"), fn("Plus", sym("b"), sym("c"))), sym("z")),
	})

	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Power", bound("a", blank()), core.NewInteger(1)),
		Replacement: sym("a"),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Power", blank(), core.NewInteger(0)),
		Replacement: core.NewInteger(1),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Power", core.NewInteger(1), blank()),
		Replacement: core.NewInteger(1),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Power", fn("Times", bound("a", blank()), bound("b", blank())), bound("c", blankOf("Integer"))),
		Replacement: fn("Times", fn("Power", sym("a"), sym("c")), fn("Power", sym("b"), sym("c"))),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Power", fn("Power", bound("a", blank()), bound("b", blank())), bound("c", blankOf("Integer"))),
		Replacement: fn("Power", sym("a"), fn("Times", sym("b"), sym("c"))),
	})
}

package rulepack

import (
	"github.com/client9/cardinal/core"
	"github.com/client9/cardinal/engine"
)

// installCalculus grounds the D differentiation rules in
// original_source/initialize_rules.py: the power/product/sum rules
// recurse through D itself rather than computing a derivative directly,
// and the trailing Derivative[1][f] rules supply base cases for the
// built-in transcendental functions plus a generic Derivative[1][f][y]
// fallback for any unary function application.
func installCalculus(k *engine.Kernel) {
	x := bound("x", blankOf("Symbol"))

	k.AddRule(engine.SubstitutionRule{
		Pattern: fn("D", fn("Power", bound("a", blank()), bound("b", blank())), x),
		Replacement: fn("Times",
			fn("Power", sym("a"), sym("b")),
			fn("Plus",
				fn("Times", sym("b"), fn("D", sym("a"), sym("x")), fn("Power", sym("a"), core.NewInteger(-1))),
				fn("Times", fn("D", sym("b"), sym("x")), fn("Log", sym("a"))),
			),
		),
	})

	k.AddRule(engine.SubstitutionRule{
		Pattern: fn("D", fn("Times", bound("a", blank()), bound("b", blank())), x),
		Replacement: fn("Plus",
			fn("Times", fn("D", sym("a"), sym("x")), sym("b")),
			fn("Times", fn("D", sym("b"), sym("x")), sym("a")),
		),
	})

	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("D", fn("Plus", bound("a", blank()), bound("b", blank())), x),
		Replacement: fn("Plus", fn("D", sym("a"), sym("x")), fn("D", sym("b"), sym("x"))),
	})

	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("D", bound("y", blank()), x),
		Replacement: core.NewInteger(0),
		Guards:      []engine.Guard{constantGuardOn("y")},
	})

	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("D", bound("x", blank()), x),
		Replacement: core.NewInteger(1),
	})

	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("D", bound("y", blankOf("Symbol")), x),
		Replacement: core.NewInteger(0),
	})

	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("D", fn("Cos", bound("y", blank())), x),
		Replacement: fn("Times", core.NewInteger(-1), fn("Sin", sym("y")), fn("D", sym("y"), sym("x"))),
	})

	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("D", fn("Log", bound("y", blank())), x),
		Replacement: fn("Times", fn("Power", sym("y"), core.NewInteger(-1)), fn("D", sym("y"), sym("x"))),
	})

	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("D", fnH(bound("f", blank()), bound("y", blank())), x),
		Replacement: fn("Times", fnH(derivative1(sym("f")), sym("y")), fn("D", sym("y"), sym("x"))),
	})

	k.AddRule(engine.SubstitutionRule{Pattern: derivative1(sym("Exp")), Replacement: sym("Exp")})
	k.AddRule(engine.SubstitutionRule{Pattern: derivative1(sym("Sin")), Replacement: sym("Cos")})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fnH(derivative1(sym("Cos")), bound("y", blank())),
		Replacement: fn("Times", core.NewInteger(-1), fn("Sin", sym("y"))),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fnH(derivative1(sym("Log")), bound("y", blank())),
		Replacement: fn("Power", sym("y"), core.NewInteger(-1)),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fnH(derivative1(sym("Log2")), bound("y", blank())),
		Replacement: fn("Power", fn("Times", fn("Log", core.NewInteger(2)), sym("y")), core.NewInteger(-1)),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fnH(derivative1(sym("Log10")), bound("y", blank())),
		Replacement: fn("Power", fn("Times", fn("Log", core.NewInteger(10)), sym("y")), core.NewInteger(-1)),
	})
}

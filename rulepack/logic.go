package rulepack

import "github.com/client9/cardinal/engine"

// installLogic grounds the propositional simplifications in
// original_source/initialize_rules.py's And/Not/Or/Implies/Equivalent
// block. And/Or are Flat+Orderless (default attributes), so each
// two-operand pattern here again matches any pair of operands in a
// wider conjunction/disjunction, not just a literal first two.
func installLogic(k *engine.Kernel) {
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("And", sym("True"), bound("a", blank())),
		Replacement: sym("a"),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("And", sym("False"), blank()),
		Replacement: sym("False"),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("And", bound("a", blank()), fn("Not", bound("a", blank()))),
		Replacement: sym("False"),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("And", bound("a", blank()), bound("a", blank())),
		Replacement: sym("a"),
	})

	k.AddRule(engine.SubstitutionRule{Pattern: fn("Not", sym("True")), Replacement: sym("False")})
	k.AddRule(engine.SubstitutionRule{Pattern: fn("Not", sym("False")), Replacement: sym("True")})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Not", fn("Not", bound("a", blank()))),
		Replacement: sym("a"),
	})

	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Or", sym("True"), bound("a", blank())),
		Replacement: sym("True"),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Or", sym("False"), bound("a", blank())),
		Replacement: sym("a"),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Or", bound("a", blank()), fn("Not", bound("a", blank()))),
		Replacement: sym("True"),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Or", bound("a", blank()), bound("a", blank())),
		Replacement: sym("a"),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Or", bound("a", blank()), fn("And", bound("a", blank()), bound("b", blank())), bound("c", blank())),
		Replacement: fn("Or", sym("a"), sym("c")),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Or", bound("a", blank()), fn("And", fn("Not", bound("a", blank())), bound("b", blank())), bound("c", blank())),
		Replacement: fn("Or", sym("a"), sym("b"), sym("c")),
	})

	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Implies", bound("a", blank()), bound("b", blank())),
		Replacement: fn("Or", fn("Not", sym("a")), sym("b")),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Equivalent", bound("a", blank()), bound("b", blank())),
		Replacement: fn("And", fn("Implies", sym("a"), sym("b")), fn("Implies", sym("b"), sym("a"))),
	})
}

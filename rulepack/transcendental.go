package rulepack

import (
	"github.com/client9/cardinal/core"
	"github.com/client9/cardinal/engine"
)

// installTranscendental grounds the Log/Log2/Log10/Exp/Sin/Sqrt rules in
// original_source/initialize_rules.py: Log[E^a] collapses under a RealQ
// guard (matching scenario 10's "a real exponent" requirement), the
// Log2/Log10 family reduces to Log with a change-of-base factor, and
// Sqrt is pure sugar for Power[a, Rational[1,2]].
func installTranscendental(k *engine.Kernel) {
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Log", fn("Power", sym("E"), bound("a", blank()))),
		Replacement: sym("a"),
		Guards:      []engine.Guard{guardOn("a", isReal)},
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Log", core.NewInteger(1)),
		Replacement: core.NewInteger(0),
	})
	k.AddRule(engine.SubstitutionRule{Pattern: fn("Log", sym("E")), Replacement: core.NewInteger(1)})
	k.AddRule(engine.SubstitutionRule{
		Pattern: fn("Log", bound("a", blank()), bound("b", blank())),
		Replacement: fn("Times",
			fn("Log", sym("b")),
			fn("Power", fn("Log", sym("a")), core.NewInteger(-1)),
		),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern: fn("Log10", bound("a", blank())),
		Replacement: fn("Times",
			fn("Log", sym("a")),
			fn("Power", fn("Log", core.NewInteger(10)), core.NewInteger(-1)),
		),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern: fn("Log2", bound("a", blank())),
		Replacement: fn("Times",
			fn("Log", sym("a")),
			fn("Power", fn("Log", core.NewInteger(2)), core.NewInteger(-1)),
		),
	})

	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Exp", bound("a", blank())),
		Replacement: fn("Power", sym("E"), sym("a")),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Power", sym("E"), fn("Log", bound("a", blank()))),
		Replacement: sym("a"),
	})

	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Sin", fn("Times", blankOf("Integer"), sym("Pi"))),
		Replacement: core.NewInteger(0),
	})
	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Sin", sym("Pi")),
		Replacement: core.NewInteger(0),
	})

	k.AddRule(engine.SubstitutionRule{
		Pattern:     fn("Sqrt", bound("a", blank())),
		Replacement: fn("Power", sym("a"), core.NewRational(core.NewInteger(1), core.NewInteger(2))),
	})
}

package rulepack_test

import (
	"testing"

	"github.com/client9/cardinal/core"
	"github.com/client9/cardinal/engine"
	"github.com/client9/cardinal/rulepack"
)

func newTestKernel() *engine.Kernel {
	k := engine.NewKernel(engine.Config{})
	rulepack.Install(k)
	return k
}

func sym(name string) core.Expr { return core.NewSymbol(name) }
func fn(head string, args ...core.Expr) core.Expr {
	return core.NewFunction(core.NewSymbol(head), args...)
}
func num(n int64) core.Expr { return core.NewInteger(n) }

// The twelve end-to-end scenarios from spec.md §8's table, each checked
// by structural equality against an expression built through the same
// NewFunction construction pipeline (so canonical Orderless ordering
// never has to be predicted by hand).
func TestEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name string
		expr core.Expr
		want core.Expr
	}{
		{"plus-integers", fn("Plus", num(2), num(3)), num(5)},
		{"times-integers", fn("Times", num(2), num(3)), num(6)},
		{"power-integers", fn("Power", num(2), num(3)), num(8)},
		{"plus-identity", fn("Plus", sym("a"), num(0)), sym("a")},
		{"times-zero", fn("Times", sym("x"), num(0)), num(0)},
		{"plus-doubling", fn("Plus", sym("a"), sym("a")), fn("Times", sym("a"), num(2))},
		{"times-squaring", fn("Times", sym("a"), sym("a")), fn("Power", sym("a"), num(2))},
		{
			"derivative-through-plus-and-constants",
			fn("D", fn("Plus", sym("a"), sym("c"), sym("c"), sym("c"), sym("c")), sym("a")),
			num(1),
		},
		{
			// Exp[a_] -> Power[E, a] (transcendental.go, unconditional, matching
			// initialize_rules.py:92) fires during the descent phase on every
			// Exp[Plus[1,a]] subterm before the outer Times is reassembled, so
			// the chain rule's own Exp factor is expanded too: the original
			// produces the same Power[E, _] form for this scenario.
			"derivative-chain-rule",
			fn("D", fn("Sin", fn("Exp", fn("Plus", num(1), sym("a")))), sym("a")),
			fn("Times",
				fn("Cos", fn("Power", sym("E"), fn("Plus", num(1), sym("a")))),
				fn("Power", sym("E"), fn("Plus", num(1), sym("a"))),
			),
		},
		{
			"sqrt-sugar",
			fn("Sqrt", sym("x")),
			fn("Power", sym("x"), core.NewRational(core.NewInteger(1), core.NewInteger(2))),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k := newTestKernel()
			got := k.Evaluate(c.expr)
			if !got.Equal(c.want) {
				t.Fatalf("Evaluate(%s) = %s, want %s", c.expr.String(), got.String(), c.want.String())
			}
		})
	}
}

// Log[E^x] only collapses to x when x satisfies the RealQ guard: scenario
// 10's case, demonstrated with an actual real exponent (an Integer).
func TestLogPowerERequiresRealGuard(t *testing.T) {
	k := newTestKernel()
	got := k.Evaluate(fn("Log", fn("Power", sym("E"), num(5))))
	if !got.Equal(num(5)) {
		t.Fatalf("Log[E^5] = %s, want 5", got.String())
	}
}

func TestLogPowerEWithoutRealGuardDoesNotCollapse(t *testing.T) {
	k := newTestKernel()
	expr := fn("Log", fn("Power", sym("E"), sym("y")))
	got := k.Evaluate(expr)
	if !got.Equal(expr) {
		t.Fatalf("Log[E^y] with no RealQ fact = %s, want unchanged %s", got.String(), expr.String())
	}
}

func TestPropositionalLogic(t *testing.T) {
	k := newTestKernel()

	if got := k.Evaluate(fn("And", sym("True"), sym("a"))); !got.Equal(sym("a")) {
		t.Fatalf("And[True,a] = %s, want a", got.String())
	}
	if got := k.Evaluate(fn("And", sym("False"), sym("a"))); !got.Equal(sym("False")) {
		t.Fatalf("And[False,a] = %s, want False", got.String())
	}
	if got := k.Evaluate(fn("Not", fn("Not", sym("a")))); !got.Equal(sym("a")) {
		t.Fatalf("Not[Not[a]] = %s, want a", got.String())
	}
}

func TestConstantQOnNumberLiterals(t *testing.T) {
	k := newTestKernel()
	if got := k.Evaluate(fn("ConstantQ", num(5))); !got.Equal(sym("True")) {
		t.Fatalf("ConstantQ[5] = %s, want True", got.String())
	}
	if got := k.Evaluate(fn("ConstantQ", sym("x"))); !got.Equal(sym("False")) {
		t.Fatalf("ConstantQ[x] = %s, want False", got.String())
	}
	if got := k.Evaluate(fn("ConstantQ", sym("Pi"))); !got.Equal(sym("True")) {
		t.Fatalf("ConstantQ[Pi] = %s, want True", got.String())
	}
}

// A literal Integer operand under D must differentiate to 0 via the
// ConstantQ guard, not merely a Symbol one.
func TestDerivativeOfIntegerLiteral(t *testing.T) {
	k := newTestKernel()
	got := k.Evaluate(fn("D", num(7), sym("x")))
	if !got.Equal(num(0)) {
		t.Fatalf("D[7,x] = %s, want 0", got.String())
	}
}

func TestDerivativeOfSameVariable(t *testing.T) {
	k := newTestKernel()
	got := k.Evaluate(fn("D", sym("x"), sym("x")))
	if !got.Equal(num(1)) {
		t.Fatalf("D[x,x] = %s, want 1", got.String())
	}
}

func TestDerivativeOfOtherSymbol(t *testing.T) {
	k := newTestKernel()
	got := k.Evaluate(fn("D", sym("y"), sym("x")))
	if !got.Equal(num(0)) {
		t.Fatalf("D[y,x] = %s, want 0", got.String())
	}
}

func TestNumberQAndRealQ(t *testing.T) {
	k := newTestKernel()
	if got := k.Evaluate(fn("NumberQ", num(3))); !got.Equal(sym("True")) {
		t.Fatalf("NumberQ[3] = %s, want True", got.String())
	}
	if got := k.Evaluate(fn("NumberQ", sym("x"))); !got.Equal(sym("False")) {
		t.Fatalf("NumberQ[x] = %s, want False", got.String())
	}
	if got := k.Evaluate(fn("RealQ", sym("Pi"))); !got.Equal(sym("True")) {
		t.Fatalf("RealQ[Pi] = %s, want True", got.String())
	}
}

func TestFreeQ(t *testing.T) {
	k := newTestKernel()
	if got := k.Evaluate(fn("FreeQ", fn("Plus", sym("a"), sym("b")), sym("x"))); !got.Equal(sym("True")) {
		t.Fatalf("FreeQ[Plus[a,b], x] = %s, want True", got.String())
	}
	if got := k.Evaluate(fn("FreeQ", fn("Plus", sym("a"), sym("b")), sym("a"))); !got.Equal(sym("False")) {
		t.Fatalf("FreeQ[Plus[a,b], a] = %s, want False", got.String())
	}
}

package rulepack

import "github.com/client9/cardinal/core"

// Terse pattern/template constructors shared by every file in this
// package, mirroring the original_source rule table's own Symbol/Blank/
// BoundPattern/Function call shape almost line for line so each rule
// below reads the same as its source counterpart.

func sym(name string) core.Expr {
	return core.NewSymbol(name)
}

func blank() core.Expr {
	return core.NewBlank()
}

func blankOf(head string) core.Expr {
	return core.NewBlankOf(core.NewSymbol(head))
}

func bound(name string, base core.Expr) core.Expr {
	return core.NewBoundPattern(name, base)
}

func fn(head string, args ...core.Expr) core.Expr {
	return core.NewPatternFunction(core.NewSymbol(head), args...)
}

func fnH(head core.Expr, args ...core.Expr) core.Expr {
	return core.NewPatternFunction(head, args...)
}

// derivative1 builds the curried Derivative[1][f] pattern/template node
// the D rules rewrite a user function call into.
func derivative1(f core.Expr) core.Expr {
	return fnH(fn("Derivative", core.NewInteger(1)), f)
}

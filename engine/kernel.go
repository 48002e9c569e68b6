package engine

import (
	"time"

	"github.com/client9/cardinal/core"
)

// Config bounds a single Kernel.Evaluate call. ReplacementCap <= 0 falls
// back to DefaultReplacementCap; a zero Deadline means no time limit.
type Config struct {
	ReplacementCap int
	Deadline       time.Duration
}

// DefaultReplacementCap is the fallback for Config.ReplacementCap,
// addressing spec.md §9 open question 6: the source has no safeguard
// against a rule set that never reaches a fixed point.
const DefaultReplacementCap = 100000

// Kernel holds a rule set, an attribute table, and a printer. It has no
// other mutable state: each Evaluate call opens its own session carrying
// the replacement counter and deadline for that call, so concurrent
// Evaluate calls on the same Kernel from different goroutines are safe
// as long as rules are not being registered concurrently (AddRule/
// SetAttributes are not safe to race with Evaluate).
type Kernel struct {
	rules   []Rule
	attrs   *core.AttributeTable
	printer core.Printer
	config  Config
}

// NewKernel creates an empty Kernel: no rules, a fresh attribute table,
// and core.DefaultPrinter.
func NewKernel(config Config) *Kernel {
	if config.ReplacementCap <= 0 {
		config.ReplacementCap = DefaultReplacementCap
	}
	return &Kernel{
		attrs:   core.NewAttributeTable(),
		printer: core.DefaultPrinter{},
		config:  config,
	}
}

// AddRule appends r to the end of the rule set. Rules are tried in
// registration order and the first to fire wins, per spec.md §4.5's
// "priority by registration order".
func (k *Kernel) AddRule(r Rule) {
	k.rules = append(k.rules, r)
}

// SetAttributes unions attrs into name's entry in the kernel's attribute
// table.
func (k *Kernel) SetAttributes(name string, attrs core.Attributes) {
	k.attrs.SetAttributes(name, attrs)
}

// ClearAttributes removes attrs from name's entry in the kernel's
// attribute table.
func (k *Kernel) ClearAttributes(name string, attrs core.Attributes) {
	k.attrs.ClearAttributes(name, attrs)
}

// AttributeTable returns the kernel's attribute table.
func (k *Kernel) AttributeTable() *core.AttributeTable {
	return k.attrs
}

// SetPrinter replaces the kernel's Printer.
func (k *Kernel) SetPrinter(p core.Printer) {
	k.printer = p
}

// Print renders expr with the kernel's Printer.
func (k *Kernel) Print(expr core.Expr) string {
	return k.printer.ToString(expr)
}

// Evaluate rewrites expr to a fixed point under the kernel's rule set,
// per spec.md §4.4/§4.5: exhaust the rule set against expr itself (a full
// pass with no change ends this phase), then recursively evaluate the
// head and each argument left to right and rebuild, repeating the whole
// process until nothing changes, a soft Error appears, the replacement
// cap is hit, or the deadline passes.
func (k *Kernel) Evaluate(expr core.Expr) core.Expr {
	s := &session{kernel: k}
	if k.config.Deadline > 0 {
		s.deadline = time.Now().Add(k.config.Deadline)
	}
	return s.evaluateToFixedPoint(expr)
}

// EvaluateAndPrint evaluates expr and renders the result with the
// kernel's Printer, the composition cmd/cardinal's REPL drives on every
// line.
func (k *Kernel) EvaluateAndPrint(expr core.Expr) string {
	return k.Print(k.Evaluate(expr))
}

// session is a single Evaluate call's mutable state: how many
// replacements it has fired so far and when it must give up. It
// implements Evaluator so guard and lambda callbacks share the same
// budget as the call that invoked them, rather than opening a fresh one
// per nested evaluation.
type session struct {
	kernel       *Kernel
	replacements int
	deadline     time.Time
}

func (s *session) AttributeTable() *core.AttributeTable {
	return s.kernel.attrs
}

func (s *session) Evaluate(expr core.Expr) core.Expr {
	return s.evaluateToFixedPoint(expr)
}

// evaluateToFixedPoint mirrors the teacher's evaluation.Kernel.evaluate:
// first exhaust the rule set against expr as a whole (rules see an
// un-descended tree, so a rule like the generic D[f_[y_],x] chain-rule
// fallback fires against e.g. Sin[Exp[...]] before Exp ever gets a
// chance to expand to Power[E,...] underneath it), only then recurse into
// the head and arguments, and if that descent changed anything, restart
// the whole process on the result. Open question 1 from spec.md §9 is
// fixed here: the caller compares the actual post-descent value against
// the expression it started this round with, never a stale snapshot from
// an earlier iteration.
func (s *session) evaluateToFixedPoint(expr core.Expr) core.Expr {
	current := expr
	for {
		if s.exhausted() {
			return current
		}
		afterRules := s.applyRulesToFixedPoint(current)
		if core.IsError(afterRules) {
			return afterRules
		}
		afterDescend := s.descend(afterRules)
		if core.IsError(afterDescend) {
			return afterDescend
		}
		if afterDescend.Equal(current) {
			return afterDescend
		}
		current = afterDescend
	}
}

func (s *session) exhausted() bool {
	if s.replacements >= s.kernel.config.ReplacementCap {
		return true
	}
	return !s.deadline.IsZero() && time.Now().After(s.deadline)
}

// applyRulesToFixedPoint repeatedly tries the rule set against expr at
// its current level (not descending into subterms) until a full pass
// fires nothing, matching the teacher's "while changed: ... break" loop.
func (s *session) applyRulesToFixedPoint(expr core.Expr) core.Expr {
	current := expr
	for {
		if s.exhausted() {
			return current
		}
		changed, next := s.applyRulesOnce(current)
		if !changed {
			return current
		}
		if core.IsError(next) {
			return next
		}
		if next.Equal(current) {
			return current
		}
		current = next
	}
}

// descend evaluates expr's head and arguments to a fixed point (leaving
// both the head and the arguments as they are when the head carries Hold,
// per spec.md §3) and reconstructs the
// expression through NewFunctionIn so Flat/Orderless/OneIdentity
// normalization re-runs against the newly evaluated arguments.
func (s *session) descend(expr core.Expr) core.Expr {
	fn, ok := expr.(core.Function)
	if !ok {
		return expr
	}

	held := s.holds(fn.Head())

	head := fn.Head()
	if !held {
		head = s.evaluateToFixedPoint(head)
		if core.IsError(head) {
			return head
		}
	}

	oldArgs := fn.Args()
	newArgs := make([]core.Expr, len(oldArgs))
	for i, a := range oldArgs {
		if held {
			newArgs[i] = a
			continue
		}
		ea := s.evaluateToFixedPoint(a)
		if core.IsError(ea) {
			return ea
		}
		newArgs[i] = ea
	}

	return core.NewFunctionIn(s.kernel.attrs, head, newArgs...)
}

func (s *session) holds(head core.Expr) bool {
	sym, ok := head.(core.Symbol)
	if !ok {
		return false
	}
	return s.kernel.attrs.Lookup(string(sym)).Has(core.Hold)
}

// applyRulesOnce tries every rule in registration order against expr and
// returns the result of the first one that fires.
func (s *session) applyRulesOnce(expr core.Expr) (bool, core.Expr) {
	for _, r := range s.kernel.rules {
		if s.exhausted() {
			return false, expr
		}
		if changed, result := r.Apply(expr, s); changed {
			s.replacements++
			return true, result
		}
	}
	return false, expr
}

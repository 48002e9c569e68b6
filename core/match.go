package core

import "iter"

// Match attempts to unify pattern against expr starting from env, lazily
// producing every successful Bindings extension against the default
// attribute table. Grounded in the teacher's core/match.go PatternBindings
// matcher, generalized per spec.md §4.3 to dedicated Blank/BoundPattern
// Expr variants and to full backtracking over Flat/Orderless sequences
// rather than the teacher's greedy single-pass walk.
//
// The sequence is produced with a range-over-func iter.Seq: each step does
// only as much work as needed to hand the caller one more Bindings, and a
// caller that stops ranging early (engine.SubstitutionRule stops at the
// first match; engine.LambdaRule stops at the first one it accepts) cuts
// the remaining search short instead of paying for it.
func Match(pattern, expr Expr, env Bindings) iter.Seq[Bindings] {
	return MatchIn(DefaultAttributeTable, pattern, expr, env)
}

// MatchIn is Match against an explicit attribute table, for callers (an
// engine.Kernel) whose attributes are not the package defaults.
func MatchIn(table *AttributeTable, pattern, expr Expr, env Bindings) iter.Seq[Bindings] {
	return func(yield func(Bindings) bool) {
		matchDispatch(table, pattern, expr, env, yield)
	}
}

// FirstMatch returns the first Bindings Match would produce, per spec.md
// §4.4's rule-application contract ("take the first success; otherwise the
// expression is unchanged").
func FirstMatch(table *AttributeTable, pattern, expr Expr, env Bindings) (Bindings, bool) {
	var (
		result Bindings
		found  bool
	)
	matchDispatch(table, pattern, expr, env, func(b Bindings) bool {
		result, found = b, true
		return false
	})
	return result, found
}

// matchDispatch is the uniform recursive core. Its bool return is a
// "keep searching" signal, not a match verdict: true means every path
// explored so far either missed (nothing to report) or reported and was
// told to continue; false means some yield call asked to stop and that
// request has propagated all the way back up.
func matchDispatch(table *AttributeTable, pattern, expr Expr, env Bindings, yield func(Bindings) bool) bool {
	switch p := pattern.(type) {
	case Blank:
		if !p.Matches(expr) {
			return true
		}
		return yield(env)

	case BoundPattern:
		// Recurse into the base pattern; for each way it matches,
		// either extend env with a fresh binding or, if the name is
		// already bound, require the new occurrence to agree with it
		// (spec.md §4.3's linear-pattern-with-repetition rule).
		return matchDispatch(table, p.Base, expr, env, func(env2 Bindings) bool {
			if existing, bound := env2.Lookup(p.Name); bound {
				if !existing.Equal(expr) {
					return true
				}
				return yield(env2)
			}
			return yield(env2.Bind(p.Name, expr))
		})

	case Function:
		target, ok := expr.(Function)
		if !ok {
			return true
		}
		return matchDispatch(table, p.head, target.head, env, func(envHead Bindings) bool {
			return matchArgs(table, p.head, p.args, target.args, envHead, yield)
		})

	default:
		if pattern.Equal(expr) {
			return yield(env)
		}
		return true
	}
}

// matchArgs selects one of the four sequence-matching modes per spec.md
// §4.3, dictated by the attributes of the pattern's own head.
func matchArgs(table *AttributeTable, head Expr, P, E Sequence, env Bindings, yield func(Bindings) bool) bool {
	attrs := headAttributes(table, head)
	flat := attrs.Has(Flat)
	orderless := attrs.Has(Orderless)

	switch {
	case flat && orderless:
		return matchFlatOrderlessArgs(table, head, P, E, env, yield)
	case flat:
		return matchFlatArgs(table, head, P, E, env, yield)
	case orderless:
		return matchOrderlessArgs(table, head, P, E, env, yield)
	default:
		return matchOrderedArgs(table, P, E, env, yield)
	}
}

// matchOrderedArgs matches P against E position by position, flat-mapping
// each position's match stream into the next (spec.md §4.3's default
// mode: neither Flat nor Orderless).
func matchOrderedArgs(table *AttributeTable, P, E []Expr, env Bindings, yield func(Bindings) bool) bool {
	if len(P) != len(E) {
		return true
	}
	return matchPositions(table, P, E, env, yield)
}

func matchPositions(table *AttributeTable, P, E []Expr, env Bindings, yield func(Bindings) bool) bool {
	if len(P) == 0 {
		return yield(env)
	}
	return matchDispatch(table, P[0], E[0], env, func(env2 Bindings) bool {
		return matchPositions(table, P[1:], E[1:], env2, yield)
	})
}

// matchOrderlessArgs enumerates permutations of E and tries an ordered
// match of P against each, after first peeling off constant sub-patterns
// (spec.md §4.3's Orderless-mode optimization).
func matchOrderlessArgs(table *AttributeTable, head Expr, P, E Sequence, env Bindings, yield func(Bindings) bool) bool {
	if len(P) != len(E) {
		return true
	}
	redP, redE, ok := eliminateConstants(P, E)
	if !ok {
		return true
	}
	return permute(redE, func(perm []Expr) bool {
		return matchOrderedArgs(table, redP, perm, env, yield)
	})
}

// matchFlatArgs partitions E into len(P) contiguous, non-empty groups and
// matches each group (wrapped back into a head-Function when it holds
// more than one element) against the corresponding pattern, per spec.md
// §4.3's Flat-only mode.
func matchFlatArgs(table *AttributeTable, head Expr, P, E Sequence, env Bindings, yield func(Bindings) bool) bool {
	m, n := len(P), len(E)
	if m == 0 {
		if n == 0 {
			return yield(env)
		}
		return true
	}
	if m > n {
		return true
	}
	if m == 1 {
		// A single pattern always absorbs the whole sequence as one
		// head-Function grouping, even when n == 1 (spec.md §4.3's
		// explicit edge case); for a OneIdentity head, NewFunctionIn
		// collapses that one-element grouping to the bare element.
		group := NewFunctionIn(table, head, E...)
		return matchDispatch(table, P[0], group, env, yield)
	}
	return compositions(n, m, func(bounds []int) bool {
		groups := make([]Expr, m)
		for i := 0; i < m; i++ {
			groups[i] = wrapGroup(table, head, E[bounds[i]:bounds[i+1]])
		}
		return matchOrderedArgs(table, P, groups, env, yield)
	})
}

// matchFlatOrderlessArgs combines both: peel off constant sub-patterns,
// permute what's left, then partition it, per spec.md §4.3's combined mode.
func matchFlatOrderlessArgs(table *AttributeTable, head Expr, P, E Sequence, env Bindings, yield func(Bindings) bool) bool {
	if len(P) > len(E) {
		return true
	}
	redP, redE, ok := eliminateConstants(P, E)
	if !ok {
		return true
	}
	return permute(redE, func(perm []Expr) bool {
		return matchFlatArgs(table, head, redP, perm, env, yield)
	})
}

func wrapGroup(table *AttributeTable, head Expr, elems []Expr) Expr {
	if len(elems) == 1 {
		return elems[0]
	}
	return NewFunctionIn(table, head, elems...)
}

// eliminateConstants removes, from P, every sub-pattern that contains no
// Blank/BoundPattern (a "constant"), checking it off against one equal
// element of E. It fails (ok == false) if some constant has no match left
// in E. The remaining P/E pair is what the combinatorial search over
// patterns and variables actually needs to explore — a constant pattern
// never introduces a binding, so it contributes nothing but a fixed
// element to eliminate up front (spec.md §4.3).
func eliminateConstants(P, E []Expr) (remP, remE []Expr, ok bool) {
	remE = append([]Expr{}, E...)
	for _, p := range P {
		if IsPattern(p) {
			remP = append(remP, p)
			continue
		}
		idx := -1
		for i, e := range remE {
			if p.Equal(e) {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, nil, false
		}
		remE = append(remE[:idx], remE[idx+1:]...)
	}
	return remP, remE, true
}

// eliminateBoundPatterns is, per spec.md §9 open question 2, a literal
// alias of eliminateConstants in the original source. Preserved as such:
// it is harmless because IsPattern is true for every BoundPattern, so a
// BoundPattern is never mistaken for a constant by eliminateConstants in
// the first place.
func eliminateBoundPatterns(P, E []Expr) ([]Expr, []Expr, bool) {
	return eliminateConstants(P, E)
}

// permute calls f with every permutation of E (sharing one backing array
// across calls; f must not retain a slice beyond its own call), stopping
// early if f returns false. Heap's algorithm, generating in place.
func permute(E []Expr, f func([]Expr) bool) bool {
	a := append([]Expr{}, E...)
	return heapPermute(a, len(a), f)
}

func heapPermute(a []Expr, k int, f func([]Expr) bool) bool {
	if k <= 1 {
		return f(append([]Expr{}, a...))
	}
	for i := 0; i < k; i++ {
		if !heapPermute(a, k-1, f) {
			return false
		}
		if k%2 == 0 {
			a[i], a[k-1] = a[k-1], a[i]
		} else {
			a[0], a[k-1] = a[k-1], a[0]
		}
	}
	return true
}

// compositions calls f with every way of cutting [0,n) into m increasing,
// contiguous, non-empty boundary groups — bounds[0]=0, bounds[m]=n,
// strictly increasing in between — in lexicographic order of the cut
// points. This is the "m-1 monotonically increasing markers advancing
// with a carry" enumeration spec.md §4.3 describes for Flat grouping.
// Requires m >= 1; the m == 0 case is handled by the caller.
func compositions(n, m int, f func(bounds []int) bool) bool {
	bounds := make([]int, m+1)
	bounds[m] = n
	return compositionsRec(bounds, 1, m, n, f)
}

func compositionsRec(bounds []int, i, m, n int, f func([]int) bool) bool {
	if i == m {
		return f(bounds)
	}
	lo := bounds[i-1] + 1
	hi := n - (m - i)
	for b := lo; b <= hi; b++ {
		bounds[i] = b
		if !compositionsRec(bounds, i+1, m, n, f) {
			return false
		}
	}
	return true
}

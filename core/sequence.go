package core

// Sequence is the ordered argument list of a Function. It is a plain
// slice with a cursor-based iterator, fixing the off-by-one bug spec.md
// §9 open question 7 calls out in the source's Sequence.__next__
// ("the correct semantics is obvious: iterate over expressions in order").
type Sequence []Expr

// Iterator returns a stateful cursor over the sequence, advancing forward
// from index 0 with no skipped or repeated elements.
func (s Sequence) Iterator() *SequenceIterator {
	return &SequenceIterator{seq: s, pos: 0}
}

// SequenceIterator walks a Sequence left to right.
type SequenceIterator struct {
	seq Sequence
	pos int
}

// Next returns the next element and true, or a zero value and false once
// the sequence is exhausted.
func (it *SequenceIterator) Next() (Expr, bool) {
	if it.pos >= len(it.seq) {
		return nil, false
	}
	e := it.seq[it.pos]
	it.pos++
	return e, true
}

package simplex

import "github.com/crillab/gophersimplex/rational"

// Bound is an immutable constraint `variable Rel Rhs`, tagged with the
// external Lit that asserts it. Bounds are created only during Preparation
// and never destroyed or mutated afterwards; their addresses are stable for
// the lifetime of the Core, since Variable.lower/upper hold pointers into
// this storage.
type Bound struct {
	Variable ident
	Rel      Relation
	Rhs      rational.Q
	Lit      Lit
}

// boundStore is a multimap from Lit to the Bounds it asserts, grounded on
// the adjacency-list shape gokanlogic's finite-domain constraint store uses
// for "variable -> constraints" (fd_ineq.go's ineqLinks map), here keyed by
// asserting literal instead of by variable. Preparation performs all
// insertions; the search phase only ever reads. Iteration order within one
// literal's group is insertion order, which keeps generated conflict
// clauses reproducible across runs of the same input.
type boundStore struct {
	byLit map[Lit][]*Bound
}

func newBoundStore() *boundStore {
	return &boundStore{byLit: make(map[Lit][]*Bound)}
}

// add registers a new bound asserted by lit and returns it.
func (bs *boundStore) add(lit Lit, variable ident, rel Relation, rhs rational.Q) *Bound {
	b := &Bound{Variable: variable, Rel: rel, Rhs: rhs, Lit: lit}
	bs.byLit[lit] = append(bs.byLit[lit], b)
	return b
}

// forLit returns every Bound asserted by lit, in insertion order.
func (bs *boundStore) forLit(lit Lit) []*Bound {
	return bs.byLit[lit]
}

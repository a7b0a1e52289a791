/*
Package simplex implements the core of an incremental linear-arithmetic
decision procedure: a rational Simplex solver that decides satisfiability of
conjunctions of non-strict linear inequalities over rationals, and that
integrates with an outer CDCL-style Boolean search engine as a theory
propagator.

A Core is built once per search root from a set of inequalities, each tagged
with the Literal that asserts it:

	c := simplex.NewCore()
	if ok := c.Prepare(init, inequalities); !ok {
		// top-level conflict: the problem is trivially UNSAT.
	}

The outer engine then drives the core incrementally as it makes decisions:

	if c.AssertAndSolve(control, lits) {
		model := c.Model() // one entry per named input variable, sorted by name
	} else {
		clause := c.Conflict()
		// ... add clause as a conflict clause and backtrack ...
		c.Undo()
	}

A Core is single-threaded: the caller must serialize Prepare, AssertAndSolve
and Undo calls and must never call them re-entrantly. Keeping one Core per
worker thread (as the outer engine is expected to do) requires no further
synchronization, since a Core owns all of its state and never touches global
or shared mutable state.
*/
package simplex

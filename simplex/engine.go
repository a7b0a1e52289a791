package simplex

// This file describes the contracts by which the core exchanges literal
// assertions, conflict clauses, and watch requests with an external
// CDCL-style Boolean search engine. Only the contract is specified here —
// an implementation of the outer engine itself is out of scope (spec.md §1
// explicitly excludes "the outer propagation/search engine... that supplies
// literal trails, decision levels, watches, clause insertion, and thread
// multiplexing").
//
// The shape of these interfaces is grounded on two references: the
// teacher's own solver.Interface (solver/interface.go), for the convention
// of a small, *-suffixed seam interface; and stanley-fork-z3's
// UserPropagatorCallbacks (propagator.go), for the Push/Pop/register style a
// theory plugin uses to hook into somebody else's search loop.

// Assignment is the outer engine's view of which literals are currently
// true and at which decision level they became so.
type Assignment interface {
	// DecisionLevel returns the current decision level of the outer
	// search.
	DecisionLevel() int
	// Level returns the decision level at which lit became true, or a
	// negative number if lit is not currently true.
	Level(lit Lit) int
}

// PropagateInit is consumed once, during Core.Prepare, to canonicalize
// input literals, request watches, and install immediate top-level unit
// clauses discovered while normalizing a trivially-false inequality.
type PropagateInit interface {
	Assignment
	// SolverLiteral canonicalizes lit (e.g. resolving it through the
	// outer engine's equivalence classes) into the literal that will
	// actually appear on the assignment trail.
	SolverLiteral(lit Lit) Lit
	// AddWatch requests that Core be notified (by the outer engine
	// calling AssertAndSolve with the relevant batch) whenever lit is
	// assigned.
	AddWatch(lit Lit)
	// AddClause installs a clause that must hold at the top level. It
	// returns false if doing so makes the top level immediately
	// conflicting.
	AddClause(clause []Lit) bool
}

// PropagateControl is consumed during Core.AssertAndSolve to report a
// conflict clause discovered mid-search.
type PropagateControl interface {
	Assignment
	// AddClause records clause as the reason the current assertion
	// batch is unsatisfiable.
	AddClause(clause []Lit)
}

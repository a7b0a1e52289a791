package simplex

// fakeEngine is a minimal stand-in for the outer CDCL engine's shared
// assignment state, used by prepare_test.go and solver_test.go: literals
// become true in the order assert is called, one decision level per call.
// PropagateInit.AddClause and PropagateControl.AddClause have different
// signatures (the former can reject an immediate top-level conflict, the
// latter cannot), so they are implemented by the two thin wrappers below
// rather than on fakeEngine itself.
type fakeEngine struct {
	level           int
	trueAt          map[Lit]int
	clauses         [][]Lit
	watches         []Lit
	rejectAddClause bool // if set, fakeInit.AddClause reports a top-level conflict
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{trueAt: make(map[Lit]int)}
}

func (f *fakeEngine) DecisionLevel() int { return f.level }

func (f *fakeEngine) Level(lit Lit) int {
	if lvl, ok := f.trueAt[lit]; ok {
		return lvl
	}
	return -1
}

func (f *fakeEngine) SolverLiteral(lit Lit) Lit { return lit }

func (f *fakeEngine) AddWatch(lit Lit) { f.watches = append(f.watches, lit) }

// assert opens a fresh decision level and marks lit true at it, returning
// the literal batch AssertAndSolve expects.
func (f *fakeEngine) assert(lit Lit) []Lit {
	f.level++
	f.trueAt[lit] = f.level
	return []Lit{lit}
}

// fakeInit adapts fakeEngine to PropagateInit, for use during Prepare.
type fakeInit struct{ *fakeEngine }

func (f fakeInit) AddClause(clause []Lit) bool {
	f.clauses = append(f.clauses, clause)
	return !f.rejectAddClause
}

// fakeControl adapts fakeEngine to PropagateControl, for use during
// AssertAndSolve.
type fakeControl struct{ *fakeEngine }

func (f fakeControl) AddClause(clause []Lit) {
	f.clauses = append(f.clauses, clause)
}

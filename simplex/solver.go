package simplex

import (
	"log"
	"sort"

	"github.com/crillab/gophersimplex/rational"
	"github.com/crillab/gophersimplex/tableau"
)

// Stats collects counters a caller can sample for diagnostics or tuning,
// grounded on the teacher's own Stats struct (solver/stats.go): a plain
// value type with exported integer counters, incremented in place rather
// than computed on demand.
type Stats struct {
	Pivots    int // number of pivot() calls performed
	Conflicts int // number of AssertAndSolve calls that returned unsatisfiable
	Asserts   int // number of AssertAndSolve calls made
	Undos     int // number of Undo calls made
}

// Options configures a Core at construction time. The zero value is a
// usable default (no tracing).
type Options struct {
	// Log, if non-nil, receives one line per pivot and per decision-level
	// backtrack. Left nil, Core performs no logging at all: tracing is
	// opt-in and never on the hot path unless requested.
	Log *log.Logger
}

// Core is an incremental rational Simplex solver for a fixed set of
// inequalities, usable as a theory plugin of an outer CDCL-style Boolean
// search engine. See the package doc for the expected calling convention.
// A Core must not be used from more than one goroutine at a time.
type Core struct {
	vt     *varTable
	tab    *tableau.Tableau
	bounds *boundStore
	trail  *trail
	queue  *conflictQueue

	names         map[string]ident
	inputNames    map[string]bool // every externally named variable seen in an input Lhs, even at zero net coefficient
	watched       map[Lit]bool
	topLevelUnsat bool

	lastConflict []Lit
	stats        Stats
	opts         Options
}

// NewCore returns an empty Core with default options.
func NewCore() *Core {
	return NewCoreWithOptions(Options{})
}

// NewCoreWithOptions returns an empty Core configured by opts. Call Prepare
// on the result before AssertAndSolve.
func NewCoreWithOptions(opts Options) *Core {
	vt := newVarTable()
	return &Core{
		vt:     vt,
		tab:    tableau.New(),
		bounds: newBoundStore(),
		trail:  newTrail(vt),
		queue:  newConflictQueue(vt),
		opts:   opts,
	}
}

func (c *Core) logf(format string, args ...interface{}) {
	if c.opts.Log != nil {
		c.opts.Log.Printf(format, args...)
	}
}

// TopLevelUnsat reports whether Prepare discovered the problem is
// unsatisfiable independently of any decision (a trivially-false
// inequality that normalized to the empty left-hand side).
func (c *Core) TopLevelUnsat() bool { return c.topLevelUnsat }

// AssertAndSolve asserts that every literal in lits is now true (each may
// carry zero or more bounds, installed during Prepare) and restores
// feasibility, pivoting as needed. It returns true and leaves the current
// assignment satisfying every bound if one exists; otherwise it reports a
// conflict clause to control and returns false. The caller is expected to
// call Undo before asserting a disjoint batch at the same or a shallower
// level.
func (c *Core) AssertAndSolve(control PropagateControl, lits []Lit) bool {
	level := control.DecisionLevel()
	c.trail.beginLevel(level)
	c.lastConflict = nil
	c.stats.Asserts++

	for _, lit := range lits {
		for _, b := range c.bounds.forLit(lit) {
			if conflict, ok := c.assertBound(level, b); !ok {
				c.lastConflict = conflict
				control.AddClause(conflict)
				c.stats.Conflicts++
				return false
			}
		}
	}

	ok, conflict := c.search(level)
	if !ok {
		c.lastConflict = conflict
		control.AddClause(conflict)
		c.stats.Conflicts++
		return false
	}
	return true
}

// assertBound installs b as v's active bound at level. Before installing
// it, it checks b against whichever opposite-side bound is already active:
// if the two are jointly unsatisfiable (e.g. an incoming x <= 2 against an
// already-active x >= 5), no tableau work can ever resolve that, so this
// reports a two-literal conflict clause immediately rather than waiting
// for search to rediscover it through the tableau. Otherwise it installs
// the bound and, for a non-basic v whose current value now violates it,
// shifts the value into range via update; a basic v is instead queued for
// the next search if it has become infeasible.
func (c *Core) assertBound(level int, b *Bound) (conflict []Lit, ok bool) {
	v := c.vt.byID(b.Variable)

	switch b.Rel {
	case LE:
		if v.HasLower() && rational.Less(b.Rhs, v.lower.Rhs) {
			return []Lit{b.Lit.Negation(), v.lower.Lit.Negation()}, false
		}
		c.trail.replaceUpper(v, b, level)
		c.reconcile(level, v, rational.Greater(v.Value(), b.Rhs), b.Rhs)
	case GE:
		if v.HasUpper() && rational.Greater(b.Rhs, v.upper.Rhs) {
			return []Lit{b.Lit.Negation(), v.upper.Lit.Negation()}, false
		}
		c.trail.replaceLower(v, b, level)
		c.reconcile(level, v, rational.Less(v.Value(), b.Rhs), b.Rhs)
	case EQ:
		if v.HasLower() && rational.Less(b.Rhs, v.lower.Rhs) {
			return []Lit{b.Lit.Negation(), v.lower.Lit.Negation()}, false
		}
		if v.HasUpper() && rational.Greater(b.Rhs, v.upper.Rhs) {
			return []Lit{b.Lit.Negation(), v.upper.Lit.Negation()}, false
		}
		c.trail.replaceBoth(v, b, level)
		c.reconcile(level, v, !rational.Equal(v.Value(), b.Rhs), b.Rhs)
	default:
		panic("simplex: invalid relation")
	}
	return nil, true
}

// reconcile applies the consequence of v acquiring a new bound: for a
// non-basic variable whose current value now violates it, shift the value
// to target via update (no pivot, since non-basic variables are free to
// move); for a basic variable, the tableau still determines its value, so
// it is simply queued for the next search if it has become infeasible.
func (c *Core) reconcile(level int, v *Variable, outOfRange bool, target rational.Q) {
	if c.vt.isBasic(v) {
		if !v.Feasible() {
			c.queue.push(v.id)
		}
		return
	}
	if outOfRange {
		c.update(level, c.vt.colOf(v), target)
	}
}

// Undo reverts every change made since the first call to AssertAndSolve at
// the most recently opened decision level (bounds, values, and the conflict
// queue), returning the core to the state it was in immediately before that
// call; several calls at the same level are reverted together. The outer
// engine calls this after backtracking.
func (c *Core) Undo() {
	level := c.trail.decisionLevel()
	c.queue.drain()
	c.trail.undoTopLevel()
	c.lastConflict = nil
	c.stats.Undos++
	c.logf("simplex: undo level=%d", level)
}

// Conflict returns the clause most recently reported to AddClause by
// AssertAndSolve, or nil if the last call succeeded (or none was made).
func (c *Core) Conflict() []Lit {
	return c.lastConflict
}

// Statistics returns a snapshot of the core's counters.
func (c *Core) Statistics() Stats {
	return c.stats
}

// ModelEntry is one named variable's current value, as reported by Model.
type ModelEntry struct {
	Name  string
	Value rational.Q
}

// Model returns a stable lexicographic listing of every externally named
// input variable (variables synthesized for a multi-term row's slack have
// no name and are never included): one entry per distinct name that
// appeared in any Lhs passed to Prepare, sorted by Name. A name whose
// coefficient summed to zero across every inequality (and so was never
// interned into the tableau) is reported with value 0, matching a
// variable that was declared but never actually constrained. Valid only
// when the most recent AssertAndSolve returned true.
func (c *Core) Model() []ModelEntry {
	out := make([]ModelEntry, 0, len(c.inputNames))
	for name := range c.inputNames {
		value := rational.Zero()
		if id, ok := c.names[name]; ok {
			value = c.vt.byID(id).Value()
		}
		out = append(out, ModelEntry{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

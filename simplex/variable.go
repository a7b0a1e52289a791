package simplex

import "github.com/crillab/gophersimplex/rational"

// Variable is one column or row of the tableau: either a non-basic variable
// (its value is chosen directly, subject to its bounds) or a basic variable
// (its value is determined by a tableau row as a linear combination of the
// non-basic variables).
type Variable struct {
	id    ident
	name  string // external name; empty for variables synthesized for a multi-term row
	value rational.Q
	lower *Bound // active lower bound, nil if none
	upper *Bound // active upper bound, nil if none
	level int    // decision level value was last changed at
	queued bool   // membership in the conflict queue

	// lowerLevel/upperLevel record the level at which the current lower/
	// upper bound reference became active, so the trail (package-level
	// type trail) can deduplicate repeated replacements within one level
	// and restore the correct prior level on Undo.
	lowerLevel int
	upperLevel int

	reserveIndex int // slot this variable currently occupies
}

// ID returns the variable's permanent identity. Identities are used (never
// slots) to compare variables for Bland's rule and to key the conflict
// queue's dedup set.
func (v *Variable) ID() ident { return v.id }

// Value returns the variable's current assignment.
func (v *Variable) Value() rational.Q { return v.value }

// HasLower reports whether v has an active lower bound.
func (v *Variable) HasLower() bool { return v.lower != nil }

// HasUpper reports whether v has an active upper bound.
func (v *Variable) HasUpper() bool { return v.upper != nil }

// LowerValue returns the rhs of the active lower bound. Panics if none.
func (v *Variable) LowerValue() rational.Q {
	if v.lower == nil {
		panic("simplex: variable has no active lower bound")
	}
	return v.lower.Rhs
}

// UpperValue returns the rhs of the active upper bound. Panics if none.
func (v *Variable) UpperValue() rational.Q {
	if v.upper == nil {
		panic("simplex: variable has no active upper bound")
	}
	return v.upper.Rhs
}

// BelowLower reports whether v.value is strictly less than its active
// lower bound (false if there is no active lower bound).
func (v *Variable) BelowLower() bool {
	return v.lower != nil && rational.Less(v.value, v.lower.Rhs)
}

// AboveUpper reports whether v.value is strictly greater than its active
// upper bound (false if there is no active upper bound).
func (v *Variable) AboveUpper() bool {
	return v.upper != nil && rational.Greater(v.value, v.upper.Rhs)
}

// Feasible reports whether v.value satisfies both active bounds.
func (v *Variable) Feasible() bool {
	return !v.BelowLower() && !v.AboveUpper()
}

// varTable holds the basic/non-basic partition: a slot table mapping slot
// positions to variable identities, and the reverse mapping via each
// Variable's reserveIndex. Slots [0, nonBasic) hold non-basic variables;
// slots [nonBasic, len(slots)) hold basic variables. Variables and slots are
// allocated only during preparation and never destroyed; only the
// partition (which slot holds which identity) changes across pivots.
type varTable struct {
	vars     []*Variable // indexed by ident
	slots    []ident     // slot -> ident
	nonBasic int         // n_non_basic
}

func newVarTable() *varTable {
	return &varTable{}
}

// alloc creates a fresh variable with the given external name (empty for a
// synthesized row variable), assigns it the next identity, and returns it.
// It does not place the variable into a slot; callers place non-basic
// variables immediately and basic variables after preparation compacts the
// basic slots to the end of the table.
func (vt *varTable) alloc(name string) *Variable {
	v := &Variable{id: ident(len(vt.vars)), name: name, reserveIndex: -1}
	vt.vars = append(vt.vars, v)
	return v
}

// placeNonBasic appends v to the end of the non-basic region. Must be
// called before any basic variable is placed.
func (vt *varTable) placeNonBasic(v *Variable) {
	if vt.nonBasic != len(vt.slots) {
		panic("simplex: cannot place a non-basic variable after basic variables were placed")
	}
	v.reserveIndex = len(vt.slots)
	vt.slots = append(vt.slots, v.id)
	vt.nonBasic++
}

// placeBasic appends v to the end of the slot table, in the basic region.
func (vt *varTable) placeBasic(v *Variable) {
	v.reserveIndex = len(vt.slots)
	vt.slots = append(vt.slots, v.id)
}

// nVars returns the total number of variables (basic+non-basic).
func (vt *varTable) nVars() int { return len(vt.slots) }

// nNonBasic returns the number of non-basic variables.
func (vt *varTable) nNonBasic() int { return vt.nonBasic }

// nBasic returns the number of basic variables.
func (vt *varTable) nBasic() int { return len(vt.slots) - vt.nonBasic }

// byID returns the variable with the given identity.
func (vt *varTable) byID(id ident) *Variable {
	return vt.vars[id]
}

// nonBasicVar returns the non-basic variable occupying slot j.
func (vt *varTable) nonBasicVar(j int) *Variable {
	if j < 0 || j >= vt.nonBasic {
		panic("simplex: non-basic slot out of range")
	}
	return vt.vars[vt.slots[j]]
}

// basicVar returns the basic variable occupying row i (slot nonBasic+i).
func (vt *varTable) basicVar(i int) *Variable {
	slot := vt.nonBasic + i
	if i < 0 || slot >= len(vt.slots) {
		panic("simplex: basic row out of range")
	}
	return vt.vars[vt.slots[slot]]
}

// isBasic reports whether v currently occupies a basic slot.
func (vt *varTable) isBasic(v *Variable) bool {
	return v.reserveIndex >= vt.nonBasic
}

// rowOf returns the row index of a basic variable.
func (vt *varTable) rowOf(v *Variable) int {
	if !vt.isBasic(v) {
		panic("simplex: variable is not basic")
	}
	return v.reserveIndex - vt.nonBasic
}

// colOf returns the column index of a non-basic variable.
func (vt *varTable) colOf(v *Variable) int {
	if vt.isBasic(v) {
		panic("simplex: variable is not non-basic")
	}
	return v.reserveIndex
}

// swap exchanges the slot positions of basic variable xi (at row i) and
// non-basic variable xj (at column j): afterwards xj occupies row i (is
// basic) and xi occupies column j (is non-basic). Identities never change;
// only reserveIndex and the two slot-table entries do.
func (vt *varTable) swap(xi, xj *Variable) {
	xi.reserveIndex, xj.reserveIndex = xj.reserveIndex, xi.reserveIndex
	vt.slots[xi.reserveIndex] = xi.id
	vt.slots[xj.reserveIndex] = xj.id
}

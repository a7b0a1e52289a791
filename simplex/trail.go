package simplex

import "github.com/crillab/gophersimplex/rational"

// boundSide identifies which of a Variable's active bound references a
// boundTrailEntry restores.
type boundSide byte

const (
	sideLower boundSide = iota
	sideUpper
	sideBoth // an equality bound serving as both lower and upper
)

// boundTrailEntry records enough to undo one replacement of a Variable's
// active bound reference(s): which variable, which side(s), and what was
// active (bound pointer + the level it became active at) before the
// replacement.
type boundTrailEntry struct {
	variable   ident
	side       boundSide
	prevLower  *Bound
	prevUpper  *Bound
	prevLoLvl  int
	prevUpLvl  int
}

// assignmentTrailEntry records enough to undo one change of a Variable's
// value: the level and value it held before the change.
type assignmentTrailEntry struct {
	variable   ident
	priorLevel int
	priorValue rational.Q
}

// levelOffset is a snapshot of both trails' lengths taken the first time a
// decision level is touched, so Undo can restore everything recorded since.
type levelOffset struct {
	level               int
	boundTrailLen       int
	assignmentTrailLen int
}

// trail is the incremental backtracking log described in spec.md §3/§4.9:
// bounds and values are logged on separate stacks because bounds are
// restored by pointer replacement while values are restored by swapping an
// exact rational (no copy needed, unlike a fixed-width numeric type).
type trail struct {
	vt          *varTable
	boundTrail  []boundTrailEntry
	assignTrail []assignmentTrailEntry
	levels      []levelOffset
}

func newTrail(vt *varTable) *trail {
	return &trail{vt: vt}
}

// decisionLevel returns the level of the most recently opened level record,
// or 0 if none has been opened yet.
func (tr *trail) decisionLevel() int {
	if len(tr.levels) == 0 {
		return 0
	}
	return tr.levels[len(tr.levels)-1].level
}

// beginLevel ensures a levelOffset record exists for level, pushing one if
// this is the first activity seen at that level.
func (tr *trail) beginLevel(level int) {
	if len(tr.levels) > 0 && tr.levels[len(tr.levels)-1].level == level {
		return
	}
	tr.levels = append(tr.levels, levelOffset{
		level:              level,
		boundTrailLen:      len(tr.boundTrail),
		assignmentTrailLen: len(tr.assignTrail),
	})
}

// setValue assigns v.value := newValue at the given level, pushing the
// prior (level, value) to the assignment trail on the first write to v at
// this level.
func (tr *trail) setValue(v *Variable, level int, newValue rational.Q) {
	if v.level < level {
		tr.assignTrail = append(tr.assignTrail, assignmentTrailEntry{
			variable:   v.id,
			priorLevel: v.level,
			priorValue: v.value,
		})
	}
	v.value = newValue
	v.level = level
}

// replaceLower sets v's active lower bound to b at the given level, pushing
// a trail entry the first time this level touches v's lower bound.
func (tr *trail) replaceLower(v *Variable, b *Bound, level int) {
	if v.lowerLevel < level {
		tr.boundTrail = append(tr.boundTrail, boundTrailEntry{
			variable:  v.id,
			side:      sideLower,
			prevLower: v.lower,
			prevLoLvl: v.lowerLevel,
		})
	}
	v.lower = b
	v.lowerLevel = level
}

// replaceUpper is symmetric to replaceLower.
func (tr *trail) replaceUpper(v *Variable, b *Bound, level int) {
	if v.upperLevel < level {
		tr.boundTrail = append(tr.boundTrail, boundTrailEntry{
			variable:  v.id,
			side:      sideUpper,
			prevUpper: v.upper,
			prevUpLvl: v.upperLevel,
		})
	}
	v.upper = b
	v.upperLevel = level
}

// replaceBoth sets v's active lower and upper bound to the same equality
// bound b. If both sides are touched for the first time at this level, a
// single combined entry is pushed; otherwise each side is trailed (or not)
// independently, preserving the invariant that at most one entry restores a
// given (variable, side) pair for a given level.
func (tr *trail) replaceBoth(v *Variable, b *Bound, level int) {
	loFirst := v.lowerLevel < level
	upFirst := v.upperLevel < level
	switch {
	case loFirst && upFirst:
		tr.boundTrail = append(tr.boundTrail, boundTrailEntry{
			variable:  v.id,
			side:      sideBoth,
			prevLower: v.lower,
			prevUpper: v.upper,
			prevLoLvl: v.lowerLevel,
			prevUpLvl: v.upperLevel,
		})
	case loFirst:
		tr.boundTrail = append(tr.boundTrail, boundTrailEntry{
			variable:  v.id,
			side:      sideLower,
			prevLower: v.lower,
			prevLoLvl: v.lowerLevel,
		})
	case upFirst:
		tr.boundTrail = append(tr.boundTrail, boundTrailEntry{
			variable:  v.id,
			side:      sideUpper,
			prevUpper: v.upper,
			prevUpLvl: v.upperLevel,
		})
	}
	v.lower, v.upper = b, b
	v.lowerLevel, v.upperLevel = level, level
}

// undoTopLevel restores every variable touched since the topmost open
// level record began, then pops that record. It does not touch the
// conflict queue; the caller (Core.Undo) drains it separately.
func (tr *trail) undoTopLevel() {
	if len(tr.levels) == 0 {
		panic("simplex: undo with no open decision level")
	}
	top := tr.levels[len(tr.levels)-1]

	for i := len(tr.boundTrail) - 1; i >= top.boundTrailLen; i-- {
		e := tr.boundTrail[i]
		v := tr.vt.byID(e.variable)
		switch e.side {
		case sideLower:
			v.lower, v.lowerLevel = e.prevLower, e.prevLoLvl
		case sideUpper:
			v.upper, v.upperLevel = e.prevUpper, e.prevUpLvl
		case sideBoth:
			v.lower, v.lowerLevel = e.prevLower, e.prevLoLvl
			v.upper, v.upperLevel = e.prevUpper, e.prevUpLvl
		}
	}
	tr.boundTrail = tr.boundTrail[:top.boundTrailLen]

	for i := len(tr.assignTrail) - 1; i >= top.assignmentTrailLen; i-- {
		e := tr.assignTrail[i]
		v := tr.vt.byID(e.variable)
		v.value, v.level = e.priorValue, e.priorLevel
	}
	tr.assignTrail = tr.assignTrail[:top.assignmentTrailLen]

	tr.levels = tr.levels[:len(tr.levels)-1]
}

package simplex

import (
	"github.com/crillab/gophersimplex/rational"
	"github.com/crillab/gophersimplex/tableau"
)

// search drains the conflict queue at the given level, pivoting
// out-of-bound basic variables back into their bounds using Bland's rule.
// It returns (true, nil) once every bound is satisfied, or (false, clause)
// with a minimal conflict clause the first time some violated row has no
// suitable pivot partner.
func (c *Core) search(level int) (bool, []Lit) {
	for !c.queue.empty() {
		id := c.queue.pop()
		v := c.vt.byID(id)
		if !c.vt.isBasic(v) {
			// No longer basic: whatever made it infeasible as a basic
			// variable is moot now that it is chosen directly.
			continue
		}
		i := c.vt.rowOf(v)
		switch {
		case v.BelowLower():
			j, target, conflict, ok := c.selectPartner(i, v, true)
			if !ok {
				return false, conflict
			}
			c.pivot(level, i, j, target)
		case v.AboveUpper():
			j, target, conflict, ok := c.selectPartner(i, v, false)
			if !ok {
				return false, conflict
			}
			c.pivot(level, i, j, target)
		}
	}
	return true, nil
}

// selectPartner scans row i (whose basic variable v is out of bounds) for
// a non-basic pivot partner that can absorb the move, breaking ties among
// suitable partners by smallest identity (Bland's rule, which guarantees
// the overall search terminates). belowLower selects which of v's bounds
// was violated.
func (c *Core) selectPartner(i int, v *Variable, belowLower bool) (j int, target rational.Q, conflict []Lit, ok bool) {
	if belowLower {
		conflict = append(conflict, v.lower.Lit.Negation())
		target = v.lower.Rhs
	} else {
		conflict = append(conflict, v.upper.Lit.Negation())
		target = v.upper.Rhs
	}

	bestJ := -1
	var bestID ident

	c.tab.IterateRow(i, func(col int, cell *tableau.Cell) {
		xj := c.vt.nonBasicVar(col)
		var suits bool
		var blocking *Bound
		switch {
		case belowLower && cell.Val.Sign() > 0:
			suits = !xj.HasUpper() || rational.Less(xj.Value(), xj.UpperValue())
			blocking = xj.upper
		case belowLower && cell.Val.Sign() < 0:
			suits = !xj.HasLower() || rational.Greater(xj.Value(), xj.LowerValue())
			blocking = xj.lower
		case !belowLower && cell.Val.Sign() > 0:
			suits = !xj.HasLower() || rational.Greater(xj.Value(), xj.LowerValue())
			blocking = xj.lower
		default: // !belowLower && cell.Val.Sign() < 0
			suits = !xj.HasUpper() || rational.Less(xj.Value(), xj.UpperValue())
			blocking = xj.upper
		}
		if suits {
			if bestJ == -1 || xj.ID() < bestID {
				bestJ, bestID = col, xj.ID()
			}
			return
		}
		if blocking != nil {
			conflict = append(conflict, blocking.Lit.Negation())
		}
	})

	if bestJ == -1 {
		return 0, rational.Zero(), conflict, false
	}
	return bestJ, target, nil, true
}

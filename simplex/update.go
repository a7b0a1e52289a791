package simplex

import (
	"github.com/crillab/gophersimplex/rational"
	"github.com/crillab/gophersimplex/tableau"
)

// update shifts non-basic column j's value to v without pivoting, and
// propagates the resulting delta along the column to every basic row that
// references it, enqueuing any basic variable that becomes infeasible.
func (c *Core) update(level, j int, v rational.Q) {
	xj := c.vt.nonBasicVar(j)
	delta := rational.Sub(v, xj.Value())
	c.tab.IterateCol(j, func(i int, cell *tableau.Cell) {
		bi := c.vt.basicVar(i)
		c.trail.setValue(bi, level, rational.Add(bi.Value(), rational.Mul(cell.Val, delta)))
		if !bi.Feasible() {
			c.queue.push(bi.id)
		}
	})
	c.trail.setValue(xj, level, v)
}

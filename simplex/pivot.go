package simplex

import (
	"github.com/crillab/gophersimplex/rational"
	"github.com/crillab/gophersimplex/tableau"
)

// pivot swaps basic row i with non-basic column j, driving basic(i)'s
// value to v, and restores the tableau equation for every row. Precondition:
// A[i,j] != 0 — a programmer error, not a runtime condition, so this panics
// rather than returning an error (spec.md §7).
func (c *Core) pivot(level, i, j int, v rational.Q) {
	xi := c.vt.basicVar(i)
	xj := c.vt.nonBasicVar(j)
	a := c.tab.Get(i, j)
	if a.IsZero() {
		panic("simplex: pivot on a zero coefficient")
	}
	d := rational.Quo(rational.Sub(v, xi.Value()), a)

	c.trail.setValue(xi, level, v)
	c.trail.setValue(xj, level, rational.Add(xj.Value(), d))

	c.tab.IterateCol(j, func(k int, cell *tableau.Cell) {
		if k == i {
			return
		}
		bk := c.vt.basicVar(k)
		c.trail.setValue(bk, level, rational.Add(bk.Value(), rational.Mul(cell.Val, d)))
		if !bk.Feasible() {
			c.queue.push(bk.id)
		}
	})

	c.vt.swap(xi, xj)

	c.tab.IterateRow(i, func(k int, cell *tableau.Cell) {
		if k == j {
			return
		}
		cell.Val = rational.Neg(rational.Quo(cell.Val, a))
	})
	aInv := rational.Quo(rational.One(), a)
	c.tab.Set(i, j, aInv)

	c.tab.IterateCol(j, func(k int, cell *tableau.Cell) {
		if k == i {
			return
		}
		akj := cell.Val
		c.tab.IterateRow(i, func(l int, rowCell *tableau.Cell) {
			if l == j {
				return
			}
			coeff := rowCell.Val
			c.tab.Update(k, l, func(q rational.Q) rational.Q {
				return rational.Add(q, rational.Mul(coeff, akj))
			})
		})
		cell.Val = rational.Mul(akj, aInv)
	})

	c.queue.push(xj.id)
	c.stats.Pivots++
	c.logf("simplex: pivot row=%d col=%d -> basic=%s nonbasic=%s", i, j, xj.name, xi.name)
}

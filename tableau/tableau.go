package tableau

import "github.com/crillab/gophersimplex/rational"

// Cell is a single non-zero entry of a Tableau. A Cell obtained from
// IterateRow or IterateCol is the live storage for that entry: mutating Val
// mutates the tableau in place and is visible from both the row and the
// column index, since both indices point at the same Cell.
type Cell struct {
	Val      rational.Q
	row, col int
}

// Row returns the row this cell belongs to.
func (c *Cell) Row() int { return c.row }

// Col returns the column this cell belongs to.
func (c *Cell) Col() int { return c.col }

// Tableau is a sparse rational matrix, indexed both by row and by column.
type Tableau struct {
	rows map[int]map[int]*Cell
	cols map[int]map[int]*Cell
}

// New returns an empty tableau.
func New() *Tableau {
	return &Tableau{
		rows: make(map[int]map[int]*Cell),
		cols: make(map[int]map[int]*Cell),
	}
}

// Get returns the value stored at (i,j), or zero if no entry is present.
func (t *Tableau) Get(i, j int) rational.Q {
	if row, ok := t.rows[i]; ok {
		if c, ok := row[j]; ok {
			return c.Val
		}
	}
	return rational.Zero()
}

// Set inserts, overwrites, or (if q is zero) removes the entry at (i,j).
func (t *Tableau) Set(i, j int, q rational.Q) {
	row := t.rows[i]
	if row != nil {
		if c, ok := row[j]; ok {
			if q.IsZero() {
				t.remove(c)
			} else {
				c.Val = q
			}
			return
		}
	}
	if q.IsZero() {
		return
	}
	c := &Cell{Val: q, row: i, col: j}
	if row == nil {
		row = make(map[int]*Cell)
		t.rows[i] = row
	}
	row[j] = c
	col := t.cols[j]
	if col == nil {
		col = make(map[int]*Cell)
		t.cols[j] = col
	}
	col[i] = c
}

// Update applies f to the stored value at (i,j) (zero if absent) and stores
// the result, removing the entry if f returns zero.
func (t *Tableau) Update(i, j int, f func(rational.Q) rational.Q) {
	t.Set(i, j, f(t.Get(i, j)))
}

func (t *Tableau) remove(c *Cell) {
	row := t.rows[c.row]
	delete(row, c.col)
	if len(row) == 0 {
		delete(t.rows, c.row)
	}
	col := t.cols[c.col]
	delete(col, c.row)
	if len(col) == 0 {
		delete(t.cols, c.col)
	}
}

// IterateRow invokes f(j, cell) for every non-zero column j of row i, in
// unspecified order. f may mutate cell.Val, including setting it to zero to
// delete the entry. Mutations to any row other than i (via Set/Update) are
// safe to perform from within f; inserting a new entry into row i itself
// from within this iteration is undefined.
func (t *Tableau) IterateRow(i int, f func(j int, cell *Cell)) {
	row := t.rows[i]
	if row == nil {
		return
	}
	cols := make([]int, 0, len(row))
	for j := range row {
		cols = append(cols, j)
	}
	for _, j := range cols {
		c, ok := row[j]
		if !ok {
			continue
		}
		f(j, c)
		if c.Val.IsZero() {
			t.remove(c)
		}
	}
}

// IterateCol invokes f(i, cell) for every non-zero row i of column j,
// symmetric to IterateRow.
func (t *Tableau) IterateCol(j int, f func(i int, cell *Cell)) {
	col := t.cols[j]
	if col == nil {
		return
	}
	rows := make([]int, 0, len(col))
	for i := range col {
		rows = append(rows, i)
	}
	for _, i := range rows {
		c, ok := col[i]
		if !ok {
			continue
		}
		f(i, c)
		if c.Val.IsZero() {
			t.remove(c)
		}
	}
}

// RowLen returns the number of non-zero entries in row i.
func (t *Tableau) RowLen(i int) int {
	return len(t.rows[i])
}

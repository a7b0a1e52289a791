package tableau

import (
	"testing"

	"github.com/crillab/gophersimplex/rational"
)

func TestGetSet(t *testing.T) {
	tab := New()
	if !tab.Get(0, 0).IsZero() {
		t.Fatalf("expected zero on empty tableau")
	}
	tab.Set(0, 0, rational.FromInt(3))
	if got := tab.Get(0, 0); !rational.Equal(got, rational.FromInt(3)) {
		t.Errorf("Get(0,0) = %v, want 3", got)
	}
	tab.Set(0, 0, rational.Zero())
	if !tab.Get(0, 0).IsZero() {
		t.Errorf("expected entry removed after setting to zero")
	}
	if tab.RowLen(0) != 0 {
		t.Errorf("expected row 0 to be empty after removal, got %d entries", tab.RowLen(0))
	}
}

func TestIterateRowAndCol(t *testing.T) {
	tab := New()
	tab.Set(0, 0, rational.FromInt(1))
	tab.Set(0, 1, rational.FromInt(2))
	tab.Set(1, 0, rational.FromInt(3))

	seen := make(map[int]rational.Q)
	tab.IterateRow(0, func(j int, c *Cell) {
		seen[j] = c.Val
	})
	if len(seen) != 2 || !rational.Equal(seen[0], rational.FromInt(1)) || !rational.Equal(seen[1], rational.FromInt(2)) {
		t.Errorf("IterateRow(0) saw %v", seen)
	}

	seen = make(map[int]rational.Q)
	tab.IterateCol(0, func(i int, c *Cell) {
		seen[i] = c.Val
	})
	if len(seen) != 2 || !rational.Equal(seen[0], rational.FromInt(1)) || !rational.Equal(seen[1], rational.FromInt(3)) {
		t.Errorf("IterateCol(0) saw %v", seen)
	}
}

func TestIterateRowCanMutateCurrentCell(t *testing.T) {
	tab := New()
	tab.Set(0, 0, rational.FromInt(5))
	tab.Set(0, 1, rational.FromInt(7))
	tab.IterateRow(0, func(j int, c *Cell) {
		c.Val = rational.Mul(c.Val, rational.FromInt(2))
	})
	if got := tab.Get(0, 0); !rational.Equal(got, rational.FromInt(10)) {
		t.Errorf("Get(0,0) = %v, want 10", got)
	}
	if got := tab.Get(0, 1); !rational.Equal(got, rational.FromInt(14)) {
		t.Errorf("Get(0,1) = %v, want 14", got)
	}
}

func TestIterateRowZeroingRemovesEntry(t *testing.T) {
	tab := New()
	tab.Set(0, 0, rational.FromInt(1))
	tab.Set(0, 1, rational.FromInt(2))
	tab.IterateRow(0, func(j int, c *Cell) {
		if j == 1 {
			c.Val = rational.Zero()
		}
	})
	if tab.RowLen(0) != 1 {
		t.Errorf("expected 1 entry left in row 0, got %d", tab.RowLen(0))
	}
	if _, ok := tab.cols[1]; ok {
		t.Errorf("expected column 1 to be cleaned up after its only entry was zeroed")
	}
}

func TestIterateRowAllowsMutatingOtherRows(t *testing.T) {
	tab := New()
	tab.Set(0, 0, rational.FromInt(1))
	tab.Set(1, 0, rational.FromInt(1))
	tab.IterateRow(0, func(j int, c *Cell) {
		tab.Set(1, j, rational.Add(tab.Get(1, j), rational.FromInt(100)))
	})
	if got := tab.Get(1, 0); !rational.Equal(got, rational.FromInt(101)) {
		t.Errorf("Get(1,0) = %v, want 101", got)
	}
}

func TestUpdate(t *testing.T) {
	tab := New()
	tab.Update(2, 2, func(q rational.Q) rational.Q { return rational.Add(q, rational.FromInt(4)) })
	if got := tab.Get(2, 2); !rational.Equal(got, rational.FromInt(4)) {
		t.Errorf("Get(2,2) = %v, want 4", got)
	}
	tab.Update(2, 2, func(q rational.Q) rational.Q { return rational.Sub(q, rational.FromInt(4)) })
	if tab.RowLen(2) != 0 {
		t.Errorf("expected row 2 to be empty after zeroing the only entry")
	}
}

package simplex

import (
	"testing"

	"github.com/crillab/gophersimplex/rational"
)

// s = x + y, s has an upper bound of 10. Driving y to 12 directly (as if a
// decision, bypassing update) makes s infeasible with two candidate
// partners; x has no bound and so is always suitable, and must be chosen
// over y by Bland's rule even though y is also unbounded, because x has
// the smaller identity.
func TestSearchPicksSmallestIdentitySuitablePartner(t *testing.T) {
	c, x, y, s := newTestRow(t)
	c.tab.Set(0, c.vt.colOf(y), rational.FromInt(1)) // s = x + y, not x + 2y
	s.upper = &Bound{Rel: LE, Rhs: rational.FromInt(10)}

	c.trail.setValue(y, 1, rational.FromInt(12))
	c.trail.setValue(s, 1, rational.FromInt(12))
	c.queue.push(s.id)

	ok, conflict := c.search(1)
	if !ok {
		t.Fatalf("expected search to resolve feasibility, got conflict %v", conflict)
	}
	if !c.vt.isBasic(x) {
		t.Errorf("expected x (smallest identity) to have been pivoted in, leaving y non-basic")
	}
	if !rational.Equal(s.Value(), rational.FromInt(10)) {
		t.Errorf("expected s driven to its upper bound 10, got %s", s.Value())
	}
}

func TestSearchSkipsQueueEntryThatIsNoLongerBasic(t *testing.T) {
	c, x, _, s := newTestRow(t)
	c.vt.swap(s, x) // x is now basic, s is now non-basic
	c.queue.push(s.id)

	ok, _ := c.search(1)
	if !ok {
		t.Fatalf("a stale queue entry for a now non-basic variable should simply be skipped")
	}
}

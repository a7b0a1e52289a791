package simplex

import (
	"testing"

	"github.com/crillab/gophersimplex/rational"
)

func TestPrepareSingleTermBecomesDirectBound(t *testing.T) {
	c := NewCore()
	eng := newFakeEngine()
	lit := IntToLit(1)

	ok := c.Prepare(fakeInit{eng}, []Inequality{
		{Lit: lit, Lhs: []Term{{Coeff: rational.FromInt(1), Name: "x"}}, Rel: GE, Rhs: rational.FromInt(3)},
	})
	if !ok {
		t.Fatalf("Prepare reported a top-level conflict unexpectedly")
	}
	if c.vt.nBasic() != 0 {
		t.Errorf("a single-term inequality should not allocate a basic row, got %d basic vars", c.vt.nBasic())
	}
	if len(eng.watches) != 1 || eng.watches[0] != lit {
		t.Errorf("expected a single watch on the asserting literal, got %v", eng.watches)
	}

	bounds := c.bounds.forLit(lit)
	if len(bounds) != 1 {
		t.Fatalf("expected one bound registered for lit, got %d", len(bounds))
	}
	if bounds[0].Rel != GE || !rational.Equal(bounds[0].Rhs, rational.FromInt(3)) {
		t.Errorf("unexpected bound: rel=%v rhs=%s", bounds[0].Rel, bounds[0].Rhs)
	}
}

func TestPrepareNegativeCoefficientInvertsRelation(t *testing.T) {
	c := NewCore()
	eng := newFakeEngine()
	lit := IntToLit(1)

	// -2x >= 6  <=>  x <= -3
	c.Prepare(fakeInit{eng}, []Inequality{
		{Lit: lit, Lhs: []Term{{Coeff: rational.FromInt(-2), Name: "x"}}, Rel: GE, Rhs: rational.FromInt(6)},
	})

	b := c.bounds.forLit(lit)[0]
	if b.Rel != LE {
		t.Errorf("expected relation to invert to LE, got %v", b.Rel)
	}
	if !rational.Equal(b.Rhs, rational.FromInt(-3)) {
		t.Errorf("expected rhs -3, got %s", b.Rhs)
	}
}

func TestPrepareMultiTermAllocatesBasicRow(t *testing.T) {
	c := NewCore()
	eng := newFakeEngine()
	lit := IntToLit(1)

	ok := c.Prepare(fakeInit{eng}, []Inequality{
		{Lit: lit, Lhs: []Term{
			{Coeff: rational.FromInt(1), Name: "x"},
			{Coeff: rational.FromInt(1), Name: "y"},
		}, Rel: LE, Rhs: rational.FromInt(10)},
	})
	if !ok {
		t.Fatalf("Prepare reported a top-level conflict unexpectedly")
	}
	if c.vt.nNonBasic() != 2 {
		t.Fatalf("expected 2 non-basic variables (x, y), got %d", c.vt.nNonBasic())
	}
	if c.vt.nBasic() != 1 {
		t.Fatalf("expected 1 basic row for the slack, got %d", c.vt.nBasic())
	}
	row := c.vt.basicVar(0)
	if row.name != "" {
		t.Errorf("the synthesized row variable should be unnamed, got %q", row.name)
	}
	if c.tab.Get(0, 0).IsZero() || c.tab.Get(0, 1).IsZero() {
		t.Errorf("expected both non-basic columns populated in row 0")
	}
}

func TestPrepareCombinesLikeTerms(t *testing.T) {
	c := NewCore()
	eng := newFakeEngine()
	lit := IntToLit(1)

	// x + x - 2x + y <= 5: x's coefficient combines to zero and is dropped,
	// leaving only the y term: a 1-term inequality on y.
	c.Prepare(fakeInit{eng}, []Inequality{
		{Lit: lit, Lhs: []Term{
			{Coeff: rational.FromInt(1), Name: "x"},
			{Coeff: rational.FromInt(1), Name: "x"},
			{Coeff: rational.FromInt(-2), Name: "x"},
			{Coeff: rational.FromInt(1), Name: "y"},
		}, Rel: LE, Rhs: rational.FromInt(5)},
	})

	if c.vt.nBasic() != 0 {
		t.Errorf("combining like terms should have collapsed this to a single-term bound, got %d basic rows", c.vt.nBasic())
	}
	if _, ok := c.names["x"]; ok {
		t.Errorf("x's coefficient summed to zero and should never have been interned")
	}
	if _, ok := c.names["y"]; !ok {
		t.Errorf("y should have been interned")
	}
}

func TestPrepareTrivialFalseInequalityAddsUnitClause(t *testing.T) {
	c := NewCore()
	eng := newFakeEngine()
	lit := IntToLit(1)

	// x - x <= -1  =>  0 <= -1, always false: lit must be forced false.
	c.Prepare(fakeInit{eng}, []Inequality{
		{Lit: lit, Lhs: []Term{
			{Coeff: rational.FromInt(1), Name: "x"},
			{Coeff: rational.FromInt(-1), Name: "x"},
		}, Rel: LE, Rhs: rational.FromInt(-1)},
	})

	if len(eng.clauses) != 1 || len(eng.clauses[0]) != 1 || eng.clauses[0][0] != lit.Negation() {
		t.Fatalf("expected a unit clause forcing ¬lit, got %v", eng.clauses)
	}
}

func TestPrepareTopLevelConflictReturnsFalse(t *testing.T) {
	c := NewCore()
	eng := newFakeEngine()
	eng.rejectAddClause = true
	lit := IntToLit(1)

	ok := c.Prepare(fakeInit{eng}, []Inequality{
		{Lit: lit, Lhs: []Term{
			{Coeff: rational.FromInt(1), Name: "x"},
			{Coeff: rational.FromInt(-1), Name: "x"},
		}, Rel: LE, Rhs: rational.FromInt(-1)},
	})
	if ok {
		t.Fatalf("expected Prepare to report a top-level conflict")
	}
	if !c.TopLevelUnsat() {
		t.Errorf("expected TopLevelUnsat to report true")
	}
}

func TestPrepareSkipsAlreadyFalseLiteral(t *testing.T) {
	c := NewCore()
	eng := newFakeEngine()
	lit := IntToLit(1)
	eng.trueAt[lit.Negation()] = 0 // ¬lit already true at the top level

	c.Prepare(fakeInit{eng}, []Inequality{
		{Lit: lit, Lhs: []Term{{Coeff: rational.FromInt(1), Name: "x"}}, Rel: GE, Rhs: rational.FromInt(3)},
	})

	if len(c.bounds.forLit(lit)) != 0 {
		t.Errorf("an inequality whose literal is already false should contribute no bound")
	}
	if len(eng.watches) != 0 {
		t.Errorf("a skipped inequality should not request a watch")
	}
}

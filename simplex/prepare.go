package simplex

import "github.com/crillab/gophersimplex/rational"

// Term is one coefficient*variable term of an inequality's left-hand side.
type Term struct {
	Coeff rational.Q
	Name  string
}

// Inequality is one input record: `Σ Coeff·Name ⋈ Rhs`, tagged with the Lit
// that asserts it.
type Inequality struct {
	Lit  Lit
	Lhs  []Term
	Rel  Relation
	Rhs  rational.Q
}

// pendingRow is a multi-term inequality collected during pass 1 of
// Prepare, whose basic variable has been allocated but not yet placed into
// a slot (that happens in pass 2, once every non-basic variable referenced
// anywhere in the input is known, so basic slots can be compacted to the
// end of the table as spec.md §4.4 requires).
type pendingRow struct {
	basic *Variable
	terms []rowTerm
}

type rowTerm struct {
	col   ident
	coeff rational.Q
}

// Prepare builds the tableau and bound store from inequalities, once per
// search root. It returns false if normalizing the input produced an
// immediate top-level conflict, in which case the outer engine must not
// call AssertAndSolve.
func (c *Core) Prepare(init PropagateInit, inequalities []Inequality) bool {
	var pending []pendingRow

	for _, ineq := range inequalities {
		for _, t := range ineq.Lhs {
			c.recordName(t.Name)
		}

		lit := init.SolverLiteral(ineq.Lit)
		if init.Level(lit.Negation()) == 0 {
			// ℓ is already false at the top level: this inequality can
			// never fire, so it contributes nothing.
			continue
		}

		terms := c.combineLikeTerms(ineq.Lhs)

		switch len(terms) {
		case 0:
			if !satisfiesZero(ineq.Rel, ineq.Rhs) {
				if !init.AddClause([]Lit{lit.Negation()}) {
					c.topLevelUnsat = true
					return false
				}
			}
		case 1:
			t := terms[0]
			v := c.internNonBasic(t.Name)
			rel, rhs := ineq.Rel, rational.Quo(ineq.Rhs, t.Coeff)
			if t.Coeff.Sign() < 0 {
				rel = rel.invert()
			}
			c.bounds.add(lit, v.id, rel, rhs)
			c.watch(init, lit)
		default:
			s := c.vt.alloc("")
			c.bounds.add(lit, s.id, ineq.Rel, ineq.Rhs)
			c.watch(init, lit)
			rowTerms := make([]rowTerm, len(terms))
			for i, t := range terms {
				rowTerms[i] = rowTerm{col: c.internNonBasic(t.Name).id, coeff: t.Coeff}
			}
			pending = append(pending, pendingRow{basic: s, terms: rowTerms})
		}
	}

	for _, row := range pending {
		c.vt.placeBasic(row.basic)
		i := c.vt.rowOf(row.basic)
		for _, t := range row.terms {
			col := c.vt.byID(t.col)
			c.tab.Set(i, c.vt.colOf(col), t.coeff)
		}
	}

	for i := 0; i < c.vt.nBasic(); i++ {
		c.queue.push(c.vt.basicVar(i).id)
	}

	return true
}

// recordName registers name as an externally named input variable, so
// Model reports it (at value 0, if its coefficient never interned it into
// the tableau) even if every inequality referencing it normalized away.
func (c *Core) recordName(name string) {
	if c.inputNames == nil {
		c.inputNames = make(map[string]bool)
	}
	c.inputNames[name] = true
}

// watch requests a watch on lit, at most once per literal.
func (c *Core) watch(init PropagateInit, lit Lit) {
	if c.watched == nil {
		c.watched = make(map[Lit]bool)
	}
	if c.watched[lit] {
		return
	}
	c.watched[lit] = true
	init.AddWatch(lit)
}

// internNonBasic returns the non-basic variable named name, allocating and
// placing it (at the next free non-basic slot) on first reference.
func (c *Core) internNonBasic(name string) *Variable {
	if id, ok := c.names[name]; ok {
		return c.vt.byID(id)
	}
	v := c.vt.alloc(name)
	c.vt.placeNonBasic(v)
	if c.names == nil {
		c.names = make(map[string]ident)
	}
	c.names[name] = v.id
	return v
}

// combineLikeTerms sums coefficients of repeated variable names and drops
// terms whose combined coefficient is zero.
func (c *Core) combineLikeTerms(lhs []Term) []Term {
	order := make([]string, 0, len(lhs))
	sums := make(map[string]rational.Q, len(lhs))
	for _, t := range lhs {
		if _, ok := sums[t.Name]; !ok {
			order = append(order, t.Name)
			sums[t.Name] = t.Coeff
		} else {
			sums[t.Name] = rational.Add(sums[t.Name], t.Coeff)
		}
	}
	out := make([]Term, 0, len(order))
	for _, name := range order {
		coeff := sums[name]
		if coeff.IsZero() {
			continue
		}
		out = append(out, Term{Coeff: coeff, Name: name})
	}
	return out
}

// satisfiesZero reports whether `0 Rel Rhs` holds.
func satisfiesZero(rel Relation, rhs rational.Q) bool {
	switch rel {
	case LE:
		return rational.LessEq(rational.Zero(), rhs)
	case GE:
		return rational.GreaterEq(rational.Zero(), rhs)
	case EQ:
		return rational.Equal(rational.Zero(), rhs)
	default:
		panic("simplex: invalid relation")
	}
}

package simplex

import "fmt"

// Dump returns a deterministic, human-readable rendering of the current
// tableau and active bounds, in the same spirit as the teacher's
// Problem.CNF()/Clause.CNF() debug dumps: one line per row or column,
// usable to diagnose a scenario that asserted unexpectedly or failed to.
func (c *Core) Dump() string {
	res := fmt.Sprintf("vars %d non-basic %d basic %d\n", c.vt.nVars(), c.vt.nNonBasic(), c.vt.nBasic())

	for i := 0; i < c.vt.nBasic(); i++ {
		bv := c.vt.basicVar(i)
		res += fmt.Sprintf("row %d: %s =%s [%s]\n", i, bv.label(), c.rowTerms(i), boundString(bv))
	}

	for j := 0; j < c.vt.nNonBasic(); j++ {
		v := c.vt.nonBasicVar(j)
		res += fmt.Sprintf("col %d: %s = %s [%s]\n", j, v.label(), v.Value(), boundString(v))
	}

	return res
}

// rowTerms renders row i's non-zero entries as " coeff*name" terms, in
// ascending column order.
func (c *Core) rowTerms(i int) string {
	res := ""
	for j := 0; j < c.vt.nNonBasic(); j++ {
		coeff := c.tab.Get(i, j)
		if coeff.IsZero() {
			continue
		}
		res += fmt.Sprintf(" %s*%s", coeff, c.vt.nonBasicVar(j).label())
	}
	return res
}

// label returns v's external name, or a synthesized identity-based label
// for an unnamed row variable.
func (v *Variable) label() string {
	if v.name != "" {
		return v.name
	}
	return fmt.Sprintf("_s%d", v.id)
}

func boundString(v *Variable) string {
	lo, up := "-inf", "+inf"
	if v.HasLower() {
		lo = v.LowerValue().String()
	}
	if v.HasUpper() {
		up = v.UpperValue().String()
	}
	return fmt.Sprintf("%s <= %s <= %s", lo, v.label(), up)
}

package rational

import "math/big"

// Q is an exact rational number. The zero value is 0/1, so a Q used without
// initialization behaves as zero.
type Q struct {
	r big.Rat
}

// Zero is the additive identity.
func Zero() Q { return Q{} }

// One is the multiplicative identity.
func One() Q {
	var q Q
	q.r.SetInt64(1)
	return q
}

// FromInt builds the rational n/1.
func FromInt(n int64) Q {
	var q Q
	q.r.SetInt64(n)
	return q
}

// FromFrac builds the rational num/den. It panics if den is 0, matching the
// panic-on-precondition-violation convention used by the rest of this
// module (see solver preconditions in package simplex).
func FromFrac(num, den int64) Q {
	if den == 0 {
		panic("rational: zero denominator")
	}
	var q Q
	q.r.SetFrac64(num, den)
	return q
}

// Add returns a+b.
func Add(a, b Q) Q {
	var q Q
	q.r.Add(&a.r, &b.r)
	return q
}

// Sub returns a-b.
func Sub(a, b Q) Q {
	var q Q
	q.r.Sub(&a.r, &b.r)
	return q
}

// Mul returns a*b.
func Mul(a, b Q) Q {
	var q Q
	q.r.Mul(&a.r, &b.r)
	return q
}

// Quo returns a/b. It panics if b is zero.
func Quo(a, b Q) Q {
	if b.IsZero() {
		panic("rational: division by zero")
	}
	var q Q
	q.r.Quo(&a.r, &b.r)
	return q
}

// Neg returns -a.
func Neg(a Q) Q {
	var q Q
	q.r.Neg(&a.r)
	return q
}

// IsZero reports whether q is exactly zero.
func (q Q) IsZero() bool {
	return q.r.Sign() == 0
}

// Sign returns -1, 0 or 1 depending on the sign of q.
func (q Q) Sign() int {
	return q.r.Sign()
}

// Cmp compares a and b, returning -1, 0 or 1 as a<b, a==b or a>b.
func Cmp(a, b Q) int {
	return a.r.Cmp(&b.r)
}

// Less reports whether a<b.
func Less(a, b Q) bool { return Cmp(a, b) < 0 }

// LessEq reports whether a<=b.
func LessEq(a, b Q) bool { return Cmp(a, b) <= 0 }

// Greater reports whether a>b.
func Greater(a, b Q) bool { return Cmp(a, b) > 0 }

// GreaterEq reports whether a>=b.
func GreaterEq(a, b Q) bool { return Cmp(a, b) >= 0 }

// Equal reports whether a==b.
func Equal(a, b Q) bool { return Cmp(a, b) == 0 }

// Float64 returns the nearest float64 to q, for display purposes only.
func (q Q) Float64() float64 {
	f, _ := q.r.Float64()
	return f
}

// String renders q as "num/den" (or "num" when den is 1).
func (q Q) String() string {
	return q.r.RatString()
}

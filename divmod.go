package bigword

import "github.com/go-bigword/bigword/internal/limb"

// effectiveLen returns the number of limbs needed to represent x, ignoring
// high zero limbs, with a floor of 1 (mirroring nat.go's norm() but never
// shrinking to length 0 for a divisor, since div-by-empty is the
// division-by-zero case handled separately by callers).
func effectiveLen(x []uint64) int {
	n := len(x)
	for n > 1 && x[n-1] == 0 {
		n--
	}
	return n
}

// DivRem divides x by d, returning the quotient and remainder such that
// x == q*d + r and 0 <= r < d. It errors with DivisionByZero when d == 0.
// Grounded on nat.go's div (dispatching to divW for a single-limb divisor,
// divLarge/Knuth-D otherwise).
func (x Uint) DivRem(d Uint) (q, r Uint, err error) {
	x.mustSameWidth(d)
	width := x.width
	if d.IsZero() {
		return Uint{}, Uint{}, &Error{Kind: DivisionByZero, Width: width}
	}
	if x.Cmp(d) < 0 {
		return Zero(width), x.clone(), nil
	}

	deff := effectiveLen(d.limbs)
	q = makeUint(width)
	r = makeUint(width)

	if deff == 1 {
		rem := limb.DivWVW(q.limbs, 0, x.limbs, d.limbs[0])
		if len(r.limbs) > 0 {
			r.limbs[0] = rem
		}
		return q, r, nil
	}

	u := make([]uint64, len(x.limbs))
	copy(u, x.limbs)
	qlen := len(u) - deff + 1
	qbuf := make([]uint64, qlen)
	limb.DivKnuth(qbuf, u, d.limbs[:deff])
	copy(q.limbs, qbuf)
	copy(r.limbs, u[:deff])
	return q, r, nil
}

// CheckedDiv returns x/d and true, or false if d == 0.
func (x Uint) CheckedDiv(d Uint) (Uint, bool) {
	q, _, err := x.DivRem(d)
	if err != nil {
		return Uint{}, false
	}
	return q, true
}

// CheckedRem returns x%d and true, or false if d == 0.
func (x Uint) CheckedRem(d Uint) (Uint, bool) {
	_, r, err := x.DivRem(d)
	if err != nil {
		return Uint{}, false
	}
	return r, true
}

// DivCeil returns ceil(x/d) and true, or false if d == 0.
func (x Uint) DivCeil(d Uint) (Uint, bool) {
	q, r, err := x.DivRem(d)
	if err != nil {
		return Uint{}, false
	}
	if !r.IsZero() {
		q = q.WrappingAdd(One(x.width))
	}
	return q, true
}

// Div is the plain division operator: traps (division by zero is the one
// unconditional panic spec.md §7 allows the plain operator, in every
// build mode).
func (x Uint) Div(d Uint) Uint {
	q, _, err := x.DivRem(d)
	if err != nil {
		panic(err)
	}
	return q
}

// Rem is the plain remainder operator: traps on division by zero.
func (x Uint) Rem(d Uint) Uint {
	_, r, err := x.DivRem(d)
	if err != nil {
		panic(err)
	}
	return r
}

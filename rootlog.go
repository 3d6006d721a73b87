package bigword

// Log returns the largest k such that base^k <= n, failing if base < 2 or
// n == 0. Grounded on spec.md §4.2's definition, computed by repeated
// checked multiplication rather than a closed form since U[B] has no
// general logarithm primitive to delegate to.
func (n Uint) Log(base Uint) (uint, error) {
	n.mustSameWidth(base)
	if n.IsZero() {
		return 0, ErrDomain
	}
	two := WrappingFromUint64(n.width, 2)
	if base.Cmp(two) < 0 {
		return 0, ErrDomain
	}

	var k uint
	acc := One(n.width)
	for {
		next, overflow := acc.OverflowingMul(base)
		if overflow || next.Cmp(n) > 0 {
			break
		}
		acc = next
		k++
	}
	return k, nil
}

// Log2 returns floor(log2(n)), specialized to bit length rather than
// repeated multiplication.
func (n Uint) Log2() (uint, error) {
	if n.IsZero() {
		return 0, ErrDomain
	}
	return n.BitLen() - 1, nil
}

// Log10 returns floor(log10(n)) by calling Log with base 10, i.e. by
// repeated checked multiplication; it uses no float estimate and no
// precomputed table of powers of ten.
func (n Uint) Log10() (uint, error) {
	if n.IsZero() {
		return 0, ErrDomain
	}
	ten := WrappingFromUint64(n.width, 10)
	return n.Log(ten)
}

// Sqrt returns floor(sqrt(n)) (Root(n, 2)).
func (n Uint) Sqrt() Uint {
	z, _ := n.Root(2)
	return z
}

// Root returns floor(n^(1/degree)) via Newton's method, seeded from
// 2^floor(ApproxLog2(n)/degree) and iterated until it reaches a fixed point
// or the iterates stop decreasing, with a final verification
// x^degree <= n < (x+1)^degree. Grounded directly on
// spec.md §4.2's Newton recurrence; nat.go has its own sqrt but no general
// root, so the iteration shape here is spec.md's, not the teacher's.
func (n Uint) Root(degree uint) (Uint, error) {
	if degree == 0 {
		return Uint{}, ErrDomain
	}
	if n.IsZero() {
		return Zero(n.width), nil
	}
	if degree == 1 {
		return n.clone(), nil
	}

	l2, err := n.ApproxLog2()
	if err != nil {
		return Uint{}, err
	}
	seedExp := l2 / float64(degree)
	var x Uint
	if seedExp < 0 {
		x = One(n.width)
	} else {
		x = approxPow2Int(n.width, uint(seedExp))
	}
	if x.IsZero() {
		x = One(n.width)
	}

	degU := WrappingFromUint64(n.width, uint64(degree))
	degM1 := WrappingFromUint64(n.width, uint64(degree-1))

	decreasing := false
	for {
		xPowM1, overflow := powSmallExp(x, degree-1)
		if overflow || xPowM1.IsZero() {
			// x was seeded too high for this width; fall back to
			// bisection-free halving until the power fits.
			x = x.Shr(1)
			if x.IsZero() {
				x = One(n.width)
			}
			continue
		}
		q, _, err := n.DivRem(xPowM1)
		if err != nil {
			return Uint{}, err
		}
		num, overflow := degM1.OverflowingMul(x)
		if overflow {
			x = x.Shr(1)
			continue
		}
		num, overflow = num.OverflowingAdd(q)
		if overflow {
			x = x.Shr(1)
			continue
		}
		next, _, err := num.DivRem(degU)
		if err != nil {
			return Uint{}, err
		}
		// Standard integer-root Newton termination. A seed below the root
		// makes the first step jump above it; from there the iterates
		// decrease, and the loop stops at a fixed point or as soon as they
		// stop decreasing, rather than waiting for an exact fixed point
		// (which the integer-truncated recurrence can miss, oscillating
		// between two adjacent values forever).
		c := next.Cmp(x)
		if c == 0 || (c > 0 && decreasing) {
			break
		}
		if c < 0 {
			decreasing = true
		}
		x = next
	}

	for {
		p, overflow := powSmallExp(x, degree)
		if !overflow && p.Cmp(n) <= 0 {
			break
		}
		x = x.WrappingSub(One(n.width))
	}
	for {
		xp1 := x.WrappingAdd(One(n.width))
		p, overflow := powSmallExp(xp1, degree)
		if overflow || p.Cmp(n) > 0 {
			break
		}
		x = xp1
	}
	return x, nil
}

// powSmallExp computes x**e for a small uint exponent, reusing
// OverflowingMul (square-and-multiply would be overkill for the tiny
// degree values root-finding uses in practice, typically 2-6).
func powSmallExp(x Uint, e uint) (Uint, bool) {
	result := One(x.width)
	overflow := false
	for i := uint(0); i < e; i++ {
		var ov bool
		result, ov = result.OverflowingMul(x)
		overflow = overflow || ov
	}
	return result, overflow
}

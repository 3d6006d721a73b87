package bigword

import "github.com/go-bigword/bigword/internal/limb"

// ReduceMod returns x mod m for a modulus m that need not divide 2^B, using
// the same DivRem machinery the plain division surface uses. m == 0 yields
// an error rather than a panic, since reduction is a checked operation
// throughout this package (spec.md §4.5).
func (x Uint) ReduceMod(m Uint) (Uint, error) {
	_, r, err := x.DivRem(m)
	if err != nil {
		return Uint{}, err
	}
	return r, nil
}

// AddMod returns (x+y) mod m. The intermediate sum is computed with one
// extra guard limb so it never wraps at 2^B before the reduction happens,
// matching spec.md §4.5's "no spurious wraparound before reducing" rule.
func (x Uint) AddMod(y, m Uint) (Uint, error) {
	x.mustSameWidth(y)
	x.mustSameWidth(m)
	if m.IsZero() {
		return Uint{}, &Error{Kind: DivisionByZero, Width: x.width}
	}
	wide := make([]uint64, x.Len()+1)
	c := limb.AddVV(wide[:x.Len()], x.limbs, y.limbs)
	wide[x.Len()] = c

	mWide := make([]uint64, len(wide))
	copy(mWide, m.limbs)
	_, r, err := reduceWide(x.width, wide, mWide)
	if err != nil {
		return Uint{}, err
	}
	return r, nil
}

// mulModMenuLimbs is sized for cmd/genwidth's widest generated width (U256,
// 4 64-bit limbs): MulMod's double-width product and modulus buffers fit on
// the stack for every width the generated menu ships. A dynamic Uint wider
// than the generated menu has no static bound to size a stack array to, so
// it falls back to heap-allocated buffers below. MulMod is not
// allocation-free at any width: the reduction in reduceWide (and the
// DivKnuth it calls) and the returned Uint's limbs are heap-allocated.
const mulModMenuLimbs = 4

// MulMod returns (x*y) mod m, computing the full 2L-limb product before
// reducing so the result is exact even when x*y would overflow U[B].
// Grounded on nat.go's basicMul followed by a div, the same shape
// math/big's Int.Mod uses for its own % operator.
func (x Uint) MulMod(y, m Uint) (Uint, error) {
	x.mustSameWidth(y)
	x.mustSameWidth(m)
	if m.IsZero() {
		return Uint{}, &Error{Kind: DivisionByZero, Width: x.width}
	}
	n := x.Len()

	var wideBuf, mWideBuf [2 * mulModMenuLimbs]uint64
	var wide, mWide []uint64
	if n <= mulModMenuLimbs {
		wide = wideBuf[:2*n]
		mWide = mWideBuf[:2*n]
	} else {
		wide = make([]uint64, 2*n)
		mWide = make([]uint64, 2*n)
	}

	limb.MulBasic(wide, x.limbs, y.limbs)
	copy(mWide, m.limbs)
	_, r, err := reduceWide(x.width, wide, mWide)
	if err != nil {
		return Uint{}, err
	}
	return r, nil
}

// reduceWide divides a double-width dividend by a modulus zero-extended to
// the same width, returning a width-B quotient/remainder pair. It is the
// shared core of AddMod/MulMod's "compute wide, then reduce" pattern.
func reduceWide(width uint, dividend, modulus []uint64) (q, r Uint, err error) {
	deff := effectiveLen(modulus)
	q = makeUint(width)
	r = makeUint(width)

	if deff == 1 {
		qbuf := make([]uint64, len(dividend))
		rem := limb.DivWVW(qbuf, 0, dividend, modulus[0])
		copy(q.limbs, qbuf)
		if len(r.limbs) > 0 {
			r.limbs[0] = rem
		}
		return q, r, nil
	}

	u := append([]uint64(nil), dividend...)
	qlen := len(u) - deff + 1
	qbuf := make([]uint64, qlen)
	limb.DivKnuth(qbuf, u, modulus[:deff])
	copy(q.limbs, qbuf)
	copy(r.limbs, u[:deff])
	return q, r, nil
}

// PowMod returns x**e mod m via left-to-right binary exponentiation,
// reducing after every squaring and multiplication so intermediate values
// never exceed 2B bits. Grounded on nat.go's expNN (the non-Montgomery,
// non-windowed path it falls back to for small or even moduli).
func (x Uint) PowMod(e, m Uint) (Uint, error) {
	x.mustSameWidth(e)
	x.mustSameWidth(m)
	if m.IsZero() {
		return Uint{}, &Error{Kind: DivisionByZero, Width: x.width}
	}
	base, err := x.ReduceMod(m)
	if err != nil {
		return Uint{}, err
	}
	result, err := One(x.width).ReduceMod(m)
	if err != nil {
		return Uint{}, err
	}
	for i := limb.BitLen(e.limbs) - 1; i >= 0; i-- {
		result, err = result.MulMod(result, m)
		if err != nil {
			return Uint{}, err
		}
		if limb.Bit(e.limbs, uint(i)) != 0 {
			result, err = result.MulMod(base, m)
			if err != nil {
				return Uint{}, err
			}
		}
	}
	return result, nil
}

// GCD returns the greatest common divisor of x and y, via the binary
// (Stein's) algorithm spec.md §4.5 specifies.
func (x Uint) GCD(y Uint) Uint {
	x.mustSameWidth(y)
	xs := append([]uint64(nil), x.limbs...)
	ys := append([]uint64(nil), y.limbs...)
	z := makeUint(x.width)
	limb.GCD(z.limbs, xs, ys)
	return z
}

// LCM returns the least common multiple of x and y, or 0 if either is 0.
func (x Uint) LCM(y Uint) (Uint, error) {
	x.mustSameWidth(y)
	if x.IsZero() || y.IsZero() {
		return Zero(x.width), nil
	}
	g := x.GCD(y)
	q, _, err := x.DivRem(g)
	if err != nil {
		return Uint{}, err
	}
	z, overflow := q.OverflowingMul(y)
	if overflow {
		return Uint{}, overflowErr(x.width, "")
	}
	return z, nil
}

// InvMod returns x^-1 mod m and true, or false if x shares a common factor
// with m (including m == 0). Grounded on limb.ExtGCD, the extended
// Euclidean algorithm with signed coefficient tracking.
func (x Uint) InvMod(m Uint) (Uint, bool) {
	x.mustSameWidth(m)
	if m.IsZero() {
		return Uint{}, false
	}
	xr, err := x.ReduceMod(m)
	if err != nil {
		return Uint{}, false
	}
	n := x.Len()
	g := make([]uint64, n)
	inv := make([]uint64, n)
	ok := limb.ExtGCD(g, inv, xr.limbs, m.limbs)
	if !ok {
		return Uint{}, false
	}
	z := makeUint(x.width)
	copy(z.limbs, inv)
	limb.Mask(z.limbs, x.width)
	return z, true
}

// MulRedc computes x*y*R^-1 mod m for an odd m, where R = 2^(64*L), via
// Montgomery's REDC algorithm; it panics if m is even. x and y are expected
// already in Montgomery form; the result is too. Grounded on
// limb.MontgomeryREDC/nat.go's montgomery method.
func (x Uint) MulRedc(y, m Uint) Uint {
	x.mustSameWidth(y)
	x.mustSameWidth(m)
	n := x.Len()
	z := makeUint(x.width)
	if n == 0 {
		return z
	}
	if m.limbs[0]&1 == 0 {
		panic("bigword: MulRedc: modulus must be odd")
	}
	k := limb.MontgomeryInverse(m.limbs[0])
	limb.MontgomeryREDC(z.limbs, x.limbs, y.limbs, m.limbs, k)
	return z
}

// SquareRedc is MulRedc(x, x, m), named separately since squaring is the
// hot path in modular exponentiation ladders.
func (x Uint) SquareRedc(m Uint) Uint {
	return x.MulRedc(x, m)
}

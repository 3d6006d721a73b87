package bigword

import "github.com/go-bigword/bigword/internal/limb"

// trapOnOverflow controls whether the plain (non-flavored) arithmetic
// operators panic on overflow ("debug mode", spec.md §4.2's default here)
// or silently wrap ("release mode"). See overflow_debug.go/overflow_release.go
// for the two build-tag-selected values, following the pattern math/big's
// own assembly-vs-generic build tags use to pick an implementation at
// compile time.
func trapIfDebug(width uint, op string) {
	if trapOnOverflow {
		panic(&Error{Kind: Overflow, Width: width, Input: op})
	}
}

// WrappingAdd returns x + y mod 2^B.
func (x Uint) WrappingAdd(y Uint) Uint {
	z, _ := x.OverflowingAdd(y)
	return z
}

// OverflowingAdd returns x + y mod 2^B and whether the true sum exceeded
// 2^B - 1. Grounded on nat.go's cadd (ripple-carry addVV) generalized from
// "grow by a limb" to "track the carry out of the fixed top limb", plus the
// top-limb-mask check spec.md's invariant 9 requires.
func (x Uint) OverflowingAdd(y Uint) (Uint, bool) {
	x.mustSameWidth(y)
	z := makeUint(x.width)
	c := limb.AddVV(z.limbs, x.limbs, y.limbs)
	overflow := c != 0
	if len(z.limbs) > 0 {
		mask := limb.TopMask(x.width)
		if z.limbs[len(z.limbs)-1]&^mask != 0 {
			overflow = true
		}
	}
	limb.Mask(z.limbs, x.width)
	return z, overflow
}

// CheckedAdd returns x + y and true, or the zero value and false if the
// exact sum does not fit in [0, 2^B).
func (x Uint) CheckedAdd(y Uint) (Uint, bool) {
	z, overflow := x.OverflowingAdd(y)
	if overflow {
		return Uint{}, false
	}
	return z, true
}

// SaturatingAdd returns x + y clamped to Max(B).
func (x Uint) SaturatingAdd(y Uint) Uint {
	z, overflow := x.OverflowingAdd(y)
	if overflow {
		return Max(x.width)
	}
	return z
}

// Add is the plain flavor: traps on overflow in debug builds, wraps in
// release builds (see trapOnOverflow).
func (x Uint) Add(y Uint) Uint {
	z, overflow := x.OverflowingAdd(y)
	if overflow {
		trapIfDebug(x.width, "add overflow")
	}
	return z
}

// WrappingSub returns x - y mod 2^B.
func (x Uint) WrappingSub(y Uint) Uint {
	z, _ := x.OverflowingSub(y)
	return z
}

// OverflowingSub returns x - y mod 2^B and whether x < y (a borrow
// occurred). Grounded on nat.go's csub.
func (x Uint) OverflowingSub(y Uint) (Uint, bool) {
	x.mustSameWidth(y)
	z := makeUint(x.width)
	c := limb.SubVV(z.limbs, x.limbs, y.limbs)
	limb.Mask(z.limbs, x.width)
	return z, c != 0
}

// CheckedSub returns x - y and true, or false if x < y.
func (x Uint) CheckedSub(y Uint) (Uint, bool) {
	z, borrow := x.OverflowingSub(y)
	if borrow {
		return Uint{}, false
	}
	return z, true
}

// SaturatingSub returns x - y clamped to 0.
func (x Uint) SaturatingSub(y Uint) Uint {
	z, borrow := x.OverflowingSub(y)
	if borrow {
		return Zero(x.width)
	}
	return z
}

// Sub is the plain flavor of subtraction.
func (x Uint) Sub(y Uint) Uint {
	z, borrow := x.OverflowingSub(y)
	if borrow {
		trapIfDebug(x.width, "sub underflow")
	}
	return z
}

// WrappingNeg returns (0 - x) mod 2^B, i.e. the two's-complement negation.
func (x Uint) WrappingNeg() Uint {
	return Zero(x.width).WrappingSub(x)
}

// OverflowingNeg returns (0 - x) mod 2^B and whether x != 0 (negation is
// only exact, within [0, 2^B), for x == 0).
func (x Uint) OverflowingNeg() (Uint, bool) {
	return Zero(x.width).OverflowingSub(x)
}

// CheckedNeg returns -x and true only when x == 0.
func (x Uint) CheckedNeg() (Uint, bool) {
	if x.IsZero() {
		return x, true
	}
	return Uint{}, false
}

// SaturatingNeg returns 0 for any x != 0, and 0 for x == 0.
func (x Uint) SaturatingNeg() Uint {
	return Zero(x.width)
}

// Neg is the plain flavor of negation.
func (x Uint) Neg() Uint {
	z, overflow := x.OverflowingNeg()
	if overflow {
		trapIfDebug(x.width, "neg of nonzero")
	}
	return z
}

// MulSmall multiplies x by a single 64-bit scalar using the optimized
// single-limb path (spec.md §4.2), returning the wrapped result and
// overflow flag. Grounded on nat.go's mulAddWW / cmulAddWW.
func (x Uint) MulSmall(y uint64) (Uint, bool) {
	n := x.Len()
	wide := make([]uint64, n+1)
	wide[n] = limb.MulAddVWW(wide[:n], x.limbs, y, 0)
	return finishMul(x.width, wide)
}

// WrappingMul returns x * y mod 2^B.
func (x Uint) WrappingMul(y Uint) Uint {
	z, _ := x.OverflowingMul(y)
	return z
}

// OverflowingMul returns x*y mod 2^B and whether the true product exceeded
// 2^B - 1. Grounded on nat.go's cmul / basicMul (schoolbook only: see
// DESIGN.md for why Karatsuba is not carried over to fixed-width
// multiplication).
func (x Uint) OverflowingMul(y Uint) (Uint, bool) {
	x.mustSameWidth(y)
	n := x.Len()
	wide := make([]uint64, 2*n)
	limb.MulBasic(wide, x.limbs, y.limbs)
	return finishMul(x.width, wide)
}

// finishMul canonicalizes a 2L-limb wide product down to the low L limbs,
// reporting overflow if any high limb or masked bit was discarded.
func finishMul(width uint, wide []uint64) (Uint, bool) {
	n := limb.Len(width)
	overflow := false
	for i := n; i < len(wide); i++ {
		if wide[i] != 0 {
			overflow = true
			break
		}
	}
	z := makeUint(width)
	copy(z.limbs, wide[:n])
	if len(z.limbs) > 0 {
		mask := limb.TopMask(width)
		if z.limbs[len(z.limbs)-1]&^mask != 0 {
			overflow = true
		}
	}
	limb.Mask(z.limbs, width)
	return z, overflow
}

// CheckedMul returns x*y and true, or false on overflow.
func (x Uint) CheckedMul(y Uint) (Uint, bool) {
	z, overflow := x.OverflowingMul(y)
	if overflow {
		return Uint{}, false
	}
	return z, true
}

// SaturatingMul returns x*y clamped to Max(B).
func (x Uint) SaturatingMul(y Uint) Uint {
	z, overflow := x.OverflowingMul(y)
	if overflow {
		return Max(x.width)
	}
	return z
}

// Mul is the plain flavor of multiplication.
func (x Uint) Mul(y Uint) Uint {
	z, overflow := x.OverflowingMul(y)
	if overflow {
		trapIfDebug(x.width, "mul overflow")
	}
	return z
}

// WrappingPow returns x**e mod 2^B, via left-to-right binary
// exponentiation (spec.md §4.2).
func (x Uint) WrappingPow(e Uint) Uint {
	z, _ := x.OverflowingPow(e)
	return z
}

// OverflowingPow returns x**e mod 2^B and whether any intermediate
// squaring or multiplication overflowed.
func (x Uint) OverflowingPow(e Uint) (Uint, bool) {
	x.mustSameWidth(e)
	result := One(x.width)
	overflow := false
	for i := limb.BitLen(e.limbs) - 1; i >= 0; i-- {
		var ov bool
		result, ov = result.OverflowingMul(result)
		overflow = overflow || ov
		if limb.Bit(e.limbs, uint(i)) != 0 {
			result, ov = result.OverflowingMul(x)
			overflow = overflow || ov
		}
	}
	return result, overflow
}

// CheckedPow returns x**e and true, or false if any step overflowed.
func (x Uint) CheckedPow(e Uint) (Uint, bool) {
	z, overflow := x.OverflowingPow(e)
	if overflow {
		return Uint{}, false
	}
	return z, true
}

// SaturatingPow returns x**e clamped to Max(B) if it would overflow.
func (x Uint) SaturatingPow(e Uint) Uint {
	z, overflow := x.OverflowingPow(e)
	if overflow {
		return Max(x.width)
	}
	return z
}

// Pow is the plain flavor of exponentiation.
func (x Uint) Pow(e Uint) Uint {
	z, overflow := x.OverflowingPow(e)
	if overflow {
		trapIfDebug(x.width, "pow overflow")
	}
	return z
}

package bigword

import "github.com/go-bigword/bigword/internal/limb"

// Not returns ^x masked to B bits (spec.md §4.3: bitwise complement is
// total, there is no overflow to report). Grounded on nat.go having no
// bitwise ops of its own (nat is unsigned-magnitude, not two's complement);
// this is written directly from limb.Not plus the canonicalizing mask every
// Uint method applies on the way out.
func (x Uint) Not() Uint {
	z := makeUint(x.width)
	limb.Not(z.limbs, x.limbs)
	limb.Mask(z.limbs, x.width)
	return z
}

// And returns x & y.
func (x Uint) And(y Uint) Uint {
	x.mustSameWidth(y)
	z := makeUint(x.width)
	limb.And(z.limbs, x.limbs, y.limbs)
	return z
}

// Or returns x | y.
func (x Uint) Or(y Uint) Uint {
	x.mustSameWidth(y)
	z := makeUint(x.width)
	limb.Or(z.limbs, x.limbs, y.limbs)
	return z
}

// Xor returns x ^ y.
func (x Uint) Xor(y Uint) Uint {
	x.mustSameWidth(y)
	z := makeUint(x.width)
	limb.Xor(z.limbs, x.limbs, y.limbs)
	return z
}

// shlLimbs shifts z = x << n, n in [0, width], handling the whole-limb part
// itself and delegating the sub-limb remainder to limb.ShlVU. Returns the
// bits shifted out past the top, left-justified across as many limbs as
// were vacated (used by OverflowingShl to detect loss).
func shlLimbs(z, x []uint64, n uint) (shiftedOut []uint64) {
	L := len(x)
	if L == 0 {
		return nil
	}
	limbShift := int(n / 64)
	bitShift := n % 64

	lost := make([]uint64, L)
	work := make([]uint64, L)
	if limbShift >= L {
		copy(lost, x)
	} else if limbShift > 0 {
		copy(work[limbShift:], x[:L-limbShift])
		copy(lost, x[L-limbShift:])
	} else {
		copy(work, x)
	}

	if bitShift != 0 && limbShift < L {
		carryOut := limb.ShlVU(work, work, bitShift)
		// carryOut holds the bits shifted off the top of work, which land
		// at the bit position immediately above the visible field — the
		// same virtual limb the whole-limb shift above already assigned
		// to lost[0].
		lost[0] |= carryOut
	}
	copy(z, work)
	return lost
}

// WrappingShl returns x << n mod 2^B (n taken mod B+1 is not special-cased;
// a shift amount >= B simply yields 0).
func (x Uint) WrappingShl(n uint) Uint {
	z, _ := x.OverflowingShl(n)
	return z
}

// OverflowingShl returns x << n mod 2^B and whether any set bit was shifted
// out past bit B-1.
func (x Uint) OverflowingShl(n uint) (Uint, bool) {
	z := makeUint(x.width)
	if x.Len() == 0 {
		return z, false
	}
	lost := shlLimbs(z.limbs, x.limbs, n)
	overflow := false
	for _, w := range lost {
		if w != 0 {
			overflow = true
			break
		}
	}
	if !overflow && len(z.limbs) > 0 {
		mask := limb.TopMask(x.width)
		if z.limbs[len(z.limbs)-1]&^mask != 0 {
			overflow = true
		}
	}
	limb.Mask(z.limbs, x.width)
	return z, overflow
}

// CheckedShl returns x << n and true, or false if any bit was lost.
func (x Uint) CheckedShl(n uint) (Uint, bool) {
	z, overflow := x.OverflowingShl(n)
	if overflow {
		return Uint{}, false
	}
	return z, true
}

// SaturatingShl returns x << n clamped to Max(B) if any bit would be lost.
func (x Uint) SaturatingShl(n uint) Uint {
	z, overflow := x.OverflowingShl(n)
	if overflow {
		return Max(x.width)
	}
	return z
}

// Shl is the plain flavor of left shift.
func (x Uint) Shl(n uint) Uint {
	z, overflow := x.OverflowingShl(n)
	if overflow {
		trapIfDebug(x.width, "shl overflow")
	}
	return z
}

// Shr returns x >> n (logical, zero-filling: there is no sign to extend in
// an unsigned type). A shift amount >= B yields 0. Unlike left shift, a
// right shift can never lose information above bit B-1, so there is only
// one flavor (spec.md §4.3).
func (x Uint) Shr(n uint) Uint {
	z := makeUint(x.width)
	if x.Len() == 0 {
		return z
	}
	limbShift := int(n / 64)
	bitShift := n % 64
	L := x.Len()
	if limbShift >= L {
		return z
	}
	work := make([]uint64, L)
	copy(work, x.limbs[limbShift:])
	if bitShift != 0 {
		limb.ShrVU(work[:L-limbShift], work[:L-limbShift], bitShift)
	}
	copy(z.limbs, work)
	return z
}

// RotateLeft returns x rotated left by n bits within its B-bit width.
// Grounded on the shift-and-or idiom bits.RotateLeft64 uses, generalized
// across limbs via Shl/Shr/Or.
func (x Uint) RotateLeft(n uint) Uint {
	if x.width == 0 {
		return x
	}
	n %= x.width
	if n == 0 {
		return x.clone()
	}
	left := x.WrappingShl(n)
	right := x.Shr(x.width - n)
	return left.Or(right)
}

// RotateRight returns x rotated right by n bits within its B-bit width.
func (x Uint) RotateRight(n uint) Uint {
	if x.width == 0 {
		return x
	}
	n %= x.width
	if n == 0 {
		return x.clone()
	}
	return x.RotateLeft(x.width - n)
}

// LeadingZeros returns the number of leading (most significant) zero bits
// within the B-bit width.
func (x Uint) LeadingZeros() uint {
	if x.width == 0 {
		return 0
	}
	return x.width - uint(limb.BitLen(x.limbs))
}

// LeadingOnes returns the number of leading (most significant) one bits.
func (x Uint) LeadingOnes() uint {
	return x.Not().LeadingZeros()
}

// TrailingZeros returns the number of trailing (least significant) zero
// bits, or B if x is zero.
func (x Uint) TrailingZeros() uint {
	if x.IsZero() {
		return x.width
	}
	return limb.TrailingZeros(x.limbs)
}

// TrailingOnes returns the number of trailing (least significant) one bits.
func (x Uint) TrailingOnes() uint {
	return x.Not().TrailingZeros()
}

// CountOnes returns the number of set bits (population count).
func (x Uint) CountOnes() uint {
	return uint(limb.CountOnes(x.limbs))
}

// CountZeros returns the number of unset bits within the B-bit width.
func (x Uint) CountZeros() uint {
	return x.width - x.CountOnes()
}

// BitLen returns the position of the highest set bit plus one (0 for x==0).
func (x Uint) BitLen() uint {
	return uint(limb.BitLen(x.limbs))
}

// ByteLen returns ceil(BitLen()/8).
func (x Uint) ByteLen() uint {
	return (x.BitLen() + 7) / 8
}

// IsPowerOfTwo reports whether x is a nonzero power of two.
func (x Uint) IsPowerOfTwo() bool {
	return !x.IsZero() && x.CountOnes() == 1
}

// NextPowerOfTwo returns the smallest power of two >= x, and whether that
// value fits within B bits.
func (x Uint) NextPowerOfTwo() (Uint, bool) {
	if x.IsZero() {
		if x.width == 0 {
			return Uint{}, false
		}
		return One(x.width), true
	}
	if x.IsPowerOfTwo() {
		return x.clone(), true
	}
	shift := x.BitLen()
	if shift >= x.width {
		return Uint{}, false
	}
	return One(x.width).WrappingShl(shift), true
}

// NextMultipleOf returns the smallest multiple of n that is >= x, and
// whether that value fits within B bits. n == 0 is defined to return x
// unchanged (every value is a "multiple" of the degenerate divisor in the
// sense that there is nothing to round up to).
func (x Uint) NextMultipleOf(n Uint) (Uint, bool) {
	x.mustSameWidth(n)
	if n.IsZero() {
		return x.clone(), true
	}
	_, r, err := x.DivRem(n)
	if err != nil {
		return Uint{}, false
	}
	if r.IsZero() {
		return x.clone(), true
	}
	diff, _ := n.OverflowingSub(r)
	return x.CheckedAdd(diff)
}

// Bit returns the value of bit i (0 = least significant), or 0 if i >= B.
func (x Uint) Bit(i uint) uint {
	if i >= x.width {
		return 0
	}
	return limb.Bit(x.limbs, i)
}

// SetBit returns a copy of x with bit i set to v (0 or 1). i >= B is a
// no-op, matching Bit's out-of-range convention.
func (x Uint) SetBit(i uint, v uint) Uint {
	z := x.clone()
	if i >= x.width {
		return z
	}
	limb.SetBit(z.limbs, z.limbs, i, v)
	return z
}

// ReverseBits returns x with its B bits reversed end-for-end.
func (x Uint) ReverseBits() Uint {
	z := makeUint(x.width)
	limb.ReverseBits(z.limbs, x.limbs, x.width)
	return z
}

// MostSignificantBits returns the top k bits of x, right-justified, as a
// value in [0, 2^k). k > B is clamped to B.
func (x Uint) MostSignificantBits(k uint) Uint {
	if k > x.width {
		k = x.width
	}
	return x.Shr(x.width - k)
}

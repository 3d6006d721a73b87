package bigword

import (
	"math"

	"golang.org/x/exp/constraints"
)

// FromUint64 constructs a Uint from a uint64, failing if it doesn't fit in
// width bits.
func FromUint64(width uint, v uint64) (Uint, error) {
	z := Zero(width)
	if len(z.limbs) > 0 {
		z.limbs[0] = v
	} else if v != 0 {
		return Uint{}, overflowErr(width, digitsOf64(v))
	}
	if !isCanonicalFor(z) {
		return Uint{}, overflowErr(width, digitsOf64(v))
	}
	return z, nil
}

// WrappingFromUint64 is FromUint64 but masks instead of failing.
func WrappingFromUint64(width uint, v uint64) Uint {
	z := Zero(width)
	if len(z.limbs) > 0 {
		z.limbs[0] = v
	}
	maskTop(z)
	return z
}

// SaturatingFromUint64 is FromUint64 but clamps to Max(width) instead of
// failing when v does not fit.
func SaturatingFromUint64(width uint, v uint64) Uint {
	z, err := FromUint64(width, v)
	if err != nil {
		return Max(width)
	}
	return z
}

// OverflowingFromUint64 is FromUint64 but reports the overflow instead of
// failing: it always returns the wrapped (masked) value, plus whether v
// had to be truncated to fit in width bits.
func OverflowingFromUint64(width uint, v uint64) (Uint, bool) {
	z := WrappingFromUint64(width, v)
	back, exact := z.ToUint64()
	return z, !exact || back != v
}

// FromInt constructs a Uint from any signed or unsigned built-in integer
// type, failing on negative input or on a magnitude that does not fit.
// Grounded on nat.go's setUint64/setInt64 pair, generalized over
// constraints.Integer the way math/big itself cannot (predating generics).
func FromInt[T constraints.Integer](width uint, v T) (Uint, error) {
	if v < 0 {
		return Uint{}, overflowErr(width, "")
	}
	return FromUint64(width, uint64(v))
}

// SaturatingFromInt is FromInt but clamps: a negative v saturates to
// Zero(width) (U[B] has no negative values to wrap to), and a magnitude
// too large for width saturates to Max(width).
func SaturatingFromInt[T constraints.Integer](width uint, v T) Uint {
	if v < 0 {
		return Zero(width)
	}
	return SaturatingFromUint64(width, uint64(v))
}

// OverflowingFromInt is FromInt but reports the overflow instead of
// failing: a negative v reports overflow against Zero(width); otherwise
// behaves like OverflowingFromUint64.
func OverflowingFromInt[T constraints.Integer](width uint, v T) (Uint, bool) {
	if v < 0 {
		return Zero(width), true
	}
	return OverflowingFromUint64(width, uint64(v))
}

// ToUint64 returns x's value truncated to (and reinterpreted as) a uint64,
// and whether the truncation was exact.
func (x Uint) ToUint64() (uint64, bool) {
	exact := true
	for i := 1; i < len(x.limbs); i++ {
		if x.limbs[i] != 0 {
			exact = false
			break
		}
	}
	if len(x.limbs) == 0 {
		return 0, true
	}
	return x.limbs[0], exact
}

// SaturatingToUint64 returns x's value, clamped to math.MaxUint64 if x does
// not fit.
func (x Uint) SaturatingToUint64() uint64 {
	v, exact := x.ToUint64()
	if !exact {
		return math.MaxUint64
	}
	return v
}

// OverflowingToUint64 is ToUint64 with the overflow flag inverted to match
// this package's Overflowing* naming convention (true means truncation
// occurred), alongside the truncated value itself.
func (x Uint) OverflowingToUint64() (uint64, bool) {
	v, exact := x.ToUint64()
	return v, !exact
}

func maskTop(z Uint) {
	if len(z.limbs) == 0 {
		return
	}
	if m := z.width % 64; m != 0 {
		z.limbs[len(z.limbs)-1] &= uint64(1)<<m - 1
	}
}

func digitsOf64(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// ApproxLog2 returns an approximation of log2(x) as a float64, via the
// standard "bit position of the top limb, refined by its leading bits"
// technique (exact for powers of two, otherwise accurate to float64's
// mantissa precision for the leading word). Errors with ErrDomain for
// x == 0 (log of zero is undefined). Grounded on nat.go having no floating
// conversion of its own; math/big.Float.SetInt's normalization shift is the
// closest idiomatic precedent for "extract a float from a big integer's
// leading bits".
func (x Uint) ApproxLog2() (float64, error) {
	if x.IsZero() {
		return 0, ErrDomain
	}
	bl := x.BitLen()
	k := minUint(bl, 64)
	// Window the top k bits starting exactly at x's own most significant
	// set bit (bl-1), not at the width's top bit: MostSignificantBits is
	// defined relative to the full B-bit field, which would include
	// leading zeros here and misalign the window whenever bl < B.
	top := x.Shr(bl - k)
	v, _ := top.ToUint64()
	return math.Log2(float64(v)) + float64(bl-k), nil
}

// ApproxLog returns an approximation of the natural logarithm of x.
func (x Uint) ApproxLog() (float64, error) {
	l2, err := x.ApproxLog2()
	if err != nil {
		return 0, err
	}
	return l2 * math.Ln2, nil
}

// ApproxLog10 returns an approximation of log10(x).
func (x Uint) ApproxLog10() (float64, error) {
	l2, err := x.ApproxLog2()
	if err != nil {
		return 0, err
	}
	return l2 / math.Log2(10), nil
}

// ApproxPow2 returns the Uint nearest to 2^e (rounded down), the inverse of
// ApproxLog2. Per spec.md §4.4's float bridge contract, this saturates
// rather than errors: a NaN exponent maps to zero, a negative exponent
// (2^e < 1) maps to zero, and an exponent at or beyond width maps to
// Max(width). An integral e is exact (the WrappingShl(One, e) idiom); a
// fractional e uses 2^frac(e) as a 53-bit mantissa placed at bit
// floor(e). The saturating boundaries mirror the SaturatingAdd/Sub family's
// clamp-instead-of-wrap convention used throughout this package.
func ApproxPow2(width uint, e float64) Uint {
	if math.IsNaN(e) || e < 0 {
		return Zero(width)
	}
	if e >= float64(width) {
		return Max(width)
	}
	ip, fp := math.Modf(e)
	if fp == 0 {
		return approxPow2Int(width, uint(ip))
	}
	mant := uint64(math.Ldexp(math.Exp2(fp), 52))
	if mant >= 1<<53 {
		mant = 1<<53 - 1
	}
	k := uint(ip)
	if k < 52 {
		return WrappingFromUint64(width, mant>>(52-k))
	}
	return WrappingFromUint64(width, mant).WrappingShl(k - 52)
}

// approxPow2Int is the exact integer-exponent core of ApproxPow2, kept
// internal for Root/Sqrt's Newton-seed computation, which always works
// with an in-range integer exponent and has no use for the float
// saturation behavior the public float64-based ApproxPow2 must expose.
func approxPow2Int(width uint, e uint) Uint {
	if e >= width {
		return Max(width)
	}
	return One(width).WrappingShl(e)
}

func minUint(a, b uint) uint {
	if a < b {
		return a
	}
	return b
}

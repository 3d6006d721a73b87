package bigword

import (
	"github.com/go-bigword/bigword/internal/limb"
)

// Uint is a value in [0, 2^Width). It is the dynamic-width realization of
// U[B] (see doc.go): Width is fixed at construction and never changes for
// the lifetime of a value, exactly as a generic type parameter would be
// fixed at a call site in a language with const generics.
//
// The zero value of Uint (an empty Uint{}) represents U[0]'s unique value;
// every other width must be produced through a constructor.
type Uint struct {
	width uint
	limbs []uint64 // length limb.Len(width), canonical (top bits masked)
}

// Width reports B, the bit width this value was constructed with.
func (x Uint) Width() uint { return x.width }

// Len reports L, the limb count for this value's width.
func (x Uint) Len() int { return limb.Len(x.width) }

func makeUint(width uint) Uint {
	return Uint{width: width, limbs: make([]uint64, limb.Len(width))}
}

// Zero returns the additive identity for the given width.
func Zero(width uint) Uint {
	return makeUint(width)
}

// One returns the value 1 for the given width (0 when width == 0, since
// U[0] has only the empty sum).
func One(width uint) Uint {
	z := makeUint(width)
	if len(z.limbs) > 0 {
		z.limbs[0] = 1
		limb.Mask(z.limbs, width)
	}
	return z
}

// Max returns 2^width - 1, the largest representable value.
func Max(width uint) Uint {
	z := makeUint(width)
	for i := range z.limbs {
		z.limbs[i] = ^uint64(0)
	}
	limb.Mask(z.limbs, width)
	return z
}

// FromLimbs constructs a Uint from exactly L limbs, failing if any bit
// above position B-1 is set. Grounded on spec.md §4.1's exact-length
// constructor.
func FromLimbs(width uint, ls []uint64) (Uint, error) {
	want := limb.Len(width)
	if len(ls) != want {
		return Uint{}, lengthErr(width, digitsOf(len(ls)))
	}
	z := makeUint(width)
	copy(z.limbs, ls)
	if !limb.Canonical(z.limbs, width) {
		return Uint{}, overflowErr(width, "")
	}
	return z, nil
}

// WrappingFromLimbs is like FromLimbs but masks away any out-of-range bits
// instead of failing.
func WrappingFromLimbs(width uint, ls []uint64) Uint {
	z := makeUint(width)
	n := copy(z.limbs, ls)
	_ = n
	limb.Mask(z.limbs, width)
	return z
}

// SaturatingFromLimbs is like FromLimbs but clamps to Max(width) if the
// input would overflow.
func SaturatingFromLimbs(width uint, ls []uint64) Uint {
	if z, err := FromLimbs(width, ls); err == nil {
		return z
	}
	return Max(width)
}

// OverflowingFromLimbs is like FromLimbs but also reports whether
// truncation occurred instead of failing.
func OverflowingFromLimbs(width uint, ls []uint64) (Uint, bool) {
	z, err := FromLimbs(width, ls)
	if err == nil {
		return z, false
	}
	return WrappingFromLimbs(width, ls), true
}

// FromLimbSlice constructs a Uint from an arbitrary-length limb slice,
// truncating limbs past L. It fails if any discarded high limb is nonzero,
// or if the retained top limb has bits set above the width mask. Grounded
// on spec.md §4.1's "from limb slice (arbitrary length)" constructor.
func FromLimbSlice(width uint, ls []uint64) (Uint, error) {
	want := limb.Len(width)
	z := makeUint(width)
	n := want
	if n > len(ls) {
		n = len(ls)
	}
	copy(z.limbs, ls[:n])
	for i := want; i < len(ls); i++ {
		if ls[i] != 0 {
			return Uint{}, overflowErr(width, digitsOf(len(ls)))
		}
	}
	if !limb.Canonical(z.limbs, width) {
		return Uint{}, overflowErr(width, "")
	}
	return z, nil
}

// WrappingFromLimbSlice is like FromLimbSlice but silently truncates and
// masks instead of failing.
func WrappingFromLimbSlice(width uint, ls []uint64) Uint {
	want := limb.Len(width)
	z := makeUint(width)
	n := want
	if n > len(ls) {
		n = len(ls)
	}
	copy(z.limbs, ls[:n])
	limb.Mask(z.limbs, width)
	return z
}

// SaturatingFromLimbSlice is like FromLimbSlice but clamps to Max(width)
// on overflow.
func SaturatingFromLimbSlice(width uint, ls []uint64) Uint {
	if z, err := FromLimbSlice(width, ls); err == nil {
		return z
	}
	return Max(width)
}

// OverflowingFromLimbSlice is like FromLimbSlice but reports truncation
// instead of failing.
func OverflowingFromLimbSlice(width uint, ls []uint64) (Uint, bool) {
	z, err := FromLimbSlice(width, ls)
	if err == nil {
		return z, false
	}
	return WrappingFromLimbSlice(width, ls), true
}

// Limbs returns a copy of x's little-endian limb array.
func (x Uint) Limbs() []uint64 {
	out := make([]uint64, len(x.limbs))
	copy(out, x.limbs)
	return out
}

// IsZero reports whether x == 0.
func (x Uint) IsZero() bool {
	return limb.IsZero(x.limbs)
}

// Equal reports whether x == y. Both must share the same width.
func (x Uint) Equal(y Uint) bool {
	x.mustSameWidth(y)
	return limb.Cmp(x.limbs, y.limbs) == 0
}

// Cmp returns -1, 0 or 1 as x is less than, equal to, or greater than y.
func (x Uint) Cmp(y Uint) int {
	x.mustSameWidth(y)
	return limb.Cmp(x.limbs, y.limbs)
}

// Less reports whether x < y, for use with slices.SortFunc-style ordering.
func (x Uint) Less(y Uint) bool { return x.Cmp(y) < 0 }

func (x Uint) mustSameWidth(y Uint) {
	if x.width != y.width {
		panic("bigword: mismatched widths")
	}
}

func (x Uint) clone() Uint {
	z := makeUint(x.width)
	copy(z.limbs, x.limbs)
	return z
}

// ConstantTimeEq reports whether x == y in data-independent time: the only
// constant-time contract this library makes (spec.md §5). Grounded on
// nat.go's czero/nonzero constant-time helpers.
func (x Uint) ConstantTimeEq(y Uint) bool {
	x.mustSameWidth(y)
	var diff uint64
	for i := range x.limbs {
		diff |= x.limbs[i] ^ y.limbs[i]
	}
	return diff == 0
}

func digitsOf(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

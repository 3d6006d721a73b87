package bigword

import "github.com/go-bigword/bigword/internal/limb"

// Bits is the bitwise-only sibling of Uint: the same L-limb fixed-width
// storage, but restricted to the operations spec.md §3/§4.3 grants a "bag
// of bits" rather than a ring element — no arithmetic, no Cmp/Less ordering
// beyond equality. It exists because a byte-like bitfield (flags, a hash
// digest, a register snapshot) is not a number and should not accidentally
// support Add/Mul, the same reasoning nat.go's own package split keeps
// unsigned magnitudes (nat) separate from arbitrary-precision rationals
// (Rat) rather than collapsing every fixed-size payload into one type.
type Bits struct {
	width uint
	limbs []uint64
}

// Width reports B.
func (b Bits) Width() uint { return b.width }

// Len reports L, the limb count.
func (b Bits) Len() int { return limb.Len(b.width) }

func makeBits(width uint) Bits {
	return Bits{width: width, limbs: make([]uint64, limb.Len(width))}
}

// ZeroBits returns the all-zero Bits value for the given width.
func ZeroBits(width uint) Bits {
	return makeBits(width)
}

// AsUint reinterprets b as a Uint of the same width and bit pattern,
// zero-cost apart from the slice-header copy (both types share the same
// underlying limb layout, so this is the sanctioned escape hatch between
// the two views spec.md §3 describes).
func (b Bits) AsUint() Uint {
	return Uint{width: b.width, limbs: b.limbs}
}

// AsBits reinterprets x as a Bits value of the same width and bit pattern.
func (x Uint) AsBits() Bits {
	return Bits{width: x.width, limbs: x.limbs}
}

// FromBitsLimbs constructs a Bits from exactly L limbs, failing if any bit
// above B-1 is set.
func FromBitsLimbs(width uint, ls []uint64) (Bits, error) {
	u, err := FromLimbs(width, ls)
	if err != nil {
		return Bits{}, err
	}
	return u.AsBits(), nil
}

// Limbs returns a copy of b's little-endian limb array.
func (b Bits) Limbs() []uint64 {
	out := make([]uint64, len(b.limbs))
	copy(out, b.limbs)
	return out
}

// IsZero reports whether every bit of b is 0.
func (b Bits) IsZero() bool {
	return limb.IsZero(b.limbs)
}

// Equal reports whether b == other.
func (b Bits) Equal(other Bits) bool {
	b.mustSameWidth(other)
	return limb.Cmp(b.limbs, other.limbs) == 0
}

func (b Bits) mustSameWidth(other Bits) {
	if b.width != other.width {
		panic("bigword: mismatched widths")
	}
}

func (b Bits) clone() Bits {
	z := makeBits(b.width)
	copy(z.limbs, b.limbs)
	return z
}

// Not returns ^b.
func (b Bits) Not() Bits {
	return b.AsUint().Not().AsBits()
}

// And returns b & other.
func (b Bits) And(other Bits) Bits {
	return b.AsUint().And(other.AsUint()).AsBits()
}

// Or returns b | other.
func (b Bits) Or(other Bits) Bits {
	return b.AsUint().Or(other.AsUint()).AsBits()
}

// Xor returns b ^ other.
func (b Bits) Xor(other Bits) Bits {
	return b.AsUint().Xor(other.AsUint()).AsBits()
}

// Shl returns b shifted left by n, zero-filling from the bottom. Unlike
// Uint.Shl, this never traps: a Bits value has no arithmetic overflow
// notion, only bits falling off the top, which this operation permits
// silently (spec.md §4.3's "bitwise shift is total for Bits").
func (b Bits) Shl(n uint) Bits {
	return b.AsUint().WrappingShl(n).AsBits()
}

// Shr returns b shifted right by n, zero-filling from the top.
func (b Bits) Shr(n uint) Bits {
	return b.AsUint().Shr(n).AsBits()
}

// RotateLeft returns b rotated left by n bits.
func (b Bits) RotateLeft(n uint) Bits {
	return b.AsUint().RotateLeft(n).AsBits()
}

// RotateRight returns b rotated right by n bits.
func (b Bits) RotateRight(n uint) Bits {
	return b.AsUint().RotateRight(n).AsBits()
}

// Bit returns the value of bit i, or 0 if out of range.
func (b Bits) Bit(i uint) uint {
	return b.AsUint().Bit(i)
}

// SetBit returns a copy of b with bit i set to v.
func (b Bits) SetBit(i uint, v uint) Bits {
	return b.AsUint().SetBit(i, v).AsBits()
}

// CountOnes returns the number of set bits.
func (b Bits) CountOnes() uint {
	return b.AsUint().CountOnes()
}

// CountZeros returns the number of unset bits.
func (b Bits) CountZeros() uint {
	return b.AsUint().CountZeros()
}

// ReverseBits returns b with its B bits reversed end-for-end.
func (b Bits) ReverseBits() Bits {
	return b.AsUint().ReverseBits().AsBits()
}

// ToLEBytes returns b's little-endian byte representation.
func (b Bits) ToLEBytes() []byte {
	return b.AsUint().ToLEBytes()
}

// ToBEBytes returns b's big-endian byte representation.
func (b Bits) ToBEBytes() []byte {
	return b.AsUint().ToBEBytes()
}

// FromLEBits constructs a Bits from an exact-length little-endian byte
// slice.
func FromLEBits(width uint, raw []byte) (Bits, error) {
	u, err := FromLEBytes(width, raw)
	if err != nil {
		return Bits{}, err
	}
	return u.AsBits(), nil
}

// ConstantTimeEq reports whether b == other in data-independent time.
func (b Bits) ConstantTimeEq(other Bits) bool {
	return b.AsUint().ConstantTimeEq(other.AsUint())
}

// String renders b in hexadecimal with a 0x prefix, the conventional
// rendering for a bit pattern that is not a number (decimal would imply
// arithmetic meaning spec.md §3 explicitly withholds from Bits).
func (b Bits) String() string {
	s, _ := b.AsUint().ToBase(16)
	return "0x" + s
}

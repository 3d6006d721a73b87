package bigword

import (
	"encoding/binary"

	"github.com/go-bigword/bigword/internal/limb"
)

// ToLEBytes returns x's little-endian byte representation, exactly
// ByteWidth() = ceil(B/8) bytes long (always copying: spec.md §9 decides
// against an unsafe zero-copy cast here, the same way nat.go's own
// bytes()/setBytes() always copy rather than alias the limb array).
func (x Uint) ToLEBytes() []byte {
	n := x.ByteWidth()
	out := make([]byte, n)
	x.CopyLEToSlice(out)
	return out
}

// ToBEBytes returns x's big-endian byte representation, exactly
// ByteWidth() bytes long.
func (x Uint) ToBEBytes() []byte {
	le := x.ToLEBytes()
	reverseBytes(le)
	return le
}

// ByteWidth returns ceil(B/8), the exact byte length ToLEBytes/ToBEBytes
// produce (distinct from ByteLen, which counts only the bytes needed to
// hold the current value's significant bits).
func (x Uint) ByteWidth() int {
	return int((x.width + 7) / 8)
}

// CopyLEToSlice writes x's little-endian bytes into dst, which must be
// exactly ByteWidth() long. Grounded on nat.go's bytes(), adapted from
// "write right-justified into a caller buffer, big-endian" to fixed-width
// little-endian, since spec.md standardizes on LE as the primary byte
// order.
func (x Uint) CopyLEToSlice(dst []byte) {
	if len(dst) != x.ByteWidth() {
		panic("bigword: CopyLEToSlice: destination length mismatch")
	}
	for i := range dst {
		dst[i] = 0
	}
	full := len(x.limbs)
	for i := 0; i < full; i++ {
		off := i * 8
		if off >= len(dst) {
			break
		}
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], x.limbs[i])
		n := copy(dst[off:], buf[:])
		_ = n
	}
}

// AsLESlice returns x's limbs reinterpreted as bytes, identical in content
// to ToLEBytes but named to make the "fixed length, allocate-and-copy, not
// an unsafe view" contract explicit at call sites that care about it.
func (x Uint) AsLESlice() []byte {
	return x.ToLEBytes()
}

// FromLEBytes constructs a Uint from an exact-length little-endian byte
// slice, failing if it isn't exactly ByteWidth(width) bytes or if it
// encodes a value with bits set above B-1.
func FromLEBytes(width uint, b []byte) (Uint, error) {
	want := int((width + 7) / 8)
	if len(b) != want {
		return Uint{}, lengthErr(width, digitsOf(len(b)))
	}
	z := makeUint(width)
	for i := range z.limbs {
		off := i * 8
		if off >= len(b) {
			break
		}
		var buf [8]byte
		copy(buf[:], b[off:])
		z.limbs[i] = binary.LittleEndian.Uint64(buf[:])
	}
	if !isCanonicalFor(z) {
		return Uint{}, overflowErr(width, "")
	}
	return z, nil
}

// FromBEBytes is FromLEBytes over a big-endian byte slice.
func FromBEBytes(width uint, b []byte) (Uint, error) {
	le := append([]byte(nil), b...)
	reverseBytes(le)
	return FromLEBytes(width, le)
}

// TryFromLESlice constructs a Uint from a little-endian byte slice of
// arbitrary length, zero-extending or truncating as needed, failing if a
// discarded high byte is nonzero or if the retained bytes set a bit above
// B-1. Grounded on nat.go's setBytes, which
// accepts any length and simply sizes the result to fit.
func TryFromLESlice(width uint, b []byte) (Uint, error) {
	want := int((width + 7) / 8)
	for i := want; i < len(b); i++ {
		if b[i] != 0 {
			return Uint{}, overflowErr(width, digitsOf(len(b)))
		}
	}
	n := want
	if n > len(b) {
		n = len(b)
	}
	padded := make([]byte, want)
	copy(padded, b[:n])
	return FromLEBytes(width, padded)
}

// TryFromBESlice is TryFromLESlice over a big-endian byte slice.
func TryFromBESlice(width uint, b []byte) (Uint, error) {
	le := append([]byte(nil), b...)
	reverseBytes(le)
	return TryFromLESlice(width, le)
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

func isCanonicalFor(x Uint) bool {
	return limb.Canonical(x.limbs, x.width)
}

// Byte returns the i'th little-endian byte of x (0 = least significant),
// or 0 if i is out of range.
func (x Uint) Byte(i uint) byte {
	if int(i) >= x.ByteWidth() {
		return 0
	}
	limbIdx := i / 8
	if int(limbIdx) >= len(x.limbs) {
		return 0
	}
	return byte(x.limbs[limbIdx] >> ((i % 8) * 8))
}

// CheckedByte returns the i'th little-endian byte of x and true, or false
// if i is out of range.
func (x Uint) CheckedByte(i uint) (byte, bool) {
	if int(i) >= x.ByteWidth() {
		return 0, false
	}
	return x.Byte(i), true
}

package limb

import "math/bits"

// MulWW returns the 128-bit product x*y as (hi, lo). Grounded on nat.go's
// mulWW, re-expressed over math/bits.Mul64 (nat.go predates that helper and
// open-codes the same 32x32 decomposition Mul64 now does in the runtime).
func MulWW(x, y Word) (hi, lo Word) {
	return bits.Mul64(x, y)
}

// DivWW returns (x1:x0) / y as (q, r), given x1 < y so the quotient fits in
// a single limb. Grounded on nat.go's divWW.
func DivWW(hi, lo, y Word) (q, r Word) {
	return bits.Div64(hi, lo, y)
}

// MulAddVWW sets z = x*y + r (y and r single limbs) and returns the carry
// limb out of the top of z. Grounded on nat.go's mulAddVWW.
func MulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := range z {
		h, l := bits.Mul64(x[i], y)
		lo, cc := bits.Add64(l, c, 0)
		z[i] = lo
		c = h + cc
	}
	return c
}

// AddMulVVW sets z += x*y (y a single limb) and returns the carry limb out
// of the top of z. Grounded on nat.go's addMulVVW (used inside basicMul).
func AddMulVVW(z, x []Word, y Word) (c Word) {
	return mulAddInto(z, x, y)
}

// MulBasic computes the full L1+L2-limb product z = x*y by schoolbook
// multiplication. len(z) must be >= len(x)+len(y); z is cleared first.
// Grounded on nat.go's basicMul.
func MulBasic(z, x, y []Word) {
	Clear(z[:len(x)+len(y)])
	for i, yi := range y {
		if yi == 0 {
			continue
		}
		z[i+len(x)] = mulAddInto(z[i:i+len(x)], x, yi)
	}
}

// mulAddInto computes z += x*d in place over len(x) limbs and returns the
// carry limb. This is the corrected, allocation-free version of
// AddMulVVW/basicMul's inner loop: it must thread the multiply-carry and
// the add-carry together, which a per-limb two-step add cannot do without
// losing the high word, so it is written directly here.
func mulAddInto(z, x []Word, d Word) (carry Word) {
	var c Word
	for i := range x {
		h, l := bits.Mul64(x[i], d)
		lo, c1 := bits.Add64(z[i], l, 0)
		lo, c2 := bits.Add64(lo, c, 0)
		z[i] = lo
		c = h + c1 + c2
	}
	return c
}

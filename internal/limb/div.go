package limb

import "math/bits"

// DivWVW divides the (xn:x) multi-limb dividend by the single limb y,
// writing the quotient to z (len(z) == len(x)) and returning the
// remainder. xn is a pre-shifted high limb above x (0 in the common case).
// Grounded on nat.go's divWVW (inlined there in divW's single-limb path).
func DivWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(x) - 1; i >= 0; i-- {
		z[i], r = bits.Div64(r, x[i], y)
	}
	return r
}

// DivKnuth divides u by v using Knuth's Algorithm D (TAOCP vol 2, §4.3.1),
// writing the quotient digits to q (len(q) == len(u)-len(v)+1) and leaving
// the remainder in u[:len(v)] (u is destroyed). Preconditions: len(v) >= 2,
// len(u) >= len(v), and v's top limb must be nonzero (the caller is
// responsible for trimming to the true limb lengths before calling, since
// fixed-width values may carry zero high limbs).
//
// Grounded directly on nat.go's divLarge, adapted to operate on
// already-appropriately-sized fixed buffers instead of reallocating via
// nat.make/getNat/putNat pool buffers.
func DivKnuth(q, u, v []Word) {
	n := len(v)
	m := len(u) - n

	shift := NLZ(v[n-1])

	// Normalize: v <<= shift (into a scratch copy), u <<= shift (in place,
	// with one extra high limb to absorb the carry).
	vn := make([]Word, n)
	if shift > 0 {
		ShlVU(vn, v, shift)
	} else {
		copy(vn, v)
	}

	un := make([]Word, len(u)+1)
	if shift > 0 {
		un[len(u)] = ShlVU(un[:len(u)], u, shift)
	} else {
		copy(un, u)
	}

	vn1 := vn[n-1]
	var vn2 Word
	if n >= 2 {
		vn2 = vn[n-2]
	}

	qhatv := make([]Word, n+1)
	for j := m; j >= 0; j-- {
		var qhat, rhat Word
		ujn := un[j+n]
		if ujn == vn1 {
			qhat = ^Word(0)
		} else {
			qhat, rhat = bits.Div64(ujn, un[j+n-1], vn1)

			// Correct qhat down while q̂*vn2 > rhat:base + u[j+n-2].
			for {
				hi, lo := bits.Mul64(qhat, vn2)
				var ujn2 Word
				if n >= 2 {
					ujn2 = un[j+n-2]
				}
				if hi < rhat || (hi == rhat && lo <= ujn2) {
					break
				}
				qhat--
				prevRhat := rhat
				rhat += vn1
				if rhat < prevRhat { // rhat overflowed past the word size
					break
				}
			}
		}

		// Multiply and subtract: u[j:j+n+1] -= qhat*v.
		qhatv[n] = MulAddVWW(qhatv[0:n], vn, qhat, 0)
		borrow := SubVV(un[j:j+n+1], un[j:j+n+1], qhatv)
		if borrow != 0 {
			// qhat was one too large; add back v and decrement qhat.
			c := AddVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] += c
			qhat--
		}
		q[j] = qhat
	}

	ShrVU(u[:n], un[:n], shift)
	Clear(u[n:])
}

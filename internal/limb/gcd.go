package limb

// GCD computes the greatest common divisor of x and y (both length n),
// writing the result to z (length n), using the binary (Stein's)
// algorithm. x and y are used as scratch and are overwritten.
//
// nat.go has no gcd of its own (math/big's GCD lives on the signed Int
// type in int.go, built on Lehmer/Euclid, not nat). This is a from-scratch
// expression of the textbook binary-gcd recurrence built entirely out of
// nat.go-style primitives (ShrVU/SubVV/Cmp), since spec.md specifically
// asks for binary GCD rather than Euclid's division-based version.
func GCD(z, x, y []Word) {
	if IsZero(x) {
		copy(z, y)
		return
	}
	if IsZero(y) {
		copy(z, x)
		return
	}

	shift := uint(0)
	for Bit(x, 0) == 0 && Bit(y, 0) == 0 {
		ShrVU(x, x, 1)
		ShrVU(y, y, 1)
		shift++
	}
	for Bit(x, 0) == 0 {
		ShrVU(x, x, 1)
	}
	for !IsZero(y) {
		for Bit(y, 0) == 0 {
			ShrVU(y, y, 1)
		}
		if Cmp(x, y) > 0 {
			x, y = y, x
		}
		SubVV(y, y, x)
	}

	copy(z, x)
	shiftLeftBy(z, shift)
}

// shiftLeftBy shifts z left by an arbitrary bit count (used to restore the
// common power-of-two factor Stein's algorithm divides out up front).
func shiftLeftBy(z []Word, shift uint) {
	limbs := shift / _W
	bits := shift % _W
	if bits != 0 {
		ShlVU(z, z, bits)
	}
	for ; limbs > 0; limbs-- {
		for i := len(z) - 1; i > 0; i-- {
			z[i] = z[i-1]
		}
		z[0] = 0
	}
}

// ExtGCD runs the extended Euclidean algorithm over x (length n, the
// candidate unit) and y (length n, the modulus), writing gcd(x,y) to gOut.
// When that gcd is 1, it also writes x's inverse mod y to invOut (in
// [0,y)) and returns true; otherwise invOut is left untouched and it
// returns false.
//
// Grounded on the standard iterative extended-Euclid recurrence (HAC
// Algorithm 2.107): nat.go has no counterpart (ModInverse lives on the
// signed big.Int in int.go), so coefficients are tracked here as
// (magnitude []Word, sign bool) pairs built from the Cmp/AddVV/SubVV
// primitives nat.go already exposes.
func ExtGCD(gOut, invOut []Word, x, y []Word) bool {
	n := len(x)

	r0 := append([]Word(nil), y...)
	r1 := append([]Word(nil), x...)
	s0 := make([]Word, n) // coefficient of x in r0 (r0 = y); starts at 0
	s1 := make([]Word, n)
	s1[0] = 1 // coefficient of x in r1 (r1 = x)
	s0neg, s1neg := false, false

	for !IsZero(r1) {
		q := make([]Word, n)
		rem := append([]Word(nil), r0...)
		quotRem(q, rem, r1)

		r0, r1 = r1, rem

		prod := make([]Word, 2*n)
		MulBasic(prod, q, s1)
		t, tneg := signedSub(s0, s0neg, prod[:n], s1neg)
		s0, s1 = s1, t
		s0neg, s1neg = s1neg, tneg
	}

	copy(gOut, r0)
	if !isOne(gOut) {
		return false
	}

	if s0neg {
		SubVV(invOut, y, s0)
	} else {
		copy(invOut, s0)
		if Cmp(invOut, y) >= 0 {
			q := make([]Word, n)
			quotRem(q, invOut, y)
		}
	}
	return true
}

func isOne(x []Word) bool {
	if len(x) == 0 || x[0] != 1 {
		return false
	}
	for i := 1; i < len(x); i++ {
		if x[i] != 0 {
			return false
		}
	}
	return true
}

// signedSub computes (sign-applied) a - b for magnitude slices a, b with
// signs aNeg, bNeg, returning the result's magnitude and sign.
func signedSub(a []Word, aNeg bool, b []Word, bNeg bool) (res []Word, resNeg bool) {
	n := len(a)
	res = make([]Word, n)
	if aNeg == bNeg {
		if Cmp(a, b) >= 0 {
			SubVV(res, a, b)
			return res, aNeg
		}
		SubVV(res, b, a)
		return res, !aNeg
	}
	AddVV(res, a, b)
	return res, aNeg
}

// quotRem divides rem by d in place (rem := rem mod d), writing the
// quotient's low digits into qOut. len(rem) == len(d) == len(qOut) == n;
// rem and qOut must not alias d.
func quotRem(qOut, rem []Word, d []Word) {
	n := len(rem)
	eff := len(d)
	for eff > 1 && d[eff-1] == 0 {
		eff--
	}
	if eff == 1 {
		r := DivWVW(qOut, 0, rem, d[0])
		Clear(rem)
		rem[0] = r
		return
	}

	u := append([]Word(nil), rem...)
	q := make([]Word, n-eff+1)
	DivKnuth(q, u, d[:eff])

	Clear(qOut)
	copy(qOut, q)
	Clear(rem)
	copy(rem, u[:eff])
}

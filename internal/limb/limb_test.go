package limb

import (
	"math/rand"
	"testing"
)

func TestAddSubRoundTrip(t *testing.T) {
	x := []Word{0xFFFFFFFFFFFFFFFF, 1, 0}
	y := []Word{1, 0, 0}
	z := make([]Word, 3)
	c := AddVV(z, x, y)
	if c != 0 || z[0] != 0 || z[1] != 2 || z[2] != 0 {
		t.Fatalf("AddVV wrong: c=%d z=%v", c, z)
	}
	back := make([]Word, 3)
	c2 := SubVV(back, z, y)
	if c2 != 0 || Cmp(back, x) != 0 {
		t.Fatalf("SubVV round trip failed: %v vs %v", back, x)
	}
}

func TestShiftRoundTrip(t *testing.T) {
	x := []Word{0x0123456789ABCDEF, 0xFEDCBA9876543210, 0x1}
	for s := uint(1); s < 64; s++ {
		l := make([]Word, 3)
		carry := ShlVU(l, x, s)
		r := make([]Word, 3)
		rcarry := ShrVU(r, l, s)
		if Cmp(r, x) != 0 {
			t.Fatalf("shift round trip failed at s=%d: got %v want %v (carry=%d rcarry=%d)", s, r, x, carry, rcarry)
		}
	}
}

func TestShlMatchesMul(t *testing.T) {
	x := []Word{0x1, 0, 0, 0}
	for s := uint(0); s < 64; s++ {
		z := make([]Word, 4)
		ShlVU(z, x, s)
		want := Word(1) << s
		if z[0] != want || z[1] != 0 {
			t.Fatalf("shl %d: got %v want low=%#x", s, z, want)
		}
	}
}

func TestDivKnuthReconstructsDividend(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(3)
		v := make([]Word, n)
		for {
			for i := range v {
				v[i] = rng.Uint64()
			}
			if v[n-1] != 0 {
				break
			}
		}
		extra := 1 + rng.Intn(3)
		u := make([]Word, n+extra)
		for i := range u {
			u[i] = rng.Uint64()
		}
		u[len(u)-1] &= 0x7FFFFFFFFFFFFFFF // keep dividend >= divisor magnitude-safe

		uOrig := append([]Word(nil), u...)
		q := make([]Word, len(u)-n+1)
		DivKnuth(q, u, v)

		// verify q*v + r == uOrig, 0 <= r < v
		prod := make([]Word, len(q)+n)
		MulBasic(prod, q, v)
		full := make([]Word, len(prod)+1)
		copy(full, prod)
		c := AddVV(full[:n], full[:n], u[:n])
		if c != 0 {
			AddVW(full[n:], full[n:], c)
		}
		for i := range uOrig {
			if full[i] != uOrig[i] {
				t.Fatalf("trial %d: q*v+r mismatch at limb %d: got %#x want %#x", trial, i, full[i], uOrig[i])
			}
		}
		if Cmp(u[:n], v) >= 0 {
			t.Fatalf("trial %d: remainder %v >= divisor %v", trial, u[:n], v)
		}
	}
}

func TestGCDKnownValues(t *testing.T) {
	x := []Word{48}
	y := []Word{18}
	z := make([]Word, 1)
	GCD(z, append([]Word(nil), x...), append([]Word(nil), y...))
	if z[0] != 6 {
		t.Fatalf("gcd(48,18) = %d, want 6", z[0])
	}
}

func TestExtGCDInverse(t *testing.T) {
	x := []Word{3}
	m := []Word{7}
	g := make([]Word, 1)
	inv := make([]Word, 1)
	ok := ExtGCD(g, inv, x, m)
	if !ok || g[0] != 1 {
		t.Fatalf("expected unit, got ok=%v g=%v", ok, g)
	}
	if (3*inv[0])%7 != 1 {
		t.Fatalf("3*%d mod 7 = %d, want 1", inv[0], (3*inv[0])%7)
	}
}

func TestMontgomeryAgainstPlainMulMod(t *testing.T) {
	m := []Word{97} // odd prime, fits in one limb
	k := MontgomeryInverse(m[0])

	// R = 2^64 mod 97, via 64 repeated doublings mod m (no overflow risk
	// since m is tiny here).
	r := Word(1) % m[0]
	for i := 0; i < 64; i++ {
		r = (r * 2) % m[0]
	}

	for a := Word(1); a < 20; a++ {
		for b := Word(1); b < 20; b++ {
			aM := mulMod(a, r, m[0])
			bM := mulMod(b, r, m[0])

			z := make([]Word, 1)
			MontgomeryREDC(z, []Word{aM}, []Word{bM}, m, k)
			want := mulMod(mulMod(a, b, m[0]), r, m[0])
			if z[0] != want {
				t.Fatalf("redc(%d,%d) = %d, want %d", a, b, z[0], want)
			}
		}
	}
}

func mulMod(a, b, m Word) Word {
	return (a * b) % m
}

package bigword

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustFromStr(t *testing.T, width uint, s string, radix int) Uint {
	t.Helper()
	z, err := FromBase(width, s, radix)
	require.NoError(t, err)
	return z
}

// Scenario A: 0xf00f + 42 == 0xf039, width 256.
func TestScenarioA_HexAddition(t *testing.T) {
	x := mustFromStr(t, 256, "f00f", 16)
	y, err := FromUint64(256, 42)
	require.NoError(t, err)
	got := x.WrappingAdd(y)
	want := mustFromStr(t, 256, "f039", 16)
	require.True(t, got.Equal(want))
}

// Scenario B: overflowing_add(MAX, ONE) == (ZERO, true).
func TestScenarioB_OverflowingAddWraps(t *testing.T) {
	z, overflow := Max(256).OverflowingAdd(One(256))
	require.True(t, overflow)
	require.True(t, z.Equal(Zero(256)))
}

// Scenario C: div_rem(2^127, 3) == (56713727820156410577229101238628035242, 2), width 128.
func TestScenarioC_DivRem(t *testing.T) {
	n := ApproxPow2(128, 127)
	three, err := FromUint64(128, 3)
	require.NoError(t, err)
	q, r, err := n.DivRem(three)
	require.NoError(t, err)
	wantQ := mustFromStr(t, 128, "56713727820156410577229101238628035242", 10)
	require.True(t, q.Equal(wantQ))
	wantR, err := FromUint64(128, 2)
	require.NoError(t, err)
	require.True(t, r.Equal(wantR))
}

// Scenario D: pow(10, 19) == 10_000_000_000_000_000_000, width 64.
func TestScenarioD_Pow(t *testing.T) {
	ten, err := FromUint64(64, 10)
	require.NoError(t, err)
	exp, err := FromUint64(64, 19)
	require.NoError(t, err)
	got, overflow := ten.OverflowingPow(exp)
	require.False(t, overflow)
	want := mustFromStr(t, 64, "10000000000000000000", 10)
	require.True(t, got.Equal(want))
}

// Scenario E: from_str_radix of a 256-bit hex string round-trips through ToBase.
func TestScenarioE_FromStrRadixRoundTrip(t *testing.T) {
	hex := "ee79b5f6e221356af78cf4c36f4f7885a11b67dfcc81c34d80249947330c0f82"
	x, err := FromBase(256, hex, 16)
	require.NoError(t, err)
	s, err := x.ToBase(16)
	require.NoError(t, err)
	back, err := FromBase(256, s, 16)
	require.NoError(t, err)
	require.True(t, x.Equal(back))
}

// Scenario F: literal 300_U8 is rejected as too large for U[8].
func TestScenarioF_LiteralOverflowRejected(t *testing.T) {
	_, err := FromUint64(8, 300)
	require.Error(t, err)
	var be *Error
	require.ErrorAs(t, err, &be)
	require.Equal(t, Overflow, be.Kind)
}

// Scenario G: mul_mod(2^255, 2^255, 2^255 - 19) == 361.
func TestScenarioG_MulMod(t *testing.T) {
	width := uint(256)
	base := ApproxPow2(width, 255)
	nineteen, err := FromUint64(width, 19)
	require.NoError(t, err)
	m, overflow := base.OverflowingSub(nineteen)
	require.False(t, overflow)

	got, err := base.MulMod(base, m)
	require.NoError(t, err)
	want, err := FromUint64(width, 361)
	require.NoError(t, err)
	require.True(t, got.Equal(want))
}

// Scenario H: literal 0b1010011010_U10 == 666.
func TestScenarioH_BinaryLiteral(t *testing.T) {
	v, err := FromBase(10, "1010011010", 2)
	require.NoError(t, err)
	want, err := FromUint64(10, 666)
	require.NoError(t, err)
	require.True(t, v.Equal(want))
}

// Invariant 1: canonicalization.
func TestInvariantCanonicalization(t *testing.T) {
	for _, w := range []uint{0, 1, 7, 8, 63, 64, 65, 127, 128, 200} {
		x := Max(w)
		require.True(t, isCanonicalFor(x))
	}
}

// Invariant 2: wrap identity.
func TestInvariantWrapIdentity(t *testing.T) {
	for _, w := range []uint{8, 64, 128, 256} {
		a := WrappingFromUint64(w, 123456789)
		negA := a.WrappingNeg()
		got := a.WrappingAdd(negA)
		require.True(t, got.IsZero(), "width %d", w)
	}
}

// Invariant 3: div-mul round trip.
func TestInvariantDivMulRoundTrip(t *testing.T) {
	width := uint(128)
	n := mustFromStr(t, width, "123456789012345678901234567890", 10)
	d, err := FromUint64(width, 7)
	require.NoError(t, err)
	q, r, err := n.DivRem(d)
	require.NoError(t, err)
	require.True(t, r.Cmp(d) < 0)
	rebuilt := q.WrappingMul(d).WrappingAdd(r)
	require.True(t, rebuilt.Equal(n))
}

// Invariant 7: shift law.
func TestInvariantShiftLaw(t *testing.T) {
	width := uint(64)
	x, err := FromUint64(width, 12345)
	require.NoError(t, err)
	for k := uint(0); k < width; k++ {
		lhs := x.WrappingShl(k)
		twoToK := One(width).WrappingShl(k)
		rhs := x.WrappingMul(twoToK)
		require.True(t, lhs.Equal(rhs), "k=%d", k)
	}
}

// Invariant 8: bit count law.
func TestInvariantBitCountLaw(t *testing.T) {
	for _, w := range []uint{0, 1, 13, 64, 100, 256} {
		x := WrappingFromUint64(w, 123)
		require.Equal(t, w, x.CountOnes()+x.CountZeros())
	}
}

// Invariant 9: overflow agreement.
func TestInvariantOverflowAgreement(t *testing.T) {
	width := uint(32)
	a := Max(width)
	b := One(width)
	wrapped := a.WrappingAdd(b)
	z, overflow := a.OverflowingAdd(b)
	require.True(t, z.Equal(wrapped))
	_, ok := a.CheckedAdd(b)
	require.Equal(t, overflow, !ok)
}

func TestAddSubMulDivFlavors(t *testing.T) {
	width := uint(8)
	max := Max(width)
	one := One(width)

	_, overflow := max.OverflowingAdd(one)
	require.True(t, overflow)
	require.True(t, max.SaturatingAdd(one).Equal(max))
	_, ok := max.CheckedAdd(one)
	require.False(t, ok)
	require.Panics(t, func() { max.Add(one) })

	zero := Zero(width)
	require.True(t, zero.SaturatingSub(one).Equal(zero))
	require.Panics(t, func() { zero.Sub(one) })

	_, ok = zero.CheckedDiv(zero)
	require.False(t, ok)
	require.Panics(t, func() { one.Div(zero) })
}

func TestPowModAndInvMod(t *testing.T) {
	width := uint(16)
	base, err := FromUint64(width, 4)
	require.NoError(t, err)
	exp, err := FromUint64(width, 13)
	require.NoError(t, err)
	m, err := FromUint64(width, 497)
	require.NoError(t, err)
	got, err := base.PowMod(exp, m)
	require.NoError(t, err)
	want, err := FromUint64(width, 445) // 4^13 mod 497 == 445
	require.NoError(t, err)
	require.True(t, got.Equal(want))

	x, err := FromUint64(width, 3)
	require.NoError(t, err)
	mod, err := FromUint64(width, 11)
	require.NoError(t, err)
	inv, ok := x.InvMod(mod)
	require.True(t, ok)
	prod, err := x.MulMod(inv, mod)
	require.NoError(t, err)
	require.True(t, prod.Equal(One(width)))
}

func TestGCDAndLCM(t *testing.T) {
	width := uint(32)
	a, err := FromUint64(width, 54)
	require.NoError(t, err)
	b, err := FromUint64(width, 24)
	require.NoError(t, err)
	g := a.GCD(b)
	want, err := FromUint64(width, 6)
	require.NoError(t, err)
	require.True(t, g.Equal(want))

	l, err := a.LCM(b)
	require.NoError(t, err)
	wantL, err := FromUint64(width, 216)
	require.NoError(t, err)
	require.True(t, l.Equal(wantL))
}

func TestRootAndSqrt(t *testing.T) {
	width := uint(32)
	n, err := FromUint64(width, 1000)
	require.NoError(t, err)
	r, err := n.Root(3)
	require.NoError(t, err)
	want, err := FromUint64(width, 10)
	require.NoError(t, err)
	require.True(t, r.Equal(want))

	sq, err := FromUint64(width, 99)
	require.NoError(t, err)
	root := sq.Sqrt()
	wantSqrt, err := FromUint64(width, 9)
	require.NoError(t, err)
	require.True(t, root.Equal(wantSqrt))
}

func TestBitAndShiftSurface(t *testing.T) {
	width := uint(16)
	x, err := FromUint64(width, 0b1010)
	require.NoError(t, err)
	require.Equal(t, uint(1), x.Bit(1))
	require.Equal(t, uint(0), x.Bit(0))
	require.Equal(t, uint(2), x.CountOnes())
	require.False(t, x.IsPowerOfTwo())

	eight, err := FromUint64(width, 8)
	require.NoError(t, err)
	require.True(t, eight.IsPowerOfTwo())

	rotated := x.RotateLeft(width)
	require.True(t, rotated.Equal(x))
}

func TestByteConversionRoundTrip(t *testing.T) {
	width := uint(128)
	x := mustFromStr(t, width, "123456789012345678901234567890", 10)
	le := x.ToLEBytes()
	back, err := FromLEBytes(width, le)
	require.NoError(t, err)
	require.True(t, x.Equal(back))

	be := x.ToBEBytes()
	back2, err := FromBEBytes(width, be)
	require.NoError(t, err)
	require.True(t, x.Equal(back2))
}

func TestBaseRoundTrip(t *testing.T) {
	width := uint(64)
	x, err := FromUint64(width, 987654321)
	require.NoError(t, err)
	for radix := 2; radix <= 36; radix++ {
		s, err := x.ToBase(radix)
		require.NoError(t, err)
		back, err := FromBase(width, s, radix)
		require.NoError(t, err)
		require.True(t, x.Equal(back), "radix %d", radix)
	}
}

func TestLogFamily(t *testing.T) {
	width := uint(32)
	n, err := FromUint64(width, 1000)
	require.NoError(t, err)
	ten, err := FromUint64(width, 10)
	require.NoError(t, err)

	k, err := n.Log(ten)
	require.NoError(t, err)
	require.Equal(t, uint(3), k)

	k10, err := n.Log10()
	require.NoError(t, err)
	require.Equal(t, uint(3), k10)

	eight, err := FromUint64(width, 8)
	require.NoError(t, err)
	k2, err := eight.Log2()
	require.NoError(t, err)
	require.Equal(t, uint(3), k2)

	_, err = Zero(width).Log2()
	require.ErrorIs(t, err, ErrDomain)
}

func TestFormatVerbs(t *testing.T) {
	x, err := FromUint64(32, 255)
	require.NoError(t, err)
	require.Equal(t, "255", fmt.Sprintf("%d", x))
	require.Equal(t, "ff", fmt.Sprintf("%x", x))
}

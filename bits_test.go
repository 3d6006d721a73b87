package bigword

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitsAsUintRoundTrip(t *testing.T) {
	width := uint(64)
	x, err := FromUint64(width, 0xdeadbeef)
	require.NoError(t, err)
	b := x.AsBits()
	require.True(t, b.AsUint().Equal(x))
}

func TestBitsBooleanOps(t *testing.T) {
	width := uint(8)
	a, err := FromBitsLimbs(width, []uint64{0b1100})
	require.NoError(t, err)
	b, err := FromBitsLimbs(width, []uint64{0b1010})
	require.NoError(t, err)

	require.Equal(t, uint64(0b1000), a.And(b).AsUint().Limbs()[0])
	require.Equal(t, uint64(0b1110), a.Or(b).AsUint().Limbs()[0])
	require.Equal(t, uint64(0b0110), a.Xor(b).AsUint().Limbs()[0])
}

func TestBitsNotMasksTopLimb(t *testing.T) {
	width := uint(4)
	zero := ZeroBits(width)
	allOnes := zero.Not()
	require.Equal(t, uint(4), allOnes.CountOnes())
}

func TestBitsStringIsHex(t *testing.T) {
	width := uint(16)
	b, err := FromBitsLimbs(width, []uint64{0xff})
	require.NoError(t, err)
	require.Equal(t, "0xff", b.String())
}

func TestGeneratedConcreteWidths(t *testing.T) {
	u := NewU64([1]uint64{42})
	require.Equal(t, "42", u.String())

	back := WrapU64(u.Dyn())
	require.Equal(t, u, back)

	u256 := NewU256([4]uint64{1, 0, 0, 0})
	require.Equal(t, uint(256), u256.Dyn().Width())
}

func TestErrorSentinelMatching(t *testing.T) {
	_, err := FromUint64(8, 300)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = FromBase(32, "", 10)
	require.ErrorIs(t, err, ErrEmpty)

	_, err = FromBase(32, "1", 1)
	require.ErrorIs(t, err, ErrInvalidRadix)

	_, err = FromBase(32, "9", 2)
	require.ErrorIs(t, err, ErrInvalidDigit)

	_, _, err = One(32).DivRem(Zero(32))
	require.ErrorIs(t, err, ErrDivisionByZero)
}

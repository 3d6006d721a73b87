package bigword

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApproxLog2PowersOfTwo(t *testing.T) {
	width := uint(64)
	for _, e := range []uint{0, 1, 10, 32, 63} {
		x := ApproxPow2(width, float64(e))
		l2, err := x.ApproxLog2()
		require.NoError(t, err)
		require.InDelta(t, float64(e), l2, 1e-9)
	}
}

func TestApproxPow2Saturates(t *testing.T) {
	width := uint(64)
	require.True(t, ApproxPow2(width, math.NaN()).Equal(Zero(width)))
	require.True(t, ApproxPow2(width, -1).Equal(Zero(width)))
	require.True(t, ApproxPow2(width, 64).Equal(Max(width)))
	require.True(t, ApproxPow2(width, 1000).Equal(Max(width)))
}

func TestApproxLog2ZeroIsDomainError(t *testing.T) {
	_, err := Zero(64).ApproxLog2()
	require.ErrorIs(t, err, ErrDomain)
}

func TestApproxLog10(t *testing.T) {
	width := uint(64)
	x, err := FromUint64(width, 1000)
	require.NoError(t, err)
	l10, err := x.ApproxLog10()
	require.NoError(t, err)
	require.InDelta(t, 3.0, l10, 1e-6)
}

func TestFromIntRejectsNegative(t *testing.T) {
	_, err := FromInt[int](32, -1)
	require.Error(t, err)

	v, err := FromInt[int](32, 42)
	require.NoError(t, err)
	u64, exact := v.ToUint64()
	require.True(t, exact)
	require.Equal(t, uint64(42), u64)
}

func TestWrappingFromUint64Masks(t *testing.T) {
	x := WrappingFromUint64(8, 300)
	v, _ := x.ToUint64()
	require.Equal(t, uint64(300)&0xff, v)
}

func TestApproxLog2Monotonic(t *testing.T) {
	width := uint(128)
	a, err := FromUint64(width, 1_000_000)
	require.NoError(t, err)
	b, err := FromUint64(width, 2_000_000)
	require.NoError(t, err)
	la, err := a.ApproxLog2()
	require.NoError(t, err)
	lb, err := b.ApproxLog2()
	require.NoError(t, err)
	require.True(t, lb > la)
	require.InDelta(t, math.Log2(2), lb-la, 1e-6)
}

package num

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIdx(t *testing.T) {
	i := NewIdx(5)
	require.True(t, i.IsValid())
	require.Equal(t, uint(5), i.Get())
	require.Equal(t, ErrcSuccess, i.Errc())

	var zero Idx
	require.True(t, zero.IsValid())
	require.True(t, zero.IsZero())
}

func TestPoisonIdx(t *testing.T) {
	i := PoisonIdx(ErrcIndexOutOfBounds)
	require.True(t, i.IsInvalid())
	require.Equal(t, ErrcIndexOutOfBounds, i.Errc())

	// A zero code still poisons.
	require.True(t, PoisonIdx(ErrcSuccess).IsInvalid())
	require.Equal(t, ErrcFailure, PoisonIdx(ErrcSuccess).Errc())
}

func TestIdx_Constants(t *testing.T) {
	require.Equal(t, uint(0), Idx0().Get())
	require.Equal(t, uint(1), Idx1().Get())
	require.Equal(t, uint(2), Idx2().Get())
	require.Equal(t, uint(3), Idx3().Get())
	require.True(t, MinIdx().IsZero())
	require.Equal(t, ^uint(0), MaxIdx().Get())
}

func TestIdx_AddSub(t *testing.T) {
	t.Run("five minus one is four", func(t *testing.T) {
		got := NewIdx(5).Sub(Idx1())
		require.True(t, got.IsValid())
		require.Equal(t, uint(4), got.Get())
	})

	t.Run("zero minus one underflows", func(t *testing.T) {
		got := Idx0().Sub(Idx1())
		require.True(t, got.IsInvalid())
		require.Equal(t, ErrcUnsignedWrap, got.Errc())
	})

	t.Run("max plus one wraps", func(t *testing.T) {
		got := MaxIdx().AddVal(1)
		require.True(t, got.IsInvalid())
		require.Equal(t, ErrcUnsignedWrap, got.Errc())
	})

	t.Run("raw operand forms", func(t *testing.T) {
		require.Equal(t, uint(8), NewIdx(5).AddVal(3).Get())
		require.Equal(t, uint(2), NewIdx(5).SubVal(3).Get())
	})

	t.Run("absorption", func(t *testing.T) {
		p := PoisonIdx(ErrcFailure)
		require.True(t, p.Add(Idx1()).IsInvalid())
		require.True(t, Idx1().Add(p).IsInvalid())
		require.True(t, p.Sub(Idx1()).IsInvalid())
		require.True(t, Idx1().Sub(p).IsInvalid())
	})
}

func TestIdx_IncDec(t *testing.T) {
	i := Idx0().Inc().Inc().Inc()
	require.True(t, i.Eq(Idx3()))

	i = i.Dec()
	require.True(t, i.Eq(Idx2()))

	require.True(t, Idx0().Dec().IsInvalid())
	require.True(t, MaxIdx().Inc().IsInvalid())
}

func TestIdx_Comparisons(t *testing.T) {
	a := NewIdx(3)
	b := NewIdx(7)

	require.True(t, a.Eq(NewIdx(3)))
	require.True(t, a.Ne(b))
	require.True(t, a.Lt(b))
	require.True(t, a.Le(b))
	require.True(t, b.Gt(a))
	require.True(t, b.Ge(a))
	require.True(t, a.EqVal(3))
	require.True(t, a.LtVal(4))
	require.True(t, a.NeVal(4))
	require.False(t, a.NeVal(3))
	require.True(t, a.LeVal(3))
	require.False(t, a.LeVal(2))
	require.True(t, b.GtVal(3))
	require.False(t, b.GtVal(7))
	require.True(t, b.GeVal(7))
	require.False(t, b.GeVal(8))

	p := PoisonIdx(ErrcFailure)
	require.False(t, p.Eq(a))
	require.False(t, a.Eq(p))
	require.False(t, p.Ne(a))
	require.False(t, p.Lt(a))
	require.False(t, p.Le(a))
	require.False(t, p.Gt(a))
	require.False(t, p.Ge(a))
	require.False(t, p.EqVal(0))
	require.False(t, p.LtVal(100))
	require.False(t, p.NeVal(0))
	require.False(t, p.LeVal(100))
	require.False(t, p.GtVal(0))
	require.False(t, p.GeVal(0))
}

func TestIdx_SafeInterop(t *testing.T) {
	i := NewIdx(5)
	s := New(uint(5))

	require.True(t, i.EqSafe(s))
	require.False(t, i.NeSafe(s))
	require.True(t, i.LtSafe(New(uint(6))))
	require.True(t, i.LeSafe(s))
	require.True(t, i.GtSafe(New(uint(4))))
	require.True(t, i.GeSafe(s))

	require.False(t, i.EqSafe(Poison[uint](ErrcFailure)))
	require.False(t, PoisonIdx(ErrcFailure).EqSafe(s))
}

func TestToIdx(t *testing.T) {
	i := ToIdx(New(uint(9)))
	require.True(t, i.IsValid())
	require.Equal(t, uint(9), i.Get())

	// Poison carries through the conversion.
	p := ToIdx(Poison[uint](ErrcUnsignedWrap))
	require.True(t, p.IsInvalid())
	require.Equal(t, ErrcUnsignedWrap, p.Errc())
}

func TestFromIdx(t *testing.T) {
	s := FromIdx(NewIdx(9))
	require.True(t, s.IsValid())
	require.Equal(t, uint(9), s.Get())

	p := FromIdx(PoisonIdx(ErrcIndexOutOfBounds))
	require.True(t, p.IsInvalid())
	require.Equal(t, ErrcIndexOutOfBounds, p.Errc())

	// Round trip through the general type preserves both value and
	// poison.
	require.True(t, ToIdx(FromIdx(NewIdx(17))).EqVal(17))
	require.True(t, ToIdx(FromIdx(PoisonIdx(ErrcFailure))).IsInvalid())
}

func TestIdx_BoundsWalk(t *testing.T) {
	// Walking a container backward past the start is the canonical
	// misuse the type exists to catch.
	i := NewIdx(2)
	seen := 0
	for i.IsValid() {
		seen++
		i = i.Dec()
	}
	require.Equal(t, 3, seen)
	require.Equal(t, ErrcUnsignedWrap, i.Errc())
}

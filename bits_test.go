package num

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnd(t *testing.T) {
	got := And(New(uint8(42)), New(uint8(23)))
	require.True(t, got.IsValid())
	require.Equal(t, uint8(2), got.Get())

	require.True(t, And(Poison[uint8](ErrcFailure), New(uint8(1))).IsInvalid())
	require.True(t, And(New(uint8(1)), Poison[uint8](ErrcFailure)).IsInvalid())
}

func TestOr(t *testing.T) {
	got := Or(New(uint8(42)), New(uint8(23)))
	require.True(t, got.IsValid())
	require.Equal(t, uint8(63), got.Get())

	require.True(t, Or(Poison[uint8](ErrcFailure), New(uint8(1))).IsInvalid())
	require.True(t, Or(New(uint8(1)), Poison[uint8](ErrcFailure)).IsInvalid())
}

func TestXor(t *testing.T) {
	got := Xor(New(uint8(42)), New(uint8(23)))
	require.True(t, got.IsValid())
	require.Equal(t, uint8(61), got.Get())

	got16 := Xor(New(uint16(0xFFFF)), New(uint16(0xFFFF)))
	require.True(t, got16.IsValid())
	require.Equal(t, uint16(0), got16.Get())

	require.True(t, Xor(New(uint8(1)), Poison[uint8](ErrcFailure)).IsInvalid())
}

func TestNot(t *testing.T) {
	got := Not(New(uint8(0x0F)))
	require.True(t, got.IsValid())
	require.Equal(t, uint8(0xF0), got.Get())

	got = Not(New(uint8(0)))
	require.Equal(t, uint8(0xFF), got.Get())

	require.True(t, Not(Poison[uint8](ErrcFailure)).IsInvalid())
}

func TestShl(t *testing.T) {
	tests := []struct {
		name    string
		val     uint8
		amount  uint8
		want    uint8
		invalid bool
	}{
		{
			name:   "shift by zero is identity",
			val:    0x81,
			amount: 0,
			want:   0x81,
		},
		{
			name:   "shift within range",
			val:    1,
			amount: 7,
			want:   0x80,
		},
		{
			name:   "high bits discarded",
			val:    0xFF,
			amount: 4,
			want:   0xF0,
		},
		{
			name:    "shift by bit width poisons",
			val:     1,
			amount:  8,
			invalid: true,
		},
		{
			name:    "shift beyond bit width poisons",
			val:     1,
			amount:  200,
			invalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shl(New(tt.val), New(tt.amount))
			if tt.invalid {
				require.True(t, got.IsInvalid())
				require.Equal(t, ErrcInvalidArgument, got.Errc())
				return
			}
			require.True(t, got.IsValid())
			require.Equal(t, tt.want, got.Get())
		})
	}
}

func TestShr(t *testing.T) {
	tests := []struct {
		name    string
		val     uint32
		amount  uint32
		want    uint32
		invalid bool
	}{
		{
			name:   "shift by zero is identity",
			val:    0xDEADBEEF,
			amount: 0,
			want:   0xDEADBEEF,
		},
		{
			name:   "shift within range",
			val:    0x80000000,
			amount: 31,
			want:   1,
		},
		{
			name:    "shift by bit width poisons",
			val:     1,
			amount:  32,
			invalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shr(New(tt.val), New(tt.amount))
			if tt.invalid {
				require.True(t, got.IsInvalid())
				require.Equal(t, ErrcInvalidArgument, got.Errc())
				return
			}
			require.True(t, got.IsValid())
			require.Equal(t, tt.want, got.Get())
		})
	}
}

func TestShift_PoisonedAmount(t *testing.T) {
	require.True(t, Shl(New(uint8(1)), Poison[uint8](ErrcFailure)).IsInvalid())
	require.True(t, Shr(New(uint8(1)), Poison[uint8](ErrcFailure)).IsInvalid())
	require.True(t, Shl(Poison[uint8](ErrcFailure), New(uint8(1))).IsInvalid())
	require.True(t, Shr(Poison[uint8](ErrcFailure), New(uint8(1))).IsInvalid())
}

func TestShift_PerWidthBounds(t *testing.T) {
	// The poison boundary tracks the width of the operand type exactly.
	require.True(t, ShlVal(New(uint16(1)), 15).IsValid())
	require.True(t, ShlVal(New(uint16(1)), 16).IsInvalid())
	require.True(t, ShlVal(New(uint32(1)), 31).IsValid())
	require.True(t, ShlVal(New(uint32(1)), 32).IsInvalid())
	require.True(t, ShlVal(New(uint64(1)), 63).IsValid())
	require.True(t, ShlVal(New(uint64(1)), 64).IsInvalid())
	require.True(t, ShrVal(New(uint64(1)), 63).IsValid())
	require.True(t, ShrVal(New(uint64(1)), 64).IsInvalid())
}

func TestBitwise_ValForms(t *testing.T) {
	require.Equal(t, uint8(2), AndVal(New(uint8(42)), 23).Get())
	require.Equal(t, uint8(63), OrVal(New(uint8(42)), 23).Get())
	require.Equal(t, uint8(61), XorVal(New(uint8(42)), 23).Get())
	require.Equal(t, uint8(0x10), ShlVal(New(uint8(1)), 4).Get())
	require.Equal(t, uint8(1), ShrVal(New(uint8(0x10)), 4).Get())
}

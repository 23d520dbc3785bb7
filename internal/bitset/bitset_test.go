package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitSet(t *testing.T) {
	b := New(100)

	assert.Equal(t, uint64(100), b.Len())

	b.Set(10)
	assert.True(t, b.Test(10))
	assert.Equal(t, 1, b.Count())

	b.Unset(10)
	assert.False(t, b.Test(10))

	b.Set(10)
	b.Set(20)
	b.Set(30)
	assert.Equal(t, 3, b.Count())

	b.ClearAll()
	assert.Equal(t, 0, b.Count())
}

func TestBitSet_OutOfRange(t *testing.T) {
	b := New(70)

	b.Set(70)
	b.Set(1000)
	assert.False(t, b.Test(70))
	assert.Equal(t, 0, b.Count())

	b.Unset(1000)
	assert.False(t, b.Test(1000))
}

func TestBitSet_NextSetBit(t *testing.T) {
	b := New(1000)
	b.Set(10)
	b.Set(20)
	b.Set(100)

	tests := []struct {
		start    uint64
		expected int64
	}{
		{0, 10},
		{10, 10},
		{11, 20},
		{20, 20},
		{21, 100},
		{100, 100},
		{101, -1},
		{5000, -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, b.NextSetBit(tt.start), "NextSetBit(%d)", tt.start)
	}
}

func TestBitSet_PrevSetBit(t *testing.T) {
	b := New(1000)
	b.Set(0)
	b.Set(63)
	b.Set(64)
	b.Set(700)

	tests := []struct {
		start    uint64
		expected int64
	}{
		{999, 700},
		{5000, 700},
		{700, 700},
		{699, 64},
		{64, 64},
		{63, 63},
		{62, 0},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, b.PrevSetBit(tt.start), "PrevSetBit(%d)", tt.start)
	}

	b.Unset(0)
	assert.Equal(t, int64(-1), b.PrevSetBit(62))
	assert.Equal(t, int64(-1), New(0).PrevSetBit(3))
}

func TestBitSet_CountRange(t *testing.T) {
	b := New(300)
	for _, i := range []uint64{0, 1, 63, 64, 127, 128, 200, 299} {
		b.Set(i)
	}

	assert.Equal(t, 8, b.CountRange(0, 300))
	assert.Equal(t, 2, b.CountRange(0, 2))
	assert.Equal(t, 2, b.CountRange(63, 65))
	assert.Equal(t, 3, b.CountRange(64, 129))
	assert.Equal(t, 1, b.CountRange(299, 1000))
	assert.Equal(t, 0, b.CountRange(2, 63))
	assert.Equal(t, 0, b.CountRange(10, 10))
}

func TestSizeBytes(t *testing.T) {
	assert.Equal(t, int64(0), SizeBytes(0))
	assert.Equal(t, int64(8), SizeBytes(1))
	assert.Equal(t, int64(8), SizeBytes(64))
	assert.Equal(t, int64(16), SizeBytes(65))
}

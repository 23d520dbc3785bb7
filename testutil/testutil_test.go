package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndices(t *testing.T) {
	rng := NewRNG(4711)

	idx := rng.Indices(50, 1000)
	require.Len(t, idx, 50)

	seen := map[int]bool{}
	for _, i := range idx {
		assert.False(t, seen[i], "duplicate index %d", i)
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 1000)
		seen[i] = true
	}

	assert.Len(t, rng.Indices(10, 4), 4)
}

func TestOps(t *testing.T) {
	rng := NewRNG(4711)

	ops := rng.Ops(200, 64)
	require.Len(t, ops, 200)

	var sets, deletes int
	for _, op := range ops {
		assert.Less(t, op.Index, 64)
		switch op.Kind {
		case OpSet:
			sets++
		case OpDelete:
			deletes++
		}
	}
	assert.Positive(t, sets)
	assert.Positive(t, deletes)
}

func TestRNG_Reset(t *testing.T) {
	rng := NewRNG(42)
	first := rng.Ops(20, 100)

	rng.Reset()
	assert.Equal(t, first, rng.Ops(20, 100))
	assert.Equal(t, int64(42), rng.Seed())
}

func TestModel(t *testing.T) {
	m := NewModel()
	assert.Equal(t, -1, m.MaxIndex())

	m.Set(5, 9)
	m.Set(0, 4)
	m.Set(3, 0)

	v, ok := m.Get(3)
	require.True(t, ok)
	assert.Equal(t, int32(0), v)
	assert.Equal(t, 5, m.MaxIndex())
	assert.Equal(t, []int{0, 3, 5}, m.Indices())

	assert.True(t, m.Delete(5))
	assert.False(t, m.Delete(5))
	assert.Equal(t, 3, m.MaxIndex())
	assert.Equal(t, 2, m.Len())
}

package rowindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowOf_KnownMappings(t *testing.T) {
	tests := []struct {
		index int
		row   int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{6, 2},
		{7, 3},
		{12, 3},
		{14, 3},
		{15, 4},
	}

	for _, tt := range tests {
		row, ok := RowOf(tt.index)
		require.True(t, ok, "index %d", tt.index)
		assert.Equal(t, tt.row, row, "index %d", tt.index)
	}
}

func TestRowOf_OutOfRange(t *testing.T) {
	_, ok := RowOf(-1)
	assert.False(t, ok)

	_, ok = RowOf(Capacity())
	assert.False(t, ok)

	row, ok := RowOf(Capacity() - 1)
	require.True(t, ok)
	assert.Equal(t, RowLimit-1, row)
}

func TestRowOf_RowSizes(t *testing.T) {
	// Rows are gapless, non-decreasing and row r has exactly 2^r members.
	const rows = 12
	counts := make([]int, rows)
	prev := 0
	for i := 0; i < RowStart(rows); i++ {
		row, ok := RowOf(i)
		require.True(t, ok)
		require.GreaterOrEqual(t, row, prev)
		prev = row
		counts[row]++
	}
	for r, n := range counts {
		assert.Equal(t, RowSize(r), n, "row %d", r)
	}
}

func TestLocate(t *testing.T) {
	for row := 0; row < RowLimit; row++ {
		start := RowStart(row)
		end := start + RowSize(row) - 1

		r, pos, ok := Locate(start)
		require.True(t, ok)
		assert.Equal(t, row, r)
		assert.Equal(t, 0, pos)

		r, pos, ok = Locate(end)
		require.True(t, ok)
		assert.Equal(t, row, r)
		assert.Equal(t, RowSize(row)-1, pos)
	}

	_, _, ok := Locate(-3)
	assert.False(t, ok)
}

func TestCapacity(t *testing.T) {
	assert.Equal(t, RowStart(RowLimit), Capacity())
}

// Package rowindex maps array indices onto geometrically growing rows.
//
// Row r holds 2^r slots and covers the indices [2^r - 1, 2^(r+1) - 2]:
//
//	row 0: [0]
//	row 1: [1 2]
//	row 2: [3 4 5 6]
//	row 3: [7 8 9 10 11 12 13 14]
//
// Because the first index of row r is 2^r - 1, the row of index i is the
// position of the highest set bit of i+1.
package rowindex

import "math/bits"

// RowLimit is the number of rows an array can address.
const RowLimit = 24

// Capacity returns the number of addressable indices, 2^RowLimit - 1.
func Capacity() int {
	return 1<<RowLimit - 1
}

// RowOf returns the row holding index. It reports false for negative
// indices and for indices that would need a row at or beyond RowLimit.
func RowOf(index int) (int, bool) {
	if index < 0 {
		return 0, false
	}
	row := bits.Len64(uint64(index)+1) - 1
	if row >= RowLimit {
		return row, false
	}
	return row, true
}

// RowStart returns the first index stored in row.
func RowStart(row int) int {
	return 1<<row - 1
}

// RowSize returns the number of slots in row.
func RowSize(row int) int {
	return 1 << row
}

// Offset returns the position of index within row.
func Offset(index, row int) int {
	return index - RowStart(row)
}

// Locate combines RowOf and Offset.
func Locate(index int) (row, pos int, ok bool) {
	row, ok = RowOf(index)
	if !ok {
		return 0, 0, false
	}
	return row, Offset(index, row), true
}

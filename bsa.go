package bsa

import (
	"iter"
	"strconv"
	"strings"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bsa/internal/bitset"
	"github.com/hupe1980/bsa/internal/mem"
	"github.com/hupe1980/bsa/internal/rowindex"
	"github.com/hupe1980/bsa/resource"
)

// RowLimit is the number of rows an Array can address.
const RowLimit = rowindex.RowLimit

// slotBytes is the size of one stored value.
const slotBytes = 4

// Visitor is called by ForEach for every set index. value points into the
// row buffer; acc is the accumulator passed to ForEach.
type Visitor func(value *int32, acc *int32)

// Array is a sparse array of int32 values addressed by non-negative indices.
//
// Index space is split into RowLimit rows, row r holding 2^r slots. A row's
// buffer is allocated on the first Set into it and released by the Delete
// that removes its last set index.
//
// Array is not safe for concurrent use.
type Array struct {
	rows  [RowLimit][]int32 // nil means unallocated
	live  [RowLimit]int     // set indices per row
	isSet *bitset.BitSet

	maxIndex int
	count    int
	reserved int64
	closed   bool

	rc      *resource.Controller
	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty Array. The presence bitmap covering the whole
// addressable capacity is reserved up front; New fails with
// ErrResourceExhausted if the configured memory limit cannot hold it.
func New(optFns ...Option) (*Array, error) {
	opts := options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.logger == nil {
		opts.logger = NoopLogger()
	}
	if opts.metricsCollector == nil {
		opts.metricsCollector = NoopMetricsCollector{}
	}
	if opts.resourceController == nil {
		opts.resourceController = resource.NewController(resource.Config{
			MemoryLimitBytes: opts.memoryLimit,
		})
	}

	bitmapBits := uint64(1) << RowLimit
	bitmapBytes := bitset.SizeBytes(bitmapBits)
	if err := opts.resourceController.AcquireMemory(bitmapBytes); err != nil {
		opts.logger.Warn("bitmap allocation failed", "bytes", bitmapBytes, "error", err)
		return nil, translateError(err)
	}

	return &Array{
		isSet:    bitset.New(bitmapBits),
		maxIndex: -1,
		reserved: bitmapBytes,
		rc:       opts.resourceController,
		logger:   opts.logger,
		metrics:  opts.metricsCollector,
	}, nil
}

// Capacity returns the number of addressable indices, [0, Capacity()).
func Capacity() int {
	return rowindex.Capacity()
}

// RowOf returns the row holding index, or false if index is negative or
// beyond the addressable capacity.
func RowOf(index int) (int, bool) {
	return rowindex.RowOf(index)
}

// Set stores value at index, allocating the index's row if needed.
// On failure the array is left unchanged.
func (a *Array) Set(index int, value int32) (err error) {
	start := time.Now()
	defer func() {
		a.metrics.RecordSet(time.Since(start), err)
	}()

	if a.closed {
		return ErrClosed
	}

	row, pos, err := a.locate("set", index)
	if err != nil {
		return err
	}

	if a.rows[row] == nil {
		if err := a.allocRow(row); err != nil {
			return err
		}
	}

	a.rows[row][pos] = value
	if !a.isSet.Test(uint64(index)) {
		a.isSet.Set(uint64(index))
		a.live[row]++
		a.count++
	}
	if index > a.maxIndex {
		a.maxIndex = index
	}
	return nil
}

// Get returns a pointer to the value stored at index, or false if index
// holds no value. The pointer stays valid until the index is deleted.
func (a *Array) Get(index int) (*int32, bool) {
	if a.closed || index < 0 || index > a.maxIndex {
		return nil, false
	}
	row, pos, ok := rowindex.Locate(index)
	if !ok || a.rows[row] == nil || !a.isSet.Test(uint64(index)) {
		return nil, false
	}
	return &a.rows[row][pos], true
}

// Delete removes the value at index. A row whose last set index is deleted
// is released. Deleting the max index scans backward for the next lower set
// index, so repeatedly deleting the maximum costs time proportional to the
// index range walked.
func (a *Array) Delete(index int) (err error) {
	start := time.Now()
	defer func() {
		a.metrics.RecordDelete(time.Since(start), err)
	}()

	if a.closed {
		return ErrClosed
	}
	if index < 0 {
		return indexError("delete", index, ErrNegativeIndex)
	}
	if index > a.maxIndex {
		return indexError("delete", index, ErrIndexOutOfRange)
	}

	row, pos, ok := rowindex.Locate(index)
	if !ok {
		return indexError("delete", index, ErrIndexOutOfRange)
	}
	if a.rows[row] == nil || !a.isSet.Test(uint64(index)) {
		return indexError("delete", index, ErrNotSet)
	}

	a.rows[row][pos] = 0
	a.isSet.Unset(uint64(index))
	a.live[row]--
	a.count--

	if a.live[row] == 0 {
		a.releaseRow(row)
	}

	if index == a.maxIndex {
		a.maxIndex = int(a.isSet.PrevSetBit(uint64(index)))
		a.logger.LogRescan(index, a.maxIndex)
		a.metrics.RecordRescan(index - a.maxIndex)
	}
	return nil
}

// MaxIndex returns the highest set index, or -1 if the array is empty.
func (a *Array) MaxIndex() int {
	if a.closed {
		return -1
	}
	return a.maxIndex
}

// Len returns the number of set indices.
func (a *Array) Len() int {
	if a.closed {
		return 0
	}
	return a.count
}

// ForEach calls visit for every set index in ascending order. visit may
// modify the value through its pointer and update acc.
func (a *Array) ForEach(visit Visitor, acc *int32) {
	if a.closed || visit == nil || acc == nil {
		return
	}
	a.scan(func(_ int, value *int32) bool {
		visit(value, acc)
		return true
	})
}

// All returns an iterator over the set indices and their values in
// ascending index order.
func (a *Array) All() iter.Seq2[int, int32] {
	return func(yield func(int, int32) bool) {
		if a.closed {
			return
		}
		a.scan(func(index int, value *int32) bool {
			return yield(index, *value)
		})
	}
}

// Indices returns a snapshot of the set indices.
func (a *Array) Indices() *roaring.Bitmap {
	bm := roaring.New()
	if a.closed {
		return bm
	}
	a.scan(func(index int, _ *int32) bool {
		bm.Add(uint32(index))
		return true
	})
	return bm
}

// RowAllocated reports whether row currently has a buffer.
func (a *Array) RowAllocated(row int) bool {
	if a.closed || row < 0 || row >= RowLimit {
		return false
	}
	return a.rows[row] != nil
}

// RowEmpty reports whether no index in row is set. Unallocated and
// out-of-range rows are empty. Presence is decided by the bitmap, so a
// stored zero keeps its row non-empty.
func (a *Array) RowEmpty(row int) bool {
	if a.closed || row < 0 || row >= RowLimit || a.rows[row] == nil {
		return true
	}
	return a.live[row] == 0
}

// MemoryUsage returns the bytes reserved by the bitmap and allocated rows.
func (a *Array) MemoryUsage() int64 {
	return a.reserved
}

// String renders every row up to the row holding the max index. Each row
// is enclosed in braces and lists its set indices as [index]=value.
// Unallocated rows render as {}. An empty array renders as "".
func (a *Array) String() string {
	if a.closed || a.maxIndex < 0 {
		return ""
	}
	lastRow, _ := rowindex.RowOf(a.maxIndex)

	var sb strings.Builder
	for row := 0; row <= lastRow; row++ {
		sb.WriteByte('{')
		if buf := a.rows[row]; buf != nil {
			first := true
			start := rowindex.RowStart(row)
			for pos := range buf {
				index := start + pos
				if index > a.maxIndex {
					break
				}
				if !a.isSet.Test(uint64(index)) {
					continue
				}
				if !first {
					sb.WriteByte(' ')
				}
				first = false
				sb.WriteByte('[')
				sb.WriteString(strconv.Itoa(index))
				sb.WriteString("]=")
				sb.WriteString(strconv.FormatInt(int64(buf[pos]), 10))
			}
		}
		sb.WriteByte('}')
	}
	return sb.String()
}

// Close releases all row buffers and the bitmap. The array must not be
// used afterwards; a second Close returns ErrClosed.
func (a *Array) Close() error {
	if a.closed {
		return ErrClosed
	}
	for row := range a.rows {
		if a.rows[row] != nil {
			a.releaseRow(row)
		}
	}
	a.rc.ReleaseMemory(a.reserved)
	a.reserved = 0
	a.isSet = nil
	a.maxIndex = -1
	a.count = 0
	a.closed = true
	return nil
}

func (a *Array) locate(op string, index int) (row, pos int, err error) {
	if index < 0 {
		return 0, 0, indexError(op, index, ErrNegativeIndex)
	}
	row, pos, ok := rowindex.Locate(index)
	if !ok {
		return 0, 0, indexError(op, index, ErrIndexOutOfRange)
	}
	return row, pos, nil
}

func (a *Array) allocRow(row int) error {
	slots := rowindex.RowSize(row)
	bytes := int64(slots) * slotBytes
	if err := a.rc.AcquireMemory(bytes); err != nil {
		a.logger.LogRowAlloc(row, slots, err)
		return translateError(err)
	}
	a.rows[row] = mem.AllocAlignedInt32(slots)
	a.reserved += bytes
	a.logger.LogRowAlloc(row, slots, nil)
	a.metrics.RecordRowAlloc(row)
	return nil
}

func (a *Array) releaseRow(row int) {
	slots := len(a.rows[row])
	bytes := int64(slots) * slotBytes
	a.rows[row] = nil
	a.live[row] = 0
	a.rc.ReleaseMemory(bytes)
	a.reserved -= bytes
	a.logger.LogRowRelease(row, slots)
	a.metrics.RecordRowRelease(row)
}

// scan walks set indices in [0, maxIndex] in ascending order until fn
// returns false.
func (a *Array) scan(fn func(index int, value *int32) bool) {
	for next := a.isSet.NextSetBit(0); next >= 0 && int(next) <= a.maxIndex; next = a.isSet.NextSetBit(uint64(next) + 1) {
		index := int(next)
		row, pos, _ := rowindex.Locate(index)
		if !fn(index, &a.rows[row][pos]) {
			return
		}
	}
}

package bitset

import (
	"math/bits"
)

const wordBits = 64

// BitSet is a dense, fixed-size bitset. It is not safe for concurrent use.
type BitSet struct {
	words []uint64
	size  uint64
}

// New creates a new BitSet holding size bits, all clear.
func New(size uint64) *BitSet {
	return &BitSet{
		words: make([]uint64, (size+wordBits-1)/wordBits),
		size:  size,
	}
}

// SizeBytes returns the number of bytes backing a bitset of size bits.
func SizeBytes(size uint64) int64 {
	return int64((size+wordBits-1)/wordBits) * 8
}

// Len returns the size of the bitset in bits.
func (b *BitSet) Len() uint64 {
	return b.size
}

// Set sets the bit at the given index. Out of range indices are ignored.
func (b *BitSet) Set(i uint64) {
	if i >= b.size {
		return
	}
	b.words[i/wordBits] |= 1 << (i % wordBits)
}

// Unset clears the bit at the given index.
func (b *BitSet) Unset(i uint64) {
	if i >= b.size {
		return
	}
	b.words[i/wordBits] &^= 1 << (i % wordBits)
}

// Test returns true if the bit at the given index is set.
func (b *BitSet) Test(i uint64) bool {
	if i >= b.size {
		return false
	}
	return b.words[i/wordBits]&(1<<(i%wordBits)) != 0
}

// NextSetBit returns the index of the next set bit starting from i (inclusive).
// Returns -1 if no bit is set at or after i.
func (b *BitSet) NextSetBit(i uint64) int64 {
	if i >= b.size {
		return -1
	}

	w := i / wordBits
	val := b.words[w] &^ ((1 << (i % wordBits)) - 1)
	for {
		if val != 0 {
			next := w*wordBits + uint64(bits.TrailingZeros64(val))
			if next >= b.size {
				return -1
			}
			return int64(next)
		}
		w++
		if w >= uint64(len(b.words)) {
			return -1
		}
		val = b.words[w]
	}
}

// PrevSetBit returns the index of the closest set bit at or before i.
// Returns -1 if no such bit exists.
func (b *BitSet) PrevSetBit(i uint64) int64 {
	if b.size == 0 {
		return -1
	}
	if i >= b.size {
		i = b.size - 1
	}

	w := int64(i / wordBits)
	shift := wordBits - 1 - i%wordBits
	val := b.words[w] << shift >> shift
	for {
		if val != 0 {
			return w*wordBits + int64(bits.Len64(val)) - 1
		}
		w--
		if w < 0 {
			return -1
		}
		val = b.words[w]
	}
}

// Count returns the number of set bits.
func (b *BitSet) Count() int {
	count := 0
	for _, w := range b.words {
		count += bits.OnesCount64(w)
	}
	return count
}

// CountRange returns the number of set bits in [lo, hi).
func (b *BitSet) CountRange(lo, hi uint64) int {
	if hi > b.size {
		hi = b.size
	}
	if lo >= hi {
		return 0
	}

	loW, hiW := lo/wordBits, (hi-1)/wordBits
	loMask := ^uint64(0) << (lo % wordBits)
	hiMask := ^uint64(0) >> (wordBits - 1 - (hi-1)%wordBits)

	if loW == hiW {
		return bits.OnesCount64(b.words[loW] & loMask & hiMask)
	}

	count := bits.OnesCount64(b.words[loW] & loMask)
	for w := loW + 1; w < hiW; w++ {
		count += bits.OnesCount64(b.words[w])
	}
	return count + bits.OnesCount64(b.words[hiW]&hiMask)
}

// ClearAll clears all bits in the bitset.
func (b *BitSet) ClearAll() {
	clear(b.words)
}

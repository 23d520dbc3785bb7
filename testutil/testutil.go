package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int32 returns a pseudo-random int32 that may be negative or zero.
func (r *RNG) Int32() int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int32(r.rand.Uint32())
}

// Indices returns n distinct indices in [0, limit), in random order.
// Small indices are favoured so that low rows see several entries.
func (r *RNG) Indices(n, limit int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n > limit {
		n = limit
	}
	seen := make(map[int]struct{}, n)
	out := make([]int, 0, n)
	for len(out) < n {
		var i int
		if r.rand.Intn(2) == 0 {
			i = r.rand.Intn(min(limit, 64))
		} else {
			i = r.rand.Intn(limit)
		}
		if _, ok := seen[i]; ok {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}
	return out
}

// OpKind is the kind of a generated operation.
type OpKind int

const (
	OpSet OpKind = iota
	OpDelete
)

// Op is a generated array operation.
type Op struct {
	Kind  OpKind
	Index int
	Value int32
}

// Ops returns n operations on indices in [0, limit). Roughly a third of them
// are deletes, half of which target an index set earlier in the sequence.
func (r *RNG) Ops(n, limit int) []Op {
	ops := make([]Op, 0, n)
	var written []int
	for len(ops) < n {
		switch k := r.Intn(6); {
		case k < 4:
			i := r.Intn(limit)
			written = append(written, i)
			ops = append(ops, Op{Kind: OpSet, Index: i, Value: r.Int32()})
		case k == 4 && len(written) > 0:
			ops = append(ops, Op{Kind: OpDelete, Index: written[r.Intn(len(written))]})
		default:
			ops = append(ops, Op{Kind: OpDelete, Index: r.Intn(limit)})
		}
	}
	return ops
}

// Model is a map-backed reference for sparse array behaviour.
type Model struct {
	values map[int]int32
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{values: make(map[int]int32)}
}

// Set stores v at i.
func (m *Model) Set(i int, v int32) {
	m.values[i] = v
}

// Delete removes i and reports whether it was present.
func (m *Model) Delete(i int) bool {
	if _, ok := m.values[i]; !ok {
		return false
	}
	delete(m.values, i)
	return true
}

// Get returns the value at i.
func (m *Model) Get(i int) (int32, bool) {
	v, ok := m.values[i]
	return v, ok
}

// Len returns the number of stored indices.
func (m *Model) Len() int {
	return len(m.values)
}

// MaxIndex returns the highest stored index or -1.
func (m *Model) MaxIndex() int {
	maxIndex := -1
	for i := range m.values {
		maxIndex = max(maxIndex, i)
	}
	return maxIndex
}

// Indices returns the stored indices in ascending order.
func (m *Model) Indices() []int {
	out := make([]int, 0, len(m.values))
	for i := range m.values {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

package cbloom

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidSize is returned when a filter is constructed with a
	// zero-length counter array.
	ErrInvalidSize = errors.New("cbloom: size must be greater than zero")

	// ErrInvalidHashCount is returned when a filter is constructed with
	// zero hash functions.
	ErrInvalidHashCount = errors.New("cbloom: number of hash functions must be greater than zero")
)

// Filter is a counting bloom filter. Unlike a plain bloom filter it supports
// removal: each slot is a saturating uint32 counter rather than a bit.
//
// Filter is not safe for concurrent use.
type Filter struct {
	counters []uint32 // One counter per slot, saturating at math.MaxUint32
	size     uint64   // Length of the counter array
	k        uint32   // Number of hash functions
	count    uint64   // Approximate number of items currently in the filter
}

// New creates a counting bloom filter with an explicit counter-array length
// and number of hash functions. Both must be greater than zero; a zero size
// would make index derivation a modulo by zero, so it is rejected here rather
// than left to panic inside hashing.
func New(size uint64, numHashFunctions uint32) (*Filter, error) {
	if size == 0 {
		return nil, fmt.Errorf("%w: got size=0", ErrInvalidSize)
	}
	if numHashFunctions == 0 {
		return nil, fmt.Errorf("%w: got k=0", ErrInvalidHashCount)
	}

	return &Filter{
		counters: make([]uint32, size),
		size:     size,
		k:        numHashFunctions,
	}, nil
}

// NewWithEstimates creates a counting bloom filter sized for the expected
// number of items and desired false positive rate. The parameters are
// clamped to sane values by OptimalParams, so construction cannot fail.
func NewWithEstimates(expectedItems uint64, fpRate float64) *Filter {
	size, k, _ := OptimalParams(expectedItems, fpRate)
	f, _ := New(size, k)
	return f
}

// Add adds data to the filter, incrementing each of its k counters.
// A counter already at math.MaxUint32 is left saturated rather than wrapped.
func (f *Filter) Add(data []byte) {
	f.addWithHash(hashBase(data))
}

// AddString adds a string to the filter without allocating.
func (f *Filter) AddString(s string) {
	f.addWithHash(hashBaseString(s))
}

// addWithHash increments the k derived counters for a pre-computed base hash.
func (f *Filter) addWithHash(base uint64) {
	for i := uint32(0); i < f.k; i++ {
		idx := deriveIndex(base, i, f.size)
		if f.counters[idx] < math.MaxUint32 {
			f.counters[idx]++
		}
	}
	f.count++
}

// Remove removes data from the filter, decrementing each of its k counters.
// A counter already at zero stays at zero rather than wrapping.
//
// Remove must only be called for items previously added at least as many
// times. Removing an item that is not present silently decrements counters
// shared with other keys and can introduce false negatives for those keys;
// the filter cannot detect this.
func (f *Filter) Remove(data []byte) {
	f.removeWithHash(hashBase(data))
}

// RemoveString removes a string from the filter without allocating.
func (f *Filter) RemoveString(s string) {
	f.removeWithHash(hashBaseString(s))
}

// removeWithHash decrements the k derived counters for a pre-computed base hash.
func (f *Filter) removeWithHash(base uint64) {
	for i := uint32(0); i < f.k; i++ {
		idx := deriveIndex(base, i, f.size)
		if f.counters[idx] > 0 {
			f.counters[idx]--
		}
	}
	if f.count > 0 {
		f.count--
	}
}

// Test checks whether data might be in the filter.
// Returns true if the data might be present (with false positive
// probability), or false if the data is definitely not present.
func (f *Filter) Test(data []byte) bool {
	return f.testWithHash(hashBase(data))
}

// TestString checks whether a string might be in the filter without allocating.
func (f *Filter) TestString(s string) bool {
	return f.testWithHash(hashBaseString(s))
}

// testWithHash reports whether all k derived counters are positive,
// short-circuiting on the first zero.
func (f *Filter) testWithHash(base uint64) bool {
	for i := uint32(0); i < f.k; i++ {
		if f.counters[deriveIndex(base, i, f.size)] == 0 {
			return false
		}
	}
	return true
}

// TestAndAdd tests for data and then adds it, hashing only once.
// Returns true if the data was (probably) already present.
func (f *Filter) TestAndAdd(data []byte) bool {
	base := hashBase(data)
	present := f.testWithHash(base)
	f.addWithHash(base)
	return present
}

// TestAndAddString tests for a string and then adds it without allocating.
func (f *Filter) TestAndAddString(s string) bool {
	base := hashBaseString(s)
	present := f.testWithHash(base)
	f.addWithHash(base)
	return present
}

// Clear resets every counter to zero, emptying the filter.
func (f *Filter) Clear() {
	clear(f.counters)
	f.count = 0
}

// Size returns the length of the counter array.
func (f *Filter) Size() uint64 {
	return f.size
}

// K returns the number of hash functions used.
func (f *Filter) K() uint32 {
	return f.k
}

// Count returns the approximate number of items currently in the filter
// (adds minus removes). It is approximate because Remove decrements it even
// for items that were never added.
func (f *Filter) Count() uint64 {
	return f.count
}

// EstimatedFillRatio returns the proportion of counters that are nonzero.
func (f *Filter) EstimatedFillRatio() float64 {
	var nonzero uint64
	for _, c := range f.counters {
		if c != 0 {
			nonzero++
		}
	}
	return float64(nonzero) / float64(f.size)
}

// EstimatedFalsePositiveRate estimates the current false positive rate based
// on the number of items in the filter.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.size, f.k, f.count)
}

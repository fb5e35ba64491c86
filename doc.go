// Package cbloom provides a counting bloom filter for Go.
//
// A counting bloom filter is a space-efficient probabilistic data structure
// that tests whether an element is a member of a set, like an ordinary bloom
// filter, but replaces each bit with a small counter. Counters make removal
// possible: adding an item increments its k counters, removing decrements
// them, and an item might be present only while all k of its counters are
// positive. False positives are possible; false negatives are not, as long as
// every Remove is matched by a prior Add of the same item.
//
// # Architecture
//
// The filter owns a flat array of uint32 counters, fixed at construction and
// never resized. Each key is hashed once with xxh3, and the k counter
// positions are derived from that single 64-bit value: the hash-function
// index is folded in with a golden-ratio multiplier, the result is run
// through a splitmix64 finalizer to decorrelate the outputs, and the mixed
// value is reduced modulo the array length. Deriving all k positions from one
// hash avoids rehashing the key per probe while still behaving like k
// independent hash functions.
//
// Counter arithmetic saturates rather than wraps: Add stops incrementing a
// counter at math.MaxUint32, and Remove stops decrementing at zero. Neither
// condition is reported: saturation only affects estimation accuracy at
// extreme skew, and flooring at zero is what prevents underflow corruption.
//
// # Choosing Parameters
//
// Use [NewWithEstimates] with your expected number of items and desired false
// positive rate:
//
//	// Filter for 1 million items with 1% false positive rate
//	f := cbloom.NewWithEstimates(1_000_000, 0.01)
//
// It calculates the optimal counter-array length and number of hash
// functions. [New] gives explicit control over both, and [OptimalParams]
// exposes the sizing math directly for capacity planning.
//
// Memory usage is 4 bytes per counter, so a counting filter costs 32x the
// memory of a plain bloom filter with the same slot count. That is the price
// of removal; if you never remove, use a plain bloom filter instead.
//
// # Removal Caveats
//
// Remove trusts the caller. Removing an item that was never added, or
// removing it more times than it was added, decrements counters the item
// shares with other keys and can push one of them to zero early, after
// which Test returns a false negative for an unrelated item that is still
// logically present. This is an inherent limitation of counting bloom
// filters, not a detectable error; the filter has no way to distinguish an
// honest removal from an over-removal.
//
// # Thread Safety
//
// [Filter] is NOT thread-safe. Concurrent Add or Remove calls racing on a
// shared counter lose updates, and Test concurrent with mutation can observe
// a counter mid-update. Guard the filter with external synchronization, or
// shard by key range, if concurrent access is required.
//
// # References
//
//   - Summary Cache (the original counting bloom filter):
//     https://pages.cs.wisc.edu/~cao/papers/summary-cache/
//   - splitmix64 finalizer: https://prng.di.unimi.it/splitmix64.c
package cbloom

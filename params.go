package cbloom

import "math"

const (
	// ln2 is the natural logarithm of 2.
	ln2 = 0.6931471805599453
	// ln2Squared is ln(2)^2.
	ln2Squared = 0.4804530139182014
)

// OptimalParams calculates the optimal counting bloom filter parameters for
// the expected number of items and desired false positive rate. Returns the
// counter-array length, the number of hash functions (k), and the number of
// counters per item. The sizing math is the standard bloom filter formula:
// a counting filter needs the same number of slots, each slot just costs a
// counter instead of a bit.
func OptimalParams(expectedItems uint64, fpRate float64) (size uint64, k uint32, countersPerItem float64) {
	if expectedItems == 0 {
		expectedItems = 1
	}
	if fpRate <= 0 {
		fpRate = 0.0001 // default to 0.01%
	}
	if fpRate >= 1 {
		fpRate = 0.99
	}

	// Optimal slots per item: -ln(fpRate) / ln(2)^2
	countersPerItem = -math.Log(fpRate) / ln2Squared

	size = uint64(math.Ceil(float64(expectedItems) * countersPerItem))
	if size == 0 {
		size = 1
	}

	// Optimal k: (m/n) * ln(2)
	kFloat := float64(size) / float64(expectedItems) * ln2
	k = uint32(math.Round(kFloat))

	k = max(k, 1)
	k = min(k, 16)

	return size, k, countersPerItem
}

// EstimateFalsePositiveRate estimates the probability that an item never
// added is reported present after numItems insertions, assuming uniform
// independent hashing.
// Formula: (1 - e^(-k*n/m))^k
func EstimateFalsePositiveRate(size uint64, k uint32, numItems uint64) float64 {
	if size == 0 || numItems == 0 {
		return 0
	}

	m := float64(size)
	n := float64(numItems)
	kf := float64(k)

	return math.Pow(1-math.Exp(-kf*n/m), kf)
}

package cbloom

import "github.com/zeebo/xxh3"

// golden is 2^64 / phi, the odd constant used to fold the hash-function
// index into the base hash before mixing.
const golden = 0x9e3779b97f4a7c15

// hashBase returns the raw 64-bit xxh3 hash of data.
func hashBase(data []byte) uint64 {
	return xxh3.Hash(data)
}

// hashBaseString returns the raw 64-bit xxh3 hash of a string.
// This avoids the allocation of converting string to []byte.
func hashBaseString(s string) uint64 {
	return xxh3.HashString(s)
}

// deriveIndex maps a base hash and hash-function index i to a counter
// position in [0, size). The index is folded in with a golden-ratio
// multiplier and the result passed through mix64, so positions for the same
// key behave like the outputs of k independent hash functions. Reducing
// modulo size carries a slight bias when size is not a power of two,
// negligible for the array lengths this filter is used with.
func deriveIndex(base uint64, i uint32, size uint64) uint64 {
	return mix64(base+uint64(i)*golden) % size
}

// mix64 is the splitmix64 finalizer, a full-avalanche mixer: every input bit
// affects every output bit.
func mix64(h uint64) uint64 {
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return h
}

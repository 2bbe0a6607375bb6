// Package game holds the pure algorithmic core of the escape-room engine:
// the seeded sequence generator, answer canonicalization and commitments,
// and the weighted reward pick. Nothing in here touches storage or services.
package game

import (
	"crypto/sha256"
	"encoding/binary"
	"strconv"
)

// Rand maps (seed, index) to a float in [0,1) by hashing "seed:index" and
// scaling the first 8 digest bytes. Identical inputs always produce the
// same output, so every caller can replay a draw from the stored seed.
func Rand(seed string, index int) float64 {
	digest := sha256.Sum256([]byte(seed + ":" + strconv.Itoa(index)))
	v := binary.BigEndian.Uint64(digest[:8])
	return float64(v) / (1 << 64)
}

// Shuffle returns a permutation of [0,n) via Fisher-Yates, walking indices
// from last to first and swapping i with floor(Rand(seed,i)*(i+1)).
func Shuffle(n int, seed string) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := int(Rand(seed, i) * float64(i+1))
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// Sample returns the first min(k,n) indices of Shuffle(n, seed).
func Sample(n, k int, seed string) []int {
	if k > n {
		k = n
	}
	if k < 0 {
		k = 0
	}
	return Shuffle(n, seed)[:k]
}

// LevelCount derives how many levels a session requests from its seed.
// The upstream design computes rand(seed,0)*5 without saying how to round;
// we floor and clamp to [1,5] so a session always has at least one level.
func LevelCount(seed string) int {
	n := int(Rand(seed, 0) * 5)
	if n < 1 {
		return 1
	}
	if n > 5 {
		return 5
	}
	return n
}

package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandDeterministic(t *testing.T) {
	a := Rand("abc", 0)
	b := Rand("abc", 0)
	assert.Equal(t, a, b)
	assert.InDelta(t, 0.371932, a, 1e-6)

	assert.NotEqual(t, Rand("abc", 0), Rand("abc", 1))
	assert.NotEqual(t, Rand("abc", 0), Rand("abd", 0))
}

func TestRandRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := Rand("range-seed", i)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestShuffleKnownPermutations(t *testing.T) {
	assert.Equal(t, []int{0, 2, 1}, Shuffle(3, "xyz"))
	assert.Equal(t, []int{4, 2, 1, 0, 3}, Shuffle(5, "xyz"))
	assert.Equal(t, []int{1, 2, 0}, Shuffle(3, "tok"))
}

func TestShuffleIsPermutation(t *testing.T) {
	perm := Shuffle(50, "perm-seed")
	require.Len(t, perm, 50)

	seen := make(map[int]bool, 50)
	for _, v := range perm {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 50)
		assert.False(t, seen[v], "duplicate index %d", v)
		seen[v] = true
	}
}

func TestShuffleEdgeSizes(t *testing.T) {
	assert.Equal(t, []int{}, Shuffle(0, "xyz"))
	assert.Equal(t, []int{0}, Shuffle(1, "xyz"))
}

func TestSample(t *testing.T) {
	assert.Equal(t, []int{4, 2}, Sample(5, 2, "xyz"))
	assert.Equal(t, []int{0, 2, 1}, Sample(3, 3, "xyz"))

	// k beyond n is clamped
	assert.Len(t, Sample(3, 10, "xyz"), 3)
	assert.Empty(t, Sample(3, 0, "xyz"))
	assert.Empty(t, Sample(3, -1, "xyz"))
}

func TestSamplePrefixConsistency(t *testing.T) {
	full := Shuffle(8, "prefix-seed")
	assert.Equal(t, full[:3], Sample(8, 3, "prefix-seed"))
}

func TestLevelCountKnownSeeds(t *testing.T) {
	assert.Equal(t, 1, LevelCount("abc"))
	assert.Equal(t, 3, LevelCount("xyz"))
	assert.Equal(t, 4, LevelCount("tok"))
}

func TestLevelCountBounds(t *testing.T) {
	for i := 0; i < 500; i++ {
		n := LevelCount(fmt.Sprintf("bound-seed-%d", i))
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 5)
	}
}

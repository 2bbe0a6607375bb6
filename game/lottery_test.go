package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightedPickEmpty(t *testing.T) {
	assert.Equal(t, -1, WeightedPick(nil, "abc"))
	assert.Equal(t, -1, WeightedPick([]int{}, "abc"))
}

func TestWeightedPickZeroTotal(t *testing.T) {
	assert.Equal(t, 2, WeightedPick([]int{0, 0, 0}, "abc"))
	assert.Equal(t, 1, WeightedPick([]int{0, -5}, "abc"))
}

func TestWeightedPickDeterministic(t *testing.T) {
	assert.Equal(t, 1, WeightedPick([]int{1, 9}, "abc"))
	assert.Equal(t, 0, WeightedPick([]int{5, 5}, "abc"))

	a := WeightedPick([]int{3, 1, 4, 1, 5}, "repeat-seed")
	b := WeightedPick([]int{3, 1, 4, 1, 5}, "repeat-seed")
	assert.Equal(t, a, b)
}

func TestWeightedPickSingle(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Equal(t, 0, WeightedPick([]int{7}, fmt.Sprintf("s-%d", i)))
	}
}

func TestWeightedPickInRange(t *testing.T) {
	weights := []int{2, 0, 3, 1}
	for i := 0; i < 1000; i++ {
		idx := WeightedPick(weights, fmt.Sprintf("range-%d", i))
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, len(weights))
	}
}

func TestWeightedPickFrequencies(t *testing.T) {
	counts := map[int]int{}
	for i := 0; i < 10000; i++ {
		counts[WeightedPick([]int{1, 9}, fmt.Sprintf("seed-%d", i))]++
	}

	// Exact tallies for this seed family. Heavy weight dominates roughly
	// in proportion 9:1.
	assert.Equal(t, 8961, counts[1])
	assert.Equal(t, 1039, counts[0])
}

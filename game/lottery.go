package game

// WeightedPick draws one index from weights using Rand(seed,0) scaled to
// the weight total, walking the running sum and returning the first index
// whose cumulative weight reaches the draw. Floating-point rounding can in
// principle leave the walk short, so the last index is the fallback.
// Returns -1 for an empty candidate list.
func WeightedPick(weights []int, seed string) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return len(weights) - 1
	}

	r := Rand(seed, 0) * float64(total)
	acc := 0.0
	for i, w := range weights {
		acc += float64(w)
		if acc >= r {
			return i
		}
	}
	return len(weights) - 1
}

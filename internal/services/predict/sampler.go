package predict

import (
	"fmt"
	"math/rand"

	"lottopick/internal/domain/models"
)

// sampleUniform picks k distinct values from pool via a partial
// Fisher-Yates shuffle of a scratch copy.
func sampleUniform(rng *rand.Rand, pool []int, k int) []int {
	scratch := append([]int(nil), pool...)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(scratch)-i)
		scratch[i], scratch[j] = scratch[j], scratch[i]
	}
	return scratch[:k]
}

// sampleWeighted picks k distinct values with probability proportional to
// their weights, using cumulative-weight selection without replacement: each
// pick walks the running cumulative sum and removes the chosen entry's weight
// from the total, so no per-draw re-normalization is needed.
func sampleWeighted(rng *rand.Rand, nums []int, weights []int, k int) ([]int, error) {
	if len(nums) != len(weights) {
		return nil, fmt.Errorf("%w: %d numbers with %d weights", models.ErrInvalidParameters, len(nums), len(weights))
	}

	w := make([]float64, len(weights))
	total := 0.0
	positive := 0
	for i, v := range weights {
		if v > 0 {
			w[i] = float64(v)
			total += w[i]
			positive++
		}
	}
	if positive < k {
		return nil, fmt.Errorf("%w: only %d numbers with positive weight, need %d", models.ErrPolicyUnsatisfiable, positive, k)
	}

	out := make([]int, 0, k)
	taken := make([]bool, len(nums))
	for len(out) < k {
		r := rng.Float64() * total
		acc := 0.0
		picked := -1
		for i := range nums {
			if taken[i] || w[i] == 0 {
				continue
			}
			acc += w[i]
			if r < acc {
				picked = i
				break
			}
		}
		if picked < 0 {
			// float round-off at the upper edge: take the last eligible entry
			for i := len(nums) - 1; i >= 0; i-- {
				if !taken[i] && w[i] > 0 {
					picked = i
					break
				}
			}
		}
		taken[picked] = true
		total -= w[picked]
		out = append(out, nums[picked])
	}
	return out, nil
}

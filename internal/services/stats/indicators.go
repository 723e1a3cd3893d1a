package stats

import (
	"sort"

	"lottopick/internal/domain/models"
)

// ComputeIndicators derives all statistics for a combination. Pure and
// order-independent: any permutation of the same 6 numbers yields the same
// result. Fails with ErrInvalidCombination on malformed input.
func ComputeIndicators(c models.Combination) (models.IndicatorSet, error) {
	if err := c.Valid(); err != nil {
		return models.IndicatorSet{}, err
	}

	nums := c[:]
	var s models.IndicatorSet
	var digitCounts [10]int
	for _, n := range nums {
		s.Sum += n
		if n%2 != 0 {
			s.OddCount++
		}
		if n >= models.HighThreshold {
			s.HighCount++
		}
		s.LastDigitSum += n % 10
		digitCounts[n%10]++
		s.Sections[sectionIndex(n)]++
	}
	s.EvenCount = models.PickCount - s.OddCount
	s.LowCount = models.PickCount - s.HighCount

	for _, cnt := range digitCounts {
		if cnt >= 3 {
			s.LastDigitTriple = true
			break
		}
	}

	s.ACValue = acValue(nums)
	s.TripleRun = hasTripleRun(nums)
	return s, nil
}

// acValue is the arithmetic complexity: the count of distinct pairwise
// absolute differences minus 5 (the minimum for 6 numbers, reached by an
// arithmetic progression). Range 0..10.
func acValue(nums []int) int {
	var seen [models.NumberMax]bool
	distinct := 0
	for i := 0; i < len(nums); i++ {
		for j := i + 1; j < len(nums); j++ {
			d := nums[i] - nums[j]
			if d < 0 {
				d = -d
			}
			if !seen[d] {
				seen[d] = true
				distinct++
			}
		}
	}
	return distinct - (models.PickCount - 1)
}

// hasTripleRun reports whether the combination contains three consecutive
// integers (n, n+1, n+2).
func hasTripleRun(nums []int) bool {
	sorted := append([]int(nil), nums...)
	sort.Ints(sorted)
	for i := 0; i+2 < len(sorted); i++ {
		if sorted[i+1] == sorted[i]+1 && sorted[i+2] == sorted[i]+2 {
			return true
		}
	}
	return false
}

// sectionIndex buckets a number into the five ten-ranges
// 1-10 / 11-20 / 21-30 / 31-40 / 41-45.
func sectionIndex(n int) int {
	idx := (n - 1) / 10
	if idx > 4 {
		idx = 4
	}
	return idx
}

package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lottopick/internal/domain/models"
	"lottopick/internal/services/stats"
)

// testPools builds a classification with a hot pool covering every third
// number and non-trivial frequency counts.
func testPools() models.Pools {
	p := models.Pools{Window: 50}
	for n := 1; n <= 45; n++ {
		if n%3 != 0 {
			p.Hot = append(p.Hot, n)
			p.Freq[n] = 2 + n%5
		} else {
			p.Cold = append(p.Cold, n)
			p.Freq[n] = 1
		}
	}
	return p
}

func TestGenerateDeterministicGivenSeed(t *testing.T) {
	pools := testPools()
	for _, policy := range models.AllPolicies() {
		a, err := New(42).Generate(pools, policy, Constraints{})
		require.NoError(t, err, "policy %s", policy.Code())
		b, err := New(42).Generate(pools, policy, Constraints{})
		require.NoError(t, err)
		assert.Equal(t, a, b, "policy %s not reproducible", policy.Code())
	}
}

func TestGenerateDistinctSortedNumbers(t *testing.T) {
	pools := testPools()
	for _, policy := range models.AllPolicies() {
		c, err := New(7).Generate(pools, policy, Constraints{})
		require.NoError(t, err)
		require.NoError(t, c.Valid())
		for i := 1; i < len(c); i++ {
			assert.Less(t, c[i-1], c[i])
		}
	}
}

func TestRandomDrawsFromHotPoolOnly(t *testing.T) {
	pools := testPools()
	g := New(11)
	for i := 0; i < 20; i++ {
		c, err := g.Generate(pools, models.PolicyRandom, Constraints{})
		require.NoError(t, err)
		for _, n := range c {
			assert.True(t, pools.IsHot(n), "number %d not in hot pool", n)
		}
	}
}

func TestWeightedNeverPicksZeroWeight(t *testing.T) {
	pools := testPools()
	// zero out the cold pool weights entirely
	for _, n := range pools.Cold {
		pools.Freq[n] = 0
	}
	g := New(13)
	for i := 0; i < 20; i++ {
		c, err := g.Generate(pools, models.PolicyWeighted, Constraints{})
		require.NoError(t, err)
		for _, n := range c {
			assert.Positive(t, pools.Freq.Count(n), "zero-weight number %d selected", n)
		}
	}
}

func TestWeightedUnsatisfiableWithTooFewPositiveWeights(t *testing.T) {
	pools := models.Pools{Window: 10, Hot: []int{1, 2, 3, 4, 5, 6}, Cold: []int{7, 8}}
	pools.Freq[1] = 3
	pools.Freq[2] = 2
	// only two positive weights
	_, err := New(1).Generate(pools, models.PolicyWeighted, Constraints{})
	assert.ErrorIs(t, err, models.ErrPolicyUnsatisfiable)
}

func TestBalancePolicy(t *testing.T) {
	g := New(3)
	for i := 0; i < 20; i++ {
		c, err := g.Generate(testPools(), models.PolicyBalance, Constraints{})
		require.NoError(t, err)
		ind, err := stats.ComputeIndicators(c)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, ind.OddCount, 2)
		assert.LessOrEqual(t, ind.OddCount, 4)
	}
}

func TestSumRangePolicy(t *testing.T) {
	g := New(5)
	for i := 0; i < 20; i++ {
		c, err := g.Generate(testPools(), models.PolicySumRange, Constraints{})
		require.NoError(t, err)
		ind, _ := stats.ComputeIndicators(c)
		assert.GreaterOrEqual(t, ind.Sum, 100)
		assert.LessOrEqual(t, ind.Sum, 170)
	}
}

func TestPatternSpreadPolicy(t *testing.T) {
	g := New(9)
	for i := 0; i < 20; i++ {
		c, err := g.Generate(testPools(), models.PolicyPatternSpread, Constraints{})
		require.NoError(t, err)
		ind, _ := stats.ComputeIndicators(c)
		assert.LessOrEqual(t, ind.MaxSection(), 4)
		assert.False(t, ind.TripleRun)
	}
}

func TestAIPrecisionSatisfiesAllPredicates(t *testing.T) {
	g := New(17)
	for i := 0; i < 30; i++ {
		c, err := g.Generate(testPools(), models.PolicyAIPrecision, Constraints{})
		require.NoError(t, err)
		ind, err := stats.ComputeIndicators(c)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, ind.Sum, 100)
		assert.LessOrEqual(t, ind.Sum, 170)
		assert.GreaterOrEqual(t, ind.OddCount, 2)
		assert.LessOrEqual(t, ind.OddCount, 4)
		assert.GreaterOrEqual(t, ind.LowCount, 2)
		assert.LessOrEqual(t, ind.LowCount, 4)
		assert.GreaterOrEqual(t, ind.ACValue, 7)
		assert.GreaterOrEqual(t, ind.LastDigitSum, 15)
		assert.LessOrEqual(t, ind.LastDigitSum, 35)
		assert.False(t, ind.LastDigitTriple)
		assert.False(t, ind.TripleRun)
	}
}

func TestOverfitGuardComposition(t *testing.T) {
	pools := testPools()
	tests := []struct {
		name               string
		hotSplit, wantCold int
	}{
		{"four hot two cold", 4, 2},
		{"five hot one cold", 5, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New(23)
			for i := 0; i < 20; i++ {
				c, err := g.Generate(pools, models.PolicyOverfitGuard, Constraints{HotSplit: tc.hotSplit})
				require.NoError(t, err)
				hot, cold := 0, 0
				for _, n := range c {
					if pools.IsHot(n) {
						hot++
					}
					if pools.IsCold(n) {
						cold++
					}
				}
				assert.Equal(t, tc.hotSplit, hot)
				assert.Equal(t, tc.wantCold, cold)
			}
		})
	}
}

func TestOverfitGuardInvalidSplit(t *testing.T) {
	_, err := New(1).Generate(testPools(), models.PolicyOverfitGuard, Constraints{HotSplit: 3})
	assert.ErrorIs(t, err, models.ErrInvalidParameters)
}

func TestGenerateSmallPools(t *testing.T) {
	pools := models.Pools{Window: 5, Hot: []int{1, 2, 3, 4, 5}, Cold: []int{40}}
	_, err := New(1).Generate(pools, models.PolicyRandom, Constraints{})
	assert.ErrorIs(t, err, models.ErrInvalidParameters)

	_, err = New(1).Generate(pools, models.PolicyOverfitGuard, Constraints{HotSplit: 4})
	assert.ErrorIs(t, err, models.ErrInvalidParameters, "cold pool too small for 4:2 split")
}

func TestPolicyUnsatisfiable(t *testing.T) {
	// hot pool of only the six largest numbers: sum is fixed at 255,
	// outside [100,170], so SumRange can never accept.
	pools := models.Pools{Window: 5, Hot: []int{40, 41, 42, 43, 44, 45}, Cold: []int{1, 2}}
	_, err := New(1, WithMaxAttempts(200)).Generate(pools, models.PolicySumRange, Constraints{})
	assert.ErrorIs(t, err, models.ErrPolicyUnsatisfiable)
}

func TestGenerateBatchUniqueness(t *testing.T) {
	pools := testPools()
	for _, policy := range models.AllPolicies() {
		batch, err := New(31).GenerateBatch(pools, policy, Constraints{}, 8)
		require.NoError(t, err, "policy %s", policy.Code())
		require.Len(t, batch, 8)
		seen := map[models.Combination]struct{}{}
		for _, c := range batch {
			_, dup := seen[c]
			assert.False(t, dup, "duplicate %v in %s batch", c, policy.Code())
			seen[c] = struct{}{}
		}
	}
}

func TestGenerateBatchExhaustsDistinctCombinations(t *testing.T) {
	// hot pool of exactly six numbers admits a single Random combination
	pools := models.Pools{Window: 5, Hot: []int{1, 5, 12, 20, 33, 41}, Cold: []int{2, 3}}
	_, err := New(1, WithMaxAttempts(50)).GenerateBatch(pools, models.PolicyRandom, Constraints{}, 2)
	assert.ErrorIs(t, err, models.ErrPolicyUnsatisfiable)
}

func TestGenerateBatchInvalidSize(t *testing.T) {
	_, err := New(1).GenerateBatch(testPools(), models.PolicyRandom, Constraints{}, 0)
	assert.ErrorIs(t, err, models.ErrInvalidParameters)
}

func TestObserverReceivesAttempts(t *testing.T) {
	total := 0
	g := New(19, WithObserver(func(p models.Policy, attempts int) { total += attempts }))
	_, err := g.Generate(testPools(), models.PolicyAIPrecision, Constraints{})
	require.NoError(t, err)
	assert.Positive(t, total)
}

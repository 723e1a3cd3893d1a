package predict

import (
	"fmt"
	"math/rand"
	"time"

	"lottopick/internal/domain/models"
	"lottopick/internal/services/stats"
)

// DefaultMaxAttempts bounds rejection sampling per combination.
const DefaultMaxAttempts = 10000

// OverfitGuard secondary screen, carried over from the mixed-pool strategy:
// the composed ticket must land in a wide sum band and hold no 3-run.
const (
	overfitSumMin = 80
	overfitSumMax = 200
)

// AIPrecision / SumRange acceptance band.
const (
	sumRangeMin = 100
	sumRangeMax = 170
)

// Last-digit sum acceptance band for AIPrecision.
const (
	lastDigitSumMin = 15
	lastDigitSumMax = 35
)

// maxSectionShare is the largest number of picks one ten-range section may
// hold under PatternSpread.
const maxSectionShare = 4

// Constraints carries per-request policy parameters.
type Constraints struct {
	// HotSplit selects the OverfitGuard composition: HotSplit hot numbers
	// plus 6-HotSplit cold ones. Valid values are 4 and 5; zero means 4.
	HotSplit int
}

// Observer receives the attempt count consumed by each generated combination.
type Observer func(policy models.Policy, attempts int)

// Option configures a Generator.
type Option func(*Generator)

// WithMaxAttempts overrides the rejection sampling budget.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithObserver registers an attempts observer.
func WithObserver(f Observer) Option {
	return func(g *Generator) { g.observe = f }
}

// Generator produces combinations under the seven selection policies.
// Deterministic given a seed; not safe for concurrent use (each request
// builds its own).
type Generator struct {
	rng         *rand.Rand
	maxAttempts int
	observe     Observer
}

// New creates a seeded generator. A zero seed falls back to the wall clock.
func New(seed int64, opts ...Option) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Generator{
		rng:         rand.New(rand.NewSource(seed)),
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces one combination satisfying the policy, or fails with
// ErrInvalidParameters (pools structurally too small) or
// ErrPolicyUnsatisfiable (rejection budget exhausted).
func (g *Generator) Generate(pools models.Pools, policy models.Policy, cons Constraints) (models.Combination, error) {
	c, attempts, err := g.generate(pools, policy, cons)
	if g.observe != nil && attempts > 0 {
		g.observe(policy, attempts)
	}
	if err != nil {
		return models.Combination{}, err
	}
	return c, nil
}

// GenerateBatch produces n combinations for the policy with no duplicates
// within the batch. Duplicate candidates count against the same attempt
// budget as predicate rejections.
func (g *Generator) GenerateBatch(pools models.Pools, policy models.Policy, cons Constraints, n int) ([]models.Combination, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: batch size must be >= 1, got %d", models.ErrInvalidParameters, n)
	}

	out := make([]models.Combination, 0, n)
	seen := make(map[models.Combination]struct{}, n)
	for len(out) < n {
		var c models.Combination
		found := false
		for attempt := 0; attempt < g.maxAttempts; attempt++ {
			cand, attempts, err := g.generate(pools, policy, cons)
			if g.observe != nil && attempts > 0 {
				g.observe(policy, attempts)
			}
			if err != nil {
				return nil, err
			}
			if _, dup := seen[cand]; dup {
				continue
			}
			c, found = cand, true
			break
		}
		if !found {
			return nil, fmt.Errorf("%w: no more distinct combinations for policy %s after %d attempts",
				models.ErrPolicyUnsatisfiable, policy.Code(), g.maxAttempts)
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}

func (g *Generator) generate(pools models.Pools, policy models.Policy, cons Constraints) (models.Combination, int, error) {
	if policy == models.PolicyOverfitGuard {
		return g.generateOverfitGuard(pools, cons)
	}
	if policy == models.PolicyWeighted {
		return g.generateWeighted(pools)
	}
	if len(pools.Hot) < models.PickCount {
		return models.Combination{}, 0, fmt.Errorf("%w: hot pool holds %d numbers, need %d",
			models.ErrInvalidParameters, len(pools.Hot), models.PickCount)
	}

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		cand, err := models.NewCombination(sampleUniform(g.rng, pools.Hot, models.PickCount))
		if err != nil {
			return models.Combination{}, attempt, err
		}
		if policy == models.PolicyRandom {
			return cand, attempt, nil
		}
		ind, err := stats.ComputeIndicators(cand)
		if err != nil {
			return models.Combination{}, attempt, err
		}
		if accepts(policy, ind) {
			return cand, attempt, nil
		}
	}
	return models.Combination{}, g.maxAttempts, budgetExhausted(policy, g.maxAttempts)
}

func (g *Generator) generateWeighted(pools models.Pools) (models.Combination, int, error) {
	universe := pools.Universe()
	weights := make([]int, len(universe))
	for i, n := range universe {
		weights[i] = pools.Freq.Count(n)
	}
	picked, err := sampleWeighted(g.rng, universe, weights, models.PickCount)
	if err != nil {
		return models.Combination{}, 1, err
	}
	c, err := models.NewCombination(picked)
	return c, 1, err
}

func (g *Generator) generateOverfitGuard(pools models.Pools, cons Constraints) (models.Combination, int, error) {
	hotSplit := cons.HotSplit
	if hotSplit == 0 {
		hotSplit = 4
	}
	if hotSplit != 4 && hotSplit != 5 {
		return models.Combination{}, 0, fmt.Errorf("%w: hot split must be 4 or 5, got %d", models.ErrInvalidParameters, hotSplit)
	}
	coldSplit := models.PickCount - hotSplit
	if len(pools.Hot) < hotSplit {
		return models.Combination{}, 0, fmt.Errorf("%w: hot pool holds %d numbers, need %d",
			models.ErrInvalidParameters, len(pools.Hot), hotSplit)
	}
	if len(pools.Cold) < coldSplit {
		return models.Combination{}, 0, fmt.Errorf("%w: cold pool holds %d numbers, need %d",
			models.ErrInvalidParameters, len(pools.Cold), coldSplit)
	}

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		nums := sampleUniform(g.rng, pools.Hot, hotSplit)
		nums = append(nums, sampleUniform(g.rng, pools.Cold, coldSplit)...)
		cand, err := models.NewCombination(nums)
		if err != nil {
			return models.Combination{}, attempt, err
		}
		ind, err := stats.ComputeIndicators(cand)
		if err != nil {
			return models.Combination{}, attempt, err
		}
		if ind.Sum < overfitSumMin || ind.Sum > overfitSumMax {
			continue
		}
		if ind.TripleRun {
			continue
		}
		return cand, attempt, nil
	}
	return models.Combination{}, g.maxAttempts, budgetExhausted(models.PolicyOverfitGuard, g.maxAttempts)
}

// accepts evaluates the rejection predicate for the compound policies.
func accepts(policy models.Policy, ind models.IndicatorSet) bool {
	switch policy {
	case models.PolicyBalance:
		return ind.OddCount >= 2 && ind.OddCount <= 4
	case models.PolicySumRange:
		return ind.Sum >= sumRangeMin && ind.Sum <= sumRangeMax
	case models.PolicyPatternSpread:
		return ind.MaxSection() <= maxSectionShare && !ind.TripleRun
	case models.PolicyAIPrecision:
		return ind.Sum >= sumRangeMin && ind.Sum <= sumRangeMax &&
			ind.OddCount >= 2 && ind.OddCount <= 4 &&
			ind.LowCount >= 2 && ind.LowCount <= 4 &&
			ind.ACValue >= 7 &&
			ind.LastDigitSum >= lastDigitSumMin && ind.LastDigitSum <= lastDigitSumMax &&
			!ind.LastDigitTriple &&
			!ind.TripleRun
	default:
		return true
	}
}

func budgetExhausted(policy models.Policy, attempts int) error {
	return fmt.Errorf("%w: policy %s rejected %d candidates", models.ErrPolicyUnsatisfiable, policy.Code(), attempts)
}

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lottopick/internal/domain/models"
)

// fixedHistory builds a deterministic newest-first history of n draws.
func fixedHistory(n int) []models.Draw {
	draws := make([]models.Draw, 0, n)
	for i := 0; i < n; i++ {
		var nums [6]int
		for j := 0; j < 6; j++ {
			nums[j] = (i*7+j*5)%45 + 1
		}
		// regenerate on collisions within the draw
		used := map[int]bool{}
		k := 0
		for j := 0; j < 6; j++ {
			v := nums[j]
			for used[v] {
				v = v%45 + 1
			}
			used[v] = true
			nums[k] = v
			k++
		}
		draws = append(draws, models.Draw{Round: n - i, Numbers: nums})
	}
	return draws
}

func TestFrequenciesSumInvariant(t *testing.T) {
	history := fixedHistory(120)
	for _, window := range []int{1, 30, 50, 100, 120} {
		freq, err := Frequencies(history, window)
		require.NoError(t, err)
		assert.Equal(t, 6*window, freq.Total(), "window %d", window)
	}
}

func TestFrequenciesInsufficientHistory(t *testing.T) {
	history := fixedHistory(10)
	_, err := Frequencies(history, 11)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInsufficientHistory)
}

func TestFrequenciesInvalidWindow(t *testing.T) {
	_, err := Frequencies(fixedHistory(10), 0)
	assert.ErrorIs(t, err, models.ErrInvalidParameters)
}

func TestClassifyPoolsDisjoint(t *testing.T) {
	history := fixedHistory(100)
	tests := []struct {
		name     string
		hot, cold int
	}{
		{"default split", 25, 15},
		{"minimal pools", 1, 1},
		{"full universe", 30, 15},
		{"hot heavy", 40, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pools, err := Classify(history, 50, tc.hot, tc.cold)
			require.NoError(t, err)
			assert.Len(t, pools.Hot, tc.hot)
			assert.Len(t, pools.Cold, tc.cold)
			for _, n := range pools.Cold {
				assert.False(t, pools.IsHot(n), "number %d in both pools", n)
			}
		})
	}
}

func TestClassifyDeterministicOrdering(t *testing.T) {
	history := fixedHistory(60)
	a, err := Classify(history, 50, 25, 15)
	require.NoError(t, err)
	b, err := Classify(history, 50, 25, 15)
	require.NoError(t, err)
	assert.Equal(t, a.Hot, b.Hot)
	assert.Equal(t, a.Cold, b.Cold)

	// hot ranking: count descending, ties ascending number
	for i := 1; i < len(a.Hot); i++ {
		prev, cur := a.Hot[i-1], a.Hot[i]
		if a.Freq[prev] == a.Freq[cur] {
			assert.Less(t, prev, cur)
		} else {
			assert.Greater(t, a.Freq[prev], a.Freq[cur])
		}
	}
	// cold ranking: count ascending, ties ascending number
	for i := 1; i < len(a.Cold); i++ {
		prev, cur := a.Cold[i-1], a.Cold[i]
		if a.Freq[prev] == a.Freq[cur] {
			assert.Less(t, prev, cur)
		} else {
			assert.Less(t, a.Freq[prev], a.Freq[cur])
		}
	}
}

func TestClassifyTiesStayDisjoint(t *testing.T) {
	// A single draw leaves 39 numbers tied at count zero; the pools must
	// still not overlap.
	history := []models.Draw{{Round: 1, Numbers: [6]int{1, 2, 3, 4, 5, 6}}}
	pools, err := Classify(history, 1, 20, 20)
	require.NoError(t, err)
	for _, n := range pools.Cold {
		assert.False(t, pools.IsHot(n))
	}
	// the six drawn numbers are the hottest
	for _, n := range []int{1, 2, 3, 4, 5, 6} {
		assert.True(t, pools.IsHot(n))
	}
}

func TestClassifyParameterErrors(t *testing.T) {
	history := fixedHistory(50)
	tests := []struct {
		name                   string
		window, hot, cold      int
		wantErr                error
	}{
		{"window too large", 51, 25, 15, models.ErrInsufficientHistory},
		{"hot+cold over universe", 50, 30, 16, models.ErrInvalidParameters},
		{"zero hot", 50, 0, 15, models.ErrInvalidParameters},
		{"zero cold", 50, 25, 0, models.ErrInvalidParameters},
		{"zero window", 0, 25, 15, models.ErrInvalidParameters},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Classify(history, tc.window, tc.hot, tc.cold)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

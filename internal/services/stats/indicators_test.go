package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lottopick/internal/domain/models"
)

func TestACValue(t *testing.T) {
	tests := []struct {
		name string
		nums models.Combination
		want int
	}{
		{"arithmetic progression step 1", models.Combination{1, 2, 3, 4, 5, 6}, 0},
		{"arithmetic progression step 8", models.Combination{1, 9, 17, 25, 33, 41}, 0},
		// pairwise diffs of 4,5,12,23,34,45:
		// {1,7,8,11,18,19,22,29,30,33,40,41} -> 12 distinct -> AC 7
		{"dispersed", models.Combination{4, 5, 12, 23, 34, 45}, 7},
		// diffs of 1,2,4,8,16,32 are all distinct (15) -> AC 10
		{"maximal", models.Combination{1, 2, 4, 8, 16, 32}, 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ind, err := ComputeIndicators(tc.nums)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ind.ACValue)
		})
	}
}

func TestComputeIndicatorsOrderIndependent(t *testing.T) {
	base := models.Combination{7, 14, 23, 31, 38, 45}
	perms := []models.Combination{
		{45, 38, 31, 23, 14, 7},
		{23, 7, 45, 14, 38, 31},
		{14, 45, 7, 38, 23, 31},
	}
	want, err := ComputeIndicators(base)
	require.NoError(t, err)
	for _, p := range perms {
		got, err := ComputeIndicators(p)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestComputeIndicatorsFields(t *testing.T) {
	ind, err := ComputeIndicators(models.Combination{3, 10, 22, 23, 31, 44})
	require.NoError(t, err)
	assert.Equal(t, 133, ind.Sum)
	assert.Equal(t, 3, ind.OddCount)
	assert.Equal(t, 3, ind.EvenCount)
	assert.Equal(t, 3, ind.LowCount, "22 is low, 23 is high")
	assert.Equal(t, 3, ind.HighCount)
	assert.Equal(t, 3+0+2+3+1+4, ind.LastDigitSum)
	assert.False(t, ind.TripleRun)
	assert.Equal(t, [5]int{2, 0, 2, 1, 1}, ind.Sections)
	assert.Equal(t, "3:3", ind.OddEven())
	assert.Equal(t, "3:3", ind.LowHigh())
}

func TestTripleRunDetection(t *testing.T) {
	tests := []struct {
		name string
		nums models.Combination
		want bool
	}{
		{"run at start", models.Combination{5, 6, 7, 20, 30, 40}, true},
		{"run at end", models.Combination{1, 10, 20, 43, 44, 45}, true},
		{"run split by order", models.Combination{44, 2, 43, 20, 45, 10}, true},
		{"pairs only", models.Combination{1, 2, 10, 11, 20, 21}, false},
		{"no neighbors", models.Combination{1, 8, 15, 22, 29, 36}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ind, err := ComputeIndicators(tc.nums)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ind.TripleRun)
		})
	}
}

func TestLastDigitTriple(t *testing.T) {
	ind, err := ComputeIndicators(models.Combination{3, 13, 23, 5, 16, 27})
	require.NoError(t, err)
	assert.True(t, ind.LastDigitTriple)

	ind, err = ComputeIndicators(models.Combination{3, 13, 24, 5, 16, 27})
	require.NoError(t, err)
	assert.False(t, ind.LastDigitTriple)
}

func TestComputeIndicatorsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		nums models.Combination
	}{
		{"duplicate", models.Combination{1, 1, 2, 3, 4, 5}},
		{"zero", models.Combination{0, 2, 3, 4, 5, 6}},
		{"out of range", models.Combination{1, 2, 3, 4, 5, 46}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeIndicators(tc.nums)
			assert.ErrorIs(t, err, models.ErrInvalidCombination)
		})
	}
}

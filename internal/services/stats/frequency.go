package stats

import (
	"fmt"
	"sort"

	"lottopick/internal/domain/models"
)

// Frequencies tallies number occurrences over the most recent `window` draws.
// History is newest-first; history[:window] is the trailing window.
func Frequencies(history []models.Draw, window int) (models.FrequencyTable, error) {
	var t models.FrequencyTable
	if window < 1 {
		return t, fmt.Errorf("%w: window must be >= 1, got %d", models.ErrInvalidParameters, window)
	}
	if window > len(history) {
		return t, fmt.Errorf("%w: window %d exceeds %d available draws", models.ErrInsufficientHistory, window, len(history))
	}
	for _, d := range history[:window] {
		for _, n := range d.Numbers {
			t[n]++
		}
	}
	return t, nil
}

// Classify splits the 45-number universe into hot and cold pools for the
// given trailing window. Hot is the top hotCount by count; Cold is the bottom
// coldCount. Ranking is count descending with ties broken by ascending
// number, so the result is fully deterministic; cold membership is taken from
// the bottom of that same ranking (which keeps the pools disjoint even when
// counts tie) and is presented count ascending, ties ascending.
func Classify(history []models.Draw, window, hotCount, coldCount int) (models.Pools, error) {
	switch {
	case hotCount < 1:
		return models.Pools{}, fmt.Errorf("%w: hot count must be >= 1, got %d", models.ErrInvalidParameters, hotCount)
	case coldCount < 1:
		return models.Pools{}, fmt.Errorf("%w: cold count must be >= 1, got %d", models.ErrInvalidParameters, coldCount)
	case hotCount+coldCount > models.NumberMax:
		return models.Pools{}, fmt.Errorf("%w: hot+cold counts %d exceed %d", models.ErrInvalidParameters, hotCount+coldCount, models.NumberMax)
	}

	freq, err := Frequencies(history, window)
	if err != nil {
		return models.Pools{}, err
	}

	ranked := make([]int, 0, models.NumberMax)
	for n := models.NumberMin; n <= models.NumberMax; n++ {
		ranked = append(ranked, n)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if freq[a] != freq[b] {
			return freq[a] > freq[b]
		}
		return a < b
	})

	hot := append([]int(nil), ranked[:hotCount]...)
	cold := append([]int(nil), ranked[len(ranked)-coldCount:]...)
	sort.Slice(cold, func(i, j int) bool {
		a, b := cold[i], cold[j]
		if freq[a] != freq[b] {
			return freq[a] < freq[b]
		}
		return a < b
	})

	return models.Pools{Window: window, Hot: hot, Cold: cold, Freq: freq}, nil
}

package models

// FrequencyTable maps number (1..45) to its occurrence count within a window.
// Index 0 is unused. For a window of W draws the counts sum to 6*W.
type FrequencyTable [NumberMax + 1]int

// Count returns the occurrence count for n, or 0 for out-of-range input.
func (t FrequencyTable) Count(n int) int {
	if n < NumberMin || n > NumberMax {
		return 0
	}
	return t[n]
}

// Total returns the sum of all counts.
func (t FrequencyTable) Total() int {
	sum := 0
	for n := NumberMin; n <= NumberMax; n++ {
		sum += t[n]
	}
	return sum
}

// Pools is the hot/cold classification for one trailing window.
// Hot holds the top-K numbers by count (count desc, ties by ascending
// number); Cold holds the bottom-K, presented count asc, ties ascending.
// Hot and Cold are always disjoint.
type Pools struct {
	Window int            `json:"window"`
	Hot    []int          `json:"hot"`
	Cold   []int          `json:"cold"`
	Freq   FrequencyTable `json:"freq"`
}

// IsHot reports whether n belongs to the hot pool.
func (p Pools) IsHot(n int) bool { return containsInt(p.Hot, n) }

// IsCold reports whether n belongs to the cold pool.
func (p Pools) IsCold(n int) bool { return containsInt(p.Cold, n) }

// Universe returns Hot ∪ Cold in ascending number order.
func (p Pools) Universe() []int {
	var mask [NumberMax + 1]bool
	for _, n := range p.Hot {
		mask[n] = true
	}
	for _, n := range p.Cold {
		mask[n] = true
	}
	out := make([]int, 0, len(p.Hot)+len(p.Cold))
	for n := NumberMin; n <= NumberMax; n++ {
		if mask[n] {
			out = append(out, n)
		}
	}
	return out
}

func containsInt(xs []int, n int) bool {
	for _, v := range xs {
		if v == n {
			return true
		}
	}
	return false
}

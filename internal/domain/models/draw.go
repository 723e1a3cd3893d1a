package models

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// NumberMin and NumberMax bound the 6/45 number universe.
	NumberMin = 1
	NumberMax = 45

	// PickCount is the number of balls per draw.
	PickCount = 6

	// HighThreshold splits the universe into low (<=22) and high (>=23).
	HighThreshold = 23
)

// Draw is one recorded winning combination. Immutable once loaded.
type Draw struct {
	Round   int    `json:"round"`
	Date    string `json:"date,omitempty"`
	Numbers [6]int `json:"numbers"`
	Bonus   int    `json:"bonus,omitempty"`
}

// Combination is exactly 6 distinct numbers in [1,45], sorted ascending.
// The zero value is not valid; build with NewCombination or validate with Valid.
type Combination [6]int

// NewCombination validates and sorts the given numbers.
func NewCombination(nums []int) (Combination, error) {
	var c Combination
	if len(nums) != PickCount {
		return c, fmt.Errorf("%w: got %d numbers, want %d", ErrInvalidCombination, len(nums), PickCount)
	}
	copy(c[:], nums)
	sort.Ints(c[:])
	if err := c.Valid(); err != nil {
		return c, err
	}
	return c, nil
}

// Valid reports whether the combination holds 6 distinct numbers in range.
// It does not require sorted order.
func (c Combination) Valid() error {
	var seen [NumberMax + 1]bool
	for _, n := range c {
		if n < NumberMin || n > NumberMax {
			return fmt.Errorf("%w: number %d out of range", ErrInvalidCombination, n)
		}
		if seen[n] {
			return fmt.Errorf("%w: duplicate number %d", ErrInvalidCombination, n)
		}
		seen[n] = true
	}
	return nil
}

// Sorted returns an ascending copy of the combination.
func (c Combination) Sorted() Combination {
	out := c
	sort.Ints(out[:])
	return out
}

// Contains reports whether n is one of the 6 numbers.
func (c Combination) Contains(n int) bool {
	for _, v := range c {
		if v == n {
			return true
		}
	}
	return false
}

func (c Combination) String() string {
	parts := make([]string, 0, PickCount)
	for _, n := range c.Sorted() {
		parts = append(parts, fmt.Sprintf("%d", n))
	}
	return strings.Join(parts, "-")
}

// BallColor returns the display color for a number, by its ten-range.
func BallColor(n int) string {
	switch {
	case n >= 1 && n <= 10:
		return "#FBC400" // yellow
	case n >= 11 && n <= 20:
		return "#69C8F2" // blue
	case n >= 21 && n <= 30:
		return "#FF7272" // red
	case n >= 31 && n <= 40:
		return "#AAAAAA" // gray
	default:
		return "#B0D840" // green
	}
}

// BallColors maps each number of the combination to its display color.
func BallColors(nums []int) []string {
	out := make([]string, len(nums))
	for i, n := range nums {
		out[i] = BallColor(n)
	}
	return out
}

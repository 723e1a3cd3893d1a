package models

import "fmt"

// IndicatorSet holds the derived statistics for one combination.
// All fields are computed; nothing here is stored.
type IndicatorSet struct {
	Sum             int    `json:"sum"`
	OddCount        int    `json:"odd_count"`
	EvenCount       int    `json:"even_count"`
	LowCount        int    `json:"low_count"`
	HighCount       int    `json:"high_count"`
	ACValue         int    `json:"ac_value"`
	LastDigitSum    int    `json:"last_digit_sum"`
	LastDigitTriple bool   `json:"last_digit_triple"`
	TripleRun       bool   `json:"triple_run"`
	Sections        [5]int `json:"sections"`
}

// OddEven formats the odd:even ratio, e.g. "3:3".
func (s IndicatorSet) OddEven() string {
	return fmt.Sprintf("%d:%d", s.OddCount, s.EvenCount)
}

// LowHigh formats the low:high ratio, e.g. "2:4".
func (s IndicatorSet) LowHigh() string {
	return fmt.Sprintf("%d:%d", s.LowCount, s.HighCount)
}

// MaxSection returns the largest per-section count.
func (s IndicatorSet) MaxSection() int {
	m := 0
	for _, v := range s.Sections {
		if v > m {
			m = v
		}
	}
	return m
}

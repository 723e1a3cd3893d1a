package models

import "time"

// Prediction is one generated combination plus its derived statistics and
// pool membership for presentation.
type Prediction struct {
	Policy     string       `json:"policy"`
	Name       string       `json:"name"`
	Numbers    []int        `json:"numbers"`
	Colors     []string     `json:"colors"`
	Sum        int          `json:"sum"`
	OddEven    string       `json:"odd_even"`
	LowHigh    string       `json:"low_high"`
	ACValue    int          `json:"ac_value"`
	LastDigits int          `json:"last_digit_sum"`
	Sections   [5]int       `json:"sections"`
	HotCount   int          `json:"hot_count"`
	ColdCount  int          `json:"cold_count"`
	Indicators IndicatorSet `json:"indicators"`
}

// FrequencyData is chart-ready hot pool frequency data for one window.
type FrequencyData struct {
	Numbers []int    `json:"numbers"`
	Counts  []int    `json:"counts"`
	Colors  []string `json:"colors"`
}

// WindowReport is the full analysis of one trailing window: classification
// plus one prediction per policy.
type WindowReport struct {
	LatestRound  int           `json:"latest_round"`
	Window       int           `json:"window"`
	HotPoolSize  int           `json:"hot_pool_size"`
	ColdPoolSize int           `json:"cold_pool_size"`
	HotPool      []int         `json:"hot_pool"`
	ColdPool     []int         `json:"cold_pool"`
	Predictions  []Prediction  `json:"predictions"`
	Frequency    FrequencyData `json:"frequency_data"`
}

// WindowBatch is one window's batch of combinations for a single policy.
type WindowBatch struct {
	Window       int          `json:"window"`
	HotPool      []int        `json:"hot_pool"`
	ColdPool     []int        `json:"cold_pool"`
	Combinations []Prediction `json:"combinations"`
}

// MultiWindowReport aggregates batches across several windows. Windows are
// reported in request order; the call fails as a whole, so a report never
// holds partial results.
type MultiWindowReport struct {
	LatestRound int           `json:"latest_round"`
	Policy      string        `json:"policy"`
	BatchSize   int           `json:"batch_size"`
	Windows     []WindowBatch `json:"windows"`
}

// RecentDraw is one historical draw with presentation colors.
type RecentDraw struct {
	Round   int      `json:"round"`
	Date    string   `json:"date"`
	Numbers []int    `json:"numbers"`
	Colors  []string `json:"colors"`
}

// DatasetInfo summarizes the loaded draw history.
type DatasetInfo struct {
	LatestRound  int          `json:"latest_round"`
	TotalRecords int          `json:"total_records"`
	Recent       []RecentDraw `json:"recent_numbers"`
}

// PredictionEvent is the audit payload published for each generated
// combination when the Kafka publisher is enabled.
type PredictionEvent struct {
	Policy      string    `json:"policy"`
	Window      int       `json:"window"`
	Numbers     []int     `json:"numbers"`
	Seed        int64     `json:"seed,omitempty"`
	LatestRound int       `json:"latest_round"`
	GeneratedAt time.Time `json:"generated_at"`
}

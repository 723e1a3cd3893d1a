package models

import (
	"fmt"
	"strings"
)

// Policy identifies one of the seven selection strategies. The single-letter
// codes A..G are the stable external identifiers.
type Policy int

const (
	PolicyRandom Policy = iota
	PolicyWeighted
	PolicyBalance
	PolicySumRange
	PolicyPatternSpread
	PolicyAIPrecision
	PolicyOverfitGuard
)

// PolicyInfo is static, human-facing metadata for one policy.
type PolicyInfo struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Strength    string `json:"strength"`
	Icon        string `json:"icon"`
}

var policyInfos = [...]PolicyInfo{
	PolicyRandom: {
		Code:        "A",
		Name:        "Random",
		Description: "Uniform random pick of 6 numbers from the hot pool",
		Strength:    "Unpredictability",
		Icon:        "🎲",
	},
	PolicyWeighted: {
		Code:        "B",
		Name:        "Weighted",
		Description: "Numbers drawn with probability proportional to recent frequency",
		Strength:    "Frequency-based selection",
		Icon:        "📊",
	},
	PolicyBalance: {
		Code:        "C",
		Name:        "Balance",
		Description: "Keeps the odd:even ratio between 2:4 and 4:2",
		Strength:    "Odd/even balance",
		Icon:        "⚖️",
	},
	PolicySumRange: {
		Code:        "D",
		Name:        "SumRange",
		Description: "Restricts the 6-number sum to the 100..170 band",
		Strength:    "Sum statistics",
		Icon:        "🎯",
	},
	PolicyPatternSpread: {
		Code:        "E",
		Name:        "PatternSpread",
		Description: "Avoids section clustering and 3-consecutive runs",
		Strength:    "Even distribution",
		Icon:        "🔀",
	},
	PolicyAIPrecision: {
		Code:        "F",
		Name:        "AIPrecision",
		Description: "Sum, odd/even, high/low, AC value, last digits and run checks all at once",
		Strength:    "Full statistical screen",
		Icon:        "🌟",
	},
	PolicyOverfitGuard: {
		Code:        "G",
		Name:        "OverfitGuard",
		Description: "Mixes hot and cold numbers to hedge against frequency bias",
		Strength:    "Bias hedging",
		Icon:        "🛡️",
	},
}

// AllPolicies returns the seven policies in code order.
func AllPolicies() []Policy {
	return []Policy{
		PolicyRandom, PolicyWeighted, PolicyBalance, PolicySumRange,
		PolicyPatternSpread, PolicyAIPrecision, PolicyOverfitGuard,
	}
}

// Code returns the single-letter policy code.
func (p Policy) Code() string { return p.Info().Code }

func (p Policy) String() string { return p.Info().Name }

// Info returns the static metadata for the policy.
func (p Policy) Info() PolicyInfo {
	if p < PolicyRandom || p > PolicyOverfitGuard {
		return PolicyInfo{Code: "?", Name: "Unknown"}
	}
	return policyInfos[p]
}

// ParsePolicy maps a code letter ("a".."g") or policy name to a Policy.
func ParsePolicy(s string) (Policy, error) {
	v := strings.TrimSpace(s)
	if len(v) == 1 {
		c := strings.ToUpper(v)
		for _, p := range AllPolicies() {
			if p.Code() == c {
				return p, nil
			}
		}
	}
	for _, p := range AllPolicies() {
		if strings.EqualFold(p.Info().Name, v) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown policy %q", ErrInvalidParameters, s)
}

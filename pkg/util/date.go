package util

import "time"

// ParseDrawDate tries the date layouts draw feeds use ("2006-01-02" and
// "2006.01.02"). Returns (t, true) if any worked.
func ParseDrawDate(s string) (time.Time, bool) {
    if s == "" {
        return time.Time{}, false
    }
    if t, err := time.Parse("2006-01-02", s); err == nil {
        return t, true
    }
    if t, err := time.Parse("2006.01.02", s); err == nil {
        return t, true
    }
    return time.Time{}, false
}

// NormalizeDrawDate rewrites a draw date into "2006-01-02" form, or returns
// the input unchanged when it cannot be parsed.
func NormalizeDrawDate(s string) string {
    if t, ok := ParseDrawDate(s); ok {
        return t.Format("2006-01-02")
    }
    return s
}

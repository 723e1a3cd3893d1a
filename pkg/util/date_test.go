package util

import (
    "testing"
    "time"
)

func TestParseDrawDateDashed(t *testing.T) {
    got, ok := ParseDrawDate("2002-12-07")
    if !ok {
        t.Fatalf("expected ok")
    }
    want := time.Date(2002, 12, 7, 0, 0, 0, 0, time.UTC)
    if !got.Equal(want) {
        t.Fatalf("unexpected time %v", got)
    }
}

func TestParseDrawDateDotted(t *testing.T) {
    got, ok := ParseDrawDate("2002.12.07")
    if !ok {
        t.Fatalf("expected ok")
    }
    if got.Format("2006-01-02") != "2002-12-07" {
        t.Fatalf("unexpected time %v", got)
    }
}

func TestParseDrawDateInvalid(t *testing.T) {
    if _, ok := ParseDrawDate(""); ok {
        t.Fatalf("expected not ok for empty")
    }
    if _, ok := ParseDrawDate("07/12/2002"); ok {
        t.Fatalf("expected not ok for slashed")
    }
}

func TestNormalizeDrawDate(t *testing.T) {
    if got := NormalizeDrawDate("2002.12.07"); got != "2002-12-07" {
        t.Fatalf("unexpected %q", got)
    }
    if got := NormalizeDrawDate("garbage"); got != "garbage" {
        t.Fatalf("unexpected %q", got)
    }
}

func TestParseIntDefault(t *testing.T) {
    if got := ParseIntDefault("50", 30); got != 50 {
        t.Fatalf("unexpected %d", got)
    }
    if got := ParseIntDefault("", 30); got != 30 {
        t.Fatalf("unexpected %d", got)
    }
    if got := ParseIntDefault("abc", 30); got != 30 {
        t.Fatalf("unexpected %d", got)
    }
}

func TestParseInt64Default(t *testing.T) {
    if got := ParseInt64Default("42", 0); got != 42 {
        t.Fatalf("unexpected %d", got)
    }
    if got := ParseInt64Default("", 7); got != 7 {
        t.Fatalf("unexpected %d", got)
    }
}

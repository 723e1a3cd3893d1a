package models

import "errors"

// Engine error kinds. All are per-request failures surfaced to the caller;
// none is fatal to the process.
var (
	// ErrInvalidCombination marks malformed 6-number input to indicator
	// computation (wrong count, out of range, duplicates).
	ErrInvalidCombination = errors.New("invalid combination")

	// ErrInsufficientHistory marks a requested window larger than the
	// available draw history.
	ErrInsufficientHistory = errors.New("insufficient history")

	// ErrPolicyUnsatisfiable marks rejection sampling that exhausted its
	// retry budget without finding an acceptable combination.
	ErrPolicyUnsatisfiable = errors.New("policy unsatisfiable")

	// ErrInvalidParameters marks out-of-range engine parameters such as
	// hot/cold counts or batch size.
	ErrInvalidParameters = errors.New("invalid parameters")
)

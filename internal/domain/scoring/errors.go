package scoring

import "errors"

var (
	// ErrIncompleteSession indicates scoring was invoked without three
	// well-formed stage payloads. This is an internal sequencing defect,
	// never a user-facing condition.
	ErrIncompleteSession = errors.New("scoring invoked on incomplete session")
	// ErrInvalidConfig indicates unusable weights or thresholds.
	ErrInvalidConfig = errors.New("invalid scoring config")
)

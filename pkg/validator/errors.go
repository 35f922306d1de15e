package validator

import "errors"

// Configuration errors. They are returned by NewSet and never appear in a Report.
var (
	// ErrInvalidConfig is joined into every rule configuration error.
	ErrInvalidConfig = errors.New("invalid rule configuration")

	// ErrEmptyPath is returned when a rule is bound to a path without keys.
	ErrEmptyPath = errors.New("attribute path must contain at least one key")

	// ErrNilRule is returned when a nil rule is passed to a composition.
	ErrNilRule = errors.New("rule is nil")

	// ErrMissingPattern is returned when a format rule has no pattern.
	ErrMissingPattern = errors.New("format rule requires a pattern")

	// ErrInvalidPattern is returned when a format pattern does not compile.
	ErrInvalidPattern = errors.New("format pattern does not compile")

	// ErrMissingMembers is returned when an inclusion or exclusion rule has no members.
	ErrMissingMembers = errors.New("membership set must not be empty")

	// ErrMissingAccepted is returned when an acceptance rule is given an empty accept set.
	ErrMissingAccepted = errors.New("accept set must not be empty")

	// ErrMissingLength is returned when a length rule has neither an exact length nor a range.
	ErrMissingLength = errors.New("length rule requires an exact length or a range")

	// ErrInvalidRange is returned for negative lengths or a range whose minimum exceeds its maximum.
	ErrInvalidRange = errors.New("invalid length range")

	// ErrConflictingParity is returned when a numericality rule requires both odd and even values.
	ErrConflictingParity = errors.New("value cannot be both odd and even")

	// ErrMissingPredicate is returned when a predicate or condition function is nil.
	ErrMissingPredicate = errors.New("predicate function is nil")

	// ErrMissingMessage is returned when a predicate rule has no failure message.
	ErrMissingMessage = errors.New("predicate rule requires a message")
)

package batch

import "errors"

var (
	ErrNilRule     = errors.New("batch: rule is nil")
	ErrInvalidRule = errors.New("batch: rule is misconfigured")
)

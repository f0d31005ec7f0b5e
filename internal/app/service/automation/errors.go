package automation

import "errors"

var (
	// ErrFeatureDisabled means the merchant's plan does not include the
	// requested capability.
	ErrFeatureDisabled = errors.New("feature disabled")
	// ErrValidation marks a malformed request (missing audience, zero due
	// time and the like).
	ErrValidation = errors.New("invalid request")
	// ErrNotFound marks a missing rule or job.
	ErrNotFound = errors.New("not found")
)

package schedule

import "errors"

var (
	// ErrRuleNotFound is returned when the availability rule does not exist.
	ErrRuleNotFound = errors.New("availability rule not found")

	// ErrAnalystNotFound is returned when a rule references an unknown
	// analyst.
	ErrAnalystNotFound = errors.New("analyst not found")

	// ErrInvalidInput is returned for malformed rule data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for repository failures.
	ErrInternal = errors.New("service: internal error")
)

package schedule

import "errors"

var (
	// ErrRuleNotFound is returned when no availability rule matches.
	ErrRuleNotFound = errors.New("schedule.repository: rule not found")

	// ErrBuildQuery is returned when the SQL builder fails.
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails.
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)

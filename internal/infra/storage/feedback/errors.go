package feedback

import "errors"

var (
	// ErrBuildQuery is returned when the SQL builder fails.
	ErrBuildQuery = errors.New("feedback.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails.
	ErrExecQuery = errors.New("feedback.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("feedback.repository: failed to scan row")
)

package analyst

import "errors"

var (
	// ErrAnalystNotFound is returned when no analyst matches the query.
	ErrAnalystNotFound = errors.New("analyst.repository: analyst not found")

	// ErrBuildQuery is returned when the SQL builder fails.
	ErrBuildQuery = errors.New("analyst.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails.
	ErrExecQuery = errors.New("analyst.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("analyst.repository: failed to scan row")
)

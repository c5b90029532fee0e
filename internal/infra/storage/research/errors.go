package research

import "errors"

var (
	// ErrDocumentNotFound is returned when no document matches the query.
	ErrDocumentNotFound = errors.New("research.repository: document not found")

	// ErrBuildQuery is returned when the SQL builder fails.
	ErrBuildQuery = errors.New("research.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails.
	ErrExecQuery = errors.New("research.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("research.repository: failed to scan row")
)

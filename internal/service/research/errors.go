package research

import "errors"

var (
	// ErrDocumentNotFound is returned when the document does not exist.
	ErrDocumentNotFound = errors.New("research document not found")

	// ErrInvalidInput is returned for malformed document data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for repository failures.
	ErrInternal = errors.New("service: internal error")
)

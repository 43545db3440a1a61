package extract

import "errors"

var (
	// ErrEmptyInput is returned when the raw intake note is empty or
	// whitespace only. No backend call is made.
	ErrEmptyInput = errors.New("extract: empty input")

	// ErrBackendUnavailable is returned when the LLM backend cannot be
	// reached or returns a non-success status.
	ErrBackendUnavailable = errors.New("extract: backend unavailable")

	// ErrMalformedResponse is returned when the backend's answer is not
	// parseable JSON.
	ErrMalformedResponse = errors.New("extract: malformed backend response")

	// ErrSchemaViolation is returned when the backend's JSON parses but
	// does not conform to the expected field set.
	ErrSchemaViolation = errors.New("extract: response violates schema")
)

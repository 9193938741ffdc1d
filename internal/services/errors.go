package services

import "errors"

var (
	// ErrSnapshotsDisabled is returned by snapshot operations when no
	// snapshot store is configured
	ErrSnapshotsDisabled = errors.New("snapshot store is not configured")

	// ErrLintFailed is returned when publishing a document with lint errors
	ErrLintFailed = errors.New("catalog has lint errors")

	// ErrInvalidPayload is returned when a checked payload is not JSON
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrInvalidRequest is returned for malformed service requests
	ErrInvalidRequest = errors.New("invalid request")
)

package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is the only failure reason login ever reports.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnauthorized indicates the principal exists but lacks privilege.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidTransition indicates the target status is not reachable.
	ErrInvalidTransition = errors.New("invalid status transition")
)

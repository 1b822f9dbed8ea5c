package services

import "errors"

// Sentinel errors for the failure taxonomy. Services wrap these with
// context via fmt.Errorf("...: %w", ...); controllers map them to HTTP
// status codes with errors.Is.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
	ErrForbidden      = errors.New("forbidden")
)

package apperrors

import "errors"

// Resource errors
var (
	ErrResourceNotFound = errors.New("resource not found")
)

// Authentication and authorization errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownLoginType   = errors.New("unknown login type")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrPermissionDenied   = errors.New("permission denied")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidConfig    = errors.New("invalid configuration")
)

// Feedback errors
var (
	// ErrAlreadySubmitted is returned when a (student, teacher, semester) row already exists.
	ErrAlreadySubmitted = errors.New("feedback already submitted for this teacher")
)

// Is reports whether err matches target or any of errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnknownSubject     = errors.New("token subject does not resolve to a user")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this identifier or email already exists")
)

// Course and session errors
var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrCourseInactive  = errors.New("course is not active")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionInactive = errors.New("session is not active")
)

// Enrollment errors
var (
	ErrNoCapacity      = errors.New("session has no remaining capacity")
	ErrAlreadyEnrolled = errors.New("user is already enrolled in this session")
	ErrNotEnrolled     = errors.New("user is not enrolled in this session")
)

// Career errors
var (
	ErrCareerNotFound      = errors.New("career not found")
	ErrCareerAlreadyExists = errors.New("career with this name already exists")
)

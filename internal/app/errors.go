package app

import "errors"

// InvalidRequestError is returned when any request params are invalid.
// Maps to http status 400.
type InvalidRequestError string

// Error implements error interface.
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequestError checks if given error is caused by invalid request.
func IsInvalidRequestError(err error) bool {
	var e InvalidRequestError
	return errors.As(err, &e)
}

// NotFoundError is returned when the repository doesn't exist upstream.
// Maps to http status 404.
type NotFoundError string

// Error implements error interface.
func (e NotFoundError) Error() string {
	return string(e)
}

// IsNotFoundError checks if given error is caused by a missing repository.
func IsNotFoundError(err error) bool {
	var e NotFoundError
	return errors.As(err, &e)
}

// EmptyResultError is returned when upstream reports zero contributors.
// Distinct from NotFoundError, but maps to http status 404 as well.
type EmptyResultError string

// Error implements error interface.
func (e EmptyResultError) Error() string {
	return string(e)
}

// IsEmptyResultError checks if given error is caused by an empty contributor list.
func IsEmptyResultError(err error) bool {
	var e EmptyResultError
	return errors.As(err, &e)
}

// RateLimitError is returned when upstream throttles or forbids the call.
// Maps to http status 429.
type RateLimitError string

// Error implements error interface.
func (e RateLimitError) Error() string {
	return string(e)
}

// IsRateLimitError checks if given error is caused by upstream rate limiting.
func IsRateLimitError(err error) bool {
	var e RateLimitError
	return errors.As(err, &e)
}

// AuthError is returned when upstream rejects the configured credential.
// Maps to http status 401.
type AuthError string

// Error implements error interface.
func (e AuthError) Error() string {
	return string(e)
}

// IsAuthError checks if given error is caused by failed upstream authentication.
func IsAuthError(err error) bool {
	var e AuthError
	return errors.As(err, &e)
}

// UpstreamError is returned for any other upstream or transport failure.
// Maps to http status 500.
type UpstreamError string

// Error implements error interface.
func (e UpstreamError) Error() string {
	return string(e)
}

// IsUpstreamError checks if given error is caused by an unclassified upstream failure.
func IsUpstreamError(err error) bool {
	var e UpstreamError
	return errors.As(err, &e)
}

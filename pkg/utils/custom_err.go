package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrTripNotFound        = errors.New("trip not found")
	ErrDatabaseError       = errors.New("database error")
	ErrCacheMiss           = errors.New("cache miss")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrProviderFailure     = errors.New("provider returned an error")
	ErrAllProvidersFailed  = errors.New("all providers failed")
	ErrAlreadyProcessing   = errors.New("trip is already being processed")
)

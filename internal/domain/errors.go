package domain

import "errors"

var (
	// ErrDataUnavailable indicates the upstream has no data for a symbol
	ErrDataUnavailable = errors.New("data unavailable")
	// ErrSourceUnavailable indicates an entire upstream feed is unreachable
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrMalformedArguments indicates the model's function call had unparsable arguments
	ErrMalformedArguments = errors.New("malformed function arguments")
	// ErrNotConfigured indicates no company info document exists
	ErrNotConfigured = errors.New("company info not configured")
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidAction indicates an unknown feedback action
	ErrInvalidAction = errors.New("invalid action")
)

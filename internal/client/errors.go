package client

import (
	"errors"
	"fmt"
)

var (
	// ErrReauthRequired means the session can no longer be refreshed and the
	// user has to log in again.
	ErrReauthRequired = errors.New("re-authentication required")
	ErrUnauthorized   = errors.New("unauthorized")
)

// APIError is a non-2xx response decoded from {"message": ...}.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == 401
}

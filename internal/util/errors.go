package util

import "errors"

var (
	ErrStoreUnavailable   = errors.New("store unavailable")
	ErrNotFound           = errors.New("not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrMissingCredentials = errors.New("Email and password required")
	ErrInvalidPeriod      = errors.New("period must be one of daily, weekly, monthly")
)

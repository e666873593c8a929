package token

import "errors"

var (
	ErrEmptySecret  = errors.New("token secret is not configured")
	ErrInvalidToken = errors.New("invalid or expired token")
)

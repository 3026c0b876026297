package auth

import "errors"

var (
	ErrAuthenticationFailed = errors.New("auth: authentication failed")
	ErrProfileUnavailable   = errors.New("auth: failed to get user info")
)

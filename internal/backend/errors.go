package backend

import "errors"

var (
	ErrNotFound     = errors.New("backend: not found")
	ErrUnauthorized = errors.New("backend: unauthorized")
	ErrInternal     = errors.New("backend: internal error")
)

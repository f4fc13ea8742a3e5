package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyPassword      = errors.New("empty password")
	ErrEmptyAvatar        = errors.New("empty avatar")
)

package service

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrInvalidCredentials is returned for an unknown username and for
	// a wrong password alike. The caller cannot tell which it was.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternalServer     = errors.New("internal server error")
)

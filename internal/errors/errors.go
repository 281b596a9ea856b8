package errors

import (
	"errors"
)

var (
	ErrMissingFields      = errors.New("all required fields must be filled")
	ErrPasswordMismatch   = errors.New("password and confirmation do not match")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrInvalidOTP         = errors.New("the otp is not valid")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrMissingToken       = errors.New("token missing")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("insufficient role for this route")
)

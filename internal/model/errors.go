package model

import "errors"

var (
	// ErrNotFound is returned when no user exists under the requested name.
	ErrNotFound = errors.New("user not found")
	// ErrUserExists is returned when creating a user whose name is taken.
	ErrUserExists = errors.New("user already exists")
	// ErrAlreadyVerified is returned when verifying a verified user again.
	ErrAlreadyVerified = errors.New("user already verified")
	// ErrNotVerified is returned by operations requiring a verified user.
	ErrNotVerified = errors.New("user not verified")
	// ErrWrongPassword is returned when the supplied old password does not
	// match the stored one.
	ErrWrongPassword = errors.New("wrong password")
)

package auth

import "errors"

var (
	// ErrEmailTaken is returned when the email is already registered
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidCredentials is returned when email/password do not match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when the user does not exist
	ErrUserNotFound = errors.New("user not found")
)

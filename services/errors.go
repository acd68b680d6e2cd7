package services

import "errors"

var (
	// ErrQuestionNotFound is returned when a submitted question id is unknown.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrUserNotFound is returned when a token references a deleted user.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned on registration with an existing email.
	ErrEmailTaken = errors.New("user already exists")
	// ErrUsernameTaken is returned on registration with an existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials is returned on login with a bad email or password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

package usecase

import "errors"

var (
	// ErrUsuarioExists is returned when the email or username is already taken.
	ErrUsuarioExists = errors.New("usuario already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken is returned for expired, malformed or forged tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
)

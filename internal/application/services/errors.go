package services

import "errors"

var (
	// ErrIdentityNotResolved means the authenticated username has no
	// stored user behind it. This is never defaulted away.
	ErrIdentityNotResolved = errors.New("caller identity could not be resolved")

	ErrNoteNotFound = errors.New("note not found")

	// ErrNotNoteOwner deliberately says nothing about who the owner is.
	ErrNotNoteOwner = errors.New("caller does not own this note")

	// ErrShareTokenExhausted is returned when every token generation
	// attempt collided with an existing token.
	ErrShareTokenExhausted = errors.New("could not generate a unique share token")

	ErrUsernameTaken        = errors.New("username already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTooManyLoginAttempts = errors.New("too many login attempts, please try again later")
)

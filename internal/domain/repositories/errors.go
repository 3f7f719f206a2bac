package repositories

import "errors"

// ErrDuplicateShareToken is returned when a save would violate the
// storage-level uniqueness constraint on share tokens. Callers retry
// with a fresh token instead of persisting a colliding one.
var ErrDuplicateShareToken = errors.New("share token already in use")

// ErrDuplicateUsername is returned when a user insert would violate
// the uniqueness constraint on usernames.
var ErrDuplicateUsername = errors.New("username already exists")

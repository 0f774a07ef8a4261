package repository

import "errors"

// Sentinel errors shared by all repository implementations.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrUnknownOwner      = errors.New("owner does not exist")
)

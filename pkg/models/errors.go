package models

import "errors"

var (
	// ErrNotFound signals that a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized signals a missing credential or an ownership mismatch.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrPersistence signals a write that affected no rows.
	ErrPersistence = errors.New("no rows affected")
)

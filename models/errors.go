package models

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches the lookup.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a unique field (email, contact number)
	// already belongs to another user.
	ErrDuplicate = errors.New("duplicate record")

	// ErrValidation marks request errors that binding tags cannot express,
	// e.g. either-or field requirements. Reported before any store write.
	ErrValidation = errors.New("validation failed")
)

package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned by stores on a uniqueness violation.
	ErrDuplicateKey = errors.New("duplicate key")
)

package modelcheck

import "errors"

// Package-level errors for validation pipeline setup
var (
	// ErrTranslatorNotFound is returned when the english translator cannot be resolved
	ErrTranslatorNotFound = errors.New("translator not found")

	// ErrLoadingOverrides is returned when a message override file cannot be read or parsed
	ErrLoadingOverrides = errors.New("failed to load message overrides")

	// ErrNilRegistry is returned when an adapter is constructed without a validator registry
	ErrNilRegistry = errors.New("nil validator registry")
)

package storage

import "errors"

// Common client storage errors
var (
	// ErrIdentityNotFound indicates that no keypair has been persisted yet
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrContactNotFound indicates that no contact profile has been cached
	ErrContactNotFound = errors.New("contact profile not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)

package storage

import (
	"context"

	"github.com/sherlockdomains/sherlock-go/internal/models"
)

//go:generate moq -out contact_mock.go . ContactStorage

// ContactStorage defines interface for the locally cached contact profile.
// The cache is a convenience copy of the server-held profile; the server
// remains the source of truth for purchases.
type ContactStorage interface {
	// SaveContact stores the contact profile
	SaveContact(ctx context.Context, contact *models.Contact) error

	// GetContact retrieves the cached contact profile.
	// Returns ErrContactNotFound if no profile has been cached.
	GetContact(ctx context.Context) (*models.Contact, error)

	// DeleteContact removes the cached contact profile
	DeleteContact(ctx context.Context) error
}

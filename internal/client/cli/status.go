package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sherlockdomains/sherlock-go/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Agent Status ===")
	c.io.Println()

	c.io.Printf("API:      %s\n", c.apiClient.BaseURL())
	c.io.Printf("Database: %s\n", c.cfg.DBPath)
	c.io.Println()

	// Локальная идентичность
	identity, err := c.identities.GetIdentity(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrIdentityNotFound) {
			c.io.Println("Identity: none")
			c.io.Println()
			c.io.Println("Run 'sherlock login' to generate a keypair and authenticate.")
			return nil
		}
		return fmt.Errorf("failed to get identity: %w", err)
	}

	c.io.Println("Identity: present")
	c.io.Printf("Public key: %s\n", identity.PublicKey)
	c.io.Printf("Created:    %s\n", time.Unix(identity.CreatedAt, 0).Format(time.RFC3339))
	if identity.Sealed {
		c.io.Println("Private key: sealed (passphrase required)")
	}

	// Локальный контактный профиль
	c.io.Println()
	contact, err := c.contacts.GetContact(ctx)
	switch {
	case errors.Is(err, storage.ErrContactNotFound):
		c.io.Println("Contact profile: not set")
		c.io.Println("Run 'sherlock contact set' before purchasing domains.")
	case err != nil:
		return fmt.Errorf("failed to get contact: %w", err)
	default:
		c.io.Printf("Contact profile: %s %s <%s>\n", contact.FirstName, contact.LastName, contact.Email)
	}

	return nil
}

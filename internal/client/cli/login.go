package cli

import (
	"context"
	"time"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	// Восстанавливаем или генерируем ключевую пару
	kp, err := c.resolveKeypair(ctx)
	if err != nil {
		return err
	}

	c.io.Println("Authenticating...")

	session, err := c.authService.Authenticate(ctx, kp)
	if err != nil {
		return err
	}
	c.session = session

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Public key: %s\n", kp.PublicHex())

	if expiresAt, ok := session.ExpiresAt(); ok {
		c.io.Printf("Access token expires: %s\n", expiresAt.Format(time.RFC3339))
	}

	c.io.Println()
	c.io.Println("Tokens are kept in memory only; each run authenticates again.")

	return nil
}

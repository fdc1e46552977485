package cli

import (
	"context"
	"fmt"
	"net/mail"
)

func (c *Cli) runMe(ctx context.Context) error {
	session, err := c.ensureSession(ctx)
	if err != nil {
		return err
	}

	me, err := c.apiClient.Me(ctx, session.AccessToken())
	if err != nil {
		return fmt.Errorf("failed to get account info: %w", err)
	}

	c.io.Println("=== Account ===")
	c.io.Println()
	c.io.Printf("Public key: %s\n", me.PublicKey)
	if me.Email != "" {
		c.io.Printf("Email:      %s\n", me.Email)
	} else {
		c.io.Println("Email:      not linked")
		c.io.Println()
		c.io.Println("Run 'sherlock claim <email>' to claim this account.")
	}

	return nil
}

func (c *Cli) runClaim(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing email. Usage: sherlock claim <email>")
	}

	email := args[0]
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address: %s", email)
	}

	session, err := c.ensureSession(ctx)
	if err != nil {
		return err
	}

	resp, err := c.apiClient.LinkEmail(ctx, session.AccessToken(), email)
	if err != nil {
		return fmt.Errorf("failed to link email: %w", err)
	}

	c.io.Println("✓ Email linked")
	if resp.Message != "" {
		c.io.Println(resp.Message)
	}

	return nil
}

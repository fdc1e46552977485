package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

func (c *Cli) runDomains(ctx context.Context) error {
	session, err := c.ensureSession(ctx)
	if err != nil {
		return err
	}

	domains, err := c.apiClient.Domains(ctx, session.AccessToken())
	if err != nil {
		return fmt.Errorf("failed to list domains: %w", err)
	}

	c.io.Println("=== Domains ===")
	c.io.Println()

	if len(domains) == 0 {
		c.io.Println("No domains found.")
		c.io.Println()
		c.io.Println("Use 'sherlock search <query>' to find a domain to purchase.")
		return nil
	}

	c.io.Printf("Found %d domain(s):\n", len(domains))
	c.io.Println()

	for _, d := range domains {
		c.io.Printf("- %s\n", d.DomainName)
		c.io.Printf("   ID:     %s\n", d.ID)
		if d.Status != "" {
			c.io.Printf("   Status: %s\n", d.Status)
		}
		if !d.ExpiresAt.IsZero() {
			c.io.Printf("   Expires: %s\n", d.ExpiresAt.Format(time.DateOnly))
		}
		c.io.Printf("   Auto-renew: %t\n", d.AutoRenew)
		if len(d.Nameservers) > 0 {
			c.io.Printf("   Nameservers: %s\n", strings.Join(d.Nameservers, ", "))
		}
		c.io.Println()
	}

	c.io.Println("Use 'sherlock dns list <id>' to manage DNS records.")

	return nil
}

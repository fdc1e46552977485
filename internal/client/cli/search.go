package cli

import (
	"context"
	"fmt"

	"github.com/sherlockdomains/sherlock-go/internal/validation"
)

func (c *Cli) runSearch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing query. Usage: sherlock search <query>")
	}

	query := args[0]
	if err := validation.ValidateSearchQuery(query); err != nil {
		return fmt.Errorf("invalid query: %w", err)
	}

	// Поиск не требует аутентификации
	resp, err := c.apiClient.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	c.io.Printf("=== Search Results for %q ===\n", query)
	c.io.Println()
	c.io.Printf("Search ID: %s\n", resp.SearchID)
	c.io.Println()

	if len(resp.Available) == 0 {
		c.io.Println("No available domains found.")
	} else {
		c.io.Printf("Available (%d):\n", len(resp.Available))
		for _, d := range resp.Available {
			c.io.Printf("  %-30s %s\n", d.Name, formatPrice(d.Price, d.Currency))
		}
	}

	if len(resp.Unavailable) > 0 {
		c.io.Println()
		c.io.Printf("Unavailable (%d):\n", len(resp.Unavailable))
		for _, d := range resp.Unavailable {
			c.io.Printf("  %s\n", d.Name)
		}
	}

	c.io.Println()
	c.io.Println("Use 'sherlock buy <search-id> <domain>' to purchase.")
	c.io.Println("Note: the search id expires; re-run the search if the purchase is rejected.")

	return nil
}

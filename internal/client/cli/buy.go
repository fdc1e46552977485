package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sherlockdomains/sherlock-go/internal/client/purchase"
	"github.com/sherlockdomains/sherlock-go/internal/client/storage"
	"github.com/sherlockdomains/sherlock-go/internal/models"
)

const defaultPaymentMethod = "credit_card"

func (c *Cli) runBuy(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: sherlock buy <search-id> <domain> [method]")
	}

	searchID := args[0]
	domain := args[1]
	method := defaultPaymentMethod
	if len(args) > 2 {
		method = args[2]
	}

	session, err := c.ensureSession(ctx)
	if err != nil {
		return err
	}

	// Берем контакт из локального кеша; при его отсутствии сервис
	// запросит профиль, сохраненный на сервере
	var contact *models.Contact
	cached, err := c.contacts.GetContact(ctx)
	switch {
	case err == nil:
		contact = cached
	case errors.Is(err, storage.ErrContactNotFound):
		contact = nil
	default:
		return fmt.Errorf("failed to read cached contact: %w", err)
	}

	service := purchase.NewService(c.apiClient, session)

	offers, err := service.GetPurchaseOffers(ctx, searchID, domain, contact)
	if err != nil {
		if errors.Is(err, purchase.ErrContactRequired) {
			return fmt.Errorf("contact profile is incomplete. Run 'sherlock contact set' first")
		}
		return err
	}

	c.io.Printf("=== Offers for %s ===\n", domain)
	c.io.Println()
	for _, offer := range offers.Offers {
		title := offer.Title
		if title == "" {
			title = offer.ID
		}
		c.io.Printf("  %-30s %s  [%s]\n",
			title,
			formatPrice(offer.Amount, offer.Currency),
			strings.Join(offer.PaymentMethods, ", "))
	}
	c.io.Println()

	ok, err := c.io.Confirm(fmt.Sprintf("Request payment details via %s?", method))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		c.io.Println("Aborted.")
		return nil
	}

	details, err := service.PaymentDetails(ctx, offers, method)
	if err != nil {
		if errors.Is(err, purchase.ErrPaymentMethodUnavailable) {
			return fmt.Errorf("payment method %q is not offered for this domain", method)
		}
		return err
	}

	c.io.Println()
	c.io.Println("=== Payment Details ===")
	c.io.Println()
	if details.CheckoutURL != "" {
		c.io.Printf("Checkout URL: %s\n", details.CheckoutURL)
	}
	if details.LightningInvoice != "" {
		c.io.Printf("Lightning invoice: %s\n", details.LightningInvoice)
	}
	if !details.ExpiresAt.IsZero() {
		c.io.Printf("Expires: %s\n", details.ExpiresAt.Format(time.RFC3339))
	}
	if details.CheckoutURL == "" && details.LightningInvoice == "" && len(details.Raw) > 0 {
		c.io.Printf("Raw response: %s\n", details.Raw)
	}

	c.io.Println()
	c.io.Println("Complete the payment to finish the registration.")
	c.io.Println("Nothing has been charged yet.")

	return nil
}

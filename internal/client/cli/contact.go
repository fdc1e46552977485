package cli

import (
	"context"
	"fmt"

	"github.com/sherlockdomains/sherlock-go/internal/models"
)

func (c *Cli) runContact(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: sherlock contact <show|set>")
	}

	switch args[0] {
	case "show":
		return c.runContactShow(ctx)
	case "set":
		return c.runContactSet(ctx)
	default:
		return fmt.Errorf("unknown subcommand: %s. Use: show or set", args[0])
	}
}

func (c *Cli) runContactShow(ctx context.Context) error {
	session, err := c.ensureSession(ctx)
	if err != nil {
		return err
	}

	// Сервер - источник истины для профиля
	wire, err := c.apiClient.GetContactInformation(ctx, session.AccessToken())
	if err != nil {
		return fmt.Errorf("failed to get contact information: %w", err)
	}
	contact := models.ContactFromWire(*wire)

	c.io.Println("=== Contact Profile ===")
	c.io.Println()
	c.io.Printf("Name:        %s %s\n", contact.FirstName, contact.LastName)
	c.io.Printf("Email:       %s\n", contact.Email)
	c.io.Printf("Address:     %s\n", contact.Address)
	c.io.Printf("City:        %s\n", contact.City)
	c.io.Printf("State:       %s\n", contact.State)
	c.io.Printf("Postal code: %s\n", contact.PostalCode)
	c.io.Printf("Country:     %s\n", contact.Country)

	return nil
}

func (c *Cli) runContactSet(ctx context.Context) error {
	c.io.Println("=== Set Contact Profile ===")
	c.io.Println()

	contact, err := c.promptContact()
	if err != nil {
		return err
	}

	if !contact.IsValid() {
		return fmt.Errorf("all contact fields are required")
	}

	session, err := c.ensureSession(ctx)
	if err != nil {
		return err
	}

	if _, err := c.apiClient.SetContactInformation(ctx, session.AccessToken(), contact.ToWire()); err != nil {
		return fmt.Errorf("failed to set contact information: %w", err)
	}

	// Обновляем локальный кеш; ошибка кеша не фатальна
	if err := c.contacts.SaveContact(ctx, &contact); err != nil {
		c.io.Printf("Warning: failed to cache contact locally: %v\n", err)
	}

	c.io.Println()
	c.io.Println("✓ Contact profile saved")

	return nil
}

// promptContact интерактивно собирает все поля профиля
func (c *Cli) promptContact() (models.Contact, error) {
	type field struct {
		dst    *string
		prompt string
	}

	var contact models.Contact
	fields := []field{
		{&contact.FirstName, "First name: "},
		{&contact.LastName, "Last name: "},
		{&contact.Email, "Email: "},
		{&contact.Address, "Address: "},
		{&contact.City, "City: "},
		{&contact.State, "State: "},
		{&contact.PostalCode, "Postal code: "},
		{&contact.Country, "Country (ISO code): "},
	}

	for _, f := range fields {
		value, err := c.io.ReadInput(f.prompt)
		if err != nil {
			return models.Contact{}, fmt.Errorf("failed to read input: %w", err)
		}
		*f.dst = value
	}

	return contact, nil
}

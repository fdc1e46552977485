package api

import (
	"context"
	"fmt"
	"net/http"

	pkgapi "github.com/sherlockdomains/sherlock-go/pkg/api"
)

// GetContactInformation возвращает контактный профиль, хранящийся на сервере
func (c *Client) GetContactInformation(ctx context.Context, token string) (*pkgapi.ContactInformation, error) {
	var resp pkgapi.ContactInformation
	if err := c.doRequest(ctx, http.MethodGet, "/api/v0/users/contact-information", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("get contact information failed: %w", err)
	}
	return &resp, nil
}

// SetContactInformation сохраняет контактный профиль на сервере
func (c *Client) SetContactInformation(ctx context.Context, token string, contact pkgapi.ContactInformation) (*pkgapi.SetContactResponse, error) {
	var resp pkgapi.SetContactResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v0/users/contact-information", token, contact, &resp); err != nil {
		return nil, fmt.Errorf("set contact information failed: %w", err)
	}
	return &resp, nil
}

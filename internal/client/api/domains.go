package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	pkgapi "github.com/sherlockdomains/sherlock-go/pkg/api"
)

// Search ищет домены по запросу. Цены возвращаются в центах USD.
// Единственный неаутентифицированный вызов API.
func (c *Client) Search(ctx context.Context, query string) (*pkgapi.SearchResponse, error) {
	var resp pkgapi.SearchResponse
	path := "/api/v0/domains/search?" + url.Values{"query": {query}}.Encode()
	if err := c.doRequest(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	return &resp, nil
}

// Domains возвращает список доменов аутентифицированного агента
func (c *Client) Domains(ctx context.Context, token string) ([]pkgapi.Domain, error) {
	var resp []pkgapi.Domain
	if err := c.doRequest(ctx, http.MethodGet, "/api/v0/domains/domains", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("domains request failed: %w", err)
	}
	return resp, nil
}

// DNSRecords возвращает DNS записи домена
func (c *Client) DNSRecords(ctx context.Context, token, domainID string) (*pkgapi.DNSRecordsResponse, error) {
	var resp pkgapi.DNSRecordsResponse
	path := fmt.Sprintf("/api/v0/domains/%s/dns/records", domainID)
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("dns records request failed: %w", err)
	}
	return &resp, nil
}

// CreateDNSRecords создает новые DNS записи домена
func (c *Client) CreateDNSRecords(ctx context.Context, token, domainID string, records []pkgapi.DNSRecordInput) (*pkgapi.DNSRecordsResponse, error) {
	var resp pkgapi.DNSRecordsResponse
	path := fmt.Sprintf("/api/v0/domains/%s/dns/records", domainID)
	req := pkgapi.DNSRecordsRequest{Records: records}
	if err := c.doRequest(ctx, http.MethodPost, path, token, req, &resp); err != nil {
		return nil, fmt.Errorf("create dns records failed: %w", err)
	}
	return &resp, nil
}

// UpdateDNSRecords обновляет существующие DNS записи домена.
// NOTE: после обновления запись получает новый id.
func (c *Client) UpdateDNSRecords(ctx context.Context, token, domainID string, records []pkgapi.DNSRecordInput) (*pkgapi.DNSRecordsResponse, error) {
	var resp pkgapi.DNSRecordsResponse
	path := fmt.Sprintf("/api/v0/domains/%s/dns/records", domainID)
	req := pkgapi.DNSRecordsRequest{Records: records}
	if err := c.doRequest(ctx, http.MethodPatch, path, token, req, &resp); err != nil {
		return nil, fmt.Errorf("update dns records failed: %w", err)
	}
	return &resp, nil
}

// DeleteDNSRecord удаляет DNS запись домена
func (c *Client) DeleteDNSRecord(ctx context.Context, token, domainID, recordID string) error {
	path := fmt.Sprintf("/api/v0/domains/%s/dns/records/%s", domainID, recordID)
	if err := c.doRequest(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete dns record failed: %w", err)
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	pkgapi "github.com/sherlockdomains/sherlock-go/pkg/api"
)

const defaultTTL = 3600

var supportedRecordTypes = map[string]bool{
	"A":     true,
	"AAAA":  true,
	"CNAME": true,
	"MX":    true,
	"TXT":   true,
	"NS":    true,
	"SRV":   true,
	"CAA":   true,
}

func (c *Cli) runDNS(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: sherlock dns <list|add|update|delete> ...")
	}

	switch args[0] {
	case "list":
		return c.runDNSList(ctx, args[1:])
	case "add":
		return c.runDNSAdd(ctx, args[1:])
	case "update":
		return c.runDNSUpdate(ctx, args[1:])
	case "delete":
		return c.runDNSDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s. Use: list, add, update, or delete", args[0])
	}
}

// parseDomainID проверяет что идентификатор домена является UUID,
// чтобы не отправлять заведомо кривой путь на сервер
func parseDomainID(arg string) (string, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return "", fmt.Errorf("invalid domain id %q: expected UUID", arg)
	}
	return id.String(), nil
}

// parseRecord собирает DNS запись из позиционных аргументов <type> <name> <value> [ttl]
func parseRecord(args []string) (pkgapi.DNSRecordInput, error) {
	if len(args) < 3 {
		return pkgapi.DNSRecordInput{}, fmt.Errorf("missing record fields: expected <type> <name> <value> [ttl]")
	}

	recordType := strings.ToUpper(args[0])
	if !supportedRecordTypes[recordType] {
		return pkgapi.DNSRecordInput{}, fmt.Errorf("unsupported record type: %s", args[0])
	}

	ttl := defaultTTL
	if len(args) > 3 {
		parsed, err := strconv.Atoi(args[3])
		if err != nil || parsed <= 0 {
			return pkgapi.DNSRecordInput{}, fmt.Errorf("invalid ttl: %s", args[3])
		}
		ttl = parsed
	}

	return pkgapi.DNSRecordInput{
		Type:  recordType,
		Name:  args[1],
		Value: args[2],
		TTL:   ttl,
	}, nil
}

func (c *Cli) runDNSList(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing domain id. Usage: sherlock dns list <domain-id>")
	}
	domainID, err := parseDomainID(args[0])
	if err != nil {
		return err
	}

	session, err := c.ensureSession(ctx)
	if err != nil {
		return err
	}

	resp, err := c.apiClient.DNSRecords(ctx, session.AccessToken(), domainID)
	if err != nil {
		return fmt.Errorf("failed to list dns records: %w", err)
	}

	c.io.Println("=== DNS Records ===")
	c.io.Println()

	if len(resp.Records) == 0 {
		c.io.Println("No records found.")
		return nil
	}

	for _, r := range resp.Records {
		c.io.Printf("- %-6s %-25s %s (ttl %d)\n", r.Type, r.Name, r.Value, r.TTL)
		c.io.Printf("   ID: %s\n", r.ID)
	}

	return nil
}

func (c *Cli) runDNSAdd(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("missing arguments. Usage: sherlock dns add <domain-id> <type> <name> <value> [ttl]")
	}
	domainID, err := parseDomainID(args[0])
	if err != nil {
		return err
	}
	record, err := parseRecord(args[1:])
	if err != nil {
		return err
	}

	session, err := c.ensureSession(ctx)
	if err != nil {
		return err
	}

	resp, err := c.apiClient.CreateDNSRecords(ctx, session.AccessToken(), domainID, []pkgapi.DNSRecordInput{record})
	if err != nil {
		return fmt.Errorf("failed to create dns record: %w", err)
	}

	c.io.Println("✓ Record created")
	for _, r := range resp.Records {
		c.io.Printf("   ID: %s\n", r.ID)
	}

	return nil
}

func (c *Cli) runDNSUpdate(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: sherlock dns update <domain-id> <record-id> <type> <name> <value> [ttl]")
	}
	domainID, err := parseDomainID(args[0])
	if err != nil {
		return err
	}
	recordID, err := uuid.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid record id %q: expected UUID", args[1])
	}
	record, err := parseRecord(args[2:])
	if err != nil {
		return err
	}
	record.ID = recordID.String()

	session, err := c.ensureSession(ctx)
	if err != nil {
		return err
	}

	resp, err := c.apiClient.UpdateDNSRecords(ctx, session.AccessToken(), domainID, []pkgapi.DNSRecordInput{record})
	if err != nil {
		return fmt.Errorf("failed to update dns record: %w", err)
	}

	c.io.Println("✓ Record updated")
	// Сервер выдает записям новые id при обновлении
	for _, r := range resp.Records {
		c.io.Printf("   New ID: %s\n", r.ID)
	}

	return nil
}

func (c *Cli) runDNSDelete(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: sherlock dns delete <domain-id> <record-id>")
	}
	domainID, err := parseDomainID(args[0])
	if err != nil {
		return err
	}
	recordID, err := uuid.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid record id %q: expected UUID", args[1])
	}

	session, err := c.ensureSession(ctx)
	if err != nil {
		return err
	}

	if err := c.apiClient.DeleteDNSRecord(ctx, session.AccessToken(), domainID, recordID.String()); err != nil {
		return fmt.Errorf("failed to delete dns record: %w", err)
	}

	c.io.Println("✓ Record deleted")

	return nil
}

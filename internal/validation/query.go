package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// QueryPattern определяет допустимый формат поискового запроса:
// одна метка домена, опционально с TLD ("example", "example.com", "my-domain").
// Поддомены и пробелы не допускаются.
var QueryPattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?(\.[a-zA-Z]{2,})?$`)

const (
	// MaxQueryLen максимальная длина поискового запроса
	MaxQueryLen = 253
)

// ValidateSearchQuery проверяет, что запрос подходит для поиска доменов.
// Допустимо: "example", "example.com", "my-domain".
// Недопустимо: "www.example.com" (поддомен), "this is a search" (пробелы).
func ValidateSearchQuery(q string) error {
	if q == "" {
		return fmt.Errorf("query cannot be empty")
	}

	if len(q) > MaxQueryLen {
		return fmt.Errorf("query must not exceed %d characters", MaxQueryLen)
	}

	if strings.Count(q, ".") > 1 {
		return fmt.Errorf("query must not contain subdomains: %q", q)
	}

	if !QueryPattern.MatchString(q) {
		return fmt.Errorf("query must be a single domain label with an optional TLD: %q", q)
	}

	return nil
}

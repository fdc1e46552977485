package cli

import "fmt"

// formatPrice renders a price in minor units as a human readable amount
func formatPrice(cents int64, currency string) string {
	return fmt.Sprintf("%.2f %s", float64(cents)/100, currency)
}

// Package whatsapp builds wa.me deep links used to hand a submitted order
// over to the restaurant's WhatsApp number. There is no live WhatsApp
// session involved; the customer's own client opens the prefilled chat.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// OrderLine is one line of the order summary embedded in the handoff link.
type OrderLine struct {
	Name     string
	Quantity int
	Price    float64
}

// SanitizeNumber strips everything except digits from a phone number.
// wa.me links take the number in international format without "+" or spaces.
func SanitizeNumber(number string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
}

// HandoffLink builds the wa.me URL for an order. The text is the customer
// facing summary; currency is a display symbol such as "SAR" or "$".
func HandoffLink(number, orderID, customerName, currency string, lines []OrderLine, total float64) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("New order %s\n", orderID))
	if customerName != "" {
		b.WriteString(fmt.Sprintf("Customer: %s\n", customerName))
	}
	for _, line := range lines {
		b.WriteString(fmt.Sprintf("%dx %s - %.2f %s\n", line.Quantity, line.Name, line.Price*float64(line.Quantity), currency))
	}
	b.WriteString(fmt.Sprintf("Total: %.2f %s", total, currency))

	return fmt.Sprintf("https://wa.me/%s?text=%s", SanitizeNumber(number), url.QueryEscape(b.String()))
}

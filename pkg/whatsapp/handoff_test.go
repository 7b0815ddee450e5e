package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeNumber(t *testing.T) {
	assert.Equal(t, "966501234567", SanitizeNumber("+966 50 123-4567"))
	assert.Equal(t, "123", SanitizeNumber("123"))
	assert.Equal(t, "", SanitizeNumber("abc"))
}

func TestHandoffLink(t *testing.T) {
	link := HandoffLink("+966 50 123 4567", "ord-1", "Sara", "SAR", []OrderLine{
		{Name: "Karak Tea", Quantity: 2, Price: 8},
		{Name: "Cheesecake", Quantity: 1, Price: 24.5},
	}, 40.5)

	require.True(t, strings.HasPrefix(link, "https://wa.me/966501234567?text="), link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Contains(t, text, "New order ord-1")
	assert.Contains(t, text, "Customer: Sara")
	assert.Contains(t, text, "2x Karak Tea - 16.00 SAR")
	assert.Contains(t, text, "Total: 40.50 SAR")
}

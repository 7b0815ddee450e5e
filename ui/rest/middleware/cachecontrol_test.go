package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadersForAdmin(t *testing.T) {
	headers := HeadersFor(true, 5*time.Minute)

	assert.Equal(t, "no-store, no-cache, must-revalidate, max-age=0", headers[fiber.HeaderCacheControl])
	assert.Equal(t, "no-cache", headers[fiber.HeaderPragma])
	assert.Equal(t, "0", headers[fiber.HeaderExpires])
}

func TestHeadersForPublicTiers(t *testing.T) {
	tests := []struct {
		tier time.Duration
		want string
	}{
		{time.Minute, "public, s-maxage=60, stale-while-revalidate=120"},
		{5 * time.Minute, "public, s-maxage=300, stale-while-revalidate=600"},
		{time.Hour, "public, s-maxage=3600, stale-while-revalidate=7200"},
		{24 * time.Hour, "public, s-maxage=86400, stale-while-revalidate=172800"},
	}

	for _, tc := range tests {
		headers := HeadersFor(false, tc.tier)
		assert.Equal(t, tc.want, headers[fiber.HeaderCacheControl])
		assert.NotContains(t, headers, fiber.HeaderPragma)
		assert.NotContains(t, headers, fiber.HeaderExpires)
	}
}

func TestCacheHeadersAdminDetection(t *testing.T) {
	tests := []struct {
		name  string
		query string
		admin bool
	}{
		{"no param", "", false},
		{"exact true", "?admin=true", true},
		{"value false", "?admin=false", false},
		{"value 1", "?admin=1", false},
		{"value TRUE", "?admin=TRUE", false},
		{"empty value", "?admin=", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(CacheHeaders(5 * time.Minute))
			app.Get("/menu", func(c *fiber.Ctx) error {
				assert.Equal(t, tc.admin, IsAdmin(c))
				return c.SendString("ok")
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/menu"+tc.query, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			if tc.admin {
				assert.Equal(t, "no-store, no-cache, must-revalidate, max-age=0", resp.Header.Get(fiber.HeaderCacheControl))
				assert.Equal(t, "no-cache", resp.Header.Get(fiber.HeaderPragma))
			} else {
				assert.Equal(t, "public, s-maxage=300, stale-while-revalidate=600", resp.Header.Get(fiber.HeaderCacheControl))
				assert.Empty(t, resp.Header.Get(fiber.HeaderPragma))
			}
		})
	}
}

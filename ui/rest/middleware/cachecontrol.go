package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// LocalAdmin is the ctx.Locals key handlers read to decide whether a request
// bypasses the server cache.
const LocalAdmin = "admin"

// HeadersFor is the cache-header policy. Admin responses must never be held
// by any shared or edge cache: admins act on what they see, so they always
// get the database view. Public responses advertise the entry's TTL tier and
// allow the edge to serve stale while it refreshes in the background.
func HeadersFor(isAdmin bool, tier time.Duration) map[string]string {
	if isAdmin {
		return map[string]string{
			fiber.HeaderCacheControl: "no-store, no-cache, must-revalidate, max-age=0",
			fiber.HeaderPragma:       "no-cache",
			fiber.HeaderExpires:      "0",
		}
	}

	secs := int(tier.Seconds())
	return map[string]string{
		fiber.HeaderCacheControl: fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate=%d", secs, 2*secs),
	}
}

// CacheHeaders applies HeadersFor to every response on the route. Admin is
// signalled by the exact query parameter admin=true; any other value is a
// public read.
func CacheHeaders(tier time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		isAdmin := ctx.Query("admin") == "true"
		ctx.Locals(LocalAdmin, isAdmin)

		for k, v := range HeadersFor(isAdmin, tier) {
			ctx.Set(k, v)
		}

		return ctx.Next()
	}
}

// NoStore marks every response on the route uncacheable, independent of the
// admin query parameter. Mutation routes use it.
func NoStore() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Locals(LocalAdmin, true)

		for k, v := range HeadersFor(true, 0) {
			ctx.Set(k, v)
		}

		return ctx.Next()
	}
}

// IsAdmin reads the flag CacheHeaders stored on the request.
func IsAdmin(ctx *fiber.Ctx) bool {
	isAdmin, _ := ctx.Locals(LocalAdmin).(bool)
	return isAdmin
}

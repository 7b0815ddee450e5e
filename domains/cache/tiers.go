package cache

import (
	"sync/atomic"
	"time"
)

// Runtime values for the two adjustable tiers. The named constants are the
// defaults; CACHE_DEFAULT_TTL / CACHE_IMAGE_TTL and the cache settings admin
// endpoint override them for the life of the process.
var (
	defaultTTL atomic.Int64
	imageTTL   atomic.Int64
)

func init() {
	defaultTTL.Store(int64(TTLFiveMinutes))
	imageTTL.Store(int64(TTLOneDay))
}

// DefaultTTL is the lifetime of menu-data entries (categories, items,
// offers, signature drinks, reviews, ingredients).
func DefaultTTL() time.Duration { return time.Duration(defaultTTL.Load()) }

// ImageTTL is the lifetime of rendered image variants.
func ImageTTL() time.Duration { return time.Duration(imageTTL.Load()) }

// SetTTLs overrides the adjustable tiers. A non-positive value leaves that
// tier unchanged.
func SetTTLs(def, image time.Duration) {
	if def > 0 {
		defaultTTL.Store(int64(def))
	}
	if image > 0 {
		imageTTL.Store(int64(image))
	}
}

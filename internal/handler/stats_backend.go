package handler

import (
	"github.com/nadeem1615/learning-platform/internal/adapter"
	"github.com/nadeem1615/learning-platform/internal/cache"
	"github.com/nadeem1615/learning-platform/internal/config"
	"github.com/nadeem1615/learning-platform/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// IdentityCookieName is the cookie naming the browser session's user. It is
// plain identification, not authentication.
const IdentityCookieName = "user"

const anonymousIdentity = "guest"

// StatsBackend selects the record store and key used for a request's stats
// operations. The cookie backend is scoped to the request itself; the Redis
// backend shares one record per identity across browsers.
type StatsBackend struct {
	cfg   config.StatsConfig
	redis domain.RecordStore
}

// NewStatsBackend creates the per-request record store selector. redis may
// be nil when the configured backend is "cookie".
func NewStatsBackend(cfg config.StatsConfig, redis domain.RecordStore) *StatsBackend {
	return &StatsBackend{cfg: cfg, redis: redis}
}

// For returns the record store and key for this request. Falls back to the
// cookie backend when Redis is configured but unavailable.
func (b *StatsBackend) For(c *fiber.Ctx) (domain.RecordStore, string) {
	if b.cfg.Backend == "redis" && b.redis != nil {
		return b.redis, cache.GenerateCacheKey("stats", "user", Identity(c))
	}
	return adapter.NewCookieRecordStore(c), b.cfg.CookieName
}

// Identity returns the request's identity cookie value, or a shared
// anonymous identity when none is set.
func Identity(c *fiber.Ctx) string {
	if name := c.Cookies(IdentityCookieName); name != "" {
		return name
	}
	return anonymousIdentity
}

package adapter

import (
	"context"
	"net/url"
	"time"

	"github.com/nadeem1615/learning-platform/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// CookieRecordStore implements domain.RecordStore over the cookies of a
// single HTTP request/response pair. Values are URL-encoded on write since
// JSON documents carry characters that are not valid in cookie values.
//
// The store is scoped to one request: Get reads the request cookies, Set
// writes a response cookie. Within the request the store is
// read-your-writes: Get serves the value of an earlier Set instead of the
// stale request cookie, so a sequence of mutations composes. Concurrent
// tabs mutating the same cookie race with last-write-wins semantics; this
// is a documented limitation of the stats design, not something the
// adapter tries to fix.
type CookieRecordStore struct {
	c       *fiber.Ctx
	written map[string]string
}

// NewCookieRecordStore creates a record store bound to the given request context.
func NewCookieRecordStore(c *fiber.Ctx) domain.RecordStore {
	return &CookieRecordStore{c: c, written: make(map[string]string)}
}

// Get returns the value written earlier in this request, falling back to
// the named request cookie, or domain.ErrCacheMiss when neither exists. A
// cookie value that fails to URL-decode is returned raw; the stats layer
// treats unparsable records as corrupted.
func (s *CookieRecordStore) Get(ctx context.Context, key string) (string, error) {
	if value, ok := s.written[key]; ok {
		return value, nil
	}
	raw := s.c.Cookies(key)
	if raw == "" {
		return "", domain.ErrCacheMiss
	}
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return raw, nil
	}
	return decoded, nil
}

// Set writes a response cookie with the given expiry and root path scope,
// and records the value for later Gets in this request.
func (s *CookieRecordStore) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	s.written[key] = value
	s.c.Cookie(&fiber.Cookie{
		Name:     key,
		Value:    url.QueryEscape(value),
		Path:     "/",
		Expires:  time.Now().Add(expiration),
		MaxAge:   int(expiration.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

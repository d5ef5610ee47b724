package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/nadeem1615/learning-platform/internal/domain"
	"github.com/nadeem1615/learning-platform/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recordCookie = "userStats"

func TestCookieRecordStore_Get(t *testing.T) {
	t.Run("DecodesStoredValue", func(t *testing.T) {
		record := `{"xp":2450,"completedQuizzes":[]}`

		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			store := NewCookieRecordStore(c)
			got, err := store.Get(context.Background(), recordCookie)
			require.NoError(t, err)
			assert.Equal(t, record, got)
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: recordCookie, Value: url.QueryEscape(record)})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("MissingCookieIsCacheMiss", func(t *testing.T) {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			store := NewCookieRecordStore(c)
			_, err := store.Get(context.Background(), recordCookie)
			assert.ErrorIs(t, err, domain.ErrCacheMiss)
			return c.SendStatus(fiber.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("ServesValueWrittenInSameRequest", func(t *testing.T) {
		stale := `{"xp":2450}`
		updated := `{"xp":2540}`

		app := fiber.New()
		app.Post("/", func(c *fiber.Ctx) error {
			store := NewCookieRecordStore(c)
			require.NoError(t, store.Set(context.Background(), recordCookie, updated, time.Hour))

			// a later read must observe the write, not the request cookie
			got, err := store.Get(context.Background(), recordCookie)
			require.NoError(t, err)
			assert.Equal(t, updated, got)
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest("POST", "/", nil)
		req.AddCookie(&http.Cookie{Name: recordCookie, Value: url.QueryEscape(stale)})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("WriteVisibleWithoutRequestCookie", func(t *testing.T) {
		record := `{"xp":10}`

		app := fiber.New()
		app.Post("/", func(c *fiber.Ctx) error {
			store := NewCookieRecordStore(c)
			require.NoError(t, store.Set(context.Background(), recordCookie, record, time.Hour))

			got, err := store.Get(context.Background(), recordCookie)
			require.NoError(t, err)
			assert.Equal(t, record, got)
			return c.SendStatus(fiber.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest("POST", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("UndecodableValueReturnedRaw", func(t *testing.T) {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			store := NewCookieRecordStore(c)
			got, err := store.Get(context.Background(), recordCookie)
			require.NoError(t, err)
			assert.Equal(t, "%zz", got)
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: recordCookie, Value: "%zz"})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestCookieRecordStore_Set(t *testing.T) {
	record := `{"xp":2500,"completedQuizzes":[{"id":"23-2"}]}`
	ttl := 30 * 24 * time.Hour

	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		store := NewCookieRecordStore(c)
		require.NoError(t, store.Set(context.Background(), recordCookie, record, ttl))
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var written *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == recordCookie {
			written = cookie
		}
	}
	require.NotNil(t, written, "response cookie should be set")

	decoded, err := url.QueryUnescape(written.Value)
	require.NoError(t, err)
	assert.Equal(t, record, decoded)
	assert.Equal(t, "/", written.Path)
	assert.Equal(t, int(ttl.Seconds()), written.MaxAge)
	assert.True(t, written.HttpOnly)
}

func TestCookieRecordStore_SequentialMutations(t *testing.T) {
	// the completion flow runs AddXP then AddCompletedQuiz against one
	// request's store; the second mutation must observe the first so the
	// XP award survives into the final response cookie
	seeded := `{"xp":2450,"completedQuizzes":[]}`
	svc := service.NewStatsService(time.Hour)

	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		store := NewCookieRecordStore(c)

		newXP, err := svc.AddXP(context.Background(), store, recordCookie, 90)
		require.NoError(t, err)
		assert.Equal(t, 2540, newXP)

		quiz := domain.CompletedQuiz{ID: "23-2", Title: "History Quiz", Questions: 10}
		require.NoError(t, svc.AddCompletedQuiz(context.Background(), store, recordCookie, quiz))
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("POST", "/", nil)
	req.AddCookie(&http.Cookie{Name: recordCookie, Value: url.QueryEscape(seeded)})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var written *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == recordCookie {
			written = cookie
		}
	}
	require.NotNil(t, written, "response cookie should be set")

	decoded, err := url.QueryUnescape(written.Value)
	require.NoError(t, err)

	var record struct {
		XP               int                    `json:"xp"`
		CompletedQuizzes []domain.CompletedQuiz `json:"completedQuizzes"`
	}
	require.NoError(t, json.Unmarshal([]byte(decoded), &record))
	assert.Equal(t, 2540, record.XP)
	require.Len(t, record.CompletedQuizzes, 1)
	assert.Equal(t, "23-2", record.CompletedQuizzes[0].ID)
}

func TestCookieRecordStore_RoundTrip(t *testing.T) {
	// a value written in one request is readable when the browser sends it back
	record := `{"xp":95,"name":"Sam & Max"}`
	ttl := time.Hour

	app := fiber.New()
	app.Post("/write", func(c *fiber.Ctx) error {
		return NewCookieRecordStore(c).Set(context.Background(), recordCookie, record, ttl)
	})
	app.Get("/read", func(c *fiber.Ctx) error {
		got, err := NewCookieRecordStore(c).Get(context.Background(), recordCookie)
		require.NoError(t, err)
		assert.Equal(t, record, got)
		return c.SendStatus(fiber.StatusOK)
	})

	writeResp, err := app.Test(httptest.NewRequest("POST", "/write", nil))
	require.NoError(t, err)

	var written *http.Cookie
	for _, cookie := range writeResp.Cookies() {
		if cookie.Name == recordCookie {
			written = cookie
		}
	}
	require.NotNil(t, written)

	readReq := httptest.NewRequest("GET", "/read", nil)
	readReq.AddCookie(&http.Cookie{Name: recordCookie, Value: written.Value})

	readResp, err := app.Test(readReq)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, readResp.StatusCode)
}

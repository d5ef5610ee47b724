package handler_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nadeem1615/learning-platform/internal/domain"
	"github.com/nadeem1615/learning-platform/internal/dto"
	"github.com/nadeem1615/learning-platform/internal/handler"
	"github.com/nadeem1615/learning-platform/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsTestApp(svc *MockStatsService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	h := handler.NewStatsHandler(svc, cookieStatsBackend(), 30*24*time.Hour)
	app.Get("/api/users/me/stats", h.GetMyStats)
	app.Post("/api/users/me/xp", h.AddXP)
	app.Post("/api/users/me/completed", h.AddCompletedQuiz)
	app.Post("/api/users/me/identity", h.SetIdentity)
	return app
}

func TestStatsHandler_GetMyStats(t *testing.T) {
	mockSvc := &MockStatsService{
		ReadFunc: func(ctx context.Context, records domain.RecordStore, key string) *domain.UserStats {
			assert.Equal(t, "userStats", key)
			assert.NotNil(t, records)
			return domain.DefaultUserStats()
		},
	}
	app := newStatsTestApp(mockSvc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/users/me/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stats dto.UserStatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, "Alex Johnson", stats.Name)
	assert.Equal(t, 2450, stats.XP)
	assert.Len(t, stats.RecentAchievements, 3)
}

func TestStatsHandler_AddXP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockStatsService{
			AddXPFunc: func(ctx context.Context, records domain.RecordStore, key string, delta int) (int, error) {
				assert.Equal(t, 50, delta)
				return 2500, nil
			},
		}
		app := newStatsTestApp(mockSvc)

		resp, err := app.Test(postJSON("/api/users/me/xp", dto.AddXPRequest{Amount: 50}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body dto.AddXPResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.Equal(t, 2500, body.NewXP)
	})

	t.Run("FailureIsStructuredNotTransport", func(t *testing.T) {
		mockSvc := &MockStatsService{
			AddXPFunc: func(ctx context.Context, records domain.RecordStore, key string, delta int) (int, error) {
				return 0, domain.NewStatsNotFoundError()
			},
		}
		app := newStatsTestApp(mockSvc)

		resp, err := app.Test(postJSON("/api/users/me/xp", dto.AddXPRequest{Amount: 50}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body dto.AddXPResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Success)
		assert.NotEmpty(t, body.Error)
	})
}

func TestStatsHandler_AddCompletedQuiz(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockStatsService{
			AddCompletedQuizFunc: func(ctx context.Context, records domain.RecordStore, key string, quiz domain.CompletedQuiz) error {
				assert.Equal(t, "23-2", quiz.ID)
				return nil
			},
		}
		app := newStatsTestApp(mockSvc)

		resp, err := app.Test(postJSON("/api/users/me/completed", domain.CompletedQuiz{ID: "23-2", Title: "History Quiz"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body dto.AddCompletedQuizResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Success)
	})

	t.Run("MissingID", func(t *testing.T) {
		app := newStatsTestApp(&MockStatsService{})

		resp, err := app.Test(postJSON("/api/users/me/completed", domain.CompletedQuiz{}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestStatsHandler_SetIdentity(t *testing.T) {
	t.Run("SetsCookie", func(t *testing.T) {
		app := newStatsTestApp(&MockStatsService{})

		resp, err := app.Test(postJSON("/api/users/me/identity", dto.IdentityRequest{Name: "Sam Carter"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		found := false
		for _, cookie := range resp.Cookies() {
			if cookie.Name == handler.IdentityCookieName {
				found = true
				assert.True(t, strings.Contains(cookie.Value, "Sam") || cookie.Value == "Sam Carter")
				assert.Equal(t, "/", cookie.Path)
			}
		}
		assert.True(t, found, "identity cookie should be set")
	})

	t.Run("MissingName", func(t *testing.T) {
		app := newStatsTestApp(&MockStatsService{})

		resp, err := app.Test(postJSON("/api/users/me/identity", dto.IdentityRequest{}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

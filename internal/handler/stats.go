package handler

import (
	"time"

	"github.com/nadeem1615/learning-platform/internal/domain"
	"github.com/nadeem1615/learning-platform/internal/dto"
	"github.com/nadeem1615/learning-platform/internal/service"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler handles user stats HTTP requests. Mutations report failures
// as structured payloads so the dashboard can degrade instead of erroring.
type StatsHandler struct {
	service service.StatsService
	backend *StatsBackend
	ttl     time.Duration
}

// NewStatsHandler creates a new StatsHandler instance
func NewStatsHandler(service service.StatsService, backend *StatsBackend, ttl time.Duration) *StatsHandler {
	return &StatsHandler{
		service: service,
		backend: backend,
		ttl:     ttl,
	}
}

// GetMyStats handles GET /api/users/me/stats
func (h *StatsHandler) GetMyStats(c *fiber.Ctx) error {
	records, key := h.backend.For(c)
	stats := h.service.Read(c.Context(), records, key)
	return c.JSON(dto.NewUserStatsResponse(stats))
}

// AddXP handles POST /api/users/me/xp
func (h *StatsHandler) AddXP(c *fiber.Ctx) error {
	var req dto.AddXPRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	records, key := h.backend.For(c)
	newXP, err := h.service.AddXP(c.Context(), records, key, req.Amount)
	if err != nil {
		return c.JSON(dto.AddXPResponse{Success: false, Error: err.Error()})
	}
	return c.JSON(dto.AddXPResponse{Success: true, NewXP: newXP})
}

// AddCompletedQuiz handles POST /api/users/me/completed
func (h *StatsHandler) AddCompletedQuiz(c *fiber.Ctx) error {
	var quiz domain.CompletedQuiz
	if err := c.BodyParser(&quiz); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if quiz.ID == "" {
		return domain.NewInvalidInputError("quiz id is required")
	}

	records, key := h.backend.For(c)
	if err := h.service.AddCompletedQuiz(c.Context(), records, key, quiz); err != nil {
		return c.JSON(dto.AddCompletedQuizResponse{Success: false, Error: err.Error()})
	}
	return c.JSON(dto.AddCompletedQuizResponse{Success: true})
}

// SetIdentity handles POST /api/users/me/identity. The identity cookie only
// names the session; it carries no authentication.
func (h *StatsHandler) SetIdentity(c *fiber.Ctx) error {
	var req dto.IdentityRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if req.Name == "" {
		return domain.NewInvalidInputError("name is required")
	}

	c.Cookie(&fiber.Cookie{
		Name:     IdentityCookieName,
		Value:    req.Name,
		Path:     "/",
		Expires:  time.Now().Add(h.ttl),
		MaxAge:   int(h.ttl.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"success": true, "name": req.Name})
}

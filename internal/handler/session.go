package handler

import (
	"github.com/nadeem1615/learning-platform/internal/domain"
	"github.com/nadeem1615/learning-platform/internal/dto"
	"github.com/nadeem1615/learning-platform/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler handles quiz session HTTP requests
type SessionHandler struct {
	service service.SessionService
	stats   *StatsBackend
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(service service.SessionService, stats *StatsBackend) *SessionHandler {
	return &SessionHandler{
		service: service,
		stats:   stats,
	}
}

// Start handles POST /api/sessions
func (h *SessionHandler) Start(c *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if req.QuizID == "" {
		return domain.NewInvalidInputError("quiz_id is required")
	}

	resp, err := h.service.Start(c.Context(), req.QuizID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Get handles GET /api/sessions/:id
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	resp, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SelectAnswer handles POST /api/sessions/:id/select
func (h *SessionHandler) SelectAnswer(c *fiber.Ctx) error {
	var req dto.SelectAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	resp, err := h.service.SelectAnswer(c.Context(), c.Params("id"), req.AnswerIndex)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Submit handles POST /api/sessions/:id/submit
func (h *SessionHandler) Submit(c *fiber.Ctx) error {
	resp, err := h.service.Submit(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Advance handles POST /api/sessions/:id/advance. Completion triggers the
// stats write-back against this request's record store.
func (h *SessionHandler) Advance(c *fiber.Ctx) error {
	records, key := h.stats.For(c)
	resp, err := h.service.Advance(c.Context(), c.Params("id"), records, key)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UseHint handles POST /api/sessions/:id/hint
func (h *SessionHandler) UseHint(c *fiber.Ctx) error {
	records, key := h.stats.For(c)
	resp, err := h.service.UseHint(c.Context(), c.Params("id"), records, key)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Abandon handles DELETE /api/sessions/:id
func (h *SessionHandler) Abandon(c *fiber.Ctx) error {
	h.service.Abandon(c.Context(), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

package handler

import (
	"github.com/nadeem1615/learning-platform/internal/domain"
	"github.com/nadeem1615/learning-platform/internal/logger"
	"github.com/nadeem1615/learning-platform/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles catalog and quiz HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GetCatalog handles GET /api/categories
func (h *QuizHandler) GetCatalog(c *fiber.Ctx) error {
	catalog := h.service.GetCatalog(c.Context())
	return c.JSON(catalog)
}

// GetRecentQuizzes handles GET /api/quizzes/recent
func (h *QuizHandler) GetRecentQuizzes(c *fiber.Ctx) error {
	return c.JSON(h.service.GetRecentQuizzes(c.Context()))
}

// GetQuiz handles GET /api/quizzes/:id
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return domain.NewInvalidInputError("quiz id is required")
	}

	quiz, err := h.service.GetQuiz(c.Context(), id)
	if err != nil {
		logger.Get().Warn("Failed to get quiz",
			zap.Error(err),
			zap.String("quiz_id", id),
		)
		return err
	}
	return c.JSON(quiz)
}

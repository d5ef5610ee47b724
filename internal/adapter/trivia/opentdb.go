package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/nadeem1615/learning-platform/internal/config"
	"github.com/nadeem1615/learning-platform/internal/domain"
	"github.com/nadeem1615/learning-platform/internal/logger"
	"github.com/nadeem1615/learning-platform/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultQuestionCount = 10
	defaultTimeout       = 10 * time.Second

	// responseCodeSuccess is the only provider response code that signals a
	// usable question set; any other value is treated as a fetch failure.
	responseCodeSuccess = 0
)

// OpenTDBSource implements domain.TriviaSource against an OpenTDB-compatible
// provider. Every outbound call is bounded by the configured HTTP timeout so
// a hung provider cannot leave callers loading indefinitely.
type OpenTDBSource struct {
	baseURL string
	client  *http.Client
	amount  int
}

// NewOpenTDBSource creates a trivia source for the given provider configuration.
func NewOpenTDBSource(cfg config.TriviaConfig) *OpenTDBSource {
	amount := cfg.QuestionCount
	if amount <= 0 {
		amount = defaultQuestionCount
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &OpenTDBSource{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
		amount:  amount,
	}
}

type categoryPayload struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type categoryListResponse struct {
	TriviaCategories []categoryPayload `json:"trivia_categories"`
}

type questionPayload struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type questionListResponse struct {
	ResponseCode int               `json:"response_code"`
	Results      []questionPayload `json:"results"`
}

// ListCategories implements domain.TriviaSource. It fails soft: on any
// transport or parse failure it logs the error and returns an empty slice.
func (s *OpenTDBSource) ListCategories(ctx context.Context) []domain.Category {
	payloads, err := s.fetchCategories(ctx)
	if err != nil {
		logger.Get().Error("Failed to fetch trivia categories", zap.Error(err))
		return []domain.Category{}
	}

	categories := make([]domain.Category, 0, len(payloads))
	for _, p := range payloads {
		categories = append(categories, domain.Category{ID: p.ID, Name: p.Name})
	}
	return categories
}

// GetQuiz implements domain.TriviaSource. The question set and the category
// listing (for the human-readable name) are fetched concurrently; the
// duplicate category-listing cost per quiz load is accepted, there is no
// caching contract with the provider.
func (s *OpenTDBSource) GetQuiz(ctx context.Context, id string) (*domain.Quiz, error) {
	categoryID, variant, err := domain.ParseQuizID(id)
	if err != nil {
		logger.Get().Warn("Rejected malformed quiz ID", zap.String("quiz_id", id))
		return nil, domain.NewQuizNotFoundError(id)
	}
	difficulty := domain.DifficultyForVariant(variant)

	var (
		payloads   []questionPayload
		categories []categoryPayload
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		payloads, err = s.fetchQuestions(gctx, categoryID, difficulty)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.fetchCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Get().Error("Failed to fetch quiz from trivia provider",
			zap.Error(err),
			zap.String("quiz_id", id),
			zap.String("difficulty", difficulty),
		)
		return nil, domain.NewQuizNotFoundError(id)
	}

	categoryName := ""
	for _, c := range categories {
		if c.ID == categoryID {
			categoryName = c.Name
			break
		}
	}
	if categoryName == "" {
		logger.Get().Warn("Trivia category missing from provider listing",
			zap.String("quiz_id", id),
			zap.Int("category_id", categoryID),
		)
		return nil, domain.NewQuizNotFoundError(id)
	}

	questions := make([]*domain.Question, 0, len(payloads))
	for _, p := range payloads {
		questions = append(questions, &domain.Question{
			Category:         p.Category,
			Type:             p.Type,
			Difficulty:       p.Difficulty,
			Text:             p.Question,
			CorrectAnswer:    p.CorrectAnswer,
			IncorrectAnswers: p.IncorrectAnswers,
			// Shuffled exactly once; the order is fixed for the lifetime of
			// this question instance.
			Answers: util.ShuffleAnswers(p.CorrectAnswer, p.IncorrectAnswers),
		})
	}

	return &domain.Quiz{
		ID:          id,
		Title:       fmt.Sprintf("%s Quiz", categoryName),
		Description: fmt.Sprintf("Test your knowledge about %s", categoryName),
		Difficulty:  domain.CapitalizeDifficulty(difficulty),
		Category:    categoryName,
		Questions:   questions,
		Image:       placeholderImage(categoryName, 400, 800),
	}, nil
}

func (s *OpenTDBSource) fetchCategories(ctx context.Context) ([]categoryPayload, error) {
	var parsed categoryListResponse
	if err := s.getJSON(ctx, s.baseURL+"/api_category.php", &parsed); err != nil {
		return nil, err
	}
	return parsed.TriviaCategories, nil
}

func (s *OpenTDBSource) fetchQuestions(ctx context.Context, categoryID int, difficulty string) ([]questionPayload, error) {
	endpoint := fmt.Sprintf("%s/api.php?amount=%d&category=%d&difficulty=%s&type=multiple",
		s.baseURL, s.amount, categoryID, difficulty)

	var parsed questionListResponse
	if err := s.getJSON(ctx, endpoint, &parsed); err != nil {
		return nil, err
	}
	if parsed.ResponseCode != responseCodeSuccess {
		return nil, fmt.Errorf("trivia provider reported response_code %d", parsed.ResponseCode)
	}
	return parsed.Results, nil
}

func (s *OpenTDBSource) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("trivia provider returned HTTP %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// placeholderImage builds the image reference used by quiz cards.
func placeholderImage(name string, height, width int) string {
	return fmt.Sprintf("/placeholder.svg?height=%d&width=%d&text=%s", height, width, url.QueryEscape(name))
}

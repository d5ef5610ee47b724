package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/nadeem1615/learning-platform/internal/domain"
	"github.com/nadeem1615/learning-platform/internal/dto"
	"github.com/nadeem1615/learning-platform/internal/util"
)

const questionsPerQuiz = 10

// QuizService defines the interface for catalog and quiz lookups.
type QuizService interface {
	// GetCatalog lists every provider category with its generated quiz
	// variants. A provider outage yields an empty catalog, not an error.
	GetCatalog(ctx context.Context) []dto.QuizCategory

	// GetQuiz materializes a quiz for display.
	GetQuiz(ctx context.Context, id string) (*dto.QuizResponse, error)

	// GetRecentQuizzes lists the user's recently played quizzes.
	GetRecentQuizzes(ctx context.Context) []dto.RecentQuiz
}

// quizService implements QuizService on top of the trivia source.
type quizService struct {
	source domain.TriviaSource
}

// NewQuizService creates a new instance of quizService
func NewQuizService(source domain.TriviaSource) QuizService {
	return &quizService{source: source}
}

// GetCatalog implements QuizService. Each category is offered as three quiz
// variants whose suffix selects the difficulty tier.
func (s *quizService) GetCatalog(ctx context.Context) []dto.QuizCategory {
	categories := s.source.ListCategories(ctx)

	catalog := make([]dto.QuizCategory, 0, len(categories))
	for _, category := range categories {
		name := util.DecodeHTML(category.Name)
		quizzes := make([]dto.CatalogQuiz, 0, domain.QuizVariants)
		for i := 0; i < domain.QuizVariants; i++ {
			quizzes = append(quizzes, dto.CatalogQuiz{
				ID:          domain.QuizID(category.ID, i),
				Title:       fmt.Sprintf("%s Quiz %d", name, i+1),
				Description: fmt.Sprintf("Test your knowledge about %s", name),
				Difficulty:  domain.CapitalizeDifficulty(domain.DifficultyForVariant(i)),
				Questions:   questionsPerQuiz,
				Image:       catalogImage(name),
			})
		}
		catalog = append(catalog, dto.QuizCategory{
			ID:      category.ID,
			Name:    name,
			Quizzes: quizzes,
		})
	}
	return catalog
}

// GetQuiz implements QuizService
func (s *quizService) GetQuiz(ctx context.Context, id string) (*dto.QuizResponse, error) {
	quiz, err := s.source.GetQuiz(ctx, id)
	if err != nil {
		return nil, err
	}

	questions := make([]dto.QuestionResponse, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		answers := make([]string, 0, len(q.Answers))
		for _, a := range q.Answers {
			answers = append(answers, util.DecodeHTML(a))
		}
		questions = append(questions, dto.QuestionResponse{
			Category:   util.DecodeHTML(q.Category),
			Type:       q.Type,
			Difficulty: q.Difficulty,
			Question:   util.DecodeHTML(q.Text),
			Answers:    answers,
		})
	}

	return &dto.QuizResponse{
		ID:          quiz.ID,
		Title:       util.DecodeHTML(quiz.Title),
		Description: util.DecodeHTML(quiz.Description),
		Difficulty:  quiz.Difficulty,
		Category:    util.DecodeHTML(quiz.Category),
		Questions:   questions,
		Image:       quiz.Image,
	}, nil
}

// GetRecentQuizzes implements QuizService. The list is a curated stub until
// per-user history is tracked.
func (s *quizService) GetRecentQuizzes(ctx context.Context) []dto.RecentQuiz {
	return []dto.RecentQuiz{
		{
			ID:          "9-0", // General Knowledge - Easy
			Title:       "General Knowledge Quiz",
			Description: "Test your knowledge on various topics",
			Progress:    30,
			Questions:   10,
			Completed:   3,
			Image:       "/placeholder.svg?height=200&width=400&text=General%20Knowledge",
			Tags:        []string{"General", "Easy"},
		},
		{
			ID:          "15-1", // Video Games - Medium
			Title:       "Video Games Quiz",
			Description: "Test your knowledge about video games",
			Progress:    70,
			Questions:   10,
			Completed:   7,
			Image:       "/placeholder.svg?height=200&width=400&text=Video%20Games",
			Tags:        []string{"Gaming", "Medium"},
		},
		{
			ID:          "23-2", // History - Hard
			Title:       "History Quiz",
			Description: "Test your knowledge of historical events",
			Progress:    10,
			Questions:   10,
			Completed:   1,
			Image:       "/placeholder.svg?height=200&width=400&text=History",
			Tags:        []string{"History", "Hard"},
		},
	}
}

func catalogImage(name string) string {
	return fmt.Sprintf("/placeholder.svg?height=200&width=400&text=%s", url.QueryEscape(name))
}

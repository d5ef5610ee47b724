package service

import (
	"context"
	"testing"

	"github.com/nadeem1615/learning-platform/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("ThreeVariantsPerCategory", func(t *testing.T) {
		source := new(MockTriviaSource)
		source.On("ListCategories", ctx).Return([]domain.Category{
			{ID: 9, Name: "General Knowledge"},
			{ID: 17, Name: "Science &amp; Nature"},
		})

		catalog := NewQuizService(source).GetCatalog(ctx)
		require.Len(t, catalog, 2)

		general := catalog[0]
		assert.Equal(t, 9, general.ID)
		require.Len(t, general.Quizzes, 3)
		assert.Equal(t, "9-0", general.Quizzes[0].ID)
		assert.Equal(t, "Easy", general.Quizzes[0].Difficulty)
		assert.Equal(t, "9-1", general.Quizzes[1].ID)
		assert.Equal(t, "Medium", general.Quizzes[1].Difficulty)
		assert.Equal(t, "9-2", general.Quizzes[2].ID)
		assert.Equal(t, "Hard", general.Quizzes[2].Difficulty)
		assert.Equal(t, "General Knowledge Quiz 1", general.Quizzes[0].Title)
		assert.Equal(t, 10, general.Quizzes[0].Questions)

		// entity-bearing category names are decoded for display
		science := catalog[1]
		assert.Equal(t, "Science & Nature", science.Name)
		assert.Equal(t, "Science & Nature Quiz 1", science.Quizzes[0].Title)

		source.AssertExpectations(t)
	})

	t.Run("EmptyOnProviderFailure", func(t *testing.T) {
		source := new(MockTriviaSource)
		source.On("ListCategories", ctx).Return([]domain.Category{})

		catalog := NewQuizService(source).GetCatalog(ctx)
		assert.Empty(t, catalog)
	})
}

func TestGetQuizService(t *testing.T) {
	ctx := context.Background()

	t.Run("DecodesDisplayText", func(t *testing.T) {
		source := new(MockTriviaSource)
		source.On("GetQuiz", ctx, "17-0").Return(&domain.Quiz{
			ID:          "17-0",
			Title:       "Science &amp; Nature Quiz",
			Description: "Test your knowledge about Science &amp; Nature",
			Difficulty:  "Easy",
			Category:    "Science &amp; Nature",
			Questions: []*domain.Question{
				{
					Category:         "Science &amp; Nature",
					Type:             "multiple",
					Difficulty:       "easy",
					Text:             "What does &quot;H2O&quot; stand for?",
					CorrectAnswer:    "Water",
					IncorrectAnswers: []string{"Hydrogen", "Oxygen", "Salt &amp; Pepper"},
					Answers:          []string{"Hydrogen", "Water", "Salt &amp; Pepper", "Oxygen"},
				},
			},
		}, nil)

		quiz, err := NewQuizService(source).GetQuiz(ctx, "17-0")
		require.NoError(t, err)
		assert.Equal(t, "Science & Nature Quiz", quiz.Title)
		assert.Equal(t, "Science & Nature", quiz.Category)
		require.Len(t, quiz.Questions, 1)
		assert.Equal(t, `What does "H2O" stand for?`, quiz.Questions[0].Question)
		assert.Equal(t, []string{"Hydrogen", "Water", "Salt & Pepper", "Oxygen"}, quiz.Questions[0].Answers)
	})

	t.Run("NotFoundPassesThrough", func(t *testing.T) {
		source := new(MockTriviaSource)
		source.On("GetQuiz", ctx, "999-0").Return(nil, domain.NewQuizNotFoundError("999-0"))

		quiz, err := NewQuizService(source).GetQuiz(ctx, "999-0")
		assert.Nil(t, quiz)
		require.Error(t, err)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.ErrQuizNotFound, domainErr.Code)
	})
}

func TestGetRecentQuizzes(t *testing.T) {
	recent := NewQuizService(new(MockTriviaSource)).GetRecentQuizzes(context.Background())
	require.Len(t, recent, 3)
	assert.Equal(t, "9-0", recent[0].ID)
	assert.Equal(t, "15-1", recent[1].ID)
	assert.Equal(t, "23-2", recent[2].ID)
}

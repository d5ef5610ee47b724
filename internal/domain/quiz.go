package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Category represents a trivia category as reported by the provider.
type Category struct {
	ID   int
	Name string
}

// Question represents a single multiple-choice question. Text fields carry
// the provider's raw strings, which may contain HTML entities; decoding is
// presentation-only and CorrectAnswer stays canonical for equality checks.
type Question struct {
	Category         string
	Type             string
	Difficulty       string
	Text             string
	CorrectAnswer    string
	IncorrectAnswers []string
	// Answers holds CorrectAnswer and IncorrectAnswers in an order shuffled
	// once when the question is materialized; it never changes afterwards.
	Answers []string
}

// IsCorrect reports whether answer matches the canonical correct answer.
func (q *Question) IsCorrect(answer string) bool {
	return q.CorrectAnswer == answer
}

// Validate validates the question
func (q *Question) Validate() error {
	if q.Text == "" {
		return NewInvalidInputError("question text is required")
	}
	if q.CorrectAnswer == "" {
		return NewInvalidInputError("correct answer is required")
	}
	if len(q.Answers) != len(q.IncorrectAnswers)+1 {
		return NewInvalidInputError("answers must contain the correct answer and every incorrect answer exactly once")
	}
	return nil
}

// Quiz represents a materialized quiz. Quizzes are built per request from
// the trivia provider and are not persisted; re-fetching the same ID may
// yield different questions.
type Quiz struct {
	ID          string
	Title       string
	Description string
	Difficulty  string
	Category    string
	Questions   []*Question
	Image       string
}

// QuizVariants is the number of quiz variants offered per category.
const QuizVariants = 3

var difficulties = [QuizVariants]string{"easy", "medium", "hard"}

// DifficultyForVariant maps a variant index to a difficulty tier via
// modulo-3 wraparound: 0 -> easy, 1 -> medium, 2 -> hard, 3 -> easy again.
func DifficultyForVariant(variant int) string {
	return difficulties[((variant%QuizVariants)+QuizVariants)%QuizVariants]
}

// QuizID builds the external quiz identifier "<categoryID>-<variant>".
func QuizID(categoryID, variant int) string {
	return fmt.Sprintf("%d-%d", categoryID, variant)
}

// ParseQuizID splits a quiz identifier into its category ID and variant index.
func ParseQuizID(id string) (categoryID, variant int, err error) {
	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 {
		return 0, 0, NewInvalidInputError(fmt.Sprintf("malformed quiz ID: %q", id))
	}
	categoryID, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, NewInvalidInputError(fmt.Sprintf("malformed quiz ID: %q", id))
	}
	variant, err = strconv.Atoi(parts[1])
	if err != nil || variant < 0 {
		return 0, 0, NewInvalidInputError(fmt.Sprintf("malformed quiz ID: %q", id))
	}
	return categoryID, variant, nil
}

// CapitalizeDifficulty renders a difficulty tier for display ("easy" -> "Easy").
func CapitalizeDifficulty(difficulty string) string {
	if difficulty == "" {
		return ""
	}
	return strings.ToUpper(difficulty[:1]) + difficulty[1:]
}

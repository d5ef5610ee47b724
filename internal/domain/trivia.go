package domain

import (
	"context"
)

// TriviaSource defines the interface (port) for the external trivia provider.
// The OpenTDB adapter is the production implementation.
type TriviaSource interface {
	// ListCategories returns the provider's category metadata. It fails
	// soft: any transport or parse failure yields an empty slice, never an
	// error, so callers can render an empty catalog.
	ListCategories(ctx context.Context) []Category

	// GetQuiz materializes the quiz identified by "<categoryID>-<variant>",
	// with every question's answer order already shuffled. Any failure
	// (network, provider response code, malformed ID) yields a
	// QUIZ_NOT_FOUND domain error.
	GetQuiz(ctx context.Context, id string) (*Quiz, error)
}

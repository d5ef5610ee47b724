package dto

// CatalogQuiz is one quiz variant offered for a category.
type CatalogQuiz struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Questions   int    `json:"questions"`
	Image       string `json:"image"`
}

// QuizCategory is a category with its generated quiz variants.
type QuizCategory struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Quizzes []CatalogQuiz `json:"quizzes"`
}

// RecentQuiz is a quiz the user recently worked on.
type RecentQuiz struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Progress    int      `json:"progress"`
	Questions   int      `json:"questions"`
	Completed   int      `json:"completed"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
}

// QuestionResponse is a question as rendered to the client. Text fields are
// decoded for display; answer selection happens by index so the canonical
// answer strings never round-trip through the client.
type QuestionResponse struct {
	Category   string   `json:"category"`
	Type       string   `json:"type"`
	Difficulty string   `json:"difficulty"`
	Question   string   `json:"question"`
	Answers    []string `json:"answers"`
}

// QuizResponse represents a materialized quiz in the API response.
type QuizResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Difficulty  string             `json:"difficulty"`
	Category    string             `json:"category"`
	Questions   []QuestionResponse `json:"questions"`
	Image       string             `json:"image"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}

package dto

// StartSessionRequest starts a quiz session for the given quiz ID.
type StartSessionRequest struct {
	QuizID string `json:"quiz_id"`
}

// SelectAnswerRequest records an answer choice by its index into the
// question's fixed answer order.
type SelectAnswerRequest struct {
	AnswerIndex int `json:"answer_index"`
}

// SessionQuestion is the current question of an active session.
type SessionQuestion struct {
	Index      int      `json:"index"`
	Question   string   `json:"question"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
	Answers    []string `json:"answers"`
}

// SessionResults is the completion summary, including the outcome of the
// stats write-back performed when the session finished.
type SessionResults struct {
	Score          int     `json:"score"`
	TotalQuestions int     `json:"total_questions"`
	Percentage     float64 `json:"percentage"`
	Message        string  `json:"message"`
	XPEarned       int     `json:"xp_earned"`
	BadgeUnlocked  bool    `json:"badge_unlocked"`
	Badge          string  `json:"badge,omitempty"`
	StatsUpdated   bool    `json:"stats_updated"`
	StatsError     string  `json:"stats_error,omitempty"`
}

// SessionResponse is the observable state of a quiz session.
type SessionResponse struct {
	ID             string           `json:"id"`
	QuizID         string           `json:"quiz_id,omitempty"`
	QuizTitle      string           `json:"quiz_title,omitempty"`
	State          string           `json:"state"`
	QuestionIndex  int              `json:"question_index"`
	TotalQuestions int              `json:"total_questions"`
	TimeRemaining  int              `json:"time_remaining"`
	Score          int              `json:"score"`
	SelectedIndex  int              `json:"selected_index"`
	Correct        *bool            `json:"correct,omitempty"`
	CorrectAnswer  string           `json:"correct_answer,omitempty"`
	HintsUsed      int              `json:"hints_used"`
	Question       *SessionQuestion `json:"question,omitempty"`
	Results        *SessionResults  `json:"results,omitempty"`
}

// HintResponse reports a hint usage and its XP penalty.
type HintResponse struct {
	XPPenalty  int    `json:"xp_penalty"`
	HintsUsed  int    `json:"hints_used"`
	NewXP      int    `json:"new_xp,omitempty"`
	StatsError string `json:"stats_error,omitempty"`
}

package dto

import "github.com/nadeem1615/learning-platform/internal/domain"

// UserStatsResponse is the merged stats document served to the dashboard.
// The field layout matches the persisted record.
type UserStatsResponse struct {
	Name               string                    `json:"name"`
	Level              int                       `json:"level"`
	XP                 int                       `json:"xp"`
	Streak             int                       `json:"streak"`
	CompletedQuizzes   []domain.CompletedQuiz    `json:"completedQuizzes"`
	RecentAchievements []domain.Achievement      `json:"recentAchievements"`
	Leaderboard        []domain.LeaderboardEntry `json:"leaderboard"`
	DailyChallenges    []domain.DailyChallenge   `json:"dailyChallenges"`
}

// NewUserStatsResponse maps the domain stats document to its API shape.
func NewUserStatsResponse(stats *domain.UserStats) *UserStatsResponse {
	return &UserStatsResponse{
		Name:               stats.Name,
		Level:              stats.Level,
		XP:                 stats.XP,
		Streak:             stats.Streak,
		CompletedQuizzes:   stats.CompletedQuizzes,
		RecentAchievements: stats.RecentAchievements,
		Leaderboard:        stats.Leaderboard,
		DailyChallenges:    stats.DailyChallenges,
	}
}

// AddXPRequest adjusts the stored XP by Amount (negative for penalties).
type AddXPRequest struct {
	Amount int `json:"amount"`
}

// AddXPResponse reports the outcome of an XP mutation. Failures are
// structured results, not transport errors.
type AddXPResponse struct {
	Success bool   `json:"success"`
	NewXP   int    `json:"newXP,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AddCompletedQuizResponse reports the outcome of recording a finished quiz.
type AddCompletedQuizResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// IdentityRequest names the browser session's user.
type IdentityRequest struct {
	Name string `json:"name"`
}

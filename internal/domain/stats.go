package domain

// AchievementKind is the closed set of achievement markers. The
// presentation layer maps each kind to a fixed rendering descriptor.
type AchievementKind string

const (
	AchievementAward  AchievementKind = "award"
	AchievementTrophy AchievementKind = "trophy"
	AchievementFlame  AchievementKind = "flame"
)

// IsValid reports whether k is a known achievement kind.
func (k AchievementKind) IsValid() bool {
	switch k {
	case AchievementAward, AchievementTrophy, AchievementFlame:
		return true
	}
	return false
}

// CompletedQuiz is the summary recorded when a quiz is finished.
// JSON tags match the persisted record layout.
type CompletedQuiz struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Questions   int      `json:"questions"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
}

// Achievement is an unlocked achievement shown on the dashboard.
type Achievement struct {
	ID          string          `json:"id"`
	Kind        AchievementKind `json:"icon"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	XP          int             `json:"xp"`
}

// LeaderboardEntry is one ranked row of the leaderboard snapshot.
type LeaderboardEntry struct {
	ID     string `json:"id"`
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	IsUser bool   `json:"isUser,omitempty"`
}

// DailyChallenge is a progress/total pair with a reward.
type DailyChallenge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Reward      int    `json:"reward"`
	Progress    int    `json:"progress"`
	Total       int    `json:"total"`
}

// UserStats is the single browser-session-scoped stats document. It is
// read-modify-written against a textual record (cookie or Redis value)
// with last-write-wins semantics; stored top-level keys win over defaults
// on read.
type UserStats struct {
	Name               string             `json:"name"`
	Level              int                `json:"level"`
	XP                 int                `json:"xp"`
	Streak             int                `json:"streak"`
	CompletedQuizzes   []CompletedQuiz    `json:"completedQuizzes"`
	RecentAchievements []Achievement      `json:"recentAchievements"`
	Leaderboard        []LeaderboardEntry `json:"leaderboard"`
	DailyChallenges    []DailyChallenge   `json:"dailyChallenges"`
}

// DefaultUserStats returns the built-in stats document used when no record
// has been persisted yet.
func DefaultUserStats() *UserStats {
	return &UserStats{
		Name:   "Alex Johnson",
		Level:  12,
		XP:     2450,
		Streak: 5,
		CompletedQuizzes: []CompletedQuiz{
			{
				ID:          "17-0",
				Title:       "Science & Nature Quiz",
				Description: "Test your knowledge of scientific facts",
				Questions:   10,
				Image:       "/placeholder.svg?height=200&width=400&text=Science",
				Tags:        []string{"Science", "Easy"},
			},
		},
		RecentAchievements: []Achievement{
			{
				ID:          "1",
				Kind:        AchievementAward,
				Title:       "Fast Learner",
				Description: "Completed 5 quizzes in one day",
				Date:        "Today",
				XP:          150,
			},
			{
				ID:          "2",
				Kind:        AchievementTrophy,
				Title:       "Quiz Master",
				Description: "Scored 100% on 3 consecutive quizzes",
				Date:        "Yesterday",
				XP:          200,
			},
			{
				ID:          "3",
				Kind:        AchievementFlame,
				Title:       "On Fire",
				Description: "Maintained a 5-day learning streak",
				Date:        "2 days ago",
				XP:          100,
			},
		},
		Leaderboard: []LeaderboardEntry{
			{ID: "1", Rank: 1, Name: "Sarah J.", Points: 3200},
			{ID: "2", Rank: 2, Name: "Michael T.", Points: 2950},
			{ID: "3", Rank: 3, Name: "Alex Johnson", Points: 2450, IsUser: true},
			{ID: "4", Rank: 4, Name: "David L.", Points: 2300},
			{ID: "5", Rank: 5, Name: "Emma R.", Points: 2100},
		},
		DailyChallenges: []DailyChallenge{
			{
				ID:          "1",
				Title:       "Quiz Champion",
				Description: "Complete 3 quizzes with at least 80% score",
				Reward:      100,
				Progress:    1,
				Total:       3,
			},
			{
				ID:          "2",
				Title:       "Study Session",
				Description: "Spend 30 minutes learning today",
				Reward:      50,
				Progress:    15,
				Total:       30,
			},
			{
				ID:          "3",
				Title:       "Perfect Score",
				Description: "Get 100% on any quiz",
				Reward:      150,
				Progress:    0,
				Total:       1,
			},
		},
	}
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/nadeem1615/learning-platform/internal/domain"
	"github.com/nadeem1615/learning-platform/internal/logger"

	"go.uber.org/zap"
)

const defaultStatsTTL = 30 * 24 * time.Hour

// StatsService defines the interface for the user stats store. The record
// store (cookie- or Redis-backed) and its key are injected per call because
// the cookie backend is scoped to a single request.
//
// The store is single-writer-assumed: concurrent tabs mutating the same
// record race with last-write-wins semantics. That is a known limitation of
// the design, accepted for this non-critical data.
type StatsService interface {
	// Read returns the stats document. An absent record yields the built-in
	// defaults and persists a minimal seed record (xp and completedQuizzes
	// only); a present record is shallow-merged over the defaults, with
	// stored top-level keys winning. Malformed data falls back silently to
	// defaults.
	Read(ctx context.Context, records domain.RecordStore, key string) *domain.UserStats

	// AddXP adjusts the stored XP by delta (negative for penalties) and
	// rewrites the record with a refreshed expiry. It fails when no record
	// exists yet or the stored value is unparsable.
	AddXP(ctx context.Context, records domain.RecordStore, key string, delta int) (int, error)

	// AddCompletedQuiz appends the quiz to the completed set, idempotent by
	// quiz ID: a duplicate is a no-op that still succeeds (and still
	// refreshes the record's expiry).
	AddCompletedQuiz(ctx context.Context, records domain.RecordStore, key string, quiz domain.CompletedQuiz) error
}

// statsService implements StatsService
type statsService struct {
	ttl time.Duration
}

// NewStatsService creates a new instance of statsService
func NewStatsService(ttl time.Duration) StatsService {
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	return &statsService{ttl: ttl}
}

// seedRecord is the minimal document persisted on first read; the rest of
// the default document is recomputed on every read.
type seedRecord struct {
	XP               int                    `json:"xp"`
	CompletedQuizzes []domain.CompletedQuiz `json:"completedQuizzes"`
}

// Read implements StatsService
func (s *statsService) Read(ctx context.Context, records domain.RecordStore, key string) *domain.UserStats {
	defaults := domain.DefaultUserStats()

	raw, err := records.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Failed to read stats record, serving defaults",
				zap.Error(err), zap.String("key", key))
			return defaults
		}

		seed, marshalErr := json.Marshal(seedRecord{
			XP:               defaults.XP,
			CompletedQuizzes: defaults.CompletedQuizzes,
		})
		if marshalErr == nil {
			if setErr := records.Set(ctx, key, string(seed), s.ttl); setErr != nil {
				logger.Get().Warn("Failed to seed stats record", zap.Error(setErr), zap.String("key", key))
			}
		}
		return defaults
	}

	return mergeStored(defaults, raw)
}

// AddXP implements StatsService
func (s *statsService) AddXP(ctx context.Context, records domain.RecordStore, key string, delta int) (int, error) {
	record, err := s.loadRecord(ctx, records, key)
	if err != nil {
		return 0, err
	}

	currentXP := 0
	if raw, ok := record["xp"]; ok {
		_ = json.Unmarshal(raw, &currentXP)
	}
	newXP := currentXP + delta

	encoded, err := json.Marshal(newXP)
	if err != nil {
		return 0, domain.NewInternalError("failed to encode xp", err)
	}
	record["xp"] = encoded

	if err := s.writeRecord(ctx, records, key, record); err != nil {
		return 0, err
	}
	return newXP, nil
}

// AddCompletedQuiz implements StatsService
func (s *statsService) AddCompletedQuiz(ctx context.Context, records domain.RecordStore, key string, quiz domain.CompletedQuiz) error {
	record, err := s.loadRecord(ctx, records, key)
	if err != nil {
		return err
	}

	var completed []domain.CompletedQuiz
	if raw, ok := record["completedQuizzes"]; ok {
		if err := json.Unmarshal(raw, &completed); err != nil {
			return domain.NewStatsCorruptedError(err)
		}
	}

	exists := false
	for _, q := range completed {
		if q.ID == quiz.ID {
			exists = true
			break
		}
	}
	if !exists {
		completed = append(completed, quiz)
	}

	encoded, err := json.Marshal(completed)
	if err != nil {
		return domain.NewInternalError("failed to encode completed quizzes", err)
	}
	record["completedQuizzes"] = encoded

	return s.writeRecord(ctx, records, key, record)
}

// loadRecord fetches and parses the persisted record for a mutation.
// Mutations never create a record implicitly; Read does the seeding.
func (s *statsService) loadRecord(ctx context.Context, records domain.RecordStore, key string) (map[string]json.RawMessage, error) {
	raw, err := records.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewStatsNotFoundError()
		}
		return nil, domain.NewInternalError("failed to read stats record", err)
	}

	record := make(map[string]json.RawMessage)
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, domain.NewStatsCorruptedError(err)
	}
	return record, nil
}

func (s *statsService) writeRecord(ctx context.Context, records domain.RecordStore, key string, record map[string]json.RawMessage) error {
	encoded, err := json.Marshal(record)
	if err != nil {
		return domain.NewInternalError("failed to encode stats record", err)
	}
	if err := records.Set(ctx, key, string(encoded), s.ttl); err != nil {
		return domain.NewInternalError("failed to write stats record", err)
	}
	return nil
}

// mergeStored overlays the stored record's top-level keys onto the default
// document. A key that fails to decode keeps its default value; a record
// that is not a JSON object falls back to defaults entirely.
func mergeStored(defaults *domain.UserStats, raw string) *domain.UserStats {
	record := make(map[string]json.RawMessage)
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		logger.Get().Debug("Malformed stats record, serving defaults", zap.Error(err))
		return defaults
	}

	stats := *defaults
	for key, value := range record {
		switch key {
		case "name":
			_ = json.Unmarshal(value, &stats.Name)
		case "level":
			_ = json.Unmarshal(value, &stats.Level)
		case "xp":
			_ = json.Unmarshal(value, &stats.XP)
		case "streak":
			_ = json.Unmarshal(value, &stats.Streak)
		case "completedQuizzes":
			var completed []domain.CompletedQuiz
			if json.Unmarshal(value, &completed) == nil {
				stats.CompletedQuizzes = completed
			}
		case "recentAchievements":
			var achievements []domain.Achievement
			if json.Unmarshal(value, &achievements) == nil {
				stats.RecentAchievements = achievements
			}
		case "leaderboard":
			var leaderboard []domain.LeaderboardEntry
			if json.Unmarshal(value, &leaderboard) == nil {
				stats.Leaderboard = leaderboard
			}
		case "dailyChallenges":
			var challenges []domain.DailyChallenge
			if json.Unmarshal(value, &challenges) == nil {
				stats.DailyChallenges = challenges
			}
		}
	}
	return &stats
}

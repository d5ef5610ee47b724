package service

import (
	"context"

	"github.com/nadeem1615/learning-platform/internal/domain"
	"github.com/nadeem1615/learning-platform/internal/dto"
	"github.com/nadeem1615/learning-platform/internal/logger"
	"github.com/nadeem1615/learning-platform/internal/session"
	"github.com/nadeem1615/learning-platform/internal/util"

	"go.uber.org/zap"
)

// SessionService drives quiz sessions. The session holds its quiz for its
// whole lifetime and answers are evaluated against it directly, so a
// non-deterministic provider can never change a question under the user.
type SessionService interface {
	// Start fetches the quiz and returns a session in the Ready state.
	// A fetch failure surfaces as quiz-not-found; no session is retained.
	Start(ctx context.Context, quizID string) (*dto.SessionResponse, error)

	// Get returns the session's observable state.
	Get(ctx context.Context, sessionID string) (*dto.SessionResponse, error)

	// SelectAnswer records an answer choice; re-selection is allowed until
	// submission.
	SelectAnswer(ctx context.Context, sessionID string, answerIndex int) (*dto.SessionResponse, error)

	// Submit locks the selection and evaluates it.
	Submit(ctx context.Context, sessionID string) (*dto.SessionResponse, error)

	// Advance moves to the next question, or completes the session. On
	// completion the XP award and the completed-quiz record are written to
	// the caller's stats store; the outcome of that write-back is reported
	// in the results payload and never fails the advance itself.
	Advance(ctx context.Context, sessionID string, records domain.RecordStore, statsKey string) (*dto.SessionResponse, error)

	// UseHint records a hint and applies its flat XP penalty.
	UseHint(ctx context.Context, sessionID string, records domain.RecordStore, statsKey string) (*dto.HintResponse, error)

	// Abandon discards a session (navigation away).
	Abandon(ctx context.Context, sessionID string)
}

// sessionService implements SessionService
type sessionService struct {
	manager *session.Manager
	source  domain.TriviaSource
	stats   StatsService
}

// NewSessionService creates a new instance of sessionService
func NewSessionService(manager *session.Manager, source domain.TriviaSource, stats StatsService) SessionService {
	return &sessionService{
		manager: manager,
		source:  source,
		stats:   stats,
	}
}

// Start implements SessionService
func (s *sessionService) Start(ctx context.Context, quizID string) (*dto.SessionResponse, error) {
	sess := s.manager.Create()

	quiz, err := s.source.GetQuiz(ctx, quizID)
	if err != nil {
		sess.Fail()
		s.manager.Remove(sess.ID())
		return nil, err
	}
	if err := sess.Begin(quiz); err != nil {
		s.manager.Remove(sess.ID())
		return nil, err
	}

	logger.Get().Info("Quiz session started",
		zap.String("session_id", sess.ID()),
		zap.String("quiz_id", quizID),
		zap.Int("questions", len(quiz.Questions)),
	)
	return s.toResponse(sess), nil
}

// Get implements SessionService
func (s *sessionService) Get(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	sess, err := s.manager.Get(sessionID)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(sess)
	s.attachResults(sess, resp, nil)
	return resp, nil
}

// SelectAnswer implements SessionService
func (s *sessionService) SelectAnswer(ctx context.Context, sessionID string, answerIndex int) (*dto.SessionResponse, error) {
	sess, err := s.manager.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.Select(answerIndex); err != nil {
		return nil, err
	}
	return s.toResponse(sess), nil
}

// Submit implements SessionService
func (s *sessionService) Submit(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	sess, err := s.manager.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := sess.Submit(); err != nil {
		return nil, err
	}
	return s.toResponse(sess), nil
}

// Advance implements SessionService
func (s *sessionService) Advance(ctx context.Context, sessionID string, records domain.RecordStore, statsKey string) (*dto.SessionResponse, error) {
	sess, err := s.manager.Get(sessionID)
	if err != nil {
		return nil, err
	}

	completed, err := sess.Advance()
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(sess)
	if completed {
		s.attachResults(sess, resp, func(results *session.Results) *dto.SessionResults {
			return s.recordCompletion(ctx, sess, results, records, statsKey)
		})
	}
	return resp, nil
}

// UseHint implements SessionService
func (s *sessionService) UseHint(ctx context.Context, sessionID string, records domain.RecordStore, statsKey string) (*dto.HintResponse, error) {
	sess, err := s.manager.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.UseHint(); err != nil {
		return nil, err
	}

	resp := &dto.HintResponse{
		XPPenalty: session.HintXPPenalty,
		HintsUsed: sess.Snapshot().HintsUsed,
	}
	newXP, err := s.stats.AddXP(ctx, records, statsKey, -session.HintXPPenalty)
	if err != nil {
		logger.Get().Warn("Failed to apply hint XP penalty",
			zap.Error(err), zap.String("session_id", sessionID))
		resp.StatsError = err.Error()
		return resp, nil
	}
	resp.NewXP = newXP
	return resp, nil
}

// Abandon implements SessionService
func (s *sessionService) Abandon(ctx context.Context, sessionID string) {
	s.manager.Remove(sessionID)
}

// recordCompletion performs the session-completion stats write-back: the XP
// award and the completed-quiz record. Failures are reported, not raised:
// the session outcome stands regardless.
func (s *sessionService) recordCompletion(ctx context.Context, sess *session.Session, results *session.Results, records domain.RecordStore, statsKey string) *dto.SessionResults {
	out := &dto.SessionResults{
		Score:          results.Score,
		TotalQuestions: results.TotalQuestions,
		Percentage:     results.Percentage,
		Message:        results.Message,
		XPEarned:       results.XPEarned,
		BadgeUnlocked:  results.BadgeUnlocked,
		Badge:          results.Badge,
	}

	quiz := sess.Quiz()
	summary := domain.CompletedQuiz{
		ID:          quiz.ID,
		Title:       util.DecodeHTML(quiz.Title),
		Description: util.DecodeHTML(quiz.Description),
		Questions:   len(quiz.Questions),
		Image:       quiz.Image,
		Tags:        []string{util.DecodeHTML(quiz.Category), quiz.Difficulty},
	}

	if _, err := s.stats.AddXP(ctx, records, statsKey, results.XPEarned); err != nil {
		logger.Get().Warn("Failed to award completion XP",
			zap.Error(err), zap.String("session_id", sess.ID()), zap.String("quiz_id", quiz.ID))
		out.StatsError = err.Error()
		return out
	}
	if err := s.stats.AddCompletedQuiz(ctx, records, statsKey, summary); err != nil {
		logger.Get().Warn("Failed to record completed quiz",
			zap.Error(err), zap.String("session_id", sess.ID()), zap.String("quiz_id", quiz.ID))
		out.StatsError = err.Error()
		return out
	}

	out.StatsUpdated = true
	logger.Get().Info("Quiz session completed",
		zap.String("session_id", sess.ID()),
		zap.String("quiz_id", quiz.ID),
		zap.Int("score", results.Score),
		zap.Int("xp_earned", results.XPEarned),
	)
	return out
}

// attachResults fills the results payload for a completed session. When
// record is nil the results are attached without a stats write-back (plain
// reads of an already completed session).
func (s *sessionService) attachResults(sess *session.Session, resp *dto.SessionResponse, record func(*session.Results) *dto.SessionResults) {
	results, err := sess.Results()
	if err != nil {
		return // not completed
	}
	if record != nil {
		resp.Results = record(results)
		return
	}
	resp.Results = &dto.SessionResults{
		Score:          results.Score,
		TotalQuestions: results.TotalQuestions,
		Percentage:     results.Percentage,
		Message:        results.Message,
		XPEarned:       results.XPEarned,
		BadgeUnlocked:  results.BadgeUnlocked,
		Badge:          results.Badge,
	}
}

// toResponse maps session state to its API shape, decoding provider text
// for display. Answer order inside a question never changes, so the indexes
// shown to the client stay valid for the question's lifetime.
func (s *sessionService) toResponse(sess *session.Session) *dto.SessionResponse {
	snap := sess.Snapshot()
	resp := &dto.SessionResponse{
		ID:             snap.ID,
		State:          string(snap.State),
		QuestionIndex:  snap.QuestionIndex,
		TotalQuestions: snap.TotalQuestions,
		TimeRemaining:  snap.Remaining,
		Score:          snap.Score,
		SelectedIndex:  snap.SelectedIndex,
		HintsUsed:      snap.HintsUsed,
		Correct:        snap.Correct,
	}
	if snap.CorrectAnswer != "" {
		resp.CorrectAnswer = util.DecodeHTML(snap.CorrectAnswer)
	}

	quiz := sess.Quiz()
	if quiz == nil {
		return resp
	}
	resp.QuizID = quiz.ID
	resp.QuizTitle = util.DecodeHTML(quiz.Title)

	switch snap.State {
	case session.StateReady, session.StateAnswerSelected, session.StateSubmitted:
		q := quiz.Questions[snap.QuestionIndex]
		answers := make([]string, 0, len(q.Answers))
		for _, a := range q.Answers {
			answers = append(answers, util.DecodeHTML(a))
		}
		resp.Question = &dto.SessionQuestion{
			Index:      snap.QuestionIndex,
			Question:   util.DecodeHTML(q.Text),
			Category:   util.DecodeHTML(q.Category),
			Difficulty: q.Difficulty,
			Answers:    answers,
		}
	}
	return resp
}

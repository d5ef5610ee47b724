package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/nadeem1615/learning-platform/internal/domain"
)

// State is the lifecycle state of a quiz session.
type State string

const (
	StateLoading        State = "loading"
	StateReady          State = "ready"
	StateAnswerSelected State = "answer_selected"
	StateSubmitted      State = "submitted"
	StateCompleted      State = "completed"
	StateError          State = "error"
)

const (
	// XPPerCorrectAnswer is the flat XP award per correct answer; there is
	// no bonus for speed or streaks.
	XPPerCorrectAnswer = 10

	// HintXPPenalty is the flat XP cost of using a hint.
	HintXPPenalty = 5

	// BadgeName and BadgeThresholdPercent define the badge unlocked when a
	// session finishes at or above the threshold percentage.
	BadgeName             = "Quiz Whiz"
	BadgeThresholdPercent = 70.0

	noSelection = -1
)

// Session is the state machine for a single quiz attempt:
//
//	Loading -> Ready -> AnswerSelected -> Submitted -> (Ready | Completed)
//
// with a terminal Error state when the quiz fails to load. The per-question
// countdown is driven by a chain of timer callbacks, each bound to the epoch
// of the question it was scheduled for; a callback whose epoch no longer
// matches is a no-op, so a stale timer can never fire against a later
// question.
type Session struct {
	mu sync.Mutex

	id       string
	quiz     *domain.Quiz
	state    State
	index    int
	selected int
	correct  bool
	score    int

	remaining int
	budget    int
	interval  time.Duration
	epoch     int

	hintsUsed int
}

// Snapshot is a consistent read of the session for rendering.
type Snapshot struct {
	ID             string
	State          State
	QuestionIndex  int
	TotalQuestions int
	Remaining      int
	Score          int
	SelectedIndex  int
	Correct        *bool
	CorrectAnswer  string
	HintsUsed      int
}

// Results summarizes a completed session.
type Results struct {
	Score          int
	TotalQuestions int
	Percentage     float64
	Message        string
	XPEarned       int
	BadgeUnlocked  bool
	Badge          string
}

// New creates a session in the Loading state. budget is the per-question
// time allowance in seconds; interval is the wall-clock duration of one
// countdown unit (0 disables the timer, used by tests).
func New(id string, budget int, interval time.Duration) *Session {
	return &Session{
		id:       id,
		state:    StateLoading,
		selected: noSelection,
		budget:   budget,
		interval: interval,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Quiz returns the quiz held by this session. The session owns the quiz for
// its whole lifetime; answers are evaluated against it directly instead of
// re-fetching from the provider.
func (s *Session) Quiz() *domain.Quiz {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quiz
}

// Begin transitions Loading -> Ready with question index 0, a full timer
// budget and score 0.
func (s *Session) Begin(quiz *domain.Quiz) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLoading {
		return domain.NewInvalidTransitionError(fmt.Sprintf("cannot begin session in state %q", s.state))
	}
	if quiz == nil || len(quiz.Questions) == 0 {
		s.state = StateError
		return domain.NewInvalidInputError("quiz has no questions")
	}

	s.quiz = quiz
	s.index = 0
	s.score = 0
	s.state = StateReady
	s.resetQuestionLocked()
	return nil
}

// Fail transitions Loading -> Error. Error is terminal.
func (s *Session) Fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateLoading {
		s.state = StateError
	}
}

// Select records the user's answer choice for the current question. It is
// re-entrant: the selection may be changed freely until submission.
func (s *Session) Select(answerIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady && s.state != StateAnswerSelected {
		return domain.NewInvalidTransitionError(fmt.Sprintf("cannot select an answer in state %q", s.state))
	}
	question := s.quiz.Questions[s.index]
	if answerIndex < 0 || answerIndex >= len(question.Answers) {
		return domain.NewInvalidInputError(fmt.Sprintf("answer index %d out of range", answerIndex))
	}

	s.selected = answerIndex
	s.state = StateAnswerSelected
	return nil
}

// Submit evaluates the selected answer against the session's own quiz,
// locks the selection and increments the score on a correct result.
func (s *Session) Submit() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAnswerSelected {
		return false, domain.NewInvalidTransitionError(fmt.Sprintf("cannot submit in state %q", s.state))
	}

	question := s.quiz.Questions[s.index]
	s.correct = question.IsCorrect(question.Answers[s.selected])
	if s.correct {
		s.score++
	}
	s.state = StateSubmitted
	return s.correct, nil
}

// Advance moves past a submitted question: to Completed when it was the
// last one, otherwise to Ready on the next question with a fresh timer.
func (s *Session) Advance() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSubmitted {
		return false, domain.NewInvalidTransitionError(fmt.Sprintf("cannot advance in state %q", s.state))
	}

	if s.index >= len(s.quiz.Questions)-1 {
		s.state = StateCompleted
		s.epoch++ // invalidate any timer still scheduled
		return true, nil
	}

	s.index++
	s.state = StateReady
	s.resetQuestionLocked()
	return false, nil
}

// UseHint records a hint against the current question. Hints are disabled
// once the answer is submitted and never alter question data; the XP
// penalty is applied by the caller against the stats store.
func (s *Session) UseHint() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady && s.state != StateAnswerSelected {
		return domain.NewInvalidTransitionError(fmt.Sprintf("cannot use a hint in state %q", s.state))
	}
	s.hintsUsed++
	return nil
}

// Invalidate cancels any scheduled countdown by bumping the epoch, so a
// tick fired for a discarded session is a no-op instead of counting down
// until the budget exhausts.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
}

// Snapshot returns a copy of the session's observable state. The correct
// answer is revealed only once the current question is submitted.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:            s.id,
		State:         s.state,
		QuestionIndex: s.index,
		Remaining:     s.remaining,
		Score:         s.score,
		SelectedIndex: s.selected,
		HintsUsed:     s.hintsUsed,
	}
	if s.quiz != nil {
		snap.TotalQuestions = len(s.quiz.Questions)
	}
	if s.state == StateSubmitted || s.state == StateCompleted {
		correct := s.correct
		snap.Correct = &correct
	}
	if s.state == StateSubmitted {
		snap.CorrectAnswer = s.quiz.Questions[s.index].CorrectAnswer
	}
	return snap
}

// Results computes the completion summary. It is only valid once the
// session has reached Completed.
func (s *Session) Results() (*Results, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateCompleted {
		return nil, domain.NewInvalidTransitionError(fmt.Sprintf("results are not available in state %q", s.state))
	}

	total := len(s.quiz.Questions)
	percentage := float64(s.score) / float64(total) * 100

	var message string
	switch {
	case percentage >= 80:
		message = "Excellent! You're a quiz master!"
	case percentage >= 60:
		message = "Good job! You know your stuff!"
	case percentage >= 40:
		message = "Not bad! Keep learning!"
	default:
		message = "Keep practicing! You'll get better!"
	}

	results := &Results{
		Score:          s.score,
		TotalQuestions: total,
		Percentage:     percentage,
		Message:        message,
		XPEarned:       s.score * XPPerCorrectAnswer,
		BadgeUnlocked:  percentage >= BadgeThresholdPercent,
	}
	if results.BadgeUnlocked {
		results.Badge = BadgeName
	}
	return results, nil
}

// resetQuestionLocked starts a fresh countdown for the current question.
// Bumping the epoch invalidates every tick scheduled for the previous one.
func (s *Session) resetQuestionLocked() {
	s.selected = noSelection
	s.correct = false
	s.remaining = s.budget
	s.epoch++
	s.scheduleTickLocked()
}

func (s *Session) scheduleTickLocked() {
	if s.interval <= 0 {
		return
	}
	epoch := s.epoch
	time.AfterFunc(s.interval, func() {
		s.tick(epoch)
	})
}

// tick consumes one time unit of the countdown scheduled under epoch.
// Reaching zero with the question still unanswered force-submits with
// correctness false; no credit is given even if a selection raced the
// expiry.
func (s *Session) tick(epoch int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		return // timer from a superseded question
	}
	if s.state != StateReady && s.state != StateAnswerSelected {
		return
	}

	s.remaining--
	if s.remaining > 0 {
		s.scheduleTickLocked()
		return
	}

	s.remaining = 0
	s.correct = false
	s.state = StateSubmitted
}

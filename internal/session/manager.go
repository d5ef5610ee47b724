package session

import (
	"sync"
	"time"

	"github.com/nadeem1615/learning-platform/internal/config"
	"github.com/nadeem1615/learning-platform/internal/domain"
	"github.com/nadeem1615/learning-platform/internal/util"
)

const defaultQuestionTime = 30

// Manager holds the in-memory sessions of this process, keyed by session
// ID. Sessions are client-lifetime state: they are discarded explicitly
// when the caller abandons them, nothing is persisted.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	budget   int
	interval time.Duration
}

// NewManager creates a session manager with the configured per-question
// budget and countdown interval.
func NewManager(cfg config.SessionConfig) *Manager {
	budget := cfg.QuestionTime
	if budget <= 0 {
		budget = defaultQuestionTime
	}
	return &Manager{
		sessions: make(map[string]*Session),
		budget:   budget,
		interval: cfg.TickInterval,
	}
}

// Create registers a new session in the Loading state and returns it.
func (m *Manager) Create() *Session {
	s := New(util.NewULID(), m.budget, m.interval)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = s
	return s
}

// Get returns the session with the given ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.NewSessionNotFoundError(id)
	}
	return s, nil
}

// Remove discards a session and cancels its countdown. Removing an unknown
// ID is a no-op.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		s.Invalidate()
		delete(m.sessions, id)
	}
}

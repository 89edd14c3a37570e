package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/autosave"
	"go.uber.org/zap"
)

// Manager owns the live sessions and attaches an autosave scheduler to
// each one.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	interval time.Duration
	ttl      time.Duration
	size     int
	save     autosave.SaveFunc
	logger   *zap.Logger

	baseCtx context.Context
}

// NewManager creates new Manager instance. Sessions started from it run
// their schedulers until ctx is cancelled, the session ends, or the
// session sits idle past ttl.
func NewManager(ctx context.Context, interval, ttl time.Duration, historySize int, save autosave.SaveFunc, logger *zap.Logger) *Manager {
	return &Manager{
		sessions: map[string]*Session{},
		interval: interval,
		ttl:      ttl,
		size:     historySize,
		save:     save,
		logger:   logger,
		baseCtx:  ctx,
	}
}

// Get returns the session with id
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if ok {
		s.Touch()
	}
	return s, ok
}

// Start creates a session with a fresh id and launches its scheduler
func (m *Manager) Start() *Session {
	s := &Session{
		ID:       uuid.NewString(),
		size:     m.size,
		lastSeen: time.Now(),
	}

	ctx, cancel := context.WithCancel(m.baseCtx)
	s.cancel = cancel
	s.sched = autosave.New(m.interval, s.Snapshot, m.save, m.logger)
	go s.sched.Run(ctx)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.Debug("session started", zap.String("session_id", s.ID))
	return s
}

// GetOrStart returns the session with id, starting a new one when id is
// empty or unknown.
func (m *Manager) GetOrStart(id string) *Session {
	if id != "" {
		if s, ok := m.Get(id); ok {
			return s
		}
	}
	return m.Start()
}

// End stops the session's scheduler and forgets the session. Ending an
// unknown session is a no-op.
func (m *Manager) End(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return
	}

	s.cancel()
	m.logger.Debug("session ended", zap.String("session_id", id))
}

// Run sweeps idle sessions until ctx is cancelled. A browser that
// disappears without a teardown event would otherwise leave its
// scheduler ticking forever.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.reapIdle(time.Now().Add(-m.ttl))
		}
	}
}

// reapIdle ends every session with no activity since cutoff. Cancelling
// the scheduler context still flushes a dirty draft on the way out.
func (m *Manager) reapIdle(cutoff time.Time) {
	m.mu.Lock()
	expired := []*Session{}
	for id, s := range m.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(m.sessions, id)
			expired = append(expired, s)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.cancel()
		m.logger.Debug("idle session reaped", zap.String("session_id", s.ID))
	}
}

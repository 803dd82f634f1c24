package scan

import (
	"sync"
	"time"

	"nutriscan-api/domain"
)

// Manager enforces the single-live-scan rule: at most one active session per
// user. Starting a new session while one is scanning is rejected.
type Manager struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	timeout     time.Duration
	newDetector func() Detector
}

func NewManager(newDetector func() Detector, timeout time.Duration) *Manager {
	return &Manager{
		sessions:    make(map[string]*Session),
		timeout:     timeout,
		newDetector: newDetector,
	}
}

func (m *Manager) StartSession(userID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cur, ok := m.sessions[userID]; ok && cur.Active() {
		return nil, domain.ErrScanInProgress
	}

	sess := NewSession(m.newDetector(), m.timeout)
	if err := sess.Start(); err != nil {
		return nil, err
	}
	m.sessions[userID] = sess
	return sess, nil
}

// EndSession cancels and forgets the session. A newer session registered for
// the same user is left alone.
func (m *Manager) EndSession(userID string, sess *Session) {
	sess.Cancel()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessions[userID] == sess {
		delete(m.sessions, userID)
	}
}

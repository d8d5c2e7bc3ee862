package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	ErrNoSession = errors.New("no_active_session")
	ErrConflict  = errors.New("game_in_progress")
)

// Manager owns every live session, keyed by the opaque client token. Access
// always goes through the manager; there is no ambient session state.
type Manager struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(ttl time.Duration) *Manager {
	return NewManagerWithClock(ttl, time.Now)
}

// NewManagerWithClock exists for tests that control time.
func NewManagerWithClock(ttl time.Duration, now func() time.Time) *Manager {
	return &Manager{
		ttl:      ttl,
		now:      now,
		sessions: make(map[string]*Session),
	}
}

// Resolve returns a copy of the token's session. A session idle past the
// inactivity timeout is destroyed on the spot and reported as absent.
func (m *Manager) Resolve(token string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.liveLocked(token)
	if s == nil {
		return Session{}, false
	}
	return *s, true
}

// StartNew creates a fresh session for the token. It fails with ErrConflict
// while an unfinished game is active.
func (m *Manager) StartNew(token, gameID, playerName string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s := m.liveLocked(token); s != nil && s.Round < 10 {
		return Session{}, ErrConflict
	}
	s := &Session{
		GameID:       gameID,
		PlayerName:   playerName,
		LastActivity: m.now(),
	}
	m.sessions[token] = s
	return *s, nil
}

// Reset destroys the token's session. Resetting an absent session is a no-op.
func (m *Manager) Reset(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}

// Update runs fn against the live session under the manager's lock and
// refreshes last_activity when fn succeeds. fn returning an error leaves the
// recorded state as fn left it, so fn must only mutate on its success path.
func (m *Manager) Update(token string, fn func(*Session) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.liveLocked(token)
	if s == nil {
		return ErrNoSession
	}
	if err := fn(s); err != nil {
		return err
	}
	s.LastActivity = m.now()
	return nil
}

// StartJanitor sweeps idle sessions in the background so abandoned games do
// not pin memory until their token reappears.
func (m *Manager) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.sweep()
			}
		}
	}()
}

func (m *Manager) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for token, s := range m.sessions {
		if now.Sub(s.LastActivity) > m.ttl {
			log.Info().Str("game_id", s.GameID).Msg("session expired due to inactivity")
			delete(m.sessions, token)
		}
	}
}

// liveLocked returns the token's session, expiring it first if idle too long.
func (m *Manager) liveLocked(token string) *Session {
	s, ok := m.sessions[token]
	if !ok {
		return nil
	}
	if m.now().Sub(s.LastActivity) > m.ttl {
		log.Info().Str("game_id", s.GameID).Msg("session expired due to inactivity")
		delete(m.sessions, token)
		return nil
	}
	return s
}

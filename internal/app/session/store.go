package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/curricuforge/internal/pkg/apperrors"
)

// Store holds the live sessions in memory
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	now      func() time.Time
	logger   zerolog.Logger
}

// NewStore creates an empty store
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		now:      time.Now,
		logger:   logger.With().Str("component", "session_store").Logger(),
	}
}

// Create opens a new session in the landing view with default parameters
func (s *Store) Create() *Session {
	sess := newSession(s.now)

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Debug().Str("session_id", sess.ID.String()).Msg("Session created")
	return sess
}

// Get looks a session up by its textual id
func (s *Store) Get(id string) (*Session, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrSessionNotFound, id)
	}

	s.mu.RLock()
	sess, ok := s.sessions[uid]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, uid)
	}
	return sess, nil
}

// Resolve returns the canonical ID of an existing session
func (s *Store) Resolve(id string) (string, error) {
	sess, err := s.Get(id)
	if err != nil {
		return "", err
	}
	return sess.ID.String(), nil
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes sessions idle for longer than idle. Sessions with an
// outstanding generation are kept.
func (s *Store) Sweep(idle time.Duration) int {
	cutoff := s.now().Add(-idle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		lastSeen, generating := sess.idleSince()
		if generating || lastSeen.After(cutoff) {
			continue
		}
		delete(s.sessions, id)
		removed++
	}
	return removed
}

// Run sweeps idle sessions every interval until ctx is done
func (s *Store) Run(ctx context.Context, interval, idle time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", interval).Dur("idle_timeout", idle).Msg("Session sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Session sweeper stopped")
			return nil
		case <-ticker.C:
			if n := s.Sweep(idle); n > 0 {
				s.logger.Info().Int("removed", n).Int("remaining", s.Len()).Msg("Swept idle sessions")
			}
		}
	}
}

package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/curricuforge/internal/app/session"
)

// SessionService defines the operations on session lifecycle and view state
type SessionService interface {
	CreateSession(ctx context.Context) session.Snapshot
	GetSession(ctx context.Context, sessionID string) (*session.Snapshot, error)
	Navigate(ctx context.Context, sessionID string, event session.Event) (session.State, error)
}

// sessionServiceImpl implements the SessionService interface
type sessionServiceImpl struct {
	store  *session.Store
	events EventPublisher
	logger zerolog.Logger
}

// NewSessionService creates a new session service instance
func NewSessionService(store *session.Store, events EventPublisher, logger zerolog.Logger) SessionService {
	return &sessionServiceImpl{
		store:  store,
		events: publisherOrNop(events),
		logger: logger.With().Str("component", "session_service").Logger(),
	}
}

func (s *sessionServiceImpl) CreateSession(ctx context.Context) session.Snapshot {
	sess := s.store.Create()
	s.logger.Info().Str("session_id", sess.ID.String()).Int("sessions", s.store.Len()).Msg("Session opened")
	return sess.Snapshot()
}

func (s *sessionServiceImpl) GetSession(ctx context.Context, sessionID string) (*session.Snapshot, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	snap := sess.Snapshot()
	return &snap, nil
}

// Navigate applies a view transition requested by the client
func (s *sessionServiceImpl) Navigate(ctx context.Context, sessionID string, event session.Event) (session.State, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return session.State{}, err
	}

	st, err := sess.Navigate(event)
	if err != nil {
		s.logger.Debug().Err(err).Str("session_id", sessionID).Str("event", string(event.Type)).Msg("Transition rejected")
		return session.State{}, err
	}
	s.events.Publish(sess.ID.String(), EventStateChanged, st)
	return st, nil
}

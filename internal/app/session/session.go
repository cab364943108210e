package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yigit/curricuforge/internal/app/curriculum"
	"github.com/yigit/curricuforge/internal/app/models"
	"github.com/yigit/curricuforge/internal/pkg/apperrors"
)

// Data is the mutable part of a session. It is only reachable through
// Session.Do, which holds the session lock.
type Data struct {
	State      State
	Params     models.GenerationParams
	Curriculum *models.Curriculum
	Warnings   curriculum.Violations
}

// Session is one client's workspace
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu       sync.Mutex
	data     Data
	lastSeen time.Time
	now      func() time.Time
}

// Snapshot is a copy of a session safe to read without the lock
type Snapshot struct {
	ID         uuid.UUID               `json:"id"`
	State      State                   `json:"state"`
	Params     models.GenerationParams `json:"params"`
	Curriculum *models.Curriculum      `json:"curriculum,omitempty"`
	Warnings   curriculum.Violations   `json:"warnings"`
	CreatedAt  time.Time               `json:"createdAt"`
	LastSeen   time.Time               `json:"lastSeen"`
}

func newSession(now func() time.Time) *Session {
	t := now()
	return &Session{
		ID:        uuid.New(),
		CreatedAt: t,
		lastSeen:  t,
		now:       now,
		data: Data{
			State:  Landing(),
			Params: models.DefaultParams(),
		},
	}
}

// Do runs fn with exclusive access to the session data
func (s *Session) Do(fn func(d *Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()
	return fn(&s.data)
}

// Snapshot returns a deep copy of the session
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	warnings := make(curriculum.Violations, len(s.data.Warnings))
	copy(warnings, s.data.Warnings)
	return Snapshot{
		ID:         s.ID,
		State:      s.data.State,
		Params:     s.data.Params,
		Curriculum: s.data.Curriculum.Clone(),
		Warnings:   warnings,
		CreatedAt:  s.CreatedAt,
		LastSeen:   s.lastSeen,
	}
}

// Navigate applies a client event
func (s *Session) Navigate(e Event) (State, error) {
	var next State
	err := s.Do(func(d *Data) error {
		if !e.Navigable() {
			return fmt.Errorf("%w: %q is not a navigation event", apperrors.ErrInvalidTransition, e.Type)
		}
		if e.Type == EventViewResult && d.Curriculum == nil {
			return apperrors.ErrNoCurriculum
		}
		st, err := Transition(d.State, e)
		if err != nil {
			return err
		}
		d.State = st
		next = st
		return nil
	})
	return next, err
}

// BeginGeneration moves the session into the generating phase for mode,
// passing through mode selection when the client did not. An uploaded
// previous curriculum is kept unless params carries its own. A session that
// is already generating yields apperrors.ErrGenerationInProgress.
func (s *Session) BeginGeneration(params models.GenerationParams) (models.GenerationParams, error) {
	var accepted models.GenerationParams
	err := s.Do(func(d *Data) error {
		if d.State.Generating() {
			return apperrors.ErrGenerationInProgress
		}

		mode := params.Mode
		if mode == "" && d.State.View == ViewGenerate {
			mode = d.State.Mode
		}
		if !mode.Valid() {
			return apperrors.NewValidationError("mode", "select institutional or external before generating")
		}
		params.Mode = mode
		if params.PreviousCurriculum == "" {
			params.PreviousCurriculum = d.Params.PreviousCurriculum
		}

		st := d.State
		if st.View != ViewGenerate || st.Phase != PhaseForm || st.Mode != mode {
			st = State{View: ViewGenerate, Phase: PhaseForm, Mode: mode}
		}
		st, err := Transition(st, Event{Type: EventSubmit})
		if err != nil {
			return err
		}

		d.State = st
		d.Params = params
		accepted = params
		return nil
	})
	return accepted, err
}

// FinishGeneration leaves the generating phase. On success the curriculum
// is replaced wholesale and warnings recomputed; on failure the previous
// curriculum is kept untouched.
func (s *Session) FinishGeneration(c *models.Curriculum, genErr error) (State, error) {
	var next State
	err := s.Do(func(d *Data) error {
		ev := Event{Type: EventGenerationSucceeded}
		if genErr != nil || c == nil {
			ev.Type = EventGenerationFailed
		}
		st, err := Transition(d.State, ev)
		if err != nil {
			return err
		}
		d.State = st
		if ev.Type == EventGenerationSucceeded {
			d.Curriculum = c
			d.Warnings = curriculum.Validate(c)
		}
		next = st
		return nil
	})
	return next, err
}

func (s *Session) idleSince() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen, s.data.State.Generating()
}

// Package session keeps per-client curriculum state in memory: the view
// state machine, the form parameters and the curriculum being edited.
package session

import (
	"fmt"

	"github.com/yigit/curricuforge/internal/app/models"
	"github.com/yigit/curricuforge/internal/pkg/apperrors"
)

// View is a top-level screen
type View string

const (
	ViewLanding  View = "landing"
	ViewGenerate View = "generate"
	ViewTrends   View = "trends"
	ViewResult   View = "result"
)

// Phase is the step inside the generate view
type Phase string

const (
	PhaseModeSelect Phase = "mode_select"
	PhaseForm       Phase = "form"
	PhaseGenerating Phase = "generating"
)

// State is the current view. Phase and Mode are only set in ViewGenerate,
// Editing only in ViewResult.
type State struct {
	View    View                  `json:"view"`
	Phase   Phase                 `json:"phase,omitempty"`
	Mode    models.GenerationMode `json:"mode,omitempty"`
	Editing bool                  `json:"editing,omitempty"`
}

// Landing is the initial state
func Landing() State {
	return State{View: ViewLanding}
}

// Generating reports whether a generation call is outstanding
func (s State) Generating() bool {
	return s.View == ViewGenerate && s.Phase == PhaseGenerating
}

// EventType names a view transition
type EventType string

const (
	EventHome                EventType = "home"
	EventOpenGenerate        EventType = "open_generate"
	EventOpenTrends          EventType = "open_trends"
	EventSelectMode          EventType = "select_mode"
	EventClearMode           EventType = "clear_mode"
	EventSubmit              EventType = "submit"
	EventGenerationSucceeded EventType = "generation_succeeded"
	EventGenerationFailed    EventType = "generation_failed"
	EventToggleEdit          EventType = "toggle_edit"
	EventViewResult          EventType = "view_result"
)

// Event is a transition request. Mode is only read by select_mode.
type Event struct {
	Type EventType             `json:"event" binding:"required"`
	Mode models.GenerationMode `json:"mode,omitempty"`
}

// Navigable reports whether clients may send the event directly. The
// generation events are driven by the generate operation itself.
func (e Event) Navigable() bool {
	switch e.Type {
	case EventSubmit, EventGenerationSucceeded, EventGenerationFailed:
		return false
	}
	return true
}

// Transition returns the state reached from s on e. Nothing leaves the
// generating phase except the two generation outcome events.
func Transition(s State, e Event) (State, error) {
	if s.Generating() {
		switch e.Type {
		case EventGenerationSucceeded:
			return State{View: ViewResult}, nil
		case EventGenerationFailed:
			return State{View: ViewGenerate, Phase: PhaseForm, Mode: s.Mode}, nil
		}
		return s, invalid(s, e)
	}

	switch e.Type {
	case EventHome:
		return Landing(), nil
	case EventOpenGenerate:
		return State{View: ViewGenerate, Phase: PhaseModeSelect}, nil
	case EventOpenTrends:
		return State{View: ViewTrends}, nil
	case EventViewResult:
		return State{View: ViewResult}, nil
	case EventSelectMode:
		if s.View != ViewGenerate || s.Phase != PhaseModeSelect {
			return s, invalid(s, e)
		}
		if !e.Mode.Valid() {
			return s, apperrors.NewValidationError("mode", fmt.Sprintf("unknown generation mode %q", e.Mode))
		}
		return State{View: ViewGenerate, Phase: PhaseForm, Mode: e.Mode}, nil
	case EventClearMode:
		if s.View != ViewGenerate || s.Phase != PhaseForm {
			return s, invalid(s, e)
		}
		return State{View: ViewGenerate, Phase: PhaseModeSelect}, nil
	case EventSubmit:
		if s.View != ViewGenerate || s.Phase != PhaseForm {
			return s, invalid(s, e)
		}
		return State{View: ViewGenerate, Phase: PhaseGenerating, Mode: s.Mode}, nil
	case EventToggleEdit:
		if s.View != ViewResult {
			return s, invalid(s, e)
		}
		return State{View: ViewResult, Editing: !s.Editing}, nil
	}
	return s, invalid(s, e)
}

func invalid(s State, e Event) error {
	where := string(s.View)
	if s.Phase != "" {
		where += "/" + string(s.Phase)
	}
	return fmt.Errorf("%w: %q from %s", apperrors.ErrInvalidTransition, e.Type, where)
}

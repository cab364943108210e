package services

// Session event types pushed to subscribers of a session
const (
	EventStateChanged        = "state_changed"
	EventGenerationStarted   = "generation_started"
	EventGenerationSucceeded = "generation_succeeded"
	EventGenerationFailed    = "generation_failed"
	EventCurriculumEdited    = "curriculum_edited"
	EventPreviousImported    = "previous_curriculum_imported"
)

// EventPublisher delivers session events to live subscribers. Publishing
// must not block.
type EventPublisher interface {
	Publish(sessionID, eventType string, data interface{})
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, string, interface{}) {}

func publisherOrNop(p EventPublisher) EventPublisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}

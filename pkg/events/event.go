package events

import "time"

// Event type codes emitted by the knowledge store boundary.
const (
	TypeFactLearned  = "FACT_LEARNED"
	TypeFactUpdated  = "FACT_UPDATED"
	TypeFactConflict = "FACT_CONFLICT"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "FACT_LEARNED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the canonical Event implementation.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewFactEvent builds a knowledge event for one learned triple.
func NewFactEvent(eventType, subject, relationship, fact string) Event {
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"subject":      subject,
			"relationship": relationship,
			"fact":         fact,
		},
		OccurredAt: time.Now(),
	}
}

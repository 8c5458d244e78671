package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	Title string `json:"title"`
}

type SessionResponse struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}

type TurnRequest struct {
	SessionId string `json:"session_id" validate:"required,uuid"`
	Text      string `json:"text" validate:"required"`
}

type EnrichmentResponse struct {
	Agent           string `json:"agent,omitempty"`
	Object          string `json:"object,omitempty"`
	Attribute       string `json:"attribute,omitempty"`
	Action          string `json:"action,omitempty"`
	Urgency         string `json:"urgency"`
	MoodConnotation string `json:"mood_connotation"`
}

type TurnResponse struct {
	SessionId  string             `json:"session_id"`
	Reply      string             `json:"reply"`
	Mood       string             `json:"mood"`
	Tone       string             `json:"tone"`
	Outcome    string             `json:"outcome,omitempty"`
	Enrichment EnrichmentResponse `json:"enrichment"`
}

type TurnHistoryItemResponse struct {
	InputText  string             `json:"input_text"`
	Reply      string             `json:"reply"`
	Mood       string             `json:"mood"`
	Tone       string             `json:"tone"`
	Outcome    string             `json:"outcome,omitempty"`
	Enrichment EnrichmentResponse `json:"enrichment"`
	CreatedAt  time.Time          `json:"created_at"`
}

// PublishTurnCompletedMessage is the async payload carrying one finished
// turn from the orchestrator to the transcript consumer.
type PublishTurnCompletedMessage struct {
	TurnId     uuid.UUID          `json:"turn_id"`
	SessionId  uuid.UUID          `json:"session_id"`
	InputText  string             `json:"input_text"`
	Reply      string             `json:"reply"`
	Mood       string             `json:"mood"`
	Tone       string             `json:"tone"`
	Outcome    string             `json:"outcome,omitempty"`
	Enrichment EnrichmentResponse `json:"enrichment"`
	OccurredAt time.Time          `json:"occurred_at"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// TurnEnrichment carries the pipeline tags attached to a processed turn.
type TurnEnrichment struct {
	Agent           string `json:"agent,omitempty"`
	Object          string `json:"object,omitempty"`
	Attribute       string `json:"attribute,omitempty"`
	Action          string `json:"action,omitempty"`
	Urgency         string `json:"urgency"`
	MoodConnotation string `json:"mood_connotation"`
}

type DialogueTurn struct {
	Id                uuid.UUID
	DialogueSessionId uuid.UUID
	InputText         string
	Reply             string
	Mood              string
	Tone              string
	Outcome           string
	Enrichment        TurnEnrichment
	CreatedAt         time.Time
}

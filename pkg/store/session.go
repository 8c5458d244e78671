package store

import (
	"ai-dialogue-be/pkg/semantics"
)

// Session is the active dialogue session state held in memory. History is
// append-only: the context resolver reads only its last element and nothing
// mutates an entry after it has been appended.
type Session struct {
	ID      string               `json:"id"` // DialogueSessionID
	Title   string               `json:"title"`
	State   string               `json:"state"` // "IDLE" | "PROCESSING" | "CLOSED"
	History []*semantics.Thought `json:"history"`

	// Metadata for last interaction
	LastInput string `json:"last_input"`
}

const (
	StateIdle       = "IDLE"
	StateProcessing = "PROCESSING"
	StateClosed     = "CLOSED"
)

// Append records a fully enriched thought as the latest turn.
func (s *Session) Append(thought *semantics.Thought) {
	s.History = append(s.History, thought)
	s.LastInput = thought.InputText
}

// Last returns the most recent turn, or nil for a fresh session.
func (s *Session) Last() *semantics.Thought {
	if len(s.History) == 0 {
		return nil
	}
	return s.History[len(s.History)-1]
}

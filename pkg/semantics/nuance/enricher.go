package nuance

import (
	"strings"

	"ai-dialogue-be/pkg/semantics"
)

// Connotation is a verb's implied urgency and emotional coloring.
type Connotation struct {
	Urgency string
	Mood    string
}

// verbTable maps action lemmas to their connotation. Verbs outside the
// table leave the thought's defaults untouched.
var verbTable = map[string]Connotation{
	"race":   {Urgency: "high", Mood: "hurried"},
	"rush":   {Urgency: "high", Mood: "stressed"},
	"hurry":  {Urgency: "high", Mood: "anxious"},
	"walk":   {Urgency: "low", Mood: "casual"},
	"stroll": {Urgency: "low", Mood: "leisurely"},
	"wander": {Urgency: "low", Mood: "aimless"},
	"chase":  {Urgency: "medium", Mood: "aggressive"},
	"write":  {Urgency: "neutral", Mood: "creative"},
	"eat":    {Urgency: "low", Mood: "neutral"},
}

// Enricher tags a thought with urgency and mood connotation based on its
// action verb. Pure lookup, no failure modes.
type Enricher struct{}

func NewEnricher() *Enricher {
	return &Enricher{}
}

func (e *Enricher) Enrich(thought *semantics.Thought) *semantics.Thought {
	if thought.Action == "" {
		return thought
	}
	if c, ok := verbTable[strings.ToLower(thought.Action)]; ok {
		thought.Urgency = c.Urgency
		thought.MoodConnotation = c.Mood
	}
	return thought
}

package tone

import (
	"strings"

	"ai-dialogue-be/pkg/semantics"
)

// A sentence is read as sarcastic when a strongly positive word co-occurs
// with an action that implies something went wrong.
var (
	positiveLexicon      = []string{"great", "perfect", "fantastic", "wonderful", "lovely"}
	negativeContextVerbs = map[string]bool{
		"spill":  true,
		"break":  true,
		"lose":   true,
		"forget": true,
		"drop":   true,
	}
)

// Enricher detects non-literal tone from lexical co-occurrence. Total and
// deterministic: every thought leaves with its tone set.
type Enricher struct{}

func NewEnricher() *Enricher {
	return &Enricher{}
}

func (e *Enricher) Enrich(thought *semantics.Thought) *semantics.Thought {
	thought.Tone = semantics.Neutral

	sentence := strings.ToLower(thought.InputText)
	hasPositive := false
	for _, word := range positiveLexicon {
		if strings.Contains(sentence, word) {
			hasPositive = true
			break
		}
	}

	if hasPositive && negativeContextVerbs[strings.ToLower(thought.Action)] {
		thought.Tone = semantics.ToneSarcastic
	}
	return thought
}

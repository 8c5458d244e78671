package tone

import (
	"testing"

	"ai-dialogue-be/pkg/semantics"
)

func TestEnrich(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		action   string
		wantTone string
	}{
		{
			name:     "positive word with negative verb is sarcastic",
			text:     "That's just great, I dropped it.",
			action:   "drop",
			wantTone: semantics.ToneSarcastic,
		},
		{
			name:     "positive word with positive verb stays neutral",
			text:     "That's just great, I won the race.",
			action:   "win",
			wantTone: semantics.Neutral,
		},
		{
			name:     "negative verb without positive word stays neutral",
			text:     "I dropped the glass.",
			action:   "drop",
			wantTone: semantics.Neutral,
		},
		{
			name:     "uppercase input still matches",
			text:     "PERFECT, I spilled the coffee.",
			action:   "spill",
			wantTone: semantics.ToneSarcastic,
		},
		{
			name:     "tone resets on re-enrichment",
			text:     "Nothing remarkable happened.",
			action:   "walk",
			wantTone: semantics.Neutral,
		},
	}

	e := NewEnricher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := semantics.NewThought(tt.text)
			th.Action = tt.action
			got := e.Enrich(th)
			if got.Tone != tt.wantTone {
				t.Errorf("Tone = %q, want %q", got.Tone, tt.wantTone)
			}
		})
	}
}

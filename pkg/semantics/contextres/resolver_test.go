package contextres

import (
	"testing"

	"ai-dialogue-be/pkg/semantics"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		agent     string
		history   []*semantics.Thought
		wantAgent string
	}{
		{
			name:      "prefers previous object over agent",
			agent:     "it",
			history:   []*semantics.Thought{{Agent: "the dog", Object: "the ball"}},
			wantAgent: "the ball",
		},
		{
			name:      "falls back to previous agent",
			agent:     "it",
			history:   []*semantics.Thought{{Agent: "the dog"}},
			wantAgent: "the dog",
		},
		{
			name:      "case insensitive pronoun match",
			agent:     "It",
			history:   []*semantics.Thought{{Object: "the car"}},
			wantAgent: "the car",
		},
		{
			name:      "only the last entry is consulted",
			agent:     "it",
			history:   []*semantics.Thought{{Object: "the ball"}, {Object: "the engine"}},
			wantAgent: "the engine",
		},
		{
			name:      "no history",
			agent:     "it",
			history:   nil,
			wantAgent: "it",
		},
		{
			name:      "no antecedent in previous turn",
			agent:     "it",
			history:   []*semantics.Thought{{}},
			wantAgent: "it",
		},
		{
			name:      "non-pronoun agent untouched",
			agent:     "the cat",
			history:   []*semantics.Thought{{Object: "the ball"}},
			wantAgent: "the cat",
		},
	}

	r := NewResolver(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := &semantics.Thought{Agent: tt.agent}
			got := r.Resolve(th, tt.history)
			if got.Agent != tt.wantAgent {
				t.Errorf("Agent = %q, want %q", got.Agent, tt.wantAgent)
			}
		})
	}
}

package semantics

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		thought *Thought
		wantErr bool
	}{
		{
			name:    "indicative without payloads",
			thought: NewThought("the cat sat"),
			wantErr: false,
		},
		{
			name: "declarative fact with learning fact",
			thought: &Thought{
				Mood:         MoodDeclarativeFact,
				LearningFact: &FactTriple{Subject: "sky", Relationship: "color", Fact: "blue"},
			},
			wantErr: false,
		},
		{
			name: "declarative fact without learning fact",
			thought: &Thought{
				Mood: MoodDeclarativeFact,
			},
			wantErr: true,
		},
		{
			name: "interrogative fact with query fact",
			thought: &Thought{
				Mood:      MoodInterrogativeFact,
				QueryFact: &FactQuery{Subject: "france", Relationship: "capital"},
			},
			wantErr: false,
		},
		{
			name: "interrogative fact without query fact",
			thought: &Thought{
				Mood: MoodInterrogativeFact,
			},
			wantErr: true,
		},
		{
			name: "declarative fact carrying both payloads",
			thought: &Thought{
				Mood:         MoodDeclarativeFact,
				LearningFact: &FactTriple{Subject: "sky", Relationship: "color", Fact: "blue"},
				QueryFact:    &FactQuery{Subject: "sky", Relationship: "color"},
			},
			wantErr: true,
		},
		{
			name: "indicative carrying a query fact",
			thought: &Thought{
				Mood:      MoodIndicative,
				QueryFact: &FactQuery{Subject: "sky", Relationship: "color"},
			},
			wantErr: true,
		},
		{
			name: "unknown mood",
			thought: &Thought{
				Mood: "exclamatory",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.thought.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrContract) {
				t.Errorf("Validate() error = %v, want wrapped ErrContract", err)
			}
		})
	}
}

func TestNewThoughtDefaults(t *testing.T) {
	th := NewThought("hello")
	if th.Mood != MoodIndicative {
		t.Errorf("Mood = %q, want %q", th.Mood, MoodIndicative)
	}
	if th.Urgency != Neutral || th.MoodConnotation != Neutral || th.Tone != Neutral {
		t.Errorf("enrichment defaults = (%q, %q, %q), want all %q", th.Urgency, th.MoodConnotation, th.Tone, Neutral)
	}
}

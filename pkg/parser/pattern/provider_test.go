package pattern

import (
	"context"
	"testing"

	"ai-dialogue-be/pkg/semantics"
)

func TestParseFactualShapes(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantMood string
		wantSub  string
		wantRel  string
		wantFact string
	}{
		{
			name:     "possessive statement",
			text:     "France's capital is Paris.",
			wantMood: semantics.MoodDeclarativeFact,
			wantSub:  "France",
			wantRel:  "capital",
			wantFact: "Paris",
		},
		{
			name:     "of statement",
			text:     "The capital of France is Paris.",
			wantMood: semantics.MoodDeclarativeFact,
			wantSub:  "France",
			wantRel:  "capital",
			wantFact: "Paris",
		},
		{
			name:     "article statement with inferred shape",
			text:     "The ball is round.",
			wantMood: semantics.MoodDeclarativeFact,
			wantSub:  "ball",
			wantRel:  "shape",
			wantFact: "round",
		},
		{
			name:     "article statement with inferred color",
			text:     "The sky is blue.",
			wantMood: semantics.MoodDeclarativeFact,
			wantSub:  "sky",
			wantRel:  "color",
			wantFact: "blue",
		},
		{
			name:     "article statement defaults to state",
			text:     "The engine is loud.",
			wantMood: semantics.MoodDeclarativeFact,
			wantSub:  "engine",
			wantRel:  "state",
			wantFact: "loud",
		},
		{
			name:     "of question",
			text:     "What is the capital of France?",
			wantMood: semantics.MoodInterrogativeFact,
			wantSub:  "France",
			wantRel:  "capital",
		},
		{
			name:     "what-relationship question",
			text:     "What shape is the ball?",
			wantMood: semantics.MoodInterrogativeFact,
			wantSub:  "ball",
			wantRel:  "shape",
		},
		{
			name:     "plural of question",
			text:     "What are the has_part of the car?",
			wantMood: semantics.MoodInterrogativeFact,
			wantSub:  "car",
			wantRel:  "has_part",
		},
	}

	p := NewProvider()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := p.Parse(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if th.Mood != tt.wantMood {
				t.Fatalf("Mood = %q, want %q", th.Mood, tt.wantMood)
			}
			switch tt.wantMood {
			case semantics.MoodDeclarativeFact:
				if th.LearningFact == nil {
					t.Fatal("LearningFact is nil")
				}
				if th.LearningFact.Subject != tt.wantSub || th.LearningFact.Relationship != tt.wantRel || th.LearningFact.Fact != tt.wantFact {
					t.Errorf("LearningFact = %+v, want (%s, %s, %s)", th.LearningFact, tt.wantSub, tt.wantRel, tt.wantFact)
				}
			case semantics.MoodInterrogativeFact:
				if th.QueryFact == nil {
					t.Fatal("QueryFact is nil")
				}
				if th.QueryFact.Subject != tt.wantSub || th.QueryFact.Relationship != tt.wantRel {
					t.Errorf("QueryFact = %+v, want (%s, %s)", th.QueryFact, tt.wantSub, tt.wantRel)
				}
			}
			if err := th.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestParseActionFallback(t *testing.T) {
	p := NewProvider()

	th, err := p.Parse(context.Background(), "That's just great, I dropped it.")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if th.Action != "drop" {
		t.Errorf("Action = %q, want %q", th.Action, "drop")
	}
	if th.Object != "it" {
		t.Errorf("Object = %q, want %q", th.Object, "it")
	}
	if th.Mood != semantics.MoodIndicative {
		t.Errorf("Mood = %q, want %q", th.Mood, semantics.MoodIndicative)
	}
}

func TestParsePronounAttribute(t *testing.T) {
	p := NewProvider()

	th, err := p.Parse(context.Background(), "It is shiny.")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if th.Agent != "It" && th.Agent != "it" {
		t.Errorf("Agent = %q, want pronoun", th.Agent)
	}
	if th.Attribute != "shiny" {
		t.Errorf("Attribute = %q, want %q", th.Attribute, "shiny")
	}
}

func TestParseQuestionFallback(t *testing.T) {
	p := NewProvider()

	th, err := p.Parse(context.Background(), "Do you like music?")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if th.Mood != semantics.MoodInterrogative {
		t.Errorf("Mood = %q, want %q", th.Mood, semantics.MoodInterrogative)
	}
}

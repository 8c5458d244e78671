package respond

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"ai-dialogue-be/internal/pkg/logger"
	"ai-dialogue-be/pkg/knowledge"
	"ai-dialogue-be/pkg/semantics"

	"github.com/stretchr/testify/assert"
)

type stubStore struct {
	learnOutcome knowledge.Outcome
	learnErr     error
	queryAnswers []string
	queryErr     error

	learnCalls int
	queryCalls int
}

func (s *stubStore) Learn(_ context.Context, _, _, _, _ string) (knowledge.Outcome, error) {
	s.learnCalls++
	return s.learnOutcome, s.learnErr
}

func (s *stubStore) Query(_ context.Context, _, _ string) ([]string, error) {
	s.queryCalls++
	return s.queryAnswers, s.queryErr
}

func testLogger(t *testing.T) logger.ILogger {
	t.Helper()
	return logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log"))
}

func declarative(subject, relationship, fact string) *semantics.Thought {
	th := semantics.NewThought(subject + " " + relationship + " " + fact)
	th.Mood = semantics.MoodDeclarativeFact
	th.LearningFact = &semantics.FactTriple{Subject: subject, Relationship: relationship, Fact: fact}
	return th
}

func interrogative(subject, relationship string) *semantics.Thought {
	th := semantics.NewThought("what " + relationship + " " + subject)
	th.Mood = semantics.MoodInterrogativeFact
	th.QueryFact = &semantics.FactQuery{Subject: subject, Relationship: relationship}
	return th
}

func TestDecideLearnOutcomes(t *testing.T) {
	tests := []struct {
		name      string
		outcome   knowledge.Outcome
		wantInMsg string
	}{
		{name: "learned", outcome: knowledge.OutcomeLearned, wantInMsg: "I've learned that the color of sky is blue"},
		{name: "updated", outcome: knowledge.OutcomeUpdated, wantInMsg: "updated my belief"},
		{name: "already known", outcome: knowledge.OutcomeAlreadyKnown, wantInMsg: "I already know"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubStore{learnOutcome: tt.outcome}
			d := NewDecider(store, testLogger(t))

			result := d.Decide(context.Background(), declarative("sky", "color", "blue"))

			assert.NoError(t, result.Err)
			assert.Equal(t, tt.outcome, result.Outcome)
			assert.Contains(t, result.Reply, tt.wantInMsg)
			assert.Equal(t, 1, store.learnCalls)
		})
	}
}

func TestDecideConflictIncludesKnownFacts(t *testing.T) {
	store := &stubStore{
		learnOutcome: knowledge.OutcomeConflictWithConstant,
		queryAnswers: []string{"round"},
	}
	d := NewDecider(store, testLogger(t))

	result := d.Decide(context.Background(), declarative("ball", "shape", "square"))

	assert.Equal(t, knowledge.OutcomeConflictWithConstant, result.Outcome)
	assert.Contains(t, result.Reply, "round")
	assert.Equal(t, 1, store.queryCalls, "conflict path must read the existing value")
}

func TestDecideQueryVerbAgreement(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		want    string
	}{
		{name: "single answer uses is", answers: []string{"paris"}, want: "is: paris."},
		{name: "multiple answers use are and and", answers: []string{"engine", "wheel"}, want: "are: engine, and wheel."},
		{name: "three answers keep commas", answers: []string{"engine", "wheel", "door"}, want: "are: engine, wheel, and door."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubStore{queryAnswers: tt.answers}
			d := NewDecider(store, testLogger(t))

			result := d.Decide(context.Background(), interrogative("car", "has_part"))

			assert.True(t, strings.HasSuffix(result.Reply, tt.want), "reply %q should end with %q", result.Reply, tt.want)
		})
	}
}

func TestDecideQueryNoInformation(t *testing.T) {
	store := &stubStore{}
	d := NewDecider(store, testLogger(t))

	result := d.Decide(context.Background(), interrogative("moon", "capital"))

	assert.Contains(t, result.Reply, "don't have any information")
}

func TestDecideStoreUnavailable(t *testing.T) {
	store := &stubStore{learnErr: knowledge.ErrStoreUnavailable}
	d := NewDecider(store, testLogger(t))

	result := d.Decide(context.Background(), declarative("sky", "color", "blue"))

	assert.Error(t, result.Err)
	assert.Contains(t, result.Reply, "trouble remembering")
}

func TestDecidePriorityOrder(t *testing.T) {
	store := &stubStore{learnOutcome: knowledge.OutcomeLearned}
	d := NewDecider(store, testLogger(t))

	// A sarcastic factual statement must still learn: rule 1 precedes rule 3.
	th := declarative("sky", "color", "blue")
	th.Tone = semantics.ToneSarcastic
	result := d.Decide(context.Background(), th)
	assert.Equal(t, 1, store.learnCalls)
	assert.Contains(t, result.Reply, "learned")

	// Sarcasm precedes the attribute observation rule.
	th2 := semantics.NewThought("great, it broke")
	th2.Tone = semantics.ToneSarcastic
	th2.Attribute = "broken"
	result = d.Decide(context.Background(), th2)
	assert.Equal(t, msgSarcasm, result.Reply)

	// Attribute observation with defaulted agent.
	th3 := semantics.NewThought("it is shiny")
	th3.Attribute = "shiny"
	result = d.Decide(context.Background(), th3)
	assert.Contains(t, result.Reply, "It certainly seems to be shiny")

	// Plain statement falls through to the acknowledgment.
	th4 := semantics.NewThought("the dog ran")
	result = d.Decide(context.Background(), th4)
	assert.Equal(t, msgDefault, result.Reply)

	// Non-factual question.
	th5 := semantics.NewThought("do you dream?")
	th5.Mood = semantics.MoodInterrogative
	result = d.Decide(context.Background(), th5)
	assert.Equal(t, msgCannotAnswer, result.Reply)
}

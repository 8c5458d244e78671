package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"ai-dialogue-be/internal/dto"
	"ai-dialogue-be/internal/model"
	"ai-dialogue-be/internal/pkg/logger"
	"ai-dialogue-be/internal/repository/memory"
	"ai-dialogue-be/internal/repository/unitofwork"
	"ai-dialogue-be/pkg/database"
	"ai-dialogue-be/pkg/knowledge"
	"ai-dialogue-be/pkg/respond"
	"ai-dialogue-be/pkg/semantics"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubParser maps exact input text to canned thoughts.
type stubParser struct {
	thoughts map[string]*semantics.Thought
}

func (p *stubParser) Parse(ctx context.Context, text string) (*semantics.Thought, error) {
	if thought, ok := p.thoughts[text]; ok {
		return thought, nil
	}
	return nil, fmt.Errorf("%w: no reading for %q", semantics.ErrContract, text)
}

type dialogueFixture struct {
	service  IDialogueService
	sessions *memory.SessionRepository
	store    *knowledge.Store
}

func newDialogueFixture(t *testing.T, parser *stubParser) *dialogueFixture {
	t.Helper()

	dir := t.TempDir()
	gormDB, err := database.NewSqliteDB(filepath.Join(dir, "dialogue.db"))
	require.NoError(t, err)

	err = gormDB.AutoMigrate(&model.KnowledgeFact{}, &model.DialogueSession{}, &model.DialogueTurn{})
	require.NoError(t, err)

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	log := logger.NewIsolatedLogger(filepath.Join(dir, "test.log"))

	store := knowledge.NewStore(uowFactory, knowledge.DefaultClassification(), log, nil)
	require.NoError(t, store.Seed(context.Background(), knowledge.DefaultConstants))

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	publisher := NewPublisherService(pubSub, "TURN_COMPLETED")

	sessions := memory.NewSessionRepository()
	decider := respond.NewDecider(store, log)

	svc := NewDialogueService(uowFactory, sessions, parser, decider, publisher, nil, log)
	return &dialogueFixture{service: svc, sessions: sessions, store: store}
}

func declarative(text, subject, relationship, fact string) *semantics.Thought {
	thought := semantics.NewThought(text)
	thought.Mood = semantics.MoodDeclarativeFact
	thought.LearningFact = &semantics.FactTriple{Subject: subject, Relationship: relationship, Fact: fact}
	return thought
}

func interrogative(text, subject, relationship string) *semantics.Thought {
	thought := semantics.NewThought(text)
	thought.Mood = semantics.MoodInterrogativeFact
	thought.QueryFact = &semantics.FactQuery{Subject: subject, Relationship: relationship}
	return thought
}

func (f *dialogueFixture) newSession(t *testing.T) uuid.UUID {
	t.Helper()
	res, err := f.service.CreateSession(context.Background(), &dto.CreateSessionRequest{})
	require.NoError(t, err)
	id, err := uuid.Parse(res.Id)
	require.NoError(t, err)
	return id
}

func TestHandleTurnConflictKeepsConstant(t *testing.T) {
	ctx := context.Background()
	parser := &stubParser{thoughts: map[string]*semantics.Thought{
		"The ball is square.": declarative("The ball is square.", "ball", "shape", "square"),
	}}
	f := newDialogueFixture(t, parser)
	sessionId := f.newSession(t)

	res, err := f.service.HandleTurn(ctx, sessionId, "The ball is square.")
	require.NoError(t, err)

	assert.Equal(t, "CONFLICT_WITH_CONSTANT", res.Outcome)
	assert.Contains(t, res.Reply, "round")

	facts, err := f.store.Query(ctx, "ball", "shape")
	require.NoError(t, err)
	assert.Equal(t, []string{"round"}, facts)
}

func TestHandleTurnPluralQueryEnumeratesInOrder(t *testing.T) {
	ctx := context.Background()
	parser := &stubParser{thoughts: map[string]*semantics.Thought{
		"What are the parts of a car?": interrogative("What are the parts of a car?", "car", "has_part"),
	}}
	f := newDialogueFixture(t, parser)
	sessionId := f.newSession(t)

	res, err := f.service.HandleTurn(ctx, sessionId, "What are the parts of a car?")
	require.NoError(t, err)

	assert.Equal(t, "Based on what I know, the has_part of car are: engine, and wheel.", res.Reply)
	assert.Empty(t, res.Outcome)
}

func TestHandleTurnLearnsAndRecalls(t *testing.T) {
	ctx := context.Background()
	parser := &stubParser{thoughts: map[string]*semantics.Thought{
		"The capital of Italy is Rome.": declarative("The capital of Italy is Rome.", "Italy", "capital", "Rome"),
		"What is the capital of Italy?": interrogative("What is the capital of Italy?", "Italy", "capital"),
	}}
	f := newDialogueFixture(t, parser)
	sessionId := f.newSession(t)

	res, err := f.service.HandleTurn(ctx, sessionId, "The capital of Italy is Rome.")
	require.NoError(t, err)
	assert.Equal(t, "LEARNED", res.Outcome)
	assert.Equal(t, "Okay, I've learned that the capital of Italy is Rome.", res.Reply)

	res, err = f.service.HandleTurn(ctx, sessionId, "What is the capital of Italy?")
	require.NoError(t, err)
	assert.Equal(t, "Based on what I know, the capital of Italy is: Rome.", res.Reply)
}

func TestHandleTurnParseFailureLeavesHistoryUntouched(t *testing.T) {
	ctx := context.Background()
	parser := &stubParser{thoughts: map[string]*semantics.Thought{}}
	f := newDialogueFixture(t, parser)
	sessionId := f.newSession(t)

	res, err := f.service.HandleTurn(ctx, sessionId, "blorp fizz")
	require.NoError(t, err)
	assert.Equal(t, respond.MsgNotUnderstood, res.Reply)
	assert.Empty(t, res.Outcome)

	session, found := f.sessions.Get(sessionId.String())
	require.True(t, found)
	assert.Empty(t, session.History)
}

func TestHandleTurnResolvesPronounFromHistory(t *testing.T) {
	ctx := context.Background()
	first := semantics.NewThought("The dog runs.")
	first.Agent = "dog"
	first.Action = "run"

	second := semantics.NewThought("It is fast.")
	second.Agent = "it"
	second.Attribute = "fast"

	parser := &stubParser{thoughts: map[string]*semantics.Thought{
		"The dog runs.": first,
		"It is fast.":   second,
	}}
	f := newDialogueFixture(t, parser)
	sessionId := f.newSession(t)

	_, err := f.service.HandleTurn(ctx, sessionId, "The dog runs.")
	require.NoError(t, err)

	res, err := f.service.HandleTurn(ctx, sessionId, "It is fast.")
	require.NoError(t, err)

	assert.Equal(t, "dog", res.Enrichment.Agent)
	assert.Contains(t, res.Reply, "dog certainly seems to be fast")
}

func TestClosedSessionSurvivesCacheEviction(t *testing.T) {
	ctx := context.Background()
	f := newDialogueFixture(t, &stubParser{})
	sessionId := f.newSession(t)

	require.NoError(t, f.service.CloseSession(ctx, sessionId))

	// Drop the cached entry so the state has to be rebuilt from the
	// soft-deleted database row.
	f.sessions.Delete(sessionId.String())

	_, err := f.service.HandleTurn(ctx, sessionId, "Hello.")
	assert.ErrorIs(t, err, ErrSessionClosed)

	assert.NoError(t, f.service.CloseSession(ctx, sessionId))
}

func TestHandleTurnUnknownSession(t *testing.T) {
	f := newDialogueFixture(t, &stubParser{})

	_, err := f.service.HandleTurn(context.Background(), uuid.New(), "Hello.")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestHandleTurnClosedSession(t *testing.T) {
	ctx := context.Background()
	f := newDialogueFixture(t, &stubParser{})
	sessionId := f.newSession(t)

	require.NoError(t, f.service.CloseSession(ctx, sessionId))

	_, err := f.service.HandleTurn(ctx, sessionId, "Hello.")
	assert.ErrorIs(t, err, ErrSessionClosed)

	// Closing again is a no-op.
	assert.NoError(t, f.service.CloseSession(ctx, sessionId))
}

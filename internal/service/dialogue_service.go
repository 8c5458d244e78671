package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"ai-dialogue-be/internal/constant"
	"ai-dialogue-be/internal/dto"
	"ai-dialogue-be/internal/entity"
	"ai-dialogue-be/internal/pkg/logger"
	"ai-dialogue-be/internal/repository/memory"
	"ai-dialogue-be/internal/repository/specification"
	"ai-dialogue-be/internal/repository/unitofwork"
	"ai-dialogue-be/pkg/events"
	"ai-dialogue-be/pkg/knowledge"
	pktNats "ai-dialogue-be/pkg/nats"
	"ai-dialogue-be/pkg/parser"
	"ai-dialogue-be/pkg/respond"
	"ai-dialogue-be/pkg/semantics"
	"ai-dialogue-be/pkg/semantics/contextres"
	"ai-dialogue-be/pkg/semantics/nuance"
	"ai-dialogue-be/pkg/semantics/tone"
	"ai-dialogue-be/pkg/store"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("dialogue session not found")
	ErrSessionClosed   = errors.New("dialogue session is closed")
	ErrSessionBusy     = errors.New("dialogue session is processing another turn")
)

const maxTitleLength = 60

type IDialogueService interface {
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	ListSessions(ctx context.Context) ([]*dto.SessionResponse, error)
	HandleTurn(ctx context.Context, sessionId uuid.UUID, text string) (*dto.TurnResponse, error)
	GetHistory(ctx context.Context, sessionId uuid.UUID, limit, offset int) ([]*dto.TurnHistoryItemResponse, error)
	CloseSession(ctx context.Context, sessionId uuid.UUID) error
}

type dialogueService struct {
	uowFactory       unitofwork.RepositoryFactory
	sessions         *memory.SessionRepository
	parserProvider   parser.Provider
	resolver         *contextres.Resolver
	nuanceEnricher   *nuance.Enricher
	toneEnricher     *tone.Enricher
	decider          *respond.Decider
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewDialogueService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	parserProvider parser.Provider,
	decider *respond.Decider,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IDialogueService {
	return &dialogueService{
		uowFactory:       uowFactory,
		sessions:         sessions,
		parserProvider:   parserProvider,
		resolver:         contextres.NewResolver(log),
		nuanceEnricher:   nuance.NewEnricher(),
		toneEnricher:     tone.NewEnricher(),
		decider:          decider,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (s *dialogueService) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = constant.DefaultSessionTitle
	}

	session := entity.DialogueSession{
		Id:        uuid.New(),
		Title:     title,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DialogueSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	s.sessions.Save(&store.Session{
		ID:    session.Id.String(),
		Title: session.Title,
		State: store.StateIdle,
	})

	s.publishEvent(ctx, events.BaseEvent{
		Type: constant.WsEventSessionCreated,
		Data: map[string]interface{}{
			"session_id": session.Id,
			"title":      session.Title,
		},
		OccurredAt: time.Now(),
	})

	s.logger.Info("DialogueService", "Session created", map[string]interface{}{
		"session_id": session.Id,
	})

	return &dto.SessionResponse{
		Id:        session.Id.String(),
		Title:     session.Title,
		State:     store.StateIdle,
		CreatedAt: session.CreatedAt,
	}, nil
}

// ListSessions returns the open sessions. State comes from the in-memory
// repository; a session evicted from it is idle by definition.
func (s *dialogueService) ListSessions(ctx context.Context) ([]*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.DialogueSessionRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		state := store.StateIdle
		if cached, found := s.sessions.Get(session.Id.String()); found {
			state = cached.State
		}
		items = append(items, &dto.SessionResponse{
			Id:        session.Id.String(),
			Title:     session.Title,
			State:     state,
			CreatedAt: session.CreatedAt,
		})
	}
	return items, nil
}

func (s *dialogueService) HandleTurn(ctx context.Context, sessionId uuid.UUID, text string) (*dto.TurnResponse, error) {
	session, err := s.loadSession(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	switch session.State {
	case store.StateClosed:
		return nil, ErrSessionClosed
	case store.StateProcessing:
		return nil, ErrSessionBusy
	}

	session.State = store.StateProcessing
	s.sessions.Save(session)
	defer func() {
		if session.State == store.StateProcessing {
			session.State = store.StateIdle
			s.sessions.Save(session)
		}
	}()

	thought, err := s.parserProvider.Parse(ctx, text)
	if err == nil {
		err = thought.Validate()
	}
	if err != nil {
		if !errors.Is(err, semantics.ErrContract) {
			return nil, err
		}
		// A malformed thought never reaches the history or the decider.
		s.logger.Warn("DialogueService", "Parse contract violation", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return &dto.TurnResponse{
			SessionId: sessionId.String(),
			Reply:     respond.MsgNotUnderstood,
			Mood:      semantics.MoodIndicative,
			Tone:      semantics.Neutral,
			Enrichment: dto.EnrichmentResponse{
				Urgency:         semantics.Neutral,
				MoodConnotation: semantics.Neutral,
			},
		}, nil
	}

	s.resolver.Resolve(thought, session.History)
	s.nuanceEnricher.Enrich(thought)
	s.toneEnricher.Enrich(thought)

	result := s.decider.Decide(ctx, thought)

	session.Append(thought)
	s.sessions.Save(session)

	if session.Title == constant.DefaultSessionTitle && len(session.History) == 1 {
		s.renameSession(ctx, session, sessionId, text)
	}

	turnId := uuid.New()
	enrichment := enrichmentOf(thought)

	s.publishTurnCompleted(ctx, &dto.PublishTurnCompletedMessage{
		TurnId:     turnId,
		SessionId:  sessionId,
		InputText:  thought.InputText,
		Reply:      result.Reply,
		Mood:       thought.Mood,
		Tone:       thought.Tone,
		Outcome:    string(result.Outcome),
		Enrichment: enrichment,
		OccurredAt: time.Now(),
	})

	s.publishEvent(ctx, events.BaseEvent{
		Type: constant.WsEventTurnCompleted,
		Data: map[string]interface{}{
			"session_id": sessionId,
			"reply":      result.Reply,
			"mood":       thought.Mood,
			"tone":       thought.Tone,
			"outcome":    string(result.Outcome),
		},
		OccurredAt: time.Now(),
	})
	s.publishFactEvent(ctx, thought, result)

	return &dto.TurnResponse{
		SessionId:  sessionId.String(),
		Reply:      result.Reply,
		Mood:       thought.Mood,
		Tone:       thought.Tone,
		Outcome:    string(result.Outcome),
		Enrichment: enrichment,
	}, nil
}

func (s *dialogueService) GetHistory(ctx context.Context, sessionId uuid.UUID, limit, offset int) ([]*dto.TurnHistoryItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.DialogueSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	specs := []specification.Specification{
		specification.ByDialogueSessionID{DialogueSessionID: sessionId},
	}
	if limit > 0 {
		specs = append(specs, specification.Pagination{Limit: limit, Offset: offset})
	}

	turns, err := uow.DialogueTurnRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.TurnHistoryItemResponse, 0, len(turns))
	for _, turn := range turns {
		items = append(items, &dto.TurnHistoryItemResponse{
			InputText: turn.InputText,
			Reply:     turn.Reply,
			Mood:      turn.Mood,
			Tone:      turn.Tone,
			Outcome:   turn.Outcome,
			Enrichment: dto.EnrichmentResponse{
				Agent:           turn.Enrichment.Agent,
				Object:          turn.Enrichment.Object,
				Attribute:       turn.Enrichment.Attribute,
				Action:          turn.Enrichment.Action,
				Urgency:         turn.Enrichment.Urgency,
				MoodConnotation: turn.Enrichment.MoodConnotation,
			},
			CreatedAt: turn.CreatedAt,
		})
	}
	return items, nil
}

func (s *dialogueService) CloseSession(ctx context.Context, sessionId uuid.UUID) error {
	session, err := s.loadSession(ctx, sessionId)
	if err != nil {
		return err
	}
	if session.State == store.StateClosed {
		return nil // idempotent
	}

	session.State = store.StateClosed
	s.sessions.Save(session)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := uow.DialogueTurnRepository().DeleteByDialogueSessionId(ctx, sessionId); err != nil {
		_ = uow.Rollback()
		return err
	}
	if err := uow.DialogueSessionRepository().Delete(ctx, sessionId); err != nil {
		_ = uow.Rollback()
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.publishEvent(ctx, events.BaseEvent{
		Type: constant.WsEventSessionClosed,
		Data: map[string]interface{}{
			"session_id": sessionId,
		},
		OccurredAt: time.Now(),
	})

	s.logger.Info("DialogueService", "Session closed", map[string]interface{}{
		"session_id": sessionId,
	})
	return nil
}

// loadSession returns the cached session, rehydrating an evicted one from
// the database with an empty history.
func (s *dialogueService) loadSession(ctx context.Context, sessionId uuid.UUID) (*store.Session, error) {
	if cached, found := s.sessions.Get(sessionId.String()); found {
		return cached, nil
	}

	// Soft-deleted rows must stay visible here so a closed session
	// resolves to StateClosed instead of not-found.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	persisted, err := uow.DialogueSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId}, specification.IncludeDeleted{})
	if err != nil {
		return nil, err
	}
	if persisted == nil {
		return nil, ErrSessionNotFound
	}

	state := store.StateIdle
	if persisted.IsDeleted {
		state = store.StateClosed
	}
	session := &store.Session{
		ID:    persisted.Id.String(),
		Title: persisted.Title,
		State: state,
	}
	s.sessions.Save(session)
	return session, nil
}

func (s *dialogueService) renameSession(ctx context.Context, session *store.Session, sessionId uuid.UUID, text string) {
	title := strings.TrimSpace(text)
	if len(title) > maxTitleLength {
		title = title[:maxTitleLength]
	}
	if title == "" {
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	persisted, err := uow.DialogueSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil || persisted == nil {
		return
	}
	persisted.Title = title
	if err := uow.DialogueSessionRepository().Update(ctx, persisted); err != nil {
		s.logger.Warn("DialogueService", "Failed to rename session", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return
	}
	session.Title = title
	s.sessions.Save(session)
}

func (s *dialogueService) publishTurnCompleted(ctx context.Context, msg *dto.PublishTurnCompletedMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("DialogueService", "Failed to marshal turn payload", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	// The transcript write is auxiliary, the reply already stands.
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("DialogueService", "Failed to publish turn", map[string]interface{}{
			"session_id": msg.SessionId,
			"error":      err.Error(),
		})
	}
}

func (s *dialogueService) publishFactEvent(ctx context.Context, thought *semantics.Thought, result *respond.Result) {
	if thought.LearningFact == nil {
		return
	}

	var eventType string
	switch result.Outcome {
	case knowledge.OutcomeLearned:
		eventType = events.TypeFactLearned
	case knowledge.OutcomeUpdated:
		eventType = events.TypeFactUpdated
	case knowledge.OutcomeConflictWithConstant:
		eventType = events.TypeFactConflict
	default:
		return
	}

	lf := thought.LearningFact
	s.publishEvent(ctx, events.NewFactEvent(eventType, lf.Subject, lf.Relationship, lf.Fact))
}

func (s *dialogueService) publishEvent(ctx context.Context, evt events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("DialogueService", "Failed to publish event", map[string]interface{}{
			"type":  evt.EventType(),
			"error": err.Error(),
		})
	}
}

func enrichmentOf(thought *semantics.Thought) dto.EnrichmentResponse {
	return dto.EnrichmentResponse{
		Agent:           thought.Agent,
		Object:          thought.Object,
		Attribute:       thought.Attribute,
		Action:          thought.Action,
		Urgency:         thought.Urgency,
		MoodConnotation: thought.MoodConnotation,
	}
}

package service

import (
	"context"

	"ai-dialogue-be/internal/dto"
	"ai-dialogue-be/internal/pkg/logger"
	"ai-dialogue-be/pkg/events"
	"ai-dialogue-be/pkg/knowledge"
	pktNats "ai-dialogue-be/pkg/nats"
)

type IKnowledgeService interface {
	LearnFact(ctx context.Context, req *dto.LearnFactRequest) (*dto.LearnFactResponse, error)
	QueryFacts(ctx context.Context, subject, relationship string) (*dto.QueryFactsResponse, error)
	ListSubjectFacts(ctx context.Context, subject, source string) (*dto.SubjectFactsResponse, error)
}

type knowledgeService struct {
	store          *knowledge.Store
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewKnowledgeService(store *knowledge.Store, eventPublisher *pktNats.Publisher, log logger.ILogger) IKnowledgeService {
	return &knowledgeService{
		store:          store,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *knowledgeService) LearnFact(ctx context.Context, req *dto.LearnFactRequest) (*dto.LearnFactResponse, error) {
	outcome, err := s.store.Learn(ctx, req.Subject, req.Relationship, req.Fact, knowledge.SourceUser)
	if err != nil {
		return nil, err
	}

	s.emitFactEvent(ctx, outcome, req)

	return &dto.LearnFactResponse{
		Subject:      req.Subject,
		Relationship: req.Relationship,
		Fact:         req.Fact,
		Outcome:      string(outcome),
	}, nil
}

func (s *knowledgeService) QueryFacts(ctx context.Context, subject, relationship string) (*dto.QueryFactsResponse, error) {
	facts, err := s.store.Query(ctx, subject, relationship)
	if err != nil {
		return nil, err
	}
	return &dto.QueryFactsResponse{
		Subject:      subject,
		Relationship: relationship,
		Facts:        facts,
	}, nil
}

func (s *knowledgeService) ListSubjectFacts(ctx context.Context, subject, source string) (*dto.SubjectFactsResponse, error) {
	records, err := s.store.FactsForSubject(ctx, subject, source)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SubjectFactItem, len(records))
	for i, r := range records {
		items[i] = dto.SubjectFactItem{
			Relationship: r.Relationship,
			Fact:         r.Fact,
			Source:       r.Source,
			IsImmutable:  r.IsImmutable,
		}
	}
	return &dto.SubjectFactsResponse{
		Subject: subject,
		Facts:   items,
	}, nil
}

func (s *knowledgeService) emitFactEvent(ctx context.Context, outcome knowledge.Outcome, req *dto.LearnFactRequest) {
	if s.eventPublisher == nil {
		return
	}

	var eventType string
	switch outcome {
	case knowledge.OutcomeLearned:
		eventType = events.TypeFactLearned
	case knowledge.OutcomeUpdated:
		eventType = events.TypeFactUpdated
	case knowledge.OutcomeConflictWithConstant:
		eventType = events.TypeFactConflict
	default:
		return
	}

	evt := events.NewFactEvent(eventType, req.Subject, req.Relationship, req.Fact)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("KnowledgeService", "Failed to publish fact event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}

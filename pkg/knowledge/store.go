package knowledge

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"ai-dialogue-be/internal/entity"
	"ai-dialogue-be/internal/pkg/logger"
	"ai-dialogue-be/internal/repository/specification"
	"ai-dialogue-be/internal/repository/unitofwork"
)

// Constant is a system-seeded fact. Seeded records are immutable and can
// never be replaced by user statements.
type Constant struct {
	Subject      string
	Relationship string
	Fact         string
}

// DefaultConstants is the baseline world knowledge installed into an
// empty store.
var DefaultConstants = []Constant{
	{"ball", "shape", "round"},
	{"ball", "can_be_action", "thrown"},
	{"ball", "can_be_action", "caught"},
	{"car", "has_part", "engine"},
	{"car", "has_part", "wheel"},
	{"france", "capital", "paris"},
}

// Store is the durable subject-relationship-fact store with immutability
// and singular/plural semantics. All storage failures surface wrapped in
// ErrStoreUnavailable.
type Store struct {
	repoFactory    unitofwork.RepositoryFactory
	classification *Classification
	locks          *keyLock
	logger         logger.ILogger

	closeFn   func() error
	closeOnce sync.Once
}

func NewStore(repoFactory unitofwork.RepositoryFactory, classification *Classification, log logger.ILogger, closeFn func() error) *Store {
	if classification == nil {
		classification = DefaultClassification()
	}
	return &Store{
		repoFactory:    repoFactory,
		classification: classification,
		locks:          newKeyLock(),
		logger:         log,
		closeFn:        closeFn,
	}
}

// Seed installs the given constants when, and only when, the store is
// empty. Safe to run on every startup.
func (s *Store) Seed(ctx context.Context, constants []Constant) error {
	uow := s.repoFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	repo := uow.KnowledgeFactRepository()

	count, err := repo.Count(ctx)
	if err != nil {
		_ = uow.Rollback()
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if count > 0 {
		return uow.Commit()
	}

	facts := make([]*entity.KnowledgeFact, len(constants))
	for i, c := range constants {
		facts[i] = &entity.KnowledgeFact{
			Subject:      strings.ToLower(c.Subject),
			Relationship: strings.ToLower(c.Relationship),
			Fact:         c.Fact,
			IsImmutable:  true,
			Source:       SourceSystemConstant,
		}
	}
	if err := repo.CreateBatch(ctx, facts); err != nil {
		_ = uow.Rollback()
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := uow.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("KnowledgeStore", "Seeded immutable constants", map[string]interface{}{
		"count": len(facts),
	})
	return nil
}

// Query returns every fact recorded for the key, in insertion order. A
// missing key yields an empty slice, not an error.
func (s *Store) Query(ctx context.Context, subject, relationship string) ([]string, error) {
	uow := s.repoFactory.NewUnitOfWork(ctx)
	repo := uow.KnowledgeFactRepository()

	records, err := repo.FindAll(ctx,
		specification.ByFactKey{Subject: subject, Relationship: relationship},
		specification.InsertionOrder{},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	facts := make([]string, len(records))
	for i, r := range records {
		facts[i] = r.Fact
	}
	return facts, nil
}

// FactsForSubject returns every fact recorded under a subject across all
// relationships, in insertion order. Source, when non-empty, restricts
// the listing to facts from that origin.
func (s *Store) FactsForSubject(ctx context.Context, subject, source string) ([]*entity.KnowledgeFact, error) {
	uow := s.repoFactory.NewUnitOfWork(ctx)
	repo := uow.KnowledgeFactRepository()

	specs := []specification.Specification{
		specification.BySubject{Subject: subject},
		specification.InsertionOrder{},
	}
	if source != "" {
		specs = append(specs, specification.Filter("source", source))
	}

	records, err := repo.FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return records, nil
}

// Learn runs the decision ladder for a new fact. The whole check-then-act
// sequence holds the key's lock, so concurrent calls on one key cannot
// both pass the duplicate or conflict checks.
func (s *Store) Learn(ctx context.Context, subject, relationship, fact, source string) (Outcome, error) {
	release := s.locks.Acquire(factKey(subject, relationship))
	defer release()

	uow := s.repoFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	repo := uow.KnowledgeFactRepository()

	existing, err := repo.FindAll(ctx,
		specification.ByFactKey{Subject: subject, Relationship: relationship},
		specification.InsertionOrder{},
	)
	if err != nil {
		_ = uow.Rollback()
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if len(existing) > 0 {
		if s.classification.IsSingular(relationship) {
			current := existing[0]
			if current.IsImmutable {
				_ = uow.Rollback()
				s.logger.Warn("KnowledgeStore", "Rejected update of immutable fact", map[string]interface{}{
					"subject":      subject,
					"relationship": relationship,
				})
				return OutcomeConflictWithConstant, nil
			}
			current.Fact = fact
			current.Source = source
			if err := repo.Update(ctx, current); err != nil {
				_ = uow.Rollback()
				return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
			}
			if err := uow.Commit(); err != nil {
				return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
			}
			return OutcomeUpdated, nil
		}

		for _, record := range existing {
			if strings.EqualFold(record.Fact, fact) {
				_ = uow.Rollback()
				return OutcomeAlreadyKnown, nil
			}
		}
	}

	record := &entity.KnowledgeFact{
		Subject:      strings.ToLower(subject),
		Relationship: strings.ToLower(relationship),
		Fact:         fact,
		Source:       source,
	}
	if err := repo.Create(ctx, record); err != nil {
		_ = uow.Rollback()
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := uow.Commit(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.logger.Debug("KnowledgeStore", "Stored new fact", map[string]interface{}{
		"subject":      record.Subject,
		"relationship": record.Relationship,
	})
	return OutcomeLearned, nil
}

// Close releases the underlying storage handle. Idempotent: the first
// call wins, later calls are no-ops.
func (s *Store) Close() error {
	var err error
	s.closeOnce.Do(func() {
		if s.closeFn != nil {
			err = s.closeFn()
		}
	})
	return err
}

func factKey(subject, relationship string) string {
	return strings.ToLower(subject) + "\x00" + strings.ToLower(relationship)
}

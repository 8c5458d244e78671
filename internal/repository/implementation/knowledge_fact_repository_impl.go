package implementation

import (
	"context"
	"errors"
	"strings"

	"ai-dialogue-be/internal/entity"
	"ai-dialogue-be/internal/mapper"
	"ai-dialogue-be/internal/model"
	"ai-dialogue-be/internal/repository/contract"
	"ai-dialogue-be/internal/repository/specification"

	"gorm.io/gorm"
)

type KnowledgeFactRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewKnowledgeFactRepository(db *gorm.DB) contract.KnowledgeFactRepository {
	return &KnowledgeFactRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *KnowledgeFactRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// normalize case-folds the identifying key parts before they hit storage.
func normalize(m *model.KnowledgeFact) {
	m.Subject = strings.ToLower(m.Subject)
	m.Relationship = strings.ToLower(m.Relationship)
}

func (r *KnowledgeFactRepositoryImpl) Create(ctx context.Context, fact *entity.KnowledgeFact) error {
	m := r.mapper.FactToModel(fact)
	normalize(m)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*fact = *r.mapper.FactToEntity(m)
	return nil
}

func (r *KnowledgeFactRepositoryImpl) CreateBatch(ctx context.Context, facts []*entity.KnowledgeFact) error {
	if len(facts) == 0 {
		return nil
	}
	models := make([]*model.KnowledgeFact, len(facts))
	for i, f := range facts {
		models[i] = r.mapper.FactToModel(f)
		normalize(models[i])
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*facts[i] = *r.mapper.FactToEntity(m)
	}
	return nil
}

func (r *KnowledgeFactRepositoryImpl) Update(ctx context.Context, fact *entity.KnowledgeFact) error {
	m := r.mapper.FactToModel(fact)
	normalize(m)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*fact = *r.mapper.FactToEntity(m)
	return nil
}

func (r *KnowledgeFactRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeFact, error) {
	var m model.KnowledgeFact
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.FactToEntity(&m), nil
}

func (r *KnowledgeFactRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeFact, error) {
	var models []*model.KnowledgeFact
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.KnowledgeFact, len(models))
	for i, m := range models {
		entities[i] = r.mapper.FactToEntity(m)
	}
	return entities, nil
}

func (r *KnowledgeFactRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.KnowledgeFact{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

package implementation

import (
	"context"

	"ai-dialogue-be/internal/entity"
	"ai-dialogue-be/internal/mapper"
	"ai-dialogue-be/internal/model"
	"ai-dialogue-be/internal/repository/contract"
	"ai-dialogue-be/internal/repository/scope"
	"ai-dialogue-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DialogueTurnRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DialogueMapper
}

func NewDialogueTurnRepository(db *gorm.DB) contract.DialogueTurnRepository {
	return &DialogueTurnRepositoryImpl{
		db:     db,
		mapper: mapper.NewDialogueMapper(),
	}
}

func (r *DialogueTurnRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DialogueTurnRepositoryImpl) Create(ctx context.Context, turn *entity.DialogueTurn) error {
	m := r.mapper.TurnToModel(turn)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*turn = *r.mapper.TurnToEntity(m)
	return nil
}

func (r *DialogueTurnRepositoryImpl) DeleteByDialogueSessionId(ctx context.Context, sessionId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("dialogue_session_id = ?", sessionId).Delete(&model.DialogueTurn{}).Error
}

func (r *DialogueTurnRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DialogueTurn, error) {
	var models []*model.DialogueTurn
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedAsc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.DialogueTurn, len(models))
	for i, m := range models {
		entities[i] = r.mapper.TurnToEntity(m)
	}
	return entities, nil
}

func (r *DialogueTurnRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.DialogueTurn{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

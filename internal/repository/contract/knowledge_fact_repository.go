package contract

import (
	"context"

	"ai-dialogue-be/internal/entity"
	"ai-dialogue-be/internal/repository/specification"
)

type KnowledgeFactRepository interface {
	Create(ctx context.Context, fact *entity.KnowledgeFact) error
	CreateBatch(ctx context.Context, facts []*entity.KnowledgeFact) error
	Update(ctx context.Context, fact *entity.KnowledgeFact) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeFact, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeFact, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

package contract

import (
	"context"

	"ai-dialogue-be/internal/entity"
	"ai-dialogue-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DialogueTurnRepository interface {
	Create(ctx context.Context, turn *entity.DialogueTurn) error
	DeleteByDialogueSessionId(ctx context.Context, sessionId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DialogueTurn, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

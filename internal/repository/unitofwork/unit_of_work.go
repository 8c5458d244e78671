package unitofwork

import (
	"context"

	"ai-dialogue-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	KnowledgeFactRepository() contract.KnowledgeFactRepository
	DialogueSessionRepository() contract.DialogueSessionRepository
	DialogueTurnRepository() contract.DialogueTurnRepository
}

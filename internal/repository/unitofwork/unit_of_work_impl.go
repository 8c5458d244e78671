package unitofwork

import (
	"context"
	"fmt"

	"ai-dialogue-be/internal/repository/contract"
	"ai-dialogue-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // Active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) KnowledgeFactRepository() contract.KnowledgeFactRepository {
	return implementation.NewKnowledgeFactRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DialogueSessionRepository() contract.DialogueSessionRepository {
	return implementation.NewDialogueSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DialogueTurnRepository() contract.DialogueTurnRepository {
	return implementation.NewDialogueTurnRepository(u.getDB())
}

package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByDialogueSessionID struct {
	DialogueSessionID uuid.UUID
}

func (s ByDialogueSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("dialogue_session_id = ?", s.DialogueSessionID)
}

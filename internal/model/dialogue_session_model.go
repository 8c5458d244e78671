package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DialogueSession struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title     string         `gorm:"type:text;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (DialogueSession) TableName() string {
	return "dialogue_sessions"
}

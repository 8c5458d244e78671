package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DialogueTurn struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	DialogueSessionId uuid.UUID      `gorm:"type:uuid;not null;index"`
	InputText         string         `gorm:"type:text;not null"`
	Reply             string         `gorm:"type:text;not null"`
	Mood              string         `gorm:"type:text;not null"`
	Tone              string         `gorm:"type:text;not null"`
	Outcome           string         `gorm:"type:text"` // Learn outcome code, empty for non-learning turns
	Enrichment        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
}

func (DialogueTurn) TableName() string {
	return "dialogue_turns"
}

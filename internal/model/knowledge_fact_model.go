package model

import (
	"time"
)

type KnowledgeFact struct {
	Id           int64     `gorm:"primaryKey;autoIncrement"` // Insertion order doubles as query order
	Subject      string    `gorm:"type:text;not null;index:idx_knowledge_key"`
	Relationship string    `gorm:"type:text;not null;index:idx_knowledge_key"`
	Fact         string    `gorm:"type:text;not null"`
	IsImmutable  bool      `gorm:"not null;default:false"`
	Source       string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (KnowledgeFact) TableName() string {
	return "knowledge_facts"
}

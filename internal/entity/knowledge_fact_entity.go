package entity

import (
	"time"
)

type KnowledgeFact struct {
	Id           int64
	Subject      string
	Relationship string
	Fact         string
	IsImmutable  bool
	Source       string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

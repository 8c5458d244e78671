package model

import "gorm.io/gorm"

// Migrate provisions the full schema. Runs at bootstrap and from
// cmd/migrate, and is idempotent either way.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&KnowledgeFact{},
		&DialogueSession{},
		&DialogueTurn{},
	)
}

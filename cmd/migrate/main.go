package main

import (
	"log"

	"ai-dialogue-be/internal/config"
	"ai-dialogue-be/internal/model"
	"ai-dialogue-be/pkg/database"

	"gorm.io/gorm"
)

// Standalone schema migration. The REST server migrates on boot as
// well; this binary exists for provisioning a database ahead of a
// deploy or for CI fixtures.
func main() {
	cfg := config.Load()

	var gormDB *gorm.DB
	var err error
	switch cfg.Database.Driver {
	case "postgres":
		gormDB, err = database.NewGormDBFromDSN(cfg.Database.Connection)
	default:
		gormDB, err = database.NewSqliteDB(cfg.Database.SqlitePath)
	}
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	log.Println("Running database migration...")
	if err := model.Migrate(gormDB); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration completed successfully.")
}

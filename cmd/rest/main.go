package main

import (
	"context"
	"log"

	"ai-dialogue-be/internal/bootstrap"
	"ai-dialogue-be/internal/config"
	"ai-dialogue-be/internal/server"
	"ai-dialogue-be/internal/tracer"
	"ai-dialogue-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	var gormDB *gorm.DB
	var err error
	switch cfg.Database.Driver {
	case "postgres":
		gormDB, err = database.NewGormDBFromDSN(cfg.Database.Connection)
	default:
		gormDB, err = database.NewSqliteDB(cfg.Database.SqlitePath)
	}
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.KnowledgeStore.Close()

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}

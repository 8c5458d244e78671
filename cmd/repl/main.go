package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"ai-dialogue-be/internal/bootstrap"
	"ai-dialogue-be/internal/config"
	"ai-dialogue-be/internal/dto"
	"ai-dialogue-be/pkg/database"
	"ai-dialogue-be/pkg/semantics"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Interactive console client over the same dialogue service the REST
// server uses. Type statements and questions, "quit" to exit.
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
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.KnowledgeStore.Close()

	ctx := context.Background()

	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Printf("[WARN] Transcript consumer failed to start: %v", err)
	}

	session, err := container.DialogueService.CreateSession(ctx, &dto.CreateSessionRequest{})
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	sessionId, _ := uuid.Parse(session.Id)

	color.Cyan("🤖 Dialogue agent ready (session %s)", session.Id)
	color.Cyan("Type something, or 'quit' to exit.\n")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if strings.EqualFold(text, "quit") || strings.EqualFold(text, "exit") {
			break
		}

		res, err := container.DialogueService.HandleTurn(ctx, sessionId, text)
		if err != nil {
			color.Red("Error: %v", err)
			continue
		}

		color.Green("%s", res.Reply)
		if res.Tone == semantics.ToneSarcastic {
			color.Yellow("  (tone: sarcastic)")
		}
		if res.Outcome != "" {
			color.Yellow("  (outcome: %s)", res.Outcome)
		}
	}

	if err := container.DialogueService.CloseSession(ctx, sessionId); err != nil {
		log.Printf("[WARN] Failed to close session: %v", err)
	}
	color.Cyan("Goodbye.")
}

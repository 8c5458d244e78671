package bootstrap

import (
	"context"
	"log"

	"ai-dialogue-be/internal/config"
	"ai-dialogue-be/internal/constant"
	"ai-dialogue-be/internal/controller"
	"ai-dialogue-be/internal/handler"
	"ai-dialogue-be/internal/model"
	"ai-dialogue-be/internal/pkg/logger"
	"ai-dialogue-be/internal/repository/memory"
	"ai-dialogue-be/internal/repository/unitofwork"
	"ai-dialogue-be/internal/service"
	"ai-dialogue-be/internal/websocket"
	"ai-dialogue-be/pkg/knowledge"
	pktNats "ai-dialogue-be/pkg/nats"
	"ai-dialogue-be/pkg/parser/factory"
	"ai-dialogue-be/pkg/respond"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	DialogueController  controller.IDialogueController
	KnowledgeController controller.IKnowledgeController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & streaming
	StreamHandler *handler.DialogueStreamHandler
	WebSocketHub  *websocket.Hub

	// Core facades exposed for shutdown and the REPL
	KnowledgeStore  *knowledge.Store
	DialogueService service.IDialogueService
	Logger          logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Schema & Core Facades
	if err := model.Migrate(db); err != nil {
		log.Fatalf("[FATAL] Failed to migrate database schema: %v", err)
	}
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// In-memory session storage
	sessionRepo := memory.NewSessionRepository()

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL, cfg.App.NatsStream)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL, cfg.App.NatsStream)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/stream.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Knowledge Store
	closeFn := func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	factStore := knowledge.NewStore(uowFactory, knowledge.DefaultClassification(), sysLogger, closeFn)
	if err := factStore.Seed(context.Background(), knowledge.DefaultConstants); err != nil {
		log.Fatalf("[FATAL] Failed to seed knowledge store: %v", err)
	}

	// 4. Parser Provider
	parserProvider, err := factory.NewParserProvider(cfg.Parser.Provider, cfg.Parser.BaseURL)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize parser provider: %v", err)
	}
	log.Printf("[INFO] Using Parser Provider: %s", cfg.Parser.Provider)

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, constant.TurnCompletedTopicName)
	consumerService := service.NewConsumerService(
		pubSub,
		constant.TurnCompletedTopicName,
		uowFactory,
		sysLogger,
	)

	decider := respond.NewDecider(factStore, sysLogger)
	dialogueService := service.NewDialogueService(
		uowFactory,
		sessionRepo,
		parserProvider,
		decider,
		publisherService,
		natsPub,
		sysLogger,
	)
	knowledgeService := service.NewKnowledgeService(factStore, natsPub, sysLogger)

	// Event relay (Worker)
	notifService := service.NewNotificationService(natsSub, wsHub, wsLogger)
	if natsSub != nil {
		go notifService.Start()
	}

	// Streaming handler
	streamHandler := handler.NewDialogueStreamHandler(wsHub, wsLogger)

	// 6. Controllers
	return &Container{
		DialogueController:  controller.NewDialogueController(dialogueService),
		KnowledgeController: controller.NewKnowledgeController(knowledgeService),

		ConsumerService: consumerService,
		StreamHandler:   streamHandler,
		WebSocketHub:    wsHub,

		KnowledgeStore:  factStore,
		DialogueService: dialogueService,
		Logger:          sysLogger,
	}
}

package bootstrap

import (
	"context"
	"log"

	"echoverse-be/internal/config"
	"echoverse-be/internal/controller"
	"echoverse-be/internal/handler"
	"echoverse-be/internal/pkg/logger"
	"echoverse-be/internal/pkg/mailer"
	"echoverse-be/internal/repository/implementation"
	"echoverse-be/internal/repository/memory"
	"echoverse-be/internal/repository/unitofwork"
	"echoverse-be/internal/service"
	"echoverse-be/internal/websocket"
	"echoverse-be/pkg/embedding"
	"echoverse-be/pkg/emotion"
	"echoverse-be/pkg/llm/gemini"
	"echoverse-be/pkg/llm/huggingface"

	pktNats "echoverse-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController          controller.IAuthController
	OAuthController         controller.IOAuthController
	UserController          controller.IUserController
	EntryController         controller.IEntryController
	InsightController       controller.IInsightController
	VisualizationController controller.IVisualizationController
	DashboardController     controller.IDashboardController

	// Background Services (Exposed for main.go to run)
	AnalysisConsumer service.IAnalysisConsumerService
	InsightScheduler *service.InsightScheduler

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	embeddingProvider := embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)

	emotionProvider := huggingface.NewHuggingFaceProvider(cfg.Keys.HuggingFace, "", cfg.Ai.EmotionModel)
	analyzer := emotion.NewAnalyzer(emotionProvider, cfg.Ai.EmotionModel)
	log.Printf("[INFO] Emotion classifier model: %s (lexicon fallback enabled)", cfg.Ai.EmotionModel)

	insightProvider := gemini.NewGeminiProvider(cfg.Keys.GoogleGemini, cfg.Ai.InsightModel)
	log.Printf("[INFO] Insight generation model: %s", cfg.Ai.InsightModel)

	// In-memory cache for dashboard aggregates
	cacheRepo := memory.NewCacheRepository()

	// 3.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
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
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Keys.AnalysisTopicName, pubSub)
	analysisConsumer := service.NewAnalysisConsumerService(
		pubSub,
		cfg.Keys.AnalysisTopicName,
		uowFactory,
		analyzer,
		embeddingProvider,
		natsPub,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	oauthService := service.NewOAuthService(uowFactory)
	userService := service.NewUserService(uowFactory)

	entryService := service.NewEntryService(
		uowFactory,
		publisherService,
		embeddingProvider,
		natsPub,
		cfg.Ai.SimilarityThreshold,
	)

	insightService := service.NewInsightService(
		uowFactory,
		insightProvider,
		cfg.Ai.InsightModel,
		natsPub,
	)

	visualizationService := service.NewVisualizationService(uowFactory, cfg.App.UploadDir, cfg.App.BaseURL)
	dashboardService := service.NewDashboardService(uowFactory, cacheRepo, visualizationService)

	insightScheduler := service.NewInsightScheduler(uowFactory, insightService, emailService, sysLogger)

	// 5. Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger)

	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, natsPub, wsHub, wsLogger)

	return &Container{
		AuthController:          controller.NewAuthController(authService),
		OAuthController:         controller.NewOAuthController(oauthService),
		UserController:          controller.NewUserController(userService),
		EntryController:         controller.NewEntryController(entryService, dashboardService),
		InsightController:       controller.NewInsightController(insightService, dashboardService),
		VisualizationController: controller.NewVisualizationController(visualizationService, dashboardService),
		DashboardController:     controller.NewDashboardController(dashboardService),

		AnalysisConsumer: analysisConsumer,
		InsightScheduler: insightScheduler,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}

package app

import (
	"context"
	"fmt"
	"time"

	"talentlink/internal/config"
	"talentlink/internal/handlers"
	"talentlink/internal/logger"
	"talentlink/internal/marketplace"
	"talentlink/internal/routes"
	"talentlink/internal/services"
	"talentlink/internal/session"
	"talentlink/internal/validator"
	"talentlink/internal/workers"

	"github.com/gin-gonic/gin"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	store := newSessionStore(cfg)

	client := marketplace.NewClient(
		cfg.Marketplace.BaseURL,
		time.Duration(cfg.Marketplace.TimeoutSeconds)*time.Second,
	)
	logger.Info("Marketplace client initialized", "base_url", cfg.Marketplace.BaseURL)

	poller := workers.NewNotificationPoller(
		client,
		time.Duration(cfg.Notifications.PollIntervalSeconds)*time.Second,
	)
	pollCtx, cancelPoller := context.WithCancel(context.Background())
	defer cancelPoller()
	go poller.Start(pollCtx)

	ginRouter := SetupRouter(cfg, client, store, poller)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, client *marketplace.Client, store session.Store, poller *workers.NotificationPoller) *gin.Engine {
	serviceContainer := initializeServices(cfg, client, store, poller)
	appHandlers := initializeHandlers(serviceContainer)

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(gin.Logger(), gin.Recovery())

	routes.RegisterRoutes(ginRouter, appHandlers, store)

	return ginRouter
}

func newSessionStore(cfg *config.Config) session.Store {
	ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	if cfg.Session.Backend == "redis" {
		store, err := session.NewRedisStore(
			cfg.Session.RedisAddr,
			cfg.Session.RedisPassword,
			cfg.Session.RedisDB,
			ttl,
		)
		if err != nil {
			logger.Fatal("Failed to connect to Redis session store", "error", err)
		}
		logger.Info("Session store initialized", "backend", "redis", "addr", cfg.Session.RedisAddr)
		return store
	}
	logger.Info("Session store initialized", "backend", "memory")
	return session.NewMemoryStore(ttl)
}

func initializeServices(cfg *config.Config, client *marketplace.Client, store session.Store, poller *workers.NotificationPoller) *services.ServiceContainer {
	v := validator.New()
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute

	return &services.ServiceContainer{
		AuthService:                services.NewAuthService(client, store, sessionTTL),
		ClientDashboardService:     services.NewClientDashboardService(client, v),
		FreelancerDashboardService: services.NewFreelancerDashboardService(client, v),
		NotificationService:        services.NewNotificationService(client, poller),
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler: handlers.NewAuthHandler(
			base,
			sc.AuthService,
			sc.ClientDashboardService,
			sc.FreelancerDashboardService,
		),
		ClientDashboardHandler:     handlers.NewClientDashboardHandler(base, sc.ClientDashboardService),
		FreelancerDashboardHandler: handlers.NewFreelancerDashboardHandler(base, sc.FreelancerDashboardService),
		NotificationHandler:        handlers.NewNotificationHandler(base, sc.NotificationService),
	}
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freelanceai/config"
	"freelanceai/cron"
	"freelanceai/database"
	freelancerRepo "freelanceai/database/repository/freelancer"
	projectRepo "freelanceai/database/repository/project"
	userRepo "freelanceai/database/repository/user"
	"freelanceai/handlers"
	"freelanceai/middleware"
	"freelanceai/routes"
	"freelanceai/services/assistant"
	"freelanceai/services/listing"
	"freelanceai/services/payment"
	"freelanceai/services/project"
	"freelanceai/services/user"
	"freelanceai/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	// Configuration and logging come first so everything below can rely on them.
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()

	storageSvc, err := utils.Cloudinary()
	if err != nil {
		logger.Fatal("Failed to initialize file storage", zap.Error(err))
	}

	stripe.Key = config.AppConfig.StripeKey

	// Repositories.
	freelancers := freelancerRepo.NewMongoRepo()
	users := userRepo.NewMongoRepo()
	projects := projectRepo.NewMongoRepo()

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := freelancers.EnsureSeed(seedCtx); err != nil {
		logger.Fatal("Failed to seed freelancer catalog", zap.Error(err))
	}
	cancelSeed()

	// Services.
	listingSvc := listing.NewService(freelancers, utils.GetCacheClient(), logger)
	userSvc := user.NewService(users, utils.GetAuthCacheClient(), logger)
	paymentSvc := payment.NewService(
		payment.NewEthGateway(config.AppConfig.EthGatewayURL, logger),
		logger,
	)
	assistantSvc := assistant.NewService(
		assistant.NewGeminiClient(config.AppConfig.GeminiAPIKey),
		assistant.NewRedisContextStore(utils.GetContextCacheClient(), 30*time.Minute),
		listingSvc,
		logger,
	)

	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	})
	defer taskClient.Close()

	projectSvc := project.NewService(projects, storageSvc, utils.GetCacheClient(), taskClient, logger)

	// HTTP surface.
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.ErrorHandler())
	r.Use(gin.Logger())
	r.Use(middleware.RateLimit(config.AppConfig.MaxRequestsPerMin))

	hb := &handlers.HandlerBundle{
		UserRepo:  users,
		Listing:   handlers.NewListingHandler(listingSvc, logger),
		Auth:      handlers.NewAuthHandler(userSvc),
		Payment:   handlers.NewPaymentHandler(paymentSvc, logger),
		Assistant: handlers.NewAssistantHandler(assistantSvc),
		Project:   handlers.NewProjectHandler(projectSvc, logger),
	}
	routes.RegisterRoutes(r, hb)

	reminderWorker := cron.InitReminderWorker(projectSvc)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	reminderWorker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}

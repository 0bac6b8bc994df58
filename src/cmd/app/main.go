package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/hibiken/asynq"

	"storefront-service/src/internal/config"
	"storefront-service/src/internal/delivery/http/middleware"
	"storefront-service/src/pkg/log"
)

func main() {

	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "STOREFRONT_SERVICE")
	viperConfig.SetDefault("web.port", 8080)
	viperConfig.SetDefault("asynq.concurrency", 5)
	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	config.NewKafkaConfig(viperConfig)
	config.LoadRedisConfig(viperConfig)
	db := config.NewDatabase(viperConfig, logger)
	redisClient := config.NewRedis()
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)

	paymentClient, err := config.NewPaymentClient(viperConfig)
	if err != nil {
		logger.Error("main", fmt.Sprintf("Failed to init payment client: %v", err), "main", "")
		os.Exit(1)
	}

	presenceSubscriber := config.NewPresenceSubscriber(viperConfig, logger)
	asynqClient := config.NewAsynqClient(viperConfig)
	asynqServer := config.NewAsynqServer(viperConfig)
	asynqMux := asynq.NewServeMux()

	app := config.NewFiber(viperConfig)
	app.Use(middleware.NewLogger())
	config.Bootstrap(&config.BootstrapConfig{
		DB:            db,
		App:           app,
		Log:           logger,
		Validate:      validate,
		Config:        viperConfig,
		Producer:      producer,
		Redis:         redisClient,
		PaymentClient: paymentClient,
		Presence:      presenceSubscriber,
		AsynqClient:   asynqClient,
		Async:         asynqMux,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	presenceSubscriber.Start(ctx)

	go func() {
		if err := asynqServer.Run(asynqMux); err != nil {
			logger.Error("main", fmt.Sprintf("Asynq server stopped: %v", err), "main", "")
		}
	}()

	go func() {
		webPort := viperConfig.GetInt("web.port")
		if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
		}
	}()

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	go func() {
		<-quit
		logger.Info("main", "Server storefront-service is shutting down...", "graceful", "")

		_, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := app.Shutdown(); err != nil {
			logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
		}
		presenceSubscriber.Stop()
		asynqServer.Shutdown()
		if err := asynqClient.Close(); err != nil {
			logger.Error("main", fmt.Sprintf("Error closing asynq client: %v", err), "graceful", "")
		}
		close(done)
	}()

	<-done
	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}

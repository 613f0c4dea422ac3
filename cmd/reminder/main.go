package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/oleksandr-romashko/contacts-api/cmd/config"
	"github.com/oleksandr-romashko/contacts-api/thirdparty/rabbitmq"
	"github.com/oleksandr-romashko/contacts-api/utils/logger"
)

// Reminder worker: consumes due birthday reminders from the delayed queue
// and forwards them to the notification webhook.
func main() {
	cfg := config.Load()

	if err := logger.Init("reminder-worker", cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	webhookURL := os.Getenv("NOTIFY_WEBHOOK_URL")
	if webhookURL == "" {
		logger.Fatal("NOTIFY_WEBHOOK_URL is required")
	}

	consumer, err := rabbitmq.NewConsumer(cfg.Rabbit.Host, cfg.Rabbit.Port,
		cfg.Rabbit.User, cfg.Rabbit.Password, webhookURL, cfg.Auth.InternalAPIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("reminder consumer running")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("reminder consumer stopping")
}

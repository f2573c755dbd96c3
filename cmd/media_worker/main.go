package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamevault/internal/media/app"
	"gamevault/internal/media/domain"
	"gamevault/pkg/config"
	"gamevault/pkg/database"
	"gamevault/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.MediaWorker, config.EnvConfig.MediaWorkerLogPath)
	defer logger.Log.Sync()

	cfg := config.LoadConfig[config.MediaWorker](config.EnvConfig.MediaWorker, config.EnvConfig.MediaWorkerYAMLPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.NewMinIOConnection(database.MinIOConnection{
		Endpoint:      fmt.Sprintf("%s:%d", cfg.MinIO.Host, cfg.MinIO.Port),
		User:          cfg.MinIO.User,
		Password:      cfg.MinIO.Password,
		BucketName:    cfg.MinIO.BucketName,
		UseSSL:        cfg.MinIO.UseSSL,
		RetryCount:    cfg.MinIO.RetryCount,
		RetryInterval: cfg.MinIO.RetryInterval,
	})
	if err != nil {
		logger.Log.Fatal("minio connect failed", zap.Error(err))
	}

	conn, err := database.ConnectRabbitMQWithRetry(database.Connection{
		ConnectStr:    fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.IP, cfg.RabbitMQ.Port),
		RetryCount:    cfg.RabbitMQ.RetryCount,
		RetryInterval: cfg.RabbitMQ.RetryInterval,
	})
	if err != nil {
		logger.Log.Fatal("rabbitmq connect failed", zap.Error(err))
	}
	defer conn.Close()

	ch, err := database.GetRabbitMQChannelWithRetry(conn, cfg.RabbitMQ.RetryCount, cfg.RabbitMQ.RetryInterval)
	if err != nil {
		logger.Log.Fatal("rabbitmq channel failed", zap.Error(err))
	}
	defer ch.Close()

	if err := database.DeclareDurableQueue(ch, domain.QueueName); err != nil {
		logger.Log.Fatal("declare queue failed", zap.String("queue", domain.QueueName), zap.Error(err))
	}
	if err := ch.Qos(1, 0, false); err != nil {
		logger.Log.Fatal("set qos failed", zap.Error(err))
	}

	deliveries, err := ch.Consume(domain.QueueName, "", false, false, false, false, nil)
	if err != nil {
		logger.Log.Fatal("consume failed", zap.String("queue", domain.QueueName), zap.Error(err))
	}

	app.NewConsumer(deliveries, store, 10*time.Second).StartConsumer(ctx)
}

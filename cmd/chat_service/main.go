package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"gamevault/internal/chat/app"
	"gamevault/internal/chat/repository"
	"gamevault/internal/chat/router"
	"gamevault/pkg/config"
	"gamevault/pkg/database"
	"gamevault/pkg/logger"
	"gamevault/pkg/middlewares"
	memberpb "gamevault/pkg/proto/member"
	testtool "gamevault/pkg/test_tool"
	"gamevault/pkg/token"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.ChatService, config.EnvConfig.ChatServiceLogPath)
	defer logger.Log.Sync()

	cfg := config.LoadConfig[config.Chat](config.EnvConfig.ChatService, config.EnvConfig.ChatServiceYAMLPath)
	token.SetSecret(config.EnvConfig.JWTSecret)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	uri := fmt.Sprintf("mongodb://%s:%s@%s:%d", cfg.MongoDB.User, cfg.MongoDB.Password, cfg.MongoDB.Host, cfg.MongoDB.Port)
	mongo, err := database.NewMongoDB(ctx,
		database.Connection{
			ConnectStr:    uri,
			RetryCount:    cfg.MongoDB.RetryCount,
			RetryInterval: time.Duration(cfg.MongoDB.RetryInterval),
		},
		cfg.MongoDB.Database)
	if err != nil {
		logger.Log.Fatal(
			"Unable to connect to mongoDB database after retries",
			zap.String("host", cfg.MongoDB.Host),
			zap.Error(err),
		)
	}
	defer mongo.Close(ctx)

	masterName, sentinel := config.GetRedisSetting()
	redisClient, err := database.NewRedisClient(masterName, cfg.Redis.Addr, sentinel, cfg.Redis.RedisDB)
	if err != nil {
		logger.Log.Fatal("connect redis err", zap.Error(err))
	}
	defer redisClient.Close()

	memberAddr := cfg.MemberService.Name + ":" + cfg.MemberService.Port
	client, err := database.CreateGRPCClient(memberAddr, 30*time.Second)
	if err != nil {
		logger.Log.Fatal("member service unreachable", zap.String("addr", memberAddr), zap.Error(err))
	}
	defer client.Close()
	directory := app.NewMemberDirectory(memberpb.NewMemberServiceClient(client))

	chatRepo := repository.NewMongoChatRepository(mongo.Database)
	msgRepo := repository.NewMongoChatMessageRepository(mongo.Database)
	if err := chatRepo.EnsureIndexes(ctx); err != nil {
		logger.Log.Fatal("chat indexes", zap.Error(err))
	}
	if err := msgRepo.EnsureIndexes(ctx); err != nil {
		logger.Log.Fatal("message indexes", zap.Error(err))
	}
	pubsub := repository.NewRedisPubSub(redisClient)

	// the event stream is optional, chat keeps working without kafka
	var events repository.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		writer, err := database.NewKafkaWriterWithRetry(database.KafkaConnection{
			Brokers:       cfg.Kafka.Brokers,
			Topic:         cfg.Kafka.Topic,
			RetryCount:    cfg.Kafka.RetryCount,
			RetryInterval: cfg.Kafka.RetryInterval,
		})
		if err != nil {
			logger.Log.Warn("chat events disabled", zap.Error(err))
		} else {
			defer writer.Close()
			events = repository.NewKafkaEventPublisher(writer, cfg.Kafka.PublishTimeout*time.Millisecond)
		}
	}

	presenceTTL := cfg.PresenceTTL * time.Second
	if presenceTTL <= 0 {
		presenceTTL = 90 * time.Second
	}
	chatUC := app.NewChatUseCase(chatRepo, msgRepo, directory, pubsub, events)
	presenceUC := app.NewPresenceUseCase(repository.NewRedisPresenceRepository(redisClient), chatRepo, directory, pubsub, presenceTTL)
	messageUC := app.NewMessageUseCase(chatRepo, msgRepo, directory, pubsub, events, presenceUC)

	limiter := middlewares.NewRateLimiter(cfg.SendRate, cfg.SendBurst, 10*time.Minute)
	limiter.StartCleanup(ctx, time.Minute)

	testtool.StartPprof(":6062")

	r := fiber.New()
	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.ChatServiceLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file,
	}))

	router.RegisterRoutes(r, app.NewChatWebsocketHandler(chatUC, messageUC, presenceUC, pubsub, limiter, 30*time.Second))

	port := ":" + cfg.Port
	logger.Log.Info("Chat Service listening", zap.String("port", port))
	if err := r.Listen(port); err != nil {
		log.Fatalf("Failed to start Fiber: %v", err)
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	_ "gamevault/cmd/api_gateway/docs"
	"gamevault/internal/api/handlers"
	"gamevault/internal/api/router"
	catalogapp "gamevault/internal/catalog/app"
	catalogdomain "gamevault/internal/catalog/domain"
	catalogrepo "gamevault/internal/catalog/repository"
	mediaapp "gamevault/internal/media/app"
	mediadomain "gamevault/internal/media/domain"
	socialapp "gamevault/internal/social/app"
	socialrepo "gamevault/internal/social/repository"
	"gamevault/pkg/config"
	"gamevault/pkg/database"
	"gamevault/pkg/logger"
	"gamevault/pkg/middlewares"
	memberpb "gamevault/pkg/proto/member"
	"gamevault/pkg/token"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.APIGateway, config.EnvConfig.APIGatewayLogPath)
	defer logger.Log.Sync()

	cfg := config.LoadConfig[config.APIGateway](config.EnvConfig.APIGateway, config.EnvConfig.APIGatewayYAMLPath)
	token.SetSecret(config.EnvConfig.JWTSecret)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	memberAddr := cfg.MemberService.Name + ":" + cfg.MemberService.Port
	memberGRPC, err := database.CreateGRPCClient(memberAddr, 30*time.Second)
	if err != nil {
		logger.Log.Fatal("member service unreachable", zap.String("addr", memberAddr), zap.Error(err))
	}
	defer memberGRPC.Close()
	memberClient := memberpb.NewMemberServiceClient(memberGRPC)

	sqlParams := fmt.Sprintf("postgres://%s:%s@%s:%d/%s", cfg.PostgreSQL.User, cfg.PostgreSQL.Password, cfg.PostgreSQL.Host, cfg.PostgreSQL.Port, cfg.PostgreSQL.Database)
	db, err := database.NewPGConnection(database.Connection{
		ConnectStr:    sqlParams,
		RetryCount:    cfg.PostgreSQL.RetryCount,
		RetryInterval: time.Duration(cfg.PostgreSQL.RetryInterval),
	})
	if err != nil {
		logger.Log.Fatal("Unable to connect to postgreSQL database after retries", zap.String("host", cfg.PostgreSQL.Host), zap.Error(err))
	}

	gameRepo := catalogrepo.NewGameRepository(db)
	if err := gameRepo.AutoMigrate(); err != nil {
		logger.Log.Fatal("catalog migration failed", zap.Error(err))
	}
	friendRepo := socialrepo.NewFriendRepository(db)
	if err := friendRepo.AutoMigrate(); err != nil {
		logger.Log.Fatal("friend migration failed", zap.Error(err))
	}

	catalogUC := catalogapp.NewCatalogUseCase(gameRepo)
	if cfg.SeedCatalog {
		n, err := catalogUC.Seed(ctx, catalogdomain.SeedGames)
		if err != nil {
			logger.Log.Fatal("catalog seed failed", zap.Error(err))
		}
		logger.Log.Info("catalog seeded", zap.Int("inserted", n))
	}

	masterName, sentinel := config.GetRedisSetting()
	redisClient, err := database.NewRedisClient(masterName, cfg.Redis.Addr, sentinel, cfg.Redis.RedisDB)
	if err != nil {
		logger.Log.Fatal("connect redis err", zap.Error(err))
	}
	defer redisClient.Close()

	socialUC := socialapp.NewSocialUseCase(friendRepo, socialrepo.NewRedisPresenceReader(redisClient), socialapp.NewMemberDirectory(memberClient))

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

	// thumbnails are best effort, uploads still work without rabbitmq
	var jobs database.RabbitRepo
	conn, err := database.ConnectRabbitMQWithRetry(database.Connection{
		ConnectStr:    fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.IP, cfg.RabbitMQ.Port),
		RetryCount:    cfg.RabbitMQ.RetryCount,
		RetryInterval: cfg.RabbitMQ.RetryInterval,
	})
	if err != nil {
		logger.Log.Warn("thumbnail jobs disabled", zap.Error(err))
	} else {
		defer conn.Close()
		ch, err := database.GetRabbitMQChannelWithRetry(conn, cfg.RabbitMQ.RetryCount, cfg.RabbitMQ.RetryInterval)
		if err != nil {
			logger.Log.Fatal("rabbitmq channel failed", zap.Error(err))
		}
		defer ch.Close()
		if err := database.DeclareDurableQueue(ch, mediadomain.QueueName); err != nil {
			logger.Log.Fatal("declare queue failed", zap.String("queue", mediadomain.QueueName), zap.Error(err))
		}
		jobs = database.NewRabbitRepository(ch)
	}

	urlExpiry := cfg.AvatarURLExpiry * time.Minute
	if urlExpiry <= 0 {
		urlExpiry = 15 * time.Minute
	}
	avatarUC := mediaapp.NewAvatarUseCase(store, jobs, urlExpiry, cfg.PublicURL)

	limiter := middlewares.NewRateLimiter(20, 40, 10*time.Minute)
	limiter.StartCleanup(ctx, time.Minute)

	r := fiber.New(fiber.Config{
		BodyLimit: mediadomain.MaxAvatarBytes + 1<<20,
	})
	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.APIGatewayLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file,
	}))

	router.RegisterRoutes(r, limiter,
		handlers.NewMemberHandler(memberClient),
		handlers.NewCatalogHandler(catalogUC),
		handlers.NewSocialHandler(socialUC),
		handlers.NewMediaHandler(avatarUC, memberClient),
	)

	port := ":" + cfg.Port
	logger.Log.Info("API Gateway listening", zap.String("port", port))
	if err := r.Listen(port); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"gamevault/internal/member/app"
	"gamevault/internal/member/domain"
	"gamevault/internal/member/repository"
	"gamevault/pkg/config"
	"gamevault/pkg/database"
	"gamevault/pkg/encrypt"
	"gamevault/pkg/logger"
	memberpb "gamevault/pkg/proto/member"
	testtool "gamevault/pkg/test_tool"
	"gamevault/pkg/token"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.MemberService, config.EnvConfig.MemberServiceLogPath)
	defer logger.Log.Sync()

	cfg := config.LoadConfig[config.Member](config.EnvConfig.MemberService, config.EnvConfig.MemberServiceYAMLPath)
	token.SetSecret(config.EnvConfig.JWTSecret)

	sqlParams := fmt.Sprintf("postgres://%s:%s@%s:%d/%s", cfg.PostgreSQL.User, cfg.PostgreSQL.Password, cfg.PostgreSQL.Host, cfg.PostgreSQL.Port, cfg.PostgreSQL.Database)
	pool, err := database.NewDatabaseConnection(database.Connection{
		ConnectStr:    sqlParams,
		RetryCount:    cfg.PostgreSQL.RetryCount,
		RetryInterval: time.Duration(cfg.PostgreSQL.RetryInterval),
	})
	if err != nil {
		logger.Log.Fatal(
			"Unable to connect to postgreSQL database after retries",
			zap.String("host", cfg.PostgreSQL.Host),
			zap.Error(err),
		)
	}
	defer pool.Close()

	memberRepo := repository.NewMemberRepository(pool)
	if err := memberRepo.Migrate(context.Background()); err != nil {
		logger.Log.Fatal("member migration failed", zap.Error(err))
	}

	masterName, sentinel := config.GetRedisSetting()
	redisRepo, err := database.NewRedisRepository[domain.MemberSession](masterName, cfg.RedisMember.Addr, sentinel, cfg.RedisMember.RedisDB)
	if err != nil {
		logger.Log.Fatal("connect redis err", zap.Error(err))
	}
	usecase := app.NewMemberUseCase(memberRepo, cfg.SessionTTL*time.Minute, redisRepo, encrypt.HashPassword)

	lis, err := net.Listen("tcp", cfg.IP+":"+cfg.Port)
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("Failed to listen Port(%s): ", cfg.Port), zap.Error(err))
	}

	testtool.StartPprof(":6061")

	grpcServer := grpc.NewServer()
	memberpb.RegisterMemberServiceServer(grpcServer, &app.MemberGRPCServer{Usecase: usecase})
	logger.Log.Info("MemberService gRPC server listening", zap.String("port", cfg.Port))

	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("Failed to serve gRPC server: %v", err)
	}
}

package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	sitev1 "github.com/fekuna/omnipos-site-service/api/site/v1"
	"github.com/fekuna/omnipos-site-service/config"
	"github.com/fekuna/omnipos-site-service/internal/auth"
	"github.com/fekuna/omnipos-site-service/internal/settings"
	"github.com/fekuna/omnipos-site-service/pkg/broker"
	"github.com/fekuna/omnipos-site-service/pkg/cache"
	"github.com/fekuna/omnipos-site-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-site-service/pkg/logger"

	catalogH "github.com/fekuna/omnipos-site-service/internal/catalog/handler"
	catalogUCPkg "github.com/fekuna/omnipos-site-service/internal/catalog/usecase"

	settingsH "github.com/fekuna/omnipos-site-service/internal/settings/handler"
	settingsListenerPkg "github.com/fekuna/omnipos-site-service/internal/settings/listener"
	settingsRepoPkg "github.com/fekuna/omnipos-site-service/internal/settings/repository"
	settingsUCPkg "github.com/fekuna/omnipos-site-service/internal/settings/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	if cfg.Server.MigrateOnStart {
		if err := postgres.Migrate(db); err != nil {
			appLogger.Fatal("Could not apply schema", zap.Error(err))
		}
	}

	// 4. Initialize Repositories
	settingsRepo := settingsRepoPkg.NewPGRepository(db)

	// 5. Initialize Redis
	var settingsCache settings.Cache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		settingsCache = settingsRepoPkg.NewRedisCache(redisClient.Client, cfg.Redis.KeyPrefix, cfg.Redis.CacheTTL)
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.Redis.CacheTTL))
	}

	// 5.5 Initialize Kafka
	brokerCfg := &broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	}
	var publisher settings.EventPublisher
	var kafkaConsumer *broker.KafkaConsumer
	if cfg.Kafka.Enabled {
		kafkaProducer := broker.NewProducer(brokerCfg)
		defer kafkaProducer.Close()
		publisher = kafkaProducer
		appLogger.Info("Connected to Kafka", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}
	if cfg.ConsumeInvalidations() {
		kafkaConsumer = broker.NewConsumer(brokerCfg)
		defer kafkaConsumer.Close()
		appLogger.Info("Joined Kafka consumer group", zap.String("group_id", cfg.Kafka.GroupID))
	}

	// 6. Initialize UseCases
	settingsUC := settingsUCPkg.NewSettingsUseCase(settingsRepo, settingsCache, publisher, cfg.Site.Partial(), appLogger)
	catalogUC := catalogUCPkg.NewCatalogUseCase(appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 6.5 Initialize Listeners
	if kafkaConsumer != nil {
		settingsListener := settingsListenerPkg.NewSettingsListener(kafkaConsumer, settingsUC, appLogger)
		go settingsListener.Start(ctx)
	}

	// 7. Initialize Handlers
	settingsHandler := settingsH.NewSettingsHandler(settingsUC, appLogger)
	catalogHandler := catalogH.NewCatalogHandler(catalogUC, appLogger)

	// 8. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(auth.TenantInterceptor()),
	)

	sitev1.RegisterSettingsServiceServer(grpcServer, settingsHandler)
	sitev1.RegisterCatalogServiceServer(grpcServer, catalogHandler)

	reflection.Register(grpcServer)

	appLogger.Info("Starting gRPC server", zap.String("port", port))

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}

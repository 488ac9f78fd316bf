package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	apiHttp "github.com/KikiG13/travelife/internal/api/http"
	"github.com/KikiG13/travelife/internal/cache"
	"github.com/KikiG13/travelife/internal/config"
	"github.com/KikiG13/travelife/internal/db"
	"github.com/KikiG13/travelife/internal/repository"
	"github.com/KikiG13/travelife/internal/server"
	"github.com/KikiG13/travelife/internal/service"
	"github.com/KikiG13/travelife/pkg/auth"
	"github.com/KikiG13/travelife/pkg/hash"
	"github.com/KikiG13/travelife/pkg/logger"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting travelife api", zap.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	// Init MySQL
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		logger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			logger.Error("error when closing mysql", zap.Error(err))
		}
	}()
	logger.Info("mysql connection done")

	if cfg.Database.MigrateOnStart {
		if err := db.Migrate(dbMySQL); err != nil {
			logger.Error("mysql migration failed", zap.Error(err))
			return
		}
		logger.Info("mysql migrations applied")
	}

	// Init MongoDB
	mongoClient, mongoDB, err := db.NewMongo(context.Background(), cfg.Mongo)
	if err != nil {
		logger.Error("mongo connect problem", zap.Error(err))
		return
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("error when closing mongo", zap.Error(err))
		}
	}()
	logger.Info("mongo connection done")

	if err := repository.EnsureDestinationIndexes(context.Background(), mongoDB); err != nil {
		logger.Error("mongo index creation failed", zap.Error(err))
		return
	}

	// Init Redis
	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		logger.Error("redis connect problem", zap.Error(err))
		return
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("error when closing redis", zap.Error(err))
		}
	}()
	logger.Info("redis connection done")

	hasher := hash.NewBcryptHasher(cfg.Auth.PasswordCost)

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		logger.Error("auth manager creation err", zap.Error(err))
		return
	}

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL, mongoDB, redisClient)
	services := service.NewServices(service.Deps{
		Config:       cfg,
		Hasher:       hasher,
		TokenManager: tokenManager,
		Repos:        repos,
	})
	handlers := apiHttp.NewHandlers(services, cfg)

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}

	logger.Info("app stopped")
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/crisis_coordination_system/internal/app"
	"github.com/shenikar/crisis_coordination_system/internal/broadcast"
	"github.com/shenikar/crisis_coordination_system/internal/config"
	v1 "github.com/shenikar/crisis_coordination_system/internal/handler/http/v1"
	"github.com/shenikar/crisis_coordination_system/internal/service"
	"github.com/shenikar/crisis_coordination_system/pkg/logger"
	redisclient "github.com/shenikar/crisis_coordination_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/crisis_coordination_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Crisis Coordination System API
// @version 1.0
// @description Backend for real-time emergency incident coordination.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Redis клиента. Кэш опционален: без него сервис
	// продолжает работать, читая напрямую из хранилища.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.WithError(err).Warn("Redis unavailable, incident cache disabled")
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Info("Successfully connected to Redis")
		}
	}

	// Выбор хранилища: MongoDB или резервное in-memory. Недоступность бд
	// не прерывает запуск.
	storage := app.Select(ctx, cfg, log, redisClient)

	// Инициализация и запуск хаба рассылки
	hub := broadcast.NewHub(log)
	go hub.Run(ctx)

	// Инициализация сервисов
	coordinationService := service.NewCoordinationService(storage, log, hub)

	// Инициализация хэндлеров
	handler := v1.NewHandler(coordinationService, hub, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	handler.RegisterRealtime(router)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Остановка хаба после закрытия HTTP-сервера
	cancel()

	log.Info("Server gracefully stopped")
}

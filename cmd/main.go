package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/flood_response_system/internal/alert"
	"github.com/shenikar/flood_response_system/internal/config"
	v1 "github.com/shenikar/flood_response_system/internal/handler/http/v1"
	"github.com/shenikar/flood_response_system/internal/observability"
	"github.com/shenikar/flood_response_system/internal/repository"
	"github.com/shenikar/flood_response_system/internal/service"
	"github.com/shenikar/flood_response_system/internal/session"
	"github.com/shenikar/flood_response_system/internal/weather"
	"github.com/shenikar/flood_response_system/pkg/logger"
	"github.com/shenikar/flood_response_system/pkg/postgres"
	redisclient "github.com/shenikar/flood_response_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/flood_response_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Flood Response System API
// @version 1.0
// @description Disaster-response coordination backend: facilities, resources, flood risk zones and rainfall alerts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey SessionAuth
// @in cookie
// @name session_token
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL()
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

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

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Метрики Prometheus
	metrics := observability.NewMetrics()

	// Хранилище сессий
	sessionStore := session.NewRedisStore(redisClient, cfg.SessionTTL)

	// Издатель оповещений и воркер доставки вебхуков
	broadcaster := alert.NewRedisBroadcaster(redisClient)
	webhookWorker := alert.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Фоновый мониторинг осадков
	weatherClient := weather.NewClient(cfg.OpenWeatherAPIKey, cfg.WeatherTimeout, log)
	alertService := alert.NewService(weatherClient, broadcaster, log, metrics, clockwork.NewRealClock(), alert.Options{
		PollInterval:  cfg.AlertPollInterval,
		RetryInterval: cfg.AlertRetryInterval,
		CacheTTL:      cfg.RainfallCacheTTL,
		FetchTimeout:  cfg.WeatherTimeout,
	})
	alertService.Start()
	defer alertService.Stop()

	// Инициализация репозиториев
	zoneRepo := repository.NewZoneRepository(dbpool)
	facilityRepo := repository.NewFacilityRepository(dbpool)
	personnelRepo := repository.NewPersonnelRepository(dbpool)
	vehicleRepo := repository.NewVehicleRepository(dbpool)
	supplyRepo := repository.NewSupplyRepository(dbpool)
	actionRepo := repository.NewResponseActionRepository(dbpool)
	dashboardRepo := repository.NewDashboardRepository(dbpool)

	// Инициализация сервисов
	services := v1.Services{
		Auth:      service.NewAuthService(cfg, sessionStore, log),
		Zones:     service.NewZoneService(zoneRepo, log),
		Facility:  service.NewFacilityService(facilityRepo, log),
		Personnel: service.NewPersonnelService(personnelRepo, log),
		Vehicles:  service.NewVehicleService(vehicleRepo, log),
		Supplies:  service.NewSupplyService(supplyRepo, log),
		Actions:   service.NewResponseActionService(actionRepo, log),
		Dashboard: service.NewDashboardService(dashboardRepo, log),
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(services, sessionStore, alertService, broadcaster, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(v1.MetricsMiddleware(metrics))
	handler.RegisterRoutes(router)

	// Маршруты метрик и Swagger UI
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
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

	log.Info("Server gracefully stopped")
}

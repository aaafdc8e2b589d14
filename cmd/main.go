package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	assistantQueryHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/assistant_query"
	getActiveSessionsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_active_sessions"
	getAnalyticsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_analytics"
	getMonthlyReportHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_monthly_report"
	getSessionsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_sessions"
	getStatusHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_status"
	registerEntryHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/register_entry"
	registerExitHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/register_exit"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/internal/infra/cache"
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/session"
	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spot"
	vehicleRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-ParkingService/internal/queue"
	analyticsService "github.com/m04kA/SMC-ParkingService/internal/service/analytics"
	assistantService "github.com/m04kA/SMC-ParkingService/internal/service/assistant"
	provisionService "github.com/m04kA/SMC-ParkingService/internal/service/provision"
	sessionsService "github.com/m04kA/SMC-ParkingService/internal/service/sessions"
	statusService "github.com/m04kA/SMC-ParkingService/internal/service/status"
	registerEntryUC "github.com/m04kA/SMC-ParkingService/internal/usecase/register_entry"
	registerExitUC "github.com/m04kA/SMC-ParkingService/internal/usecase/register_exit"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ParkingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		vehicleRepository *vehicleRepo.Repository
		spotRepository    *spotRepo.Repository
		sessionRepository *sessionRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		spotRepository = spotRepo.NewRepository(wrappedDB)
		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		vehicleRepository = vehicleRepo.NewRepository(db)
		spotRepository = spotRepo.NewRepository(db)
		sessionRepository = sessionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Провижиним парковку при первом запуске (пустая таблица мест)
	provisionSvc := provisionService.NewService(spotRepository, txMgr, log)
	if err := provisionSvc.EnsureLot(context.Background(), cfg.Parking.Floors, cfg.Parking.SpotsPerFloor); err != nil {
		log.Fatal("Failed to provision parking lot: %v", err)
	}
	log.Info("Parking lot ready: floors=%d, spots_per_floor=%d, hourly_rate=%.2f",
		cfg.Parking.Floors, cfg.Parking.SpotsPerFloor, cfg.Parking.HourlyRate)

	// Redis-кэш статуса (опционален - при недоступности читаем из БД)
	var statusCache statusService.Cache
	if cfg.Cache.Enabled {
		if redisClient := cache.New(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB); redisClient != nil {
			statusCache = redisClient
			defer redisClient.Close()
			log.Info("Redis cache connected at %s", cfg.Cache.Addr)
		} else {
			log.Warn("Redis unavailable at %s, status cache disabled", cfg.Cache.Addr)
		}
	}

	// Публикация событий въезда/выезда (опциональна)
	var entryPublisher registerEntryUC.EventPublisher
	var exitPublisher registerExitUC.EventPublisher
	if cfg.Queue.Enabled {
		eventPublisher := queue.NewPublisher(cfg.Queue.URL, log)
		entryPublisher = eventPublisher
		exitPublisher = eventPublisher
		log.Info("Event publishing enabled (queue=%s)", cfg.Queue.URL)
	}

	// Инициализируем сервисы
	statusSvc := statusService.NewService(
		spotRepository,
		statusCache,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		log,
	)
	sessionsSvc := sessionsService.NewService(sessionRepository, log)
	analyticsSvc := analyticsService.NewService(sessionRepository, log)
	assistantSvc := assistantService.New(statusSvc, sessionsSvc, analyticsSvc, log)

	// Инициализируем use cases
	registerEntryUseCase := registerEntryUC.NewUseCase(
		vehicleRepository,
		spotRepository,
		sessionRepository,
		txMgr,
		entryPublisher,
		cfg.Parking.HourlyRate,
		log,
	)
	registerExitUseCase := registerExitUC.NewUseCase(
		spotRepository,
		sessionRepository,
		txMgr,
		exitPublisher,
		log,
	)

	// Инициализируем handlers
	registerEntry := registerEntryHandler.NewHandler(registerEntryUseCase, log)
	registerExit := registerExitHandler.NewHandler(registerExitUseCase, log)
	getStatus := getStatusHandler.NewHandler(statusSvc, log)
	getActiveSessions := getActiveSessionsHandler.NewHandler(sessionsSvc, log)
	getSessions := getSessionsHandler.NewHandler(sessionsSvc, log)
	getAnalytics := getAnalyticsHandler.NewHandler(analyticsSvc, log)
	getMonthlyReport := getMonthlyReportHandler.NewHandler(analyticsSvc, log)
	assistantQuery := assistantQueryHandler.NewHandler(assistantSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Статус парковки (дашборд)
	api.HandleFunc("/parking/status", getStatus.Handle).Methods(http.MethodGet)

	// Открытые сессии с потенциальной выручкой
	api.HandleFunc("/parking/sessions/active", getActiveSessions.Handle).Methods(http.MethodGet)

	// Полная история сессий
	api.HandleFunc("/parking/sessions", getSessions.Handle).Methods(http.MethodGet)

	// Аналитика за текущий день
	api.HandleFunc("/parking/analytics", getAnalytics.Handle).Methods(http.MethodGet)

	// Месячные отчеты по выручке и загрузке
	api.HandleFunc("/parking/analytics/monthly", getMonthlyReport.Handle).Methods(http.MethodGet)

	// Вопросы ассистенту
	api.HandleFunc("/assistant/query", assistantQuery.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Operator-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Регистрация въезда
	protected.HandleFunc("/vehicles/entry", registerEntry.Handle).Methods(http.MethodPost)

	// Регистрация выезда с расчетом оплаты
	protected.HandleFunc("/vehicles/exit", registerExit.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}

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

	allowedMonthsHandler "github.com/m04kA/SMC-PricingService/internal/api/handlers/allowed_months"
	applyBandHandler "github.com/m04kA/SMC-PricingService/internal/api/handlers/apply_band"
	createBandHandler "github.com/m04kA/SMC-PricingService/internal/api/handlers/create_band"
	createCalendarHandler "github.com/m04kA/SMC-PricingService/internal/api/handlers/create_calendar"
	deleteBandHandler "github.com/m04kA/SMC-PricingService/internal/api/handlers/delete_band"
	deleteCalendarHandler "github.com/m04kA/SMC-PricingService/internal/api/handlers/delete_calendar"
	getProductPricingHandler "github.com/m04kA/SMC-PricingService/internal/api/handlers/get_product_pricing"
	listBandsHandler "github.com/m04kA/SMC-PricingService/internal/api/handlers/list_bands"
	listCalendarsHandler "github.com/m04kA/SMC-PricingService/internal/api/handlers/list_calendars"
	updateBandHandler "github.com/m04kA/SMC-PricingService/internal/api/handlers/update_band"
	"github.com/m04kA/SMC-PricingService/internal/api/middleware"
	"github.com/m04kA/SMC-PricingService/internal/config"
	bandRepo "github.com/m04kA/SMC-PricingService/internal/infra/storage/band"
	calendarRepo "github.com/m04kA/SMC-PricingService/internal/infra/storage/calendar"
	productServiceClient "github.com/m04kA/SMC-PricingService/internal/integrations/productservice"
	bandsService "github.com/m04kA/SMC-PricingService/internal/service/bands"
	calendarsService "github.com/m04kA/SMC-PricingService/internal/service/calendars"
	applyBandUC "github.com/m04kA/SMC-PricingService/internal/usecase/apply_band"
	getProductPricingUC "github.com/m04kA/SMC-PricingService/internal/usecase/get_product_pricing"
	"github.com/m04kA/SMC-PricingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PricingService/pkg/logger"
	"github.com/m04kA/SMC-PricingService/pkg/metrics"
	"github.com/m04kA/SMC-PricingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-PricingService/pkg/txmanager"
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

	log.Info("Starting SMC-PricingService...")
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

	// Инициализируем клиента каталога продуктов
	productClient := productServiceClient.NewClient(
		cfg.ProductService.URL,
		time.Duration(cfg.ProductService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ProductService=%s timeout=%ds)",
		cfg.ProductService.URL, cfg.ProductService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bandRepository     *bandRepo.Repository
		calendarRepository *calendarRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bandRepository = bandRepo.NewRepository(wrappedDB)
		calendarRepository = calendarRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bandRepository = bandRepo.NewRepository(db)
		calendarRepository = calendarRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bandSvc := bandsService.NewService(
		bandRepository,
		productClient,
		log,
	)
	calendarSvc := calendarsService.NewService(
		calendarRepository,
		productClient,
		log,
	)

	// Инициализируем use cases
	applyBandUseCase := applyBandUC.NewUseCase(
		calendarRepository,
		bandRepository,
		txMgr,
		log,
	)

	getProductPricingUseCase := getProductPricingUC.NewUseCase(
		bandRepository,
		calendarRepository,
		productClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	listBands := listBandsHandler.NewHandler(bandSvc, log)
	createBand := createBandHandler.NewHandler(bandSvc, log)
	updateBand := updateBandHandler.NewHandler(bandSvc, log)
	deleteBand := deleteBandHandler.NewHandler(bandSvc, log)
	listCalendars := listCalendarsHandler.NewHandler(calendarSvc, log)
	allowedMonths := allowedMonthsHandler.NewHandler(calendarSvc, log)
	createCalendar := createCalendarHandler.NewHandler(calendarSvc, log)
	deleteCalendar := deleteCalendarHandler.NewHandler(calendarSvc, log)
	applyBand := applyBandHandler.NewHandler(applyBandUseCase, log)
	getProductPricing := getProductPricingHandler.NewHandler(getProductPricingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Снимок ценообразования продукта: банды + календари
	api.HandleFunc("/products/{productId}/pricing",
		getProductPricing.Handle).Methods(http.MethodGet)

	// Список бандов продукта
	api.HandleFunc("/products/{productId}/bands",
		listBands.Handle).Methods(http.MethodGet)

	// Следующая свободная буква банда (подстановка в форму создания)
	api.HandleFunc("/products/{productId}/bands/next-name",
		listBands.HandleNextName).Methods(http.MethodGet)

	// Список календарей продукта
	api.HandleFunc("/products/{productId}/calendars",
		listCalendars.Handle).Methods(http.MethodGet)

	// Политика доступных месяцев
	api.HandleFunc("/products/{productId}/calendars/allowed-months",
		allowedMonths.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Банды ---
	protected.HandleFunc("/products/{productId}/bands", createBand.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bands/{bandId}", updateBand.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bands/{bandId}", deleteBand.Handle).Methods(http.MethodDelete)

	// --- Календари ---
	protected.HandleFunc("/products/{productId}/calendars", createCalendar.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/calendars/{calendarId}/days", applyBand.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/calendars/{calendarId}", deleteCalendar.Handle).Methods(http.MethodDelete)

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

	log.Info("Server stopped gracefully")
}

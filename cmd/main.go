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

	approveAdvertHandler "github.com/m04kA/SMC-AdsService/internal/api/handlers/approve_advert"
	checkAvailabilityHandler "github.com/m04kA/SMC-AdsService/internal/api/handlers/check_availability"
	createAdvertHandler "github.com/m04kA/SMC-AdsService/internal/api/handlers/create_advert"
	declineAdvertHandler "github.com/m04kA/SMC-AdsService/internal/api/handlers/decline_advert"
	deleteAdvertHandler "github.com/m04kA/SMC-AdsService/internal/api/handlers/delete_advert"
	extendAdvertHandler "github.com/m04kA/SMC-AdsService/internal/api/handlers/extend_advert"
	getAdvertHandler "github.com/m04kA/SMC-AdsService/internal/api/handlers/get_advert"
	listAdvertsHandler "github.com/m04kA/SMC-AdsService/internal/api/handlers/list_adverts"
	listSlotsHandler "github.com/m04kA/SMC-AdsService/internal/api/handlers/list_slots"
	manualUpdateHandler "github.com/m04kA/SMC-AdsService/internal/api/handlers/manual_update"
	"github.com/m04kA/SMC-AdsService/internal/api/middleware"
	"github.com/m04kA/SMC-AdsService/internal/config"
	advertRepo "github.com/m04kA/SMC-AdsService/internal/infra/storage/advert"
	assignmentRepo "github.com/m04kA/SMC-AdsService/internal/infra/storage/assignment"
	timeslotRepo "github.com/m04kA/SMC-AdsService/internal/infra/storage/timeslot"
	billingClient "github.com/m04kA/SMC-AdsService/internal/integrations/billingservice"
	notifyClient "github.com/m04kA/SMC-AdsService/internal/integrations/notifyservice"
	advertsService "github.com/m04kA/SMC-AdsService/internal/service/adverts"
	approveAdvertUC "github.com/m04kA/SMC-AdsService/internal/usecase/approve_advert"
	checkAvailabilityUC "github.com/m04kA/SMC-AdsService/internal/usecase/check_availability"
	createAdvertUC "github.com/m04kA/SMC-AdsService/internal/usecase/create_advert"
	extendAdvertUC "github.com/m04kA/SMC-AdsService/internal/usecase/extend_advert"
	lifecycleSweepUC "github.com/m04kA/SMC-AdsService/internal/usecase/lifecycle_sweep"
	"github.com/m04kA/SMC-AdsService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AdsService/pkg/logger"
	"github.com/m04kA/SMC-AdsService/pkg/metrics"
	"github.com/m04kA/SMC-AdsService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AdsService/pkg/txmanager"
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

	log.Info("Starting SMC-AdsService...")
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

	// Инициализируем интеграционных клиентов
	billing := billingClient.NewClient(
		cfg.BillingService.URL,
		time.Duration(cfg.BillingService.Timeout)*time.Second,
		log,
	)
	notify := notifyClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (BillingService=%s timeout=%ds, NotifyService=%s timeout=%ds)",
		cfg.BillingService.URL, cfg.BillingService.Timeout, cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		advertRepository     *advertRepo.Repository
		slotRepository       *timeslotRepo.Repository
		assignmentRepository *assignmentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисе)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		advertRepository = advertRepo.NewRepository(wrappedDB)
		slotRepository = timeslotRepo.NewRepository(wrappedDB)
		assignmentRepository = assignmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		advertRepository = advertRepo.NewRepository(db)
		slotRepository = timeslotRepo.NewRepository(db)
		assignmentRepository = assignmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Засеваем каталог слотов (идемпотентно)
	if err := slotRepository.Seed(context.Background()); err != nil {
		log.Fatal("Failed to seed time slots: %v", err)
	}
	log.Info("Time slot catalog seeded")

	// Инициализируем сервис
	advertSvc := advertsService.NewService(
		advertRepository,
		assignmentRepository,
		notify,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createAdvertUseCase := createAdvertUC.NewUseCase(advertRepository, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		advertRepository,
		slotRepository,
		assignmentRepository,
		log,
	)
	approveAdvertUseCase := approveAdvertUC.NewUseCase(
		advertRepository,
		slotRepository,
		assignmentRepository,
		billing,
		notify,
		txMgr,
		log,
	)
	extendAdvertUseCase := extendAdvertUC.NewUseCase(
		advertRepository,
		assignmentRepository,
		txMgr,
		log,
	)
	lifecycleSweepUseCase := lifecycleSweepUC.NewUseCase(
		advertRepository,
		assignmentRepository,
		cfg.Lifecycle.RetentionDays,
		log,
	)

	// Инициализируем handlers
	listSlots := listSlotsHandler.NewHandler(slotRepository, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createAdvert := createAdvertHandler.NewHandler(createAdvertUseCase, log)
	getAdvert := getAdvertHandler.NewHandler(advertSvc, log)
	listAdverts := listAdvertsHandler.NewHandler(advertSvc, log)
	approveAdvert := approveAdvertHandler.NewHandler(approveAdvertUseCase, log)
	extendAdvert := extendAdvertHandler.NewHandler(extendAdvertUseCase, log)
	declineAdvert := declineAdvertHandler.NewHandler(advertSvc, log)
	deleteAdvert := deleteAdvertHandler.NewHandler(advertSvc, log)
	manualUpdate := manualUpdateHandler.NewHandler(lifecycleSweepUseCase, log)

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

	// Каталог временных слотов
	api.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Объявления ---
	// Создание объявления (менеджер по продажам)
	protected.HandleFunc("/adverts", createAdvert.Handle).Methods(http.MethodPost)

	// Список объявлений с фильтрацией
	protected.HandleFunc("/adverts", listAdverts.Handle).Methods(http.MethodGet)

	// Получение объявления по ID
	protected.HandleFunc("/adverts/{advertId}", getAdvert.Handle).Methods(http.MethodGet)

	// Удаление объявления
	protected.HandleFunc("/adverts/{advertId}", deleteAdvert.Handle).Methods(http.MethodDelete)

	// Продление размещения
	protected.HandleFunc("/adverts/{advertId}/extend", extendAdvert.Handle).Methods(http.MethodPost)

	// Проверка доступности слота для объявления
	protected.HandleFunc("/slots/check-availability", checkAvailability.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminOnly)

	// Одобрение объявления с назначением слота
	admin.HandleFunc("/adverts/{advertId}/approve", approveAdvert.Handle).Methods(http.MethodPost)

	// Отклонение объявления
	admin.HandleFunc("/adverts/{advertId}/decline", declineAdvert.Handle).Methods(http.MethodPost)

	// Ручной запуск пересчёта остатков
	admin.HandleFunc("/adverts/manual-update", manualUpdate.Handle).Methods(http.MethodPost)

	// Запускаем ежедневный пересчёт остатков
	stopSweepCh := make(chan struct{})
	go runDailySweep(lifecycleSweepUseCase, metricsCollector, cfg.Lifecycle.SweepHour, stopSweepCh, log)

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

	// Останавливаем планировщик пересчёта
	close(stopSweepCh)

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

// runDailySweep запускает пересчёт остатков раз в сутки в sweepHour по UTC.
// Пропущенный запуск не навёрстывается: следующий будет в тот же час завтра,
// а пересчёт за пропущенный день выполняется через POST /adverts/manual-update.
func runDailySweep(
	useCase *lifecycleSweepUC.UseCase,
	metricsCollector *metrics.Metrics,
	sweepHour int,
	stopCh <-chan struct{},
	log *logger.Logger,
) {
	for {
		now := time.Now().UTC()
		next := time.Date(now.Year(), now.Month(), now.Day(), sweepHour, 0, 0, 0, time.UTC)
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}

		log.Info("Daily sweep scheduled at %s", next.Format(time.RFC3339))

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-stopCh:
			timer.Stop()
			log.Info("Daily sweep scheduler stopped")
			return
		case <-timer.C:
		}

		result, err := useCase.Execute(context.Background())
		if err != nil {
			log.Error("Daily sweep failed: %v", err)
			continue
		}

		log.Info("Daily sweep completed: checked=%d, updated=%d, expired=%d, failed=%d, pruned=%d",
			result.Checked, result.Updated, result.Expired, result.Failed, result.Pruned)

		if metricsCollector != nil {
			metricsCollector.ObserveSweepRun("scheduled", result.Expired, int(result.Pruned))
		}
	}
}

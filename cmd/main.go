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

	completeAppointmentHandler "github.com/premoprojekt2024TM/Barber-sub000/internal/api/handlers/complete_appointment"
	createAppointmentHandler "github.com/premoprojekt2024TM/Barber-sub000/internal/api/handlers/create_appointment"
	getAvailabilityHandler "github.com/premoprojekt2024TM/Barber-sub000/internal/api/handlers/get_availability"
	getMyAppointmentsHandler "github.com/premoprojekt2024TM/Barber-sub000/internal/api/handlers/get_my_appointments"
	getMyAvailabilityHandler "github.com/premoprojekt2024TM/Barber-sub000/internal/api/handlers/get_my_availability"
	submitAvailabilityHandler "github.com/premoprojekt2024TM/Barber-sub000/internal/api/handlers/submit_availability"
	"github.com/premoprojekt2024TM/Barber-sub000/internal/api/middleware"
	"github.com/premoprojekt2024TM/Barber-sub000/internal/config"
	appointmentRepo "github.com/premoprojekt2024TM/Barber-sub000/internal/infra/storage/appointment"
	slotRepo "github.com/premoprojekt2024TM/Barber-sub000/internal/infra/storage/slot"
	userServiceClient "github.com/premoprojekt2024TM/Barber-sub000/internal/integrations/userservice"
	appointmentsService "github.com/premoprojekt2024TM/Barber-sub000/internal/service/appointments"
	availabilityService "github.com/premoprojekt2024TM/Barber-sub000/internal/service/availability"
	reserveSlotUC "github.com/premoprojekt2024TM/Barber-sub000/internal/usecase/reserve_slot"
	submitAvailabilityUC "github.com/premoprojekt2024TM/Barber-sub000/internal/usecase/submit_availability"
	"github.com/premoprojekt2024TM/Barber-sub000/pkg/dbmetrics"
	"github.com/premoprojekt2024TM/Barber-sub000/pkg/logger"
	"github.com/premoprojekt2024TM/Barber-sub000/pkg/metrics"
	"github.com/premoprojekt2024TM/Barber-sub000/pkg/simpletxmanager"
	"github.com/premoprojekt2024TM/Barber-sub000/pkg/txmanager"
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

	log.Info("Starting Barber booking service...")
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

	// Инициализируем клиент сервиса профилей
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository        *slotRepo.Repository
		appointmentRepository *appointmentRepo.Repository
		txMgr                 TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		slotRepository,
		userClient,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		userClient,
		log,
	)

	// Инициализируем use cases
	submitAvailabilityUseCase := submitAvailabilityUC.NewUseCase(
		slotRepository,
		userClient,
		txMgr,
		log,
	)
	reserveSlotUseCase := reserveSlotUC.NewUseCase(
		slotRepository,
		appointmentRepository,
		userClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	submitAvailability := submitAvailabilityHandler.NewHandler(submitAvailabilityUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	getMyAvailability := getMyAvailabilityHandler.NewHandler(availabilitySvc, log)
	createAppointment := createAppointmentHandler.NewHandler(reserveSlotUseCase, log)
	getMyAppointments := getMyAppointmentsHandler.NewHandler(appointmentsSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Доступность ---
	// Отправка всей недели мастера (реконсиляция)
	protected.HandleFunc("/availability", submitAvailability.Handle).Methods(http.MethodPost)

	// Полная неделя владельца, включая принятые слоты (для редактора черновика)
	// Регистрируется до /availability/{workerId}, иначе mux примет "mine" за ID
	protected.HandleFunc("/availability/mine", getMyAvailability.Handle).Methods(http.MethodGet)

	// --- Записи ---
	// Бронирование слота клиентом
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Записи вызывающего пользователя (клиент - свои, мастер - к себе)
	protected.HandleFunc("/appointments/mine", getMyAppointments.Handle).Methods(http.MethodGet)

	// Завершение записи мастером
	protected.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Открытая доступность мастера для выбора времени клиентом
	api.HandleFunc("/availability/{workerId}", getAvailability.Handle).Methods(http.MethodGet)

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

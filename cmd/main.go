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

	calculateRateHandler "github.com/akimovv/VRM-BookingService/internal/api/handlers/calculate_rate"
	cancelBookingHandler "github.com/akimovv/VRM-BookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/akimovv/VRM-BookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/akimovv/VRM-BookingService/internal/api/handlers/create_booking"
	createSeasonalRateHandler "github.com/akimovv/VRM-BookingService/internal/api/handlers/create_seasonal_rate"
	deactivateSeasonalRateHandler "github.com/akimovv/VRM-BookingService/internal/api/handlers/deactivate_seasonal_rate"
	getBookingHandler "github.com/akimovv/VRM-BookingService/internal/api/handlers/get_booking"
	getBookingLogHandler "github.com/akimovv/VRM-BookingService/internal/api/handlers/get_booking_log"
	getPropertyBookingsHandler "github.com/akimovv/VRM-BookingService/internal/api/handlers/get_property_bookings"
	getUserBookingsHandler "github.com/akimovv/VRM-BookingService/internal/api/handlers/get_user_bookings"
	listSeasonalRatesHandler "github.com/akimovv/VRM-BookingService/internal/api/handlers/list_seasonal_rates"
	recordPaymentHandler "github.com/akimovv/VRM-BookingService/internal/api/handlers/record_payment"
	"github.com/akimovv/VRM-BookingService/internal/api/middleware"
	"github.com/akimovv/VRM-BookingService/internal/config"
	bookingRepo "github.com/akimovv/VRM-BookingService/internal/infra/storage/booking"
	bookingLogRepo "github.com/akimovv/VRM-BookingService/internal/infra/storage/bookinglog"
	paymentRepo "github.com/akimovv/VRM-BookingService/internal/infra/storage/payment"
	propertyRepo "github.com/akimovv/VRM-BookingService/internal/infra/storage/property"
	seasonalRateRepo "github.com/akimovv/VRM-BookingService/internal/infra/storage/seasonalrate"
	guestServiceClient "github.com/akimovv/VRM-BookingService/internal/integrations/guestservice"
	bookingsService "github.com/akimovv/VRM-BookingService/internal/service/bookings"
	ratesService "github.com/akimovv/VRM-BookingService/internal/service/rates"
	calculateRateUC "github.com/akimovv/VRM-BookingService/internal/usecase/calculate_rate"
	checkAvailabilityUC "github.com/akimovv/VRM-BookingService/internal/usecase/check_availability"
	createBookingUC "github.com/akimovv/VRM-BookingService/internal/usecase/create_booking"
	recordPaymentUC "github.com/akimovv/VRM-BookingService/internal/usecase/record_payment"
	"github.com/akimovv/VRM-BookingService/pkg/dbmetrics"
	"github.com/akimovv/VRM-BookingService/pkg/logger"
	"github.com/akimovv/VRM-BookingService/pkg/metrics"
	"github.com/akimovv/VRM-BookingService/pkg/simpletxmanager"
	"github.com/akimovv/VRM-BookingService/pkg/txmanager"
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

	log.Info("Starting VRM-BookingService...")
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
	guestClient := guestServiceClient.NewClient(
		cfg.GuestService.URL,
		time.Duration(cfg.GuestService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (GuestService=%s timeout=%ds)",
		cfg.GuestService.URL, cfg.GuestService.Timeout)

	// Выходные дни для расчета надбавки
	weekendDays := cfg.Pricing.WeekendWeekdays()
	log.Info("Weekend days configured: %v", weekendDays)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		propertyRepository     *propertyRepo.Repository
		seasonalRateRepository *seasonalRateRepo.Repository
		paymentRepository      *paymentRepo.Repository
		bookingLogRepository   *bookingLogRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		propertyRepository = propertyRepo.NewRepository(wrappedDB)
		seasonalRateRepository = seasonalRateRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		bookingLogRepository = bookingLogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		propertyRepository = propertyRepo.NewRepository(db)
		seasonalRateRepository = seasonalRateRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		bookingLogRepository = bookingLogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	timeProvider := &bookingsService.RealTimeProvider{}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		propertyRepository,
		bookingLogRepository,
		timeProvider,
		log,
	)
	rateSvc := ratesService.NewService(
		seasonalRateRepository,
		propertyRepository,
		log,
	)

	// Инициализируем use cases
	calculateRateUseCase := calculateRateUC.NewUseCase(
		propertyRepository,
		seasonalRateRepository,
		weekendDays,
		log,
	)

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		propertyRepository,
		bookingRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		propertyRepository,
		seasonalRateRepository,
		bookingLogRepository,
		guestClient,
		txMgr,
		&createBookingUC.RealTimeProvider{},
		weekendDays,
		log,
	)

	recordPaymentUseCase := recordPaymentUC.NewUseCase(
		bookingRepository,
		paymentRepository,
		bookingLogRepository,
		txMgr,
		&recordPaymentUC.RealTimeProvider{},
		log,
	)

	// Инициализируем handlers
	calculateRate := calculateRateHandler.NewHandler(calculateRateUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getPropertyBookings := getPropertyBookingsHandler.NewHandler(bookingSvc, log)
	getBookingLog := getBookingLogHandler.NewHandler(bookingSvc, log)
	recordPayment := recordPaymentHandler.NewHandler(recordPaymentUseCase, log)
	createSeasonalRate := createSeasonalRateHandler.NewHandler(rateSvc, log)
	listSeasonalRates := listSeasonalRatesHandler.NewHandler(rateSvc, log)
	deactivateSeasonalRate := deactivateSeasonalRateHandler.NewHandler(rateSvc, log)

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

	// Предварительный расчет стоимости проживания
	api.HandleFunc("/rates/calculate", calculateRate.Handle).Methods(http.MethodPost)

	// Проверка доступности дат объекта
	api.HandleFunc("/properties/{propertyId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Действующие сезонные тарифы объекта
	api.HandleFunc("/properties/{propertyId}/rates", listSeasonalRates.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// STAFF ROUTES (требуют X-User-Role: staff)
	// ============================================================

	staff := protected.PathPrefix("").Subrouter()
	staff.Use(middleware.RequireStaff)

	// Календарь занятости объекта
	staff.HandleFunc("/properties/{propertyId}/bookings", getPropertyBookings.Handle).Methods(http.MethodGet)

	// Журнал событий бронирования
	staff.HandleFunc("/bookings/{bookingId}/log", getBookingLog.Handle).Methods(http.MethodGet)

	// Регистрация верифицированного платежа
	staff.HandleFunc("/bookings/{bookingId}/payments", recordPayment.Handle).Methods(http.MethodPost)

	// Управление сезонными тарифами
	staff.HandleFunc("/properties/{propertyId}/rates", createSeasonalRate.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/seasonal-rates/{rateId}", deactivateSeasonalRate.Handle).Methods(http.MethodDelete)

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

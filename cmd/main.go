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

	adminAuthHandler "github.com/minari-lab/salon-booking-service/internal/api/handlers/admin_auth"
	availabilityHandler "github.com/minari-lab/salon-booking-service/internal/api/handlers/availability"
	cancelBookingHandler "github.com/minari-lab/salon-booking-service/internal/api/handlers/cancel_booking"
	createBlockHandler "github.com/minari-lab/salon-booking-service/internal/api/handlers/create_block"
	createBookingHandler "github.com/minari-lab/salon-booking-service/internal/api/handlers/create_booking"
	deleteBlockHandler "github.com/minari-lab/salon-booking-service/internal/api/handlers/delete_block"
	getBookingHandler "github.com/minari-lab/salon-booking-service/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/minari-lab/salon-booking-service/internal/api/handlers/get_customer_bookings"
	getDesignerDayHandler "github.com/minari-lab/salon-booking-service/internal/api/handlers/get_designer_day"
	getDesignerMonthHandler "github.com/minari-lab/salon-booking-service/internal/api/handlers/get_designer_month"
	getDesignersHandler "github.com/minari-lab/salon-booking-service/internal/api/handlers/get_designers"
	getServicesHandler "github.com/minari-lab/salon-booking-service/internal/api/handlers/get_services"
	rescheduleBookingHandler "github.com/minari-lab/salon-booking-service/internal/api/handlers/reschedule_booking"
	updateDesignerHandler "github.com/minari-lab/salon-booking-service/internal/api/handlers/update_designer"
	"github.com/minari-lab/salon-booking-service/internal/api/middleware"
	"github.com/minari-lab/salon-booking-service/internal/auth"
	"github.com/minari-lab/salon-booking-service/internal/config"
	blockRepo "github.com/minari-lab/salon-booking-service/internal/infra/storage/block"
	bookingRepo "github.com/minari-lab/salon-booking-service/internal/infra/storage/booking"
	designerRepo "github.com/minari-lab/salon-booking-service/internal/infra/storage/designer"
	serviceItemRepo "github.com/minari-lab/salon-booking-service/internal/infra/storage/serviceitem"
	bookingsService "github.com/minari-lab/salon-booking-service/internal/service/bookings"
	designersService "github.com/minari-lab/salon-booking-service/internal/service/designers"
	createBookingUC "github.com/minari-lab/salon-booking-service/internal/usecase/create_booking"
	recommendSlotsUC "github.com/minari-lab/salon-booking-service/internal/usecase/recommend_slots"
	rescheduleBookingUC "github.com/minari-lab/salon-booking-service/internal/usecase/reschedule_booking"
	"github.com/minari-lab/salon-booking-service/pkg/dbmetrics"
	"github.com/minari-lab/salon-booking-service/pkg/logger"
	"github.com/minari-lab/salon-booking-service/pkg/metrics"
	"github.com/minari-lab/salon-booking-service/pkg/simpletxmanager"
	"github.com/minari-lab/salon-booking-service/pkg/txmanager"
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

	log.Info("Starting salon-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopCh := make(chan struct{})

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
		bookingRepository     *bookingRepo.Repository
		blockRepository       *blockRepo.Repository
		designerRepository    *designerRepo.Repository
		serviceItemRepository *serviceItemRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		blockRepository = blockRepo.NewRepository(wrappedDB)
		designerRepository = designerRepo.NewRepository(wrappedDB)
		serviceItemRepository = serviceItemRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		blockRepository = blockRepo.NewRepository(db)
		designerRepository = designerRepo.NewRepository(db)
		serviceItemRepository = serviceItemRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Сессии администратора
	sessions := auth.NewManager(
		[]byte(cfg.Auth.CookieHashKey),
		[]byte(cfg.Auth.CookieBlockKey),
		cfg.Auth.AdminLogin,
		cfg.Auth.AdminPasswordHash,
		time.Duration(cfg.Auth.SessionTTLHours)*time.Hour,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		blockRepository,
		designerRepository,
		log,
	)
	designerSvc := designersService.NewService(
		designerRepository,
		blockRepository,
		serviceItemRepository,
		log,
	)

	// Инициализируем use cases
	recommendSlotsUseCase := recommendSlotsUC.NewUseCase(
		designerRepository,
		bookingRepository,
		blockRepository,
		serviceItemRepository,
		recommendSlotsUC.Policy{
			IntervalMinutes: cfg.Policy.IntervalMinutes,
			BufferMinutes:   cfg.Policy.BufferMinutes,
			MinLeadHours:    cfg.Policy.MinLeadHours,
			MaxLeadDays:     cfg.Policy.MaxLeadDays,
		},
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		designerRepository,
		bookingRepository,
		blockRepository,
		serviceItemRepository,
		txMgr,
		createBookingUC.Policy{
			IntervalMinutes: cfg.Policy.IntervalMinutes,
			BufferMinutes:   cfg.Policy.BufferMinutes,
			MinLeadHours:    cfg.Policy.MinLeadHours,
			MaxLeadDays:     cfg.Policy.MaxLeadDays,
		},
		log,
	)

	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		designerRepository,
		bookingRepository,
		blockRepository,
		txMgr,
		rescheduleBookingUC.Policy{
			IntervalMinutes: cfg.Policy.IntervalMinutes,
			BufferMinutes:   cfg.Policy.BufferMinutes,
			MinLeadHours:    cfg.Policy.MinLeadHours,
			MaxLeadDays:     cfg.Policy.MaxLeadDays,
		},
		log,
	)

	// Инициализируем handlers
	availability := availabilityHandler.NewHandler(recommendSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getDesigners := getDesignersHandler.NewHandler(designerSvc, log)
	getServices := getServicesHandler.NewHandler(designerSvc, log)
	updateDesigner := updateDesignerHandler.NewHandler(designerSvc, log)
	getDesignerDay := getDesignerDayHandler.NewHandler(bookingSvc, log)
	getDesignerMonth := getDesignerMonthHandler.NewHandler(bookingSvc, log)
	createBlock := createBlockHandler.NewHandler(designerSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(designerSvc, log)
	adminAuth := adminAuthHandler.NewHandler(sessions, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Rate limiter на клиентские запросы (если включен)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, stopCh)
		api.Use(limiter.Middleware(log))
		log.Info("Rate limiter enabled (rps=%.2f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог дизайнеров и услуг
	api.HandleFunc("/designers", getDesigners.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Подбор доступных слотов
	api.HandleFunc("/availability", availability.Handle).Methods(http.MethodPost)

	// Бронирования клиента (телефон выступает учетными данными)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", cancelBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/{id}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/customers/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// Вход администратора (вне защищенного subrouter)
	api.HandleFunc("/admin/login", adminAuth.HandleLogin).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", adminAuth.HandleLogout).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют сессионную cookie)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin(sessions, log))

	// Управление расписанием дизайнеров
	admin.HandleFunc("/designers/{id}", updateDesigner.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/designers/{id}/day", getDesignerDay.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/designers/{id}/month", getDesignerMonth.Handle).Methods(http.MethodGet)

	// Разовые блокировки времени
	admin.HandleFunc("/blocks", createBlock.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocks/{id}", deleteBlock.Handle).Methods(http.MethodDelete)

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

	// Останавливаем фоновые горутины (метрики пула, очистка лимитера)
	close(stopCh)

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

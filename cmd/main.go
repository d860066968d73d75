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

	cancelAppointmentHandler "github.com/agendavip/booking-service/internal/api/handlers/cancel_appointment"
	closePaymentHandler "github.com/agendavip/booking-service/internal/api/handlers/close_appointment_payment"
	createBookingHandler "github.com/agendavip/booking-service/internal/api/handlers/create_booking"
	createTransactionHandler "github.com/agendavip/booking-service/internal/api/handlers/create_transaction"
	getAppointmentHandler "github.com/agendavip/booking-service/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/agendavip/booking-service/internal/api/handlers/get_available_slots"
	getFinanceSummaryHandler "github.com/agendavip/booking-service/internal/api/handlers/get_finance_summary"
	getNegocioHandler "github.com/agendavip/booking-service/internal/api/handlers/get_negocio"
	getNegocioAppointmentsHandler "github.com/agendavip/booking-service/internal/api/handlers/get_negocio_appointments"
	listClientsHandler "github.com/agendavip/booking-service/internal/api/handlers/list_clients"
	listTransactionsHandler "github.com/agendavip/booking-service/internal/api/handlers/list_transactions"
	updateStatusHandler "github.com/agendavip/booking-service/internal/api/handlers/update_appointment_status"
	updateOperatingHoursHandler "github.com/agendavip/booking-service/internal/api/handlers/update_operating_hours"
	"github.com/agendavip/booking-service/internal/api/middleware"
	"github.com/agendavip/booking-service/internal/config"
	appointmentRepo "github.com/agendavip/booking-service/internal/infra/storage/appointment"
	clientRepo "github.com/agendavip/booking-service/internal/infra/storage/client"
	negocioRepo "github.com/agendavip/booking-service/internal/infra/storage/negocio"
	professionalRepo "github.com/agendavip/booking-service/internal/infra/storage/professional"
	serviceRepo "github.com/agendavip/booking-service/internal/infra/storage/service"
	transactionRepo "github.com/agendavip/booking-service/internal/infra/storage/transaction"
	appointmentsService "github.com/agendavip/booking-service/internal/service/appointments"
	clientsService "github.com/agendavip/booking-service/internal/service/clients"
	financeService "github.com/agendavip/booking-service/internal/service/finance"
	negociosService "github.com/agendavip/booking-service/internal/service/negocios"
	createBookingUC "github.com/agendavip/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/agendavip/booking-service/internal/usecase/get_available_slots"
	"github.com/agendavip/booking-service/pkg/dbmetrics"
	"github.com/agendavip/booking-service/pkg/logger"
	"github.com/agendavip/booking-service/pkg/metrics"
	"github.com/agendavip/booking-service/pkg/simpletxmanager"
	"github.com/agendavip/booking-service/pkg/txmanager"
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

	log.Info("Starting AgendaVIP booking service...")
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
		negocioRepository      *negocioRepo.Repository
		professionalRepository *professionalRepo.Repository
		serviceRepository      *serviceRepo.Repository
		clientRepository       *clientRepo.Repository
		appointmentRepository  *appointmentRepo.Repository
		transactionRepository  *transactionRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		negocioRepository = negocioRepo.NewRepository(wrappedDB)
		professionalRepository = professionalRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		transactionRepository = transactionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		negocioRepository = negocioRepo.NewRepository(db)
		professionalRepository = professionalRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		transactionRepository = transactionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		negocioRepository,
		serviceRepository,
		transactionRepository,
		txMgr,
		log,
	)
	negociosSvc := negociosService.NewService(
		negocioRepository,
		serviceRepository,
		professionalRepository,
		log,
	)
	clientsSvc := clientsService.NewService(
		clientRepository,
		negocioRepository,
		log,
	)
	financeSvc := financeService.NewService(
		transactionRepository,
		negocioRepository,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		negocioRepository,
		professionalRepository,
		serviceRepository,
		appointmentRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		negocioRepository,
		professionalRepository,
		serviceRepository,
		clientRepository,
		appointmentRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getNegocio := getNegocioHandler.NewHandler(negociosSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getNegocioAppointments := getNegocioAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentsSvc, log)
	closePayment := closePaymentHandler.NewHandler(appointmentsSvc, log)
	updateOperatingHours := updateOperatingHoursHandler.NewHandler(negociosSvc, log)
	listClients := listClientsHandler.NewHandler(clientsSvc, log)
	createTransaction := createTransactionHandler.NewHandler(financeSvc, log)
	getFinanceSummary := getFinanceSummaryHandler.NewHandler(financeSvc, log)
	listTransactions := listTransactionsHandler.NewHandler(financeSvc, log)

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
	// PUBLIC ROUTES (страница записи, без аутентификации)
	// ============================================================

	// Публичный профиль негосио по slug
	api.HandleFunc("/negocios/by-slug/{slug}", getNegocio.Handle).Methods(http.MethodGet)

	// Доступные слоты для записи
	api.HandleFunc("/negocios/{negocioId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи клиентом
	api.HandleFunc("/negocios/{negocioId}/appointments",
		createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (панель владельца, требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel",
		cancelAppointment.Handle).Methods(http.MethodPost)

	// Смена статуса записи
	protected.HandleFunc("/appointments/{appointmentId}/status",
		updateStatus.Handle).Methods(http.MethodPatch)

	// Закрытие оплаты записи
	protected.HandleFunc("/appointments/{appointmentId}/payment",
		closePayment.Handle).Methods(http.MethodPost)

	// Список записей негосио
	protected.HandleFunc("/negocios/{negocioId}/appointments",
		getNegocioAppointments.Handle).Methods(http.MethodGet)

	// --- Управление негосио ---
	// Обновление графика работы
	protected.HandleFunc("/negocios/{negocioId}/operating-hours",
		updateOperatingHours.Handle).Methods(http.MethodPut)

	// Список клиентов негосио
	protected.HandleFunc("/negocios/{negocioId}/clients", listClients.Handle).Methods(http.MethodGet)

	// --- Финансы ---
	// Создание ручной финансовой операции
	protected.HandleFunc("/negocios/{negocioId}/transactions",
		createTransaction.Handle).Methods(http.MethodPost)

	// Список финансовых операций за период
	protected.HandleFunc("/negocios/{negocioId}/transactions",
		listTransactions.Handle).Methods(http.MethodGet)

	// Финансовая сводка за период
	protected.HandleFunc("/negocios/{negocioId}/finance/summary",
		getFinanceSummary.Handle).Methods(http.MethodGet)

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

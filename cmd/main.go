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

	cancelAppointmentHandler "github.com/ytopal/Barbershop-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/ytopal/Barbershop-BookingService/internal/api/handlers/create_appointment"
	createExceptionHandler "github.com/ytopal/Barbershop-BookingService/internal/api/handlers/create_exception"
	createRuleHandler "github.com/ytopal/Barbershop-BookingService/internal/api/handlers/create_rule"
	createServiceHandler "github.com/ytopal/Barbershop-BookingService/internal/api/handlers/create_service"
	deleteExceptionHandler "github.com/ytopal/Barbershop-BookingService/internal/api/handlers/delete_exception"
	deleteRuleHandler "github.com/ytopal/Barbershop-BookingService/internal/api/handlers/delete_rule"
	getAppointmentHandler "github.com/ytopal/Barbershop-BookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/ytopal/Barbershop-BookingService/internal/api/handlers/get_available_slots"
	listAppointmentsHandler "github.com/ytopal/Barbershop-BookingService/internal/api/handlers/list_appointments"
	listExceptionsHandler "github.com/ytopal/Barbershop-BookingService/internal/api/handlers/list_exceptions"
	listOpenDatesHandler "github.com/ytopal/Barbershop-BookingService/internal/api/handlers/list_open_dates"
	listRulesHandler "github.com/ytopal/Barbershop-BookingService/internal/api/handlers/list_rules"
	listServicesHandler "github.com/ytopal/Barbershop-BookingService/internal/api/handlers/list_services"
	updateRuleHandler "github.com/ytopal/Barbershop-BookingService/internal/api/handlers/update_rule"
	updateServiceHandler "github.com/ytopal/Barbershop-BookingService/internal/api/handlers/update_service"
	"github.com/ytopal/Barbershop-BookingService/internal/api/middleware"
	"github.com/ytopal/Barbershop-BookingService/internal/app"
	"github.com/ytopal/Barbershop-BookingService/internal/config"
	appointmentRepo "github.com/ytopal/Barbershop-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/ytopal/Barbershop-BookingService/internal/infra/storage/catalog"
	exceptionRepo "github.com/ytopal/Barbershop-BookingService/internal/infra/storage/exception"
	ruleRepo "github.com/ytopal/Barbershop-BookingService/internal/infra/storage/rule"
	mailServiceClient "github.com/ytopal/Barbershop-BookingService/internal/integrations/mailservice"
	appointmentsService "github.com/ytopal/Barbershop-BookingService/internal/service/appointments"
	availabilityService "github.com/ytopal/Barbershop-BookingService/internal/service/availability"
	catalogService "github.com/ytopal/Barbershop-BookingService/internal/service/catalog"
	createAppointmentUC "github.com/ytopal/Barbershop-BookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/ytopal/Barbershop-BookingService/internal/usecase/get_available_slots"
	listOpenDatesUC "github.com/ytopal/Barbershop-BookingService/internal/usecase/list_open_dates"
	"github.com/ytopal/Barbershop-BookingService/pkg/logger"
	"github.com/ytopal/Barbershop-BookingService/pkg/metrics"
	"github.com/ytopal/Barbershop-BookingService/pkg/txmanager"
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

	log.Info("Starting Barbershop-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Применяем миграции
	migrator, err := app.NewMigrator(db, cfg.Database.MigrationsDir)
	if err != nil {
		log.Fatal("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	if version, err := migrator.Version(context.Background()); err == nil {
		log.Info("Database schema is up to date (version=%d)", version)
	}

	// Инициализируем клиента сервиса отправки писем
	var mailClient createAppointmentUC.MailServiceClient
	if cfg.MailService.Enabled {
		mailClient = mailServiceClient.NewClient(
			cfg.MailService.URL,
			time.Duration(cfg.MailService.Timeout)*time.Second,
			log,
		)
		log.Info("Mail client initialized (MailService=%s timeout=%ds)",
			cfg.MailService.URL, cfg.MailService.Timeout)
	} else {
		mailClient = mailServiceClient.NewNoopClient(log)
		log.Info("Mail sending disabled")
	}

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(db)
	catalogRepository := catalogRepo.NewRepository(db)
	ruleRepository := ruleRepo.NewRepository(db)
	exceptionRepository := exceptionRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, mailClient, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	availabilitySvc := availabilityService.NewService(ruleRepository, exceptionRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		catalogRepository,
		ruleRepository,
		exceptionRepository,
		appointmentRepository,
		mailClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalogRepository,
		ruleRepository,
		exceptionRepository,
		appointmentRepository,
		log,
	)

	listOpenDatesUseCase := listOpenDatesUC.NewUseCase(
		ruleRepository,
		exceptionRepository,
		log,
	)

	// Доменные счетчики бронирований
	var bookingMetrics createAppointmentHandler.BookingMetrics = metrics.Nop{}
	if cfg.Metrics.Enabled {
		bookingMetrics = metricsCollector
	}

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listOpenDates := listOpenDatesHandler.NewHandler(listOpenDatesUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, bookingMetrics, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	listRules := listRulesHandler.NewHandler(availabilitySvc, log)
	createRule := createRuleHandler.NewHandler(availabilitySvc, log)
	updateRule := updateRuleHandler.NewHandler(availabilitySvc, log)
	deleteRule := deleteRuleHandler.NewHandler(availabilitySvc, log)
	listExceptions := listExceptionsHandler.NewHandler(availabilitySvc, log)
	createException := createExceptionHandler.NewHandler(availabilitySvc, log)
	deleteException := deleteExceptionHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Витрина услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Доступные слоты записи на услугу
	api.HandleFunc("/services/{serviceId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Открытые для записи даты
	api.HandleFunc("/open-dates", listOpenDates.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Страница подтверждения: запись по публичному коду
	api.HandleFunc("/appointments/{code}", getAppointment.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// --- Записи ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Каталог услуг ---
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)

	// --- Еженедельные правила ---
	admin.HandleFunc("/rules", listRules.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/rules", createRule.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/rules/{ruleId}", updateRule.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/rules/{ruleId}", deleteRule.Handle).Methods(http.MethodDelete)

	// --- Исключения по датам ---
	admin.HandleFunc("/exceptions", listExceptions.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/exceptions", createException.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/exceptions/{exceptionId}", deleteException.Handle).Methods(http.MethodDelete)

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

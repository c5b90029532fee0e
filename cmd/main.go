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

	cancelBookingHandler "github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers/cancel_booking"
	createAnalystHandler "github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers/create_analyst"
	createBookingHandler "github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers/create_booking"
	createFeedbackHandler "github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers/create_feedback"
	createResearchHandler "github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers/create_research_document"
	createScheduleRuleHandler "github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers/create_schedule_rule"
	deleteResearchHandler "github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers/delete_research_document"
	deleteScheduleRuleHandler "github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers/delete_schedule_rule"
	getAnalystHandler "github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers/get_analyst"
	getAvailableSlotsHandler "github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers/get_booking"
	listAnalystsHandler "github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers/list_analysts"
	listBookingsHandler "github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers/list_bookings"
	listFeedbackHandler "github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers/list_feedback"
	listResearchHandler "github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers/list_research_documents"
	listScheduleRulesHandler "github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers/list_schedule_rules"
	updateAnalystHandler "github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers/update_analyst"
	updateBookingStatusHandler "github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers/update_booking_status"
	updateScheduleRuleHandler "github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers/update_schedule_rule"
	"github.com/syednazrin/Amresearch-platform-sub000/internal/api/middleware"
	"github.com/syednazrin/Amresearch-platform-sub000/internal/config"
	analystRepo "github.com/syednazrin/Amresearch-platform-sub000/internal/infra/storage/analyst"
	bookingRepo "github.com/syednazrin/Amresearch-platform-sub000/internal/infra/storage/booking"
	feedbackRepo "github.com/syednazrin/Amresearch-platform-sub000/internal/infra/storage/feedback"
	researchRepo "github.com/syednazrin/Amresearch-platform-sub000/internal/infra/storage/research"
	scheduleRepo "github.com/syednazrin/Amresearch-platform-sub000/internal/infra/storage/schedule"
	analystsService "github.com/syednazrin/Amresearch-platform-sub000/internal/service/analysts"
	bookingsService "github.com/syednazrin/Amresearch-platform-sub000/internal/service/bookings"
	feedbackService "github.com/syednazrin/Amresearch-platform-sub000/internal/service/feedback"
	researchService "github.com/syednazrin/Amresearch-platform-sub000/internal/service/research"
	scheduleService "github.com/syednazrin/Amresearch-platform-sub000/internal/service/schedule"
	createBookingUC "github.com/syednazrin/Amresearch-platform-sub000/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/syednazrin/Amresearch-platform-sub000/internal/usecase/get_available_slots"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/dbmetrics"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/logger"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/metrics"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/simpletxmanager"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting meetings service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories and the transaction manager, metrics-wrapped when enabled.
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		analystRepository  *analystRepo.Repository
		researchRepository *researchRepo.Repository
		feedbackRepository *feedbackRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		analystRepository = analystRepo.NewRepository(wrappedDB)
		researchRepository = researchRepo.NewRepository(wrappedDB)
		feedbackRepository = feedbackRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		analystRepository = analystRepo.NewRepository(db)
		researchRepository = researchRepo.NewRepository(db)
		feedbackRepository = feedbackRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services.
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, analystRepository, log)
	analystSvc := analystsService.NewService(analystRepository, log)
	researchSvc := researchService.NewService(researchRepository, log)
	feedbackSvc := feedbackService.NewService(feedbackRepository, log)

	// Use cases.
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		scheduleRepository,
		bookingRepository,
		analystRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		analystRepository,
		txMgr,
		log,
	)

	// Handlers.
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listAnalysts := listAnalystsHandler.NewHandler(analystSvc, log)
	getAnalyst := getAnalystHandler.NewHandler(analystSvc, log)
	listResearch := listResearchHandler.NewHandler(researchSvc, true, log)
	createFeedback := createFeedbackHandler.NewHandler(feedbackSvc, log)

	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	listScheduleRules := listScheduleRulesHandler.NewHandler(scheduleSvc, log)
	createScheduleRule := createScheduleRuleHandler.NewHandler(scheduleSvc, log)
	updateScheduleRule := updateScheduleRuleHandler.NewHandler(scheduleSvc, log)
	deleteScheduleRule := deleteScheduleRuleHandler.NewHandler(scheduleSvc, log)
	createAnalyst := createAnalystHandler.NewHandler(analystSvc, log)
	updateAnalyst := updateAnalystHandler.NewHandler(analystSvc, log)
	listAllResearch := listResearchHandler.NewHandler(researchSvc, false, log)
	createResearch := createResearchHandler.NewHandler(researchSvc, log)
	deleteResearch := deleteResearchHandler.NewHandler(researchSvc, log)
	listFeedback := listFeedbackHandler.NewHandler(feedbackSvc, log)

	// Router.
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/analysts", listAnalysts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/analysts/{analystId}", getAnalyst.Handle).Methods(http.MethodGet)
	api.HandleFunc("/research", listResearch.Handle).Methods(http.MethodGet)
	api.HandleFunc("/feedback", createFeedback.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (X-Admin-Key header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.APIKey))

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	admin.HandleFunc("/schedule-rules", listScheduleRules.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/schedule-rules", createScheduleRule.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/schedule-rules/{ruleId}", updateScheduleRule.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/schedule-rules/{ruleId}", deleteScheduleRule.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/analysts", createAnalyst.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/analysts/{analystId}", updateAnalyst.Handle).Methods(http.MethodPatch)

	admin.HandleFunc("/research", listAllResearch.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/research", createResearch.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/research/{documentId}", deleteResearch.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/feedback", listFeedback.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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

	log.Info("Server exited")
}

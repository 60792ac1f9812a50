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

	cancelBookingHandler "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers/create_booking"
	createSlotHandler "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers/create_slot"
	deleteSlotHandler "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers/delete_slot"
	getBookingHandler "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers/get_booking"
	getDashboardStatsHandler "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers/get_dashboard_stats"
	getDayScheduleHandler "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers/get_day_schedule"
	listBookingsHandler "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers/list_bookings"
	listSlotsHandler "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers/list_slots"
	paymentCallbackHandler "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers/payment_callback"
	reviewPriorityHandler "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers/review_priority"
	updateSlotHandler "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers/update_slot"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/middleware"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/app"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/config"
	bookingRepo "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/infra/storage/booking"
	slotRepo "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/infra/storage/slot"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/integrations/notifier"
	bookingsService "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/service/bookings"
	slotsService "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/service/slots"
	confirmPaymentUC "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/usecase/confirm_payment"
	createBookingUC "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/usecase/create_booking"
	getDashboardStatsUC "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/usecase/get_dashboard_stats"
	getDayScheduleUC "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/usecase/get_day_schedule"
	reviewPriorityUC "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/usecase/review_priority"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/dbmetrics"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/logger"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/metrics"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/simpletxmanager"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/txmanager"
)

const migrationsPath = "migrations"

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

	log.Info("Starting booking service...")
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

	if cfg.Database.RunMigrations {
		migrator, err := app.NewMigrator(db, migrationsPath)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := migrator.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, err := migrator.Version(context.Background())
		if err != nil {
			log.Fatal("Failed to read migration version: %v", err)
		}
		log.Info("Migrations applied, schema version %d", version)
	}

	var notifierClient confirmPaymentUC.Notifier
	if cfg.Notifier.Enabled {
		notifierClient = notifier.NewClient(
			cfg.Notifier.URL,
			time.Duration(cfg.Notifier.Timeout)*time.Second,
			log,
		)
		log.Info("Notifier client initialized (url=%s timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)
	} else {
		notifierClient = notifier.NoopClient{}
		log.Info("Notifications disabled, using noop client")
	}

	var (
		bookingRepository *bookingRepo.Repository
		slotRepository    *slotRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.NewService(bookingRepository, log)
	slotSvc := slotsService.NewService(slotRepository, log)

	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(slotRepository, bookingRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		txMgr,
		cfg.Booking.ExpediteHorizonDays,
		log,
	)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		bookingRepository,
		txMgr,
		notifierClient,
		log,
	)
	reviewPriorityUseCase := reviewPriorityUC.NewUseCase(
		bookingRepository,
		txMgr,
		notifierClient,
		log,
	)
	getDashboardStatsUseCase := getDashboardStatsUC.NewUseCase(bookingRepository, log)

	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	paymentCallback := paymentCallbackHandler.NewHandler(confirmPaymentUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	reviewPriority := reviewPriorityHandler.NewHandler(reviewPriorityUseCase, log)
	getDashboardStats := getDashboardStatsHandler.NewHandler(getDashboardStatsUseCase, log)
	createSlot := createSlotHandler.NewHandler(slotSvc, log)
	updateSlot := updateSlotHandler.NewHandler(slotSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotSvc, log)
	listSlots := listSlotsHandler.NewHandler(slotSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/schedule/{date}", getDaySchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/payments/callback", paymentCallback.Handle).Methods(http.MethodPost)

	// Admin routes (X-Admin-Token)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/review", reviewPriority.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/dashboard", getDashboardStats.Handle).Methods(http.MethodGet)

	admin.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/slots/{slotId}", updateSlot.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

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

	log.Info("Server stopped gracefully")
}

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

	cancelOrderHandler "github.com/fretworks/repairshop-service/internal/api/handlers/cancel_order"
	createOrderHandler "github.com/fretworks/repairshop-service/internal/api/handlers/create_order"
	deleteOrderHandler "github.com/fretworks/repairshop-service/internal/api/handlers/delete_order"
	exportOrdersHandler "github.com/fretworks/repairshop-service/internal/api/handlers/export_orders"
	getDaySlotsHandler "github.com/fretworks/repairshop-service/internal/api/handlers/get_day_slots"
	getMonthOccupancyHandler "github.com/fretworks/repairshop-service/internal/api/handlers/get_month_occupancy"
	getOrderHandler "github.com/fretworks/repairshop-service/internal/api/handlers/get_order"
	getOrderStatsHandler "github.com/fretworks/repairshop-service/internal/api/handlers/get_order_stats"
	getOrdersHandler "github.com/fretworks/repairshop-service/internal/api/handlers/get_orders"
	updateOrderStatusHandler "github.com/fretworks/repairshop-service/internal/api/handlers/update_order_status"
	"github.com/fretworks/repairshop-service/internal/api/middleware"
	"github.com/fretworks/repairshop-service/internal/config"
	"github.com/fretworks/repairshop-service/internal/domain"
	orderRepo "github.com/fretworks/repairshop-service/internal/infra/storage/order"
	mediaStoreClient "github.com/fretworks/repairshop-service/internal/integrations/mediastore"
	ordersService "github.com/fretworks/repairshop-service/internal/service/orders"
	createOrderUC "github.com/fretworks/repairshop-service/internal/usecase/create_order"
	getDaySlotsUC "github.com/fretworks/repairshop-service/internal/usecase/get_day_slots"
	getMonthOccupancyUC "github.com/fretworks/repairshop-service/internal/usecase/get_month_occupancy"
	updateOrderStatusUC "github.com/fretworks/repairshop-service/internal/usecase/update_order_status"
	"github.com/fretworks/repairshop-service/pkg/dbmetrics"
	"github.com/fretworks/repairshop-service/pkg/logger"
	"github.com/fretworks/repairshop-service/pkg/metrics"
	"github.com/fretworks/repairshop-service/pkg/simpletxmanager"
	"github.com/fretworks/repairshop-service/pkg/txmanager"
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

	log.Info("Starting repairshop-service...")
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

	mediaClient := mediaStoreClient.NewClient(
		cfg.MediaStore.URL,
		time.Duration(cfg.MediaStore.Timeout)*time.Second,
		log,
	)
	log.Info("Media store client initialized (url=%s, timeout=%ds)",
		cfg.MediaStore.URL, cfg.MediaStore.Timeout)

	// Transaction manager interface shared by the use cases
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		orderRepository *orderRepo.Repository
		txMgr           TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		orderRepository = orderRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		orderRepository = orderRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	orderSvc := ordersService.NewService(
		orderRepository,
		mediaClient,
		log,
	)

	// Seed the dashboard status counters from the current order set
	tracker := updateOrderStatusUC.NewInMemoryTracker()
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if existing, err := orderRepository.GetWithFilter(seedCtx, domain.OrderFilter{IncludeCancelled: true}); err != nil {
		log.Warn("Failed to seed status distribution, counters start empty: %v", err)
	} else {
		tracker.Seed(domain.DistributionOf(existing))
		log.Info("Status distribution seeded from %d orders", len(existing))
	}
	seedCancel()

	createOrderUseCase := createOrderUC.NewUseCase(
		orderRepository,
		txMgr,
		log,
	)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		orderRepository,
		domain.PublicCatalog,
		log,
	)
	getMonthOccupancyUseCase := getMonthOccupancyUC.NewUseCase(
		orderRepository,
		domain.AdminCatalog,
		log,
	)
	updateOrderStatusUseCase := updateOrderStatusUC.NewUseCase(
		orderRepository,
		tracker,
		log,
	)

	createOrder := createOrderHandler.NewHandler(createOrderUseCase, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	getMonthOccupancy := getMonthOccupancyHandler.NewHandler(getMonthOccupancyUseCase, log)
	updateOrderStatus := updateOrderStatusHandler.NewHandler(updateOrderStatusUseCase, log)
	getOrder := getOrderHandler.NewHandler(orderSvc, log)
	getOrders := getOrdersHandler.NewHandler(orderSvc, log)
	cancelOrder := cancelOrderHandler.NewHandler(orderSvc, log)
	deleteOrder := deleteOrderHandler.NewHandler(orderSvc, log)
	getOrderStats := getOrderStatsHandler.NewHandler(orderSvc, log)
	exportOrders := exportOrdersHandler.NewHandler(orderSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (booking page)
	// ============================================================

	// Submit the booking form
	api.HandleFunc("/orders", createOrder.Handle).Methods(http.MethodPost)

	// Slot picker for a single day
	api.HandleFunc("/availability/{date}/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// Monthly occupancy calendar, served from a short-lived cache
	availability := api.PathPrefix("/availability").Subrouter()
	if cfg.Cache.OccupancyTTL > 0 {
		availability.Use(middleware.ResponseCache(time.Duration(cfg.Cache.OccupancyTTL) * time.Second))
		log.Info("Occupancy response cache enabled (ttl=%ds)", cfg.Cache.OccupancyTTL)
	}
	availability.HandleFunc("/{year:[0-9]{4}}/{month:[0-9]{1,2}}",
		getMonthOccupancy.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (admin dashboard, require X-Admin-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Order list and dashboard widgets
	protected.HandleFunc("/orders", getOrders.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/orders/stats", getOrderStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/orders/export", exportOrders.Handle).Methods(http.MethodGet)

	// Single order management
	protected.HandleFunc("/orders/{orderId}", getOrder.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/orders/{orderId}/status", updateOrderStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/orders/{orderId}/cancel", cancelOrder.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/orders/{orderId}", deleteOrder.Handle).Methods(http.MethodDelete)

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

	log.Info("Server stopped")
}

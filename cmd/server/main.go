package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/medtrack/inventory-server/internal/config"
	"github.com/medtrack/inventory-server/internal/handler"
	"github.com/medtrack/inventory-server/internal/repository"
	"github.com/medtrack/inventory-server/internal/service"
	"github.com/medtrack/inventory-server/pkg/response"
)

func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize Redis
	redisClient := initRedis(cfg)
	defer redisClient.Close()

	// Initialize repositories
	deviceRepo := repository.NewDeviceRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	deviceTypeRepo := repository.NewDeviceTypeRepository(db)
	checkRepo := repository.NewCheckRepository(db)
	criteriaRepo := repository.NewCriteriaRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Initialize services
	maintenanceService := service.NewMaintenanceService(deviceRepo, redisClient, cfg)
	inventoryService := service.NewInventoryService(deviceRepo, departmentRepo)
	adminService := service.NewAdminService(deviceTypeRepo, criteriaRepo, templateRepo, userRepo)
	reportService := service.NewReportService(reportRepo, checkRepo)

	// Initialize handlers
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService, cfg)
	deviceHandler := handler.NewDeviceHandler(inventoryService)
	departmentHandler := handler.NewDepartmentHandler(inventoryService)
	catalogHandler := handler.NewCatalogHandler(adminService)
	reportHandler := handler.NewReportHandler(reportService)
	userHandler := handler.NewUserHandler(adminService)
	healthHandler := handler.NewHealthHandler(db, redisClient, cfg)

	// Setup routes
	router := setupRoutes(
		maintenanceHandler,
		deviceHandler,
		departmentHandler,
		catalogHandler,
		reportHandler,
		userHandler,
		healthHandler,
	)

	// Start server
	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      response.CORSMiddleware(response.LoggingMiddleware(router)),
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.GetConnMaxLifetime())

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(
	maintenanceHandler *handler.MaintenanceHandler,
	deviceHandler *handler.DeviceHandler,
	departmentHandler *handler.DepartmentHandler,
	catalogHandler *handler.CatalogHandler,
	reportHandler *handler.ReportHandler,
	userHandler *handler.UserHandler,
	healthHandler *handler.HealthHandler,
) *mux.Router {
	router := mux.NewRouter()

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// API routes
	api := router.PathPrefix("/api").Subrouter()

	// Due maintenance (bell badge + popup list)
	api.HandleFunc("/maintenance/summary", maintenanceHandler.GetSummary).Methods("GET")
	api.HandleFunc("/maintenance/due", maintenanceHandler.ListDue).Methods("GET")

	// Device registry
	api.HandleFunc("/devices", deviceHandler.List).Methods("GET")
	api.HandleFunc("/devices", deviceHandler.Create).Methods("POST")
	api.HandleFunc("/devices/search", deviceHandler.Search).Methods("GET")
	api.HandleFunc("/devices/{id:[0-9]+}", deviceHandler.Get).Methods("GET")
	api.HandleFunc("/devices/{id:[0-9]+}", deviceHandler.Update).Methods("PUT")
	api.HandleFunc("/devices/{id:[0-9]+}", deviceHandler.Delete).Methods("DELETE")

	// Departments
	api.HandleFunc("/departments", departmentHandler.List).Methods("GET")
	api.HandleFunc("/departments", departmentHandler.Create).Methods("POST")
	api.HandleFunc("/departments/{id:[0-9]+}", departmentHandler.Update).Methods("PUT")
	api.HandleFunc("/departments/{id:[0-9]+}", departmentHandler.Delete).Methods("DELETE")

	// Device types and linked criteria
	api.HandleFunc("/device-types", catalogHandler.ListDeviceTypes).Methods("GET")
	api.HandleFunc("/device-types", catalogHandler.CreateDeviceType).Methods("POST")
	api.HandleFunc("/device-types/{id:[0-9]+}", catalogHandler.UpdateDeviceType).Methods("PUT")
	api.HandleFunc("/device-types/{id:[0-9]+}", catalogHandler.DeleteDeviceType).Methods("DELETE")
	api.HandleFunc("/device-types/{id:[0-9]+}/criteria", catalogHandler.ListTypeCriteria).Methods("GET")
	api.HandleFunc("/device-types/{id:[0-9]+}/criteria", catalogHandler.SetTypeCriteria).Methods("POST")

	// Routine checks
	api.HandleFunc("/checks", reportHandler.ListChecks).Methods("GET")
	api.HandleFunc("/checks", reportHandler.CreateCheck).Methods("POST")

	// Check criteria
	api.HandleFunc("/criteria", catalogHandler.ListCriteria).Methods("GET")
	api.HandleFunc("/criteria", catalogHandler.CreateCriteria).Methods("POST")
	api.HandleFunc("/criteria/{id:[0-9]+}", catalogHandler.UpdateCriteria).Methods("PUT")
	api.HandleFunc("/criteria/{id:[0-9]+}", catalogHandler.DeleteCriteria).Methods("DELETE")

	// Label templates
	api.HandleFunc("/templates", catalogHandler.ListTemplates).Methods("GET")
	api.HandleFunc("/templates", catalogHandler.CreateTemplate).Methods("POST")

	// Reports and stats
	api.HandleFunc("/reports", reportHandler.GetReport).Methods("GET")
	api.HandleFunc("/stats", reportHandler.GetStats).Methods("GET")

	// User administration
	api.HandleFunc("/users", userHandler.List).Methods("GET")
	api.HandleFunc("/users", userHandler.Create).Methods("POST")
	api.HandleFunc("/users/{id:[0-9]+}", userHandler.Update).Methods("PUT")
	api.HandleFunc("/users/{id:[0-9]+}", userHandler.Delete).Methods("DELETE")

	return router
}

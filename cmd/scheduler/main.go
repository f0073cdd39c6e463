package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"github.com/medtrack/inventory-server/internal/config"
	"github.com/medtrack/inventory-server/internal/repository"
	"github.com/medtrack/inventory-server/internal/service"
)

func main() {
	log.Println("Starting maintenance scheduler...")

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.GetConnMaxLifetime())

	// Initialize Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	deviceRepo := repository.NewDeviceRepository(db)
	maintenanceService := service.NewMaintenanceService(deviceRepo, redisClient, cfg)

	// Initialize cron scheduler
	c := cron.New(cron.WithSeconds())

	// Schedule tasks
	setupCronJobs(c, maintenanceService)

	// Start the scheduler
	c.Start()
	log.Println("Scheduler started successfully")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down scheduler...")
	c.Stop()
	log.Println("Scheduler stopped")
}

func setupCronJobs(c *cron.Cron, maintenanceService *service.MaintenanceService) {
	// Refresh the cached due-status summary every minute so the badge counts
	// stay warm between user visits
	_, err := c.AddFunc("0 * * * * *", func() {
		refreshDueSummary(maintenanceService)
	})
	if err != nil {
		log.Printf("Error scheduling summary refresh job: %v", err)
	}

	// Daily snapshot of the fleet's due-status counts (runs at midnight)
	_, err = c.AddFunc("0 0 0 * * *", func() {
		logDailySnapshot(maintenanceService)
	})
	if err != nil {
		log.Printf("Error scheduling daily snapshot job: %v", err)
	}

	log.Println("Cron jobs scheduled successfully")
}

func refreshDueSummary(maintenanceService *service.MaintenanceService) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	maintenanceService.RefreshSummary(ctx)
}

func logDailySnapshot(maintenanceService *service.MaintenanceService) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	summary := maintenanceService.RefreshSummary(ctx)
	log.Printf("Daily due-status snapshot: overdue=%d due_today=%d due_soon=%d no_date=%d (window %dd)",
		summary.Overdue, summary.DueToday, summary.DueSoon, summary.NoDate, summary.Days)
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/SuryaShibin2198/Surya/config"
	"github.com/SuryaShibin2198/Surya/consumers"
	"github.com/SuryaShibin2198/Surya/jobs"
	"github.com/SuryaShibin2198/Surya/middleware"
	"github.com/SuryaShibin2198/Surya/models"
	"github.com/SuryaShibin2198/Surya/notifications"
	"github.com/SuryaShibin2198/Surya/rabbitmq"
	"github.com/SuryaShibin2198/Surya/realtime"
	"github.com/SuryaShibin2198/Surya/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	// Init DB
	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Category{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Coupon{},
		&models.Offer{},
		&models.Pincode{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Realtime hub
	hub := realtime.NewHub()
	go hub.Run()

	// Order events broker
	rmq, err := rabbitmq.New(cfg)
	if err != nil {
		log.Fatalf("❌ RabbitMQ initialization failed: %v", err)
	}
	defer rmq.Close()

	if err := rmq.SetupQueues(); err != nil {
		log.Fatalf("❌ Failed to setup RabbitMQ queues: %v", err)
	}

	// Notification fan-out: realtime, SMS, push, email with PDF attachment.
	// Every channel is best-effort; a failed gateway only costs its channel.
	mailer := notifications.NewSMTPSender(cfg)
	fanout := &notifications.Fanout{
		Realtime: hub,
		SMS:      notifications.NewTwilioGateway(cfg),
		Email:    mailer,
		Renderer: notifications.NewPDFRenderer(),
		Log:      log.StandardLogger(),
	}
	if push, err := notifications.NewFCMGateway(context.Background(), cfg); err != nil {
		log.Printf("⚠️ Push notifications disabled: %v", err)
	} else {
		fanout.Push = push
	}

	consumers.StartNotificationConsumer(rmq.Channel, cfg, fanout)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.PrometheusMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Setup routes
	routes.SetupRoutes(r, db, cfg, rmq, hub)

	// Daily reminder sweeps: stale carts at 09:20, upcoming offers at 15:42
	go jobs.StartDailyAtFixedTime("cart reminder", 9, 20, func() {
		jobs.SendCartReminders(db, mailer)
	})
	go jobs.StartDailyAtFixedTime("offer reminder", 15, 42, func() {
		jobs.SendOfferReminders(db, mailer)
	})

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

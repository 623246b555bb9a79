package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ge-flipper/internal/api"
	"ge-flipper/internal/config"
	"ge-flipper/internal/database"
	"ge-flipper/internal/engine"
	"ge-flipper/internal/flip"
	"ge-flipper/internal/services/capital"
	"ge-flipper/internal/services/prices"
	"ge-flipper/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// History persistence is optional; the flipper runs fine without it.
	var store *database.Store
	var sinks []engine.Sink
	if cfg.DatabaseURL != "" {
		db, err := database.Initialize(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		store = database.NewStore(db)
		sinks = append(sinks, store)
	} else {
		log.Println("DATABASE_URL not set, running without suggestion history")
	}

	priceSvc := prices.NewService(cfg.PriceAPIURL, cfg.PriceUserAgent)
	gold := capital.NewEstimator()
	tracker := flip.NewOfferTracker()
	settings := engine.NewSettingsStore(cfg.Flip)

	eng := engine.New(priceSvc, gold, tracker, settings, sinks...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go eng.Run(ctx)

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Companion client connection (slot events and wallet updates)
	r.GET("/ws", gin.WrapH(ws.NewHandler(eng)))

	// API routes
	apiGroup := r.Group("/api/v1")
	api.SetupRoutes(apiGroup, eng, gold, store)

	// Shut the engine down with the process
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down")
		cancel()
		os.Exit(0)
	}()

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"wayfarer/config"
	"wayfarer/database"
	"wayfarer/handlers"
	"wayfarer/planner"
	"wayfarer/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	cliMode := flag.Bool("cli", false, "run the interactive planner instead of the HTTP server")
	flag.Parse()

	// Load .env file (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using environment variables")
	}

	cfg := config.Load()

	if !cfg.HasAmadeus() {
		log.Println("⚠️  AMADEUS_CLIENT_ID or AMADEUS_CLIENT_SECRET not set — flight search will degrade to empty results")
	}
	if !cfg.HasTavily() {
		log.Println("⚠️  TAVILY_API_KEY not set — IATA lookup and POI search are disabled")
	}

	// Wire the clients once and hand them to the planner
	search := services.NewTavilyClient(cfg)
	trip := planner.New(
		services.NewLocationResolver(search),
		services.NewAmadeusClient(cfg),
		services.NewPOIClient(search),
	)

	if *cliMode {
		runInteractive(cfg, trip)
		return
	}

	// Persistence is optional; without it plans are returned but not stored
	if cfg.DatabaseURL != "" {
		if err := database.InitDB(cfg.DatabaseURL); err != nil {
			log.Fatalf("❌ Failed to connect to database: %v", err)
		}
	} else {
		log.Println("No DATABASE_URL set — running stateless, plans will not be stored")
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.SetTrustedProxies([]string{"0.0.0.0/0"})

	// CORS — allow configured frontend origins
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if cfg.FrontendURL != "" {
		for _, u := range strings.Split(cfg.FrontendURL, ",") {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	planHandler := handlers.NewPlanHandler(trip)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthHandler)
		api.POST("/plan", planHandler.Create)
		api.GET("/plan/:id", planHandler.Get)
		api.GET("/download/:id", planHandler.Download)
	}

	log.Printf("🚀 Wayfarer backend starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

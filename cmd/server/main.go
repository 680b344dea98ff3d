package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mealcraft/backend/config"
	httpDelivery "github.com/mealcraft/backend/internal/delivery/http"
	"github.com/mealcraft/backend/internal/infrastructure/cache"
	"github.com/mealcraft/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting MealCraft Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	defer memoryCache.Close()

	// Enable scaling diagnostics in development environment
	enableDebug := cfg.Scaling.EnableDebugLogging || cfg.Server.Environment == "development"
	if enableDebug {
		log.Printf("Scaling debug logging enabled")
	}

	// Initialize usecase layer
	scalingService := usecase.NewScalingService(
		memoryCache,
		usecase.ScalingServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			MaxIngredients:     cfg.Scaling.MaxIngredients,
			EnableDebugLogging: enableDebug,
		},
	)

	log.Printf("Scaling: max_ingredients=%d, rate_limit=%d/min per IP",
		cfg.Scaling.MaxIngredients, cfg.RateLimit.PerIP)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(scalingService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}

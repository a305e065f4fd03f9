package main

import (
	"alcyxob/workout-planner/internal/api"
	"alcyxob/workout-planner/internal/config"
	"alcyxob/workout-planner/internal/llm"
	"alcyxob/workout-planner/internal/service"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title Workout Planner API
// @version 1.0
// @description Generates personalized 5-day workout plans with a text-generation model.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api
func main() {
	log.Println("Starting Workout Planner Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Model ---
	// A missing key is reported per request as a configuration error.
	var generator service.Generator
	if cfg.GenAI.APIKey == "" {
		log.Println("WARN: API_KEY is not set; /api/generate will answer 500 until it is configured.")
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		gemini, err := llm.NewGeminiGenerator(ctx, cfg.GenAI.APIKey, cfg.GenAI.Model)
		cancel()
		if err != nil {
			log.Fatalf("FATAL: Could not create model client: %v", err)
		}
		generator = gemini
		log.Printf("Model client initialized (%s).", cfg.GenAI.Model)
	}

	// --- Initialize Services ---
	planService := service.NewPlanService(generator)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.Server.AllowedOrigin, planService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:        cfg.Server.Address,
		Handler:     router,
		ReadTimeout: 10 * time.Second,
		// Generation waits on the model; leave room beyond the client timeout.
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

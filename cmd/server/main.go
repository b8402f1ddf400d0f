package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/tutorledger/backend/docs"
	"github.com/tutorledger/backend/internal/config"
	"github.com/tutorledger/backend/internal/handlers"
	mW "github.com/tutorledger/backend/internal/middleware"
	"github.com/tutorledger/backend/internal/services"
	"github.com/tutorledger/backend/internal/store"
)

// @title Tutor Ledger API
// @version 1.0
// @description Fee tracking API for a single-tutor classes, students and payments ledger
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	cfg := config.Load()

	// Initialize Swagger docs
	docs.SwaggerInfo.Title = "Tutor Ledger API"
	docs.SwaggerInfo.Description = "Fee tracking API for a single-tutor classes, students and payments ledger"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Initialize store and services
	ledger := store.NewLedgerStore()
	if cfg.SeedDemoData {
		store.SeedDemoData(ledger)
		log.Println("Demo data seeded")
	}

	classService := services.NewClassService(ledger)
	studentService := services.NewStudentService(ledger)
	transactionService := services.NewTransactionService(ledger)
	insightService := services.NewInsightService(cfg.GeminiAPIKey, cfg.GeminiModel)
	dashboardHandler := handlers.NewDashboardHandler(ledger)
	insightHandler := handlers.NewInsightHandler(insightService, ledger)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(mW.SecurityHeaders)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Access-Control-Allow-Origin"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:"+cfg.Port+"/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/classes", classService.ListClasses)
		r.Post("/classes", classService.CreateClass)
		r.Delete("/classes/{classId}", classService.DeleteClass)

		r.Get("/students", studentService.ListStudents)
		r.Post("/students", studentService.CreateStudent)
		r.Put("/students/{studentId}", studentService.UpdateStudent)
		r.Delete("/students/{studentId}", studentService.DeleteStudent)

		r.Get("/transactions", transactionService.ListTransactions)
		r.Post("/transactions", transactionService.CreateTransaction)

		r.Get("/dashboard/summary", dashboardHandler.GetSummary)

		r.Post("/insights", insightHandler.Ask)
	})

	// Start server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server stopped")
}

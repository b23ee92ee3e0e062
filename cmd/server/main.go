package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DevBytes-J/todo-app/internal/advice"
	"github.com/DevBytes-J/todo-app/internal/config"
	"github.com/DevBytes-J/todo-app/internal/database"
	"github.com/DevBytes-J/todo-app/internal/repository"
	"github.com/DevBytes-J/todo-app/internal/server"
	"github.com/DevBytes-J/todo-app/internal/service"
	"github.com/DevBytes-J/todo-app/internal/todocache"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Validate required config
	if cfg.DatabaseURI == "" {
		log.Fatal("DATABASE_URI is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to database
	db, err := database.New(ctx, cfg.DatabaseURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to database")

	// Run migrations
	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	// Advice client: AI-backed when a key is configured, advice-slip otherwise
	adviceClient := advice.New(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel, cfg.AdviceURL)
	if cfg.AIAPIKey != "" {
		log.Printf("Advice generation via AI (model: %s)", cfg.AIModel)
	}

	// Wire repositories, cache, and services
	userRepo := repository.NewUserRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	cache := todocache.New()

	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	todoSvc := service.NewTodoService(todoRepo, cache)

	srv := server.New(authSvc, todoSvc, adviceClient)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
		cancel()
	}()

	log.Printf("Starting server on %s", cfg.HTTPAddr)
	if err := srv.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lexiquiz/config"
	"lexiquiz/internal/app"
	"lexiquiz/internal/enrich"
	"lexiquiz/internal/repository"
	"lexiquiz/internal/run"
	"lexiquiz/internal/service"
	"lexiquiz/internal/transport/rest"
	"lexiquiz/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	// Graph lookup chain (Redis attaches itself when configured)
	a := app.New(cfg)
	defer a.Close()

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	entryRepo := repository.NewEntryRepo(mongoClient)
	questionRepo := repository.NewQuestionRepo(mongoClient)

	// Initialize services
	authSvc := service.NewAuthService()
	enricher := enrich.New(a.Source, a.Fetcher, cfg.MaxItems)
	runManager := run.NewManager(a.Fetcher, enricher, entryRepo, wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:  authSvc,
		RunManager:   runManager,
		EntryRepo:    entryRepo,
		QuestionRepo: questionRepo,
		DatasetDir:   cfg.DatasetDir,
		WSHub:        wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Printf("Host auth: username=%s", os.Getenv("HOST_USERNAME"))
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST/GET /v1/crawls")
		log.Println("  GET  /v1/crawls/{runId}")
		log.Println("  GET  /v1/datasets")
		log.Println("  GET  /v1/batches/{batchId}/stats")
		log.Println("  WS   /v1/ws/crawls/{runId}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

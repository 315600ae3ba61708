package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"lexiquiz/internal/repository"
	"lexiquiz/internal/run"
	"lexiquiz/internal/service"
	"lexiquiz/internal/transport/rest/handler"
	"lexiquiz/internal/transport/rest/middleware"
	"lexiquiz/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService  *service.AuthService
	RunManager   *run.Manager
	EntryRepo    repository.EntryRepo
	QuestionRepo repository.QuestionRepo
	DatasetDir   string
	WSHub        *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	crawlHandler := handler.NewCrawlHandler(c.RunManager)
	datasetHandler := handler.NewDatasetHandler(c.DatasetDir, c.EntryRepo, c.QuestionRepo)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/crawls/{runId}", wsHandler.WatchWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Host routes (require host auth)
	hostRoutes := v1.NewRoute().Subrouter()
	hostRoutes.Use(authMW.RequireHost)

	hostRoutes.HandleFunc("/crawls", crawlHandler.Launch).Methods("POST", "OPTIONS")
	hostRoutes.HandleFunc("/crawls", crawlHandler.List).Methods("GET", "OPTIONS")
	hostRoutes.HandleFunc("/crawls/{runId}", crawlHandler.Get).Methods("GET", "OPTIONS")

	hostRoutes.HandleFunc("/datasets", datasetHandler.ListFiles).Methods("GET", "OPTIONS")
	hostRoutes.HandleFunc("/datasets/{name}", datasetHandler.GetFile).Methods("GET", "OPTIONS")
	hostRoutes.HandleFunc("/entries/stats", datasetHandler.EntryStats).Methods("GET", "OPTIONS")
	hostRoutes.HandleFunc("/batches", datasetHandler.ListBatches).Methods("GET", "OPTIONS")
	hostRoutes.HandleFunc("/batches/{batchId}/stats", datasetHandler.BatchStats).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

package rest

import (
	"net/http"
	"os"

	"finadvisor/internal/service"
	"finadvisor/internal/transport/rest/handler"
	"finadvisor/internal/transport/rest/middleware"
	"finadvisor/internal/transport/ws"

	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	ResolverService  *service.ResolverService
	ProgressService  *service.ProgressService
	SynthesisService *service.SynthesisService
	ProfileService   *service.ProfileService
	WSHub            *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	advisorHandler := handler.NewAdvisorHandler(c.ResolverService, c.ProgressService, c.ProfileService)
	reportHandler := handler.NewReportHandler(c.SynthesisService, c.ProgressService, c.ProfileService)
	profileHandler := handler.NewProfileHandler(c.ProfileService)
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
	v1.HandleFunc("/ws/advisors/{advisorId}", wsHandler.SessionWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// User routes (require user auth)
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/advisors", advisorHandler.List).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/advisors/{advisorId}/resolve", advisorHandler.Resolve).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/advisors/{advisorId}/decisions", advisorHandler.RecordDecision).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/advisors/{advisorId}/progress", advisorHandler.Progress).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/advisors/{advisorId}/reset", advisorHandler.Reset).Methods("POST", "OPTIONS")

	userRoutes.HandleFunc("/advisors/{advisorId}/report", reportHandler.Generate).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/advisors/{advisorId}/report", reportHandler.Latest).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/reports", reportHandler.History).Methods("GET", "OPTIONS")

	userRoutes.HandleFunc("/profile", profileHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/profile", profileHandler.Put).Methods("PUT", "OPTIONS")

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

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finadvisor/internal/cache"
	"finadvisor/internal/config"
	"finadvisor/internal/repository"
	"finadvisor/internal/service"
	"finadvisor/internal/transport/rest"
	"finadvisor/internal/transport/ws"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// @title Financial Advisory API
// @version 1.0
// @description Decision tree driven financial recommendation engine
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	log.Printf("Advisory config:")
	log.Printf("  Step timeout:   %dms", cfg.Advisory.StepTimeoutMS)
	log.Printf("  Report timeout: %dms", cfg.Advisory.ReportTimeoutMS)
	if cfg.Advisory.IsEnabled() {
		log.Printf("  Remote:         %s ✓", cfg.Advisory.BaseURL)
	} else {
		log.Println("  Remote:         NOT SET (local tables only)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.Mongo.Database)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	profileRepo := repository.NewProfileRepo(db)
	recRepo := repository.NewRecommendationRepo(db)

	// Initialize caches
	progressCache := cache.NewProgressCache(rdb)
	recCache := cache.NewRecommendationCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(&cfg.Auth)
	advisoryClient := service.NewAdvisoryClient(&cfg.Advisory)
	progressSvc := service.NewProgressService(progressCache)
	profileSvc := service.NewProfileService(profileRepo)
	resolverSvc := service.NewResolverService(advisoryClient, progressSvc, recCache)
	synthesisSvc := service.NewSynthesisService(advisoryClient, progressSvc, recRepo, recCache)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	resolverSvc.SetBroadcaster(wsHub)
	synthesisSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:      authSvc,
		ResolverService:  resolverSvc,
		ProgressService:  progressSvc,
		SynthesisService: synthesisSvc,
		ProfileService:   profileSvc,
		WSHub:            wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Server.Port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/advisors")
		log.Println("  POST /v1/advisors/{advisorId}/resolve")
		log.Println("  POST /v1/advisors/{advisorId}/decisions")
		log.Println("  GET  /v1/advisors/{advisorId}/progress")
		log.Println("  POST /v1/advisors/{advisorId}/reset")
		log.Println("  POST/GET /v1/advisors/{advisorId}/report")
		log.Println("  GET  /v1/reports")
		log.Println("  GET/PUT /v1/profile")
		log.Println("  WS   /v1/ws/advisors/{advisorId}")

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

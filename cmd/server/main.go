package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"overlysocial/internal/cache"
	"overlysocial/internal/catalog"
	"overlysocial/internal/config"
	"overlysocial/internal/service"
	"overlysocial/internal/transport/rest"
)

// @title OverlySocial Conversion Assessment API
// @version 1.0
// @description Content-to-client conversion assessment funnel
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	if cfg.MailerLiteAPIKey == "" {
		log.Println("Warning: MAILERLITE_API_KEY not set, subscriber sync will be skipped")
	}

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize caches
	sessionCache := cache.NewSessionCache(rdb, cfg.SessionTTL)

	// Initialize services
	scoringSvc := service.NewScoringService()
	resultSvc := service.NewResultService()
	tokenSvc := service.NewTokenService(cfg.SessionSecret)
	mailerClient := service.NewMailerLiteClient(cfg.MailerLiteBaseURL, cfg.MailerLiteAPIKey)
	syncSvc := service.NewSubscriberSyncService(mailerClient, service.GroupMapping{
		ContentCreator: cfg.GroupContentCreator,
		GettingThere:   cfg.GroupGettingThere,
		ConversionPro:  cfg.GroupConversionPro,
		Default:        cfg.GroupDefault,
	})
	sessionSvc := service.NewSessionService(sessionCache, scoringSvc, resultSvc, syncSvc, catalog.Questions())

	// Create router with container
	container := &rest.Container{
		Config:     cfg,
		SessionSvc: sessionSvc,
		TokenSvc:   tokenSvc,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  GET  /v1/questions")
		log.Println("  POST /v1/assessments")
		log.Println("  GET  /v1/assessments/current")
		log.Println("  POST /v1/assessments/current/start")
		log.Println("  PUT  /v1/assessments/current/answer")
		log.Println("  POST /v1/assessments/current/next")
		log.Println("  POST /v1/assessments/current/previous")
		log.Println("  POST /v1/assessments/current/submit")
		log.Println("  POST /v1/assessments/current/restart")

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

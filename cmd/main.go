// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/Shivanand-hulikatti/event-management/internal/auth"
	"github.com/Shivanand-hulikatti/event-management/internal/database"
	"github.com/Shivanand-hulikatti/event-management/internal/handler"
	"github.com/Shivanand-hulikatti/event-management/internal/repository"
	"github.com/Shivanand-hulikatti/event-management/internal/service"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// ── 1. Connect to PostgreSQL ──────────────────────────────────────────
	pool, err := database.NewPool(ctx)
	if err != nil {
		log.Fatal("database", "error", err)
	}
	defer pool.Close()
	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatal("schema", "error", err)
	}
	log.Info("connected to PostgreSQL")

	// ── 2. Wire up layers ────────────────────────────────────────────────
	tokenCfg, err := auth.TokenConfigFromEnv()
	if err != nil {
		log.Fatal("jwt config", "error", err)
	}
	tokens := auth.NewTokenIssuer(tokenCfg)

	store := repository.NewPostgresStore(pool)
	eventSvc := service.NewEventService(store)
	regSvc := service.NewRegistrationService(store)
	authSvc := service.NewAuthService(store, tokens)

	eventHandler := handler.NewEventHandler(eventSvc, regSvc)
	authHandler := handler.NewAuthHandler(authSvc)

	// ── 3. Build the router ───────────────────────────────────────────────
	r := handler.NewRouter(tokens, eventHandler, authHandler)

	// ── 4. Start server with graceful shutdown ────────────────────────────
	port := getEnv("PORT", "8080")
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		log.Info("server listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", "error", err)
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("graceful shutdown failed", "error", err)
	}
	log.Info("server stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

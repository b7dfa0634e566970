package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"sanguo/internal/app"
	"sanguo/internal/config"
)

// @title Sanguo Card Battle API
// @version 1.0
// @description Four-faction sealed-bid card battle rooms
// @host localhost:8080
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, reading configuration from the environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	ctx := context.Background()
	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to start:", err)
	}

	providers := application.Dialogue.Providers()
	if len(providers) > 0 {
		log.Printf("Dialogue providers: %s", strings.Join(providers, " -> "))
	} else {
		log.Println("Dialogue providers: none configured (filler lines only)")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: application.Handler(),
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/rooms")
		log.Println("  POST /v1/rooms/{code}/join")
		log.Println("  GET  /v1/rooms/{code}")
		log.Println("  POST /v1/rooms/{code}/faction|start|selection|resolve|advance")
		log.Println("  GET  /v1/rooms/{code}/leaderboard")
		log.Println("  GET  /v1/catalog")
		log.Println("  GET  /v1/games/recent")
		log.Println("  WS   /v1/ws/rooms/{code}?token=...")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	application.Close(shutdownCtx)

	log.Println("Server exited")
}

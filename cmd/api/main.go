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

	"github.com/iamasit07/connect-four/internal/config"
	"github.com/iamasit07/connect-four/internal/service/cleanup"
	"github.com/iamasit07/connect-four/internal/service/game"
	transportHttp "github.com/iamasit07/connect-four/internal/transport/http"
	"github.com/iamasit07/connect-four/internal/transport/websocket"
	"github.com/iamasit07/connect-four/pkg/auth"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 1. The table and its seat authority
	signer := auth.NewSeatSigner(cfg.JWTSecret, cfg.SeatTokenTTL())
	table := game.NewTable(game.Mode(cfg.TableMode), signer)
	log.Printf("Hosting a %s table", cfg.TableMode)

	// 2. Renderers follow every accepted change
	connManager := websocket.NewConnectionManager()
	table.Subscribe(connManager)

	// 3. Background workers
	ctx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	if table.Mode() == game.ModeSeated {
		cleanupWorker := cleanup.NewWorker(table, cfg.CleanupInterval(), cfg.SeatIdleTimeout())
		go cleanupWorker.Start(ctx)
	}

	// 4. HTTP + websocket
	secureCookie := strings.HasPrefix(cfg.FrontendURL, "https://")
	tableHandler := transportHttp.NewTableHandler(table, cfg.SeatTokenTTL(), secureCookie)
	wsHandler := websocket.NewHandler(connManager, table, cfg.AllowedOrigins)

	router := transportHttp.NewRouter(transportHttp.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		StaticDir:      cfg.StaticDir,
	}, tableHandler, wsHandler.Gin)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")
	stopWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}

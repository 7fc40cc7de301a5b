// backend/cmd/api/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ps-vitor/wglink-sys/backend/internal/api/handlers"
	"github.com/ps-vitor/wglink-sys/backend/internal/config"
	"github.com/ps-vitor/wglink-sys/backend/internal/scrapers/wgzimmer"
	collector "github.com/ps-vitor/wglink-sys/backend/internal/scraping/collectors/wgzimmer"
	"github.com/ps-vitor/wglink-sys/backend/internal/services"
	"github.com/ps-vitor/wglink-sys/backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg, err := config.LoadConfig(config.DefaultDir)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logg := logger.New(cfg.App.Name, cfg.App.Debug)
	defer logg.Sync()

	// Setup dependencies
	client := wgzimmer.NewClient(cfg.Scraping.Wgzimmer)
	listingSvc := services.NewListingService(client, collector.NewCollector(cfg.Scraping.Wgzimmer.Selectors), logg.Named("listing"))
	listingHandler := handlers.NewListingHandler(listingSvc, logg.Named("api"))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handlers.NewRouter(listingHandler, logg.Named("http")),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logg.Infow("server running", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logg.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Errorw("shutdown", "error", err)
	}
}

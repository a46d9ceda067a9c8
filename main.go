package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"propfinder/api"
	"propfinder/config"
	"propfinder/easybroker"
	"propfinder/httputil"
	"propfinder/logging"
	"propfinder/scheduler"
	"propfinder/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logWriter, err := logging.Setup(cfg.LogPath)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	if logWriter != nil {
		defer logWriter.Close()
	}

	clients := httputil.NewClients(&cfg.Upstream)
	client := easybroker.NewClient(clients.Upstream, cfg.Source(), cfg.APIKey)
	probe := easybroker.NewClient(clients.Probe, cfg.Source(), cfg.APIKey)

	search := services.NewSearchService(client)
	health := services.NewHealthcheckService(probe)

	handler := api.NewHandler(search, health)
	router := api.NewRouter(handler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.New(&cfg.Healthcheck, health)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("scheduler: %v", err)
	}
	defer sched.Stop()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on %s (source: %s)", server.Addr, cfg.SourceID)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

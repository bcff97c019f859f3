package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"louvor/internal/config"
	"louvor/internal/db"
	httpx "louvor/internal/http"
	"louvor/internal/logger"
	"louvor/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		lg.Fatal("db connect failed", "err", err)
	}
	if err := db.Migrate(gdb); err != nil {
		lg.Fatal("db migrate failed", "err", err)
	}

	svcs := service.New(gdb, lg)
	r := httpx.NewRouter(cfg, svcs, lg)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		lg.Info("listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lg.Fatal("server failed", "err", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}

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

	"GymSimulator/internal/clock"
	"GymSimulator/internal/config"
	"GymSimulator/internal/events"
	"GymSimulator/internal/game"
	"GymSimulator/internal/recorder"
	"GymSimulator/internal/save"
	"GymSimulator/internal/scheduler"
	"GymSimulator/internal/store"
	"GymSimulator/internal/transport"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] GymSimulator starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init save slot
	var kv store.Store
	if cfg.Database.SQLitePath != "" {
		kv, err = store.NewSQLiteStore(cfg.Database.SQLitePath)
	} else {
		kv, err = store.NewFileStore(cfg.Database.SaveFile)
	}
	if err != nil {
		log.Printf("[WARN] init save store failed, progress will not persist: %v", err)
		kv = store.NewMemoryStore()
	}
	defer kv.Close()

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := scheduler.NewLoop(256)
	go loop.Run(ctx)
	timers := scheduler.NewCronTimers(loop)
	timers.Start()
	defer timers.Stop()

	hub := transport.NewHub()
	gen := events.NewSeeded(time.Now().UnixNano(), cfg.Game)
	g := game.New(cfg.Game, clock.RealClock{}, timers, gen, save.NewSlot(kv), rec, hub)
	if err := loop.Call(g.Start); err != nil {
		log.Fatalf("[FATAL] start game: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", transport.NewHandler(g, loop, hub, transport.HandlerConfig{
		MessagesPerSec: cfg.Server.MessagesPerSec,
		Burst:          cfg.Server.Burst,
	}))
	srv := &http.Server{Addr: cfg.Server.Addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	log.Printf("[INFO] GymSimulator is running on %s. Press Ctrl+C to stop.", cfg.Server.Addr)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARN] http shutdown: %v", err)
	}
	if err := loop.Call(g.Stop); err != nil {
		log.Printf("[ERROR] final save: %v", err)
	}
	cancel()
	<-loop.Done()
	log.Println("[INFO] GymSimulator stopped")
}

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pmnm-iot/ml-service/config"
	httpserver "github.com/pmnm-iot/ml-service/http"
	"github.com/pmnm-iot/ml-service/stream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.KafkaEnabled() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
		bridge := stream.New(cfg, logger)
		go func() {
			if err := bridge.Run(ctx); err != nil {
				log.Printf("stream bridge error: %v", err)
				cancel()
			}
		}()
	}

	srv := httpserver.New(cfg)
	log.Printf("classification API listening on %s", cfg.ListenAddr())

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

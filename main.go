package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"contest-api/internal/config"
	"contest-api/internal/logger"
	"contest-api/internal/router"
	"contest-api/internal/storage"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.InitLogger()
	log.Info().Msg("Starting contest API")

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := storage.Connect(connectCtx, cfg.MongoURI, cfg.MongoDB)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("MongoDB connection failed")
	}
	log.Info().Str("database", cfg.MongoDB).Msg("Connected to MongoDB")

	r := router.SetupRouter(store, cfg, log)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
	if err := store.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("MongoDB disconnect failed")
	}

	log.Info().Msg("Server stopped")
}

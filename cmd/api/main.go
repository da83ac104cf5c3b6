package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"item-management/config"
	_ "item-management/docs" // Swagger docs
	"item-management/internal/httpserver"
	"item-management/pkg/log"
	"item-management/pkg/mongodb"
)

// @title       Item Management API
// @description CRUD service for titled, described items backed by MongoDB.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Item Management API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. MongoDB
	client, err := mongodb.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to MongoDB: %v", err)
	}
	collection := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
	logger.Infof(ctx, "MongoDB connected (db=%s, collection=%s)", cfg.Mongo.Database, cfg.Mongo.Collection)

	// 4. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Collection:      collection,
		DetailCacheSize: cfg.Cache.DetailSize,
		RateLimit:       cfg.RateLimit,
		CORS:            cfg.CORS,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server error: %v", err)
	}

	logger.Info(ctx, "Shutdown complete")
}

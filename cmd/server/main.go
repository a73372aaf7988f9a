package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"astrox_site/internal/config"
	"astrox_site/internal/handlers"
	"astrox_site/internal/server"
	"astrox_site/internal/services"
)

func main() {
	configPath := flag.String("config", config.DefaultFile, "config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the page cache
	var cache services.Cache
	if cfg.RedisURL != "" {
		redisCache, err := services.NewRedisCache(cfg.RedisURL, "astrox:")
		if err != nil {
			log.Printf("Warning: Redis connection failed: %v", err)
			log.Println("Rendering the page on every request")
		} else {
			defer redisCache.Close()
			// A new deploy may change the markup
			if err := redisCache.Delete(context.Background(), handlers.LandingCacheKey); err != nil {
				log.Printf("Warning: failed to purge cached page: %v", err)
			}
			cache = redisCache
		}
	} else {
		log.Printf("Warning: %s (%s) not set, page cache disabled", config.RedisURLKey, config.EnvVar(config.RedisURLKey))
	}

	e := server.New(cfg, cache)

	// Start server
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}

// ABOUTME: Main entry point for the Newsfeed API server
// ABOUTME: Wires together cache, storage, queue, and fan-out services and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsfeed-app-api/api"
	"newsfeed-app-api/api/handlers"
	"newsfeed-app-api/core/fanout"
	"newsfeed-app-api/core/interfaces"
	"newsfeed-app-api/core/newsfeed"
	memorycache "newsfeed-app-api/infrastructure/cache/memory"
	"newsfeed-app-api/infrastructure/cache/redis"
	directorysqlite "newsfeed-app-api/infrastructure/directory/sqlite"
	logruslogger "newsfeed-app-api/infrastructure/logger/logrus"
	standardlogger "newsfeed-app-api/infrastructure/logger/standard"
	memoryqueue "newsfeed-app-api/infrastructure/queue/memory"
	natsqueue "newsfeed-app-api/infrastructure/queue/nats"
	storagesqlite "newsfeed-app-api/infrastructure/storage/sqlite"
	"newsfeed-app-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger. LOG_FORMAT=text selects the plain-text standard
	// logger; anything else gets structured JSON via logrus.
	var logger interfaces.Logger
	if os.Getenv("LOG_FORMAT") == "text" {
		logger = standardlogger.NewLogger()
	} else {
		logger = logruslogger.NewLogger(os.Getenv("LOG_LEVEL"))
	}
	logger.Info("Starting Newsfeed API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"queue_type": cfg.Queue.Type,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memorycache.NewMemoryCache(cfg.Cache.Memory)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memorycache.NewMemoryCache(cfg.Cache.Memory)
		logger.Info("Using memory cache", nil)
	}

	// Create feed store
	feedStore, err := storagesqlite.NewFeedStore(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Failed to create feed store: %v", err)
	}
	defer feedStore.Close()

	// Create follower directory
	followerDirectory, err := directorysqlite.NewFollowerDirectory(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Failed to create follower directory: %v", err)
	}
	defer followerDirectory.Close()

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:     cache,
		FeedStore: feedStore,
		Logger:    logger,
	}

	// Create services
	cacheTTL := time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second
	cacheService := newsfeed.NewCacheService(deps, cfg.Fanout.CacheSliceSize, cacheTTL)
	newsfeedService := newsfeed.NewNewsFeedService(deps, cacheService)
	processor := fanout.NewProcessor(deps, cacheService, cfg.Fanout.WorkerTimeLimit)

	// Create task queue
	var queue interfaces.TaskQueue
	switch cfg.Queue.Type {
	case "nats":
		natsQueue, err := natsqueue.NewQueue(cfg.Queue.NATS, cfg.Fanout.WorkerTimeLimit, logger)
		if err != nil {
			log.Fatalf("Failed to create NATS queue: %v", err)
		}
		queue = natsQueue
		logger.Info("Using NATS task queue", map[string]interface{}{
			"url":    cfg.Queue.NATS.URL,
			"stream": cfg.Queue.NATS.Stream,
		})
	default:
		queue = memoryqueue.NewQueue(memoryqueue.Config{
			MaxWorkers:  cfg.Queue.Workers,
			QueueSize:   cfg.Queue.QueueSize,
			MaxAttempts: cfg.Queue.MaxAttempts,
		}, logger)
		logger.Info("Using in-process task queue", map[string]interface{}{
			"workers": cfg.Queue.Workers,
		})
	}

	queue.Subscribe(processor.Handle)
	if err := queue.Start(); err != nil {
		log.Fatalf("Failed to start task queue: %v", err)
	}

	fanoutService := fanout.NewService(deps, followerDirectory, queue, cacheService, cfg.Fanout.BatchSize)

	// Start the retention janitor when retention is configured
	var janitor *newsfeed.Janitor
	if cfg.Fanout.RetentionDays > 0 {
		janitor = newsfeed.NewJanitor(deps, time.Duration(cfg.Fanout.RetentionDays)*24*time.Hour)
		if err := janitor.Start(); err != nil {
			log.Fatalf("Failed to start retention janitor: %v", err)
		}
		logger.Info("Retention janitor started", map[string]interface{}{
			"retention_days": cfg.Fanout.RetentionDays,
		})
	}

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  100, // 100 requests per minute
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	newsfeedHandler := handlers.NewNewsFeedHandler(newsfeedService, fanoutService)
	newsfeedHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if janitor != nil {
		janitor.Stop()
	}

	if err := queue.Stop(); err != nil {
		logger.Error("Task queue shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

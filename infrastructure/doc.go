// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, persistence, message delivery, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-process cache built on patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - storage/sqlite: SQLite feed store with idempotent bulk inserts
// - directory/sqlite: SQLite follower directory
// - queue/memory: In-process task queue with a managed worker pool
// - queue/nats: NATS JetStream work-queue for fan-out batches
// - logger/logrus: Structured JSON logger
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(cfg.Cache.Memory)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	})
//
// # Feed Store
//
// The SQLite feed store enforces the per-(recipient, post) uniqueness
// invariant and ignores duplicate inserts:
//
//	store, err := sqlite.NewFeedStore("newsfeeds.db")
//	created, err := store.BulkInsertEntries(ctx, entries)
//
// # Task Queues
//
// Both queue implementations deliver batches at least once and apply
// the same retry policy: transient failures are redelivered, fatal
// failures (time limit, validation) are dropped.
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger("info")
//	logger.Info("Processing request", map[string]interface{}{
//	    "user_id": "123",
//	    "action":  "fanout",
//	})
package infrastructure

// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, storage, queue, and fan-out tuning

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache backend configuration
	Cache CacheConfig

	// Storage contains feed store configuration
	Storage StorageConfig

	// Queue contains task queue configuration
	Queue QueueConfig

	// Fanout contains fan-out pipeline tuning
	Fanout FanoutConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// StorageConfig holds feed store configuration
type StorageConfig struct {
	// Path is the SQLite database file path
	Path string
}

// QueueConfig holds task queue configuration
type QueueConfig struct {
	// Type specifies the queue backend (nats/memory)
	Type string

	// NATS contains NATS-specific configuration
	NATS NATSConfig

	// Workers is the number of concurrent batch workers (memory queue)
	Workers int

	// QueueSize is the buffered batch capacity (memory queue)
	QueueSize int

	// MaxAttempts caps deliveries of one batch (memory queue)
	MaxAttempts int
}

// NATSConfig holds NATS-specific configuration
type NATSConfig struct {
	// URL is the NATS server URL
	URL string

	// Stream is the JetStream stream name for fan-out batches
	Stream string

	// MaxDeliver caps deliveries of one batch
	MaxDeliver int
}

// FanoutConfig holds fan-out pipeline tuning
type FanoutConfig struct {
	// BatchSize is the maximum recipients per fan-out batch
	BatchSize int

	// CacheSliceSize caps the cached feed slice per recipient
	CacheSliceSize int

	// WorkerTimeLimit is the hard per-batch execution ceiling
	WorkerTimeLimit time.Duration

	// RetentionDays is how long feed entries are kept; 0 disables
	// the retention janitor
	RetentionDays int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		Storage: StorageConfig{
			Path: getEnvOrDefault("STORAGE_PATH", "newsfeeds.db"),
		},
		Queue: QueueConfig{
			Type: getEnvOrDefault("QUEUE_TYPE", "memory"),
			NATS: NATSConfig{
				URL:        getEnvOrDefault("NATS_URL", "nats://localhost:4222"),
				Stream:     getEnvOrDefault("NATS_STREAM", "NEWSFEED_FANOUT"),
				MaxDeliver: getEnvAsIntOrDefault("NATS_MAX_DELIVER", 5),
			},
			Workers:     getEnvAsIntOrDefault("FANOUT_WORKERS", 10),
			QueueSize:   getEnvAsIntOrDefault("FANOUT_QUEUE_SIZE", 1000),
			MaxAttempts: getEnvAsIntOrDefault("FANOUT_MAX_ATTEMPTS", 5),
		},
		Fanout: FanoutConfig{
			BatchSize:       getEnvAsIntOrDefault("FANOUT_BATCH_SIZE", 1000),
			CacheSliceSize:  getEnvAsIntOrDefault("CACHE_SLICE_SIZE", 200),
			WorkerTimeLimit: time.Duration(getEnvAsIntOrDefault("WORKER_TIME_LIMIT", 3600)) * time.Second,
			RetentionDays:   getEnvAsIntOrDefault("FEED_RETENTION_DAYS", 0),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Queue.Type != "nats" && c.Queue.Type != "memory" {
		return errors.New("queue type must be 'nats' or 'memory'")
	}

	if c.Queue.Type == "nats" && c.Queue.NATS.URL == "" {
		return errors.New("nats url cannot be empty when using nats queue")
	}

	if c.Storage.Path == "" {
		return errors.New("storage path cannot be empty")
	}

	if c.Fanout.BatchSize < 1 {
		return errors.New("fanout batch size must be at least 1")
	}

	if c.Fanout.CacheSliceSize < 1 {
		return errors.New("cache slice size must be at least 1")
	}

	if c.Fanout.WorkerTimeLimit < time.Second {
		return errors.New("worker time limit must be at least 1 second")
	}

	if c.Fanout.RetentionDays < 0 {
		return errors.New("feed retention days cannot be negative")
	}

	return nil
}

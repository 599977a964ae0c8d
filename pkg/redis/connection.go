package redis

import (
	"context"
	"log"
	"sync"
	"time"
)

var (
	// global client instance
	defaultClient *Client
	defaultOnce   sync.Once
)

// InitDefault initializes the default Redis client with the given configuration
func InitDefault(config *Config) {
	defaultOnce.Do(func() {
		defaultClient = New(config)

		// Start a background goroutine to periodically check the connection
		go monitorConnection(defaultClient)
	})
}

// GetDefault returns the default Redis client instance
func GetDefault() *Client {
	if defaultClient == nil {
		panic("Default Redis client not initialized. Call InitDefault first.")
	}
	return defaultClient
}

// CloseAll closes the default Redis client
func CloseAll() {
	if defaultClient != nil {
		defaultClient.Close()
	}
}

// monitorConnection periodically checks the Redis connection and logs issues
func monitorConnection(client *Client) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := client.Ping(ctx)
		cancel()

		if err != nil {
			log.Printf("Redis health check failed: %v", err)
		}
	}
}

// RedisClient defines the interface for Redis operations
// Useful for mocking in tests
type RedisClient interface {
	Ping(ctx context.Context) error
	Get(ctx context.Context, key string) (string, error)
	GetJSON(ctx context.Context, key string, result any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	SetJSON(ctx context.Context, key string, value any, expiration time.Duration) error
	Increment(ctx context.Context, key string, expiration time.Duration) (int64, error)
	Delete(ctx context.Context, key string) (bool, error)
	DeleteMany(ctx context.Context, keys ...string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) (bool, error)

	// Locking methods
	AcquireLock(ctx context.Context, lockName string, expiration time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, lockName string) (bool, error)

	// Cleanup
	Close() error
}

// Ensure Client implements RedisClient interface
var _ RedisClient = (*Client)(nil)

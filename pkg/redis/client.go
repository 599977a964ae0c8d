package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a key does not exist
var ErrNotFound = errors.New("redis: key not found")

// Client wraps the go-redis client with JSON helpers and simple locking
type Client struct {
	client *redis.Client
	mu     sync.Mutex
	locks  map[string]string // lock name -> owner token
	config *Config
}

// Config holds Redis client configuration
type Config struct {
	Host           string
	Port           int
	DB             int
	Password       string
	MaxConnections int
	ConnTimeout    time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// DefaultConfig returns default Redis configuration
func DefaultConfig() *Config {
	return &Config{
		Host:           "localhost",
		Port:           6379,
		DB:             0,
		Password:       "",
		MaxConnections: 100,
		ConnTimeout:    2 * time.Second,
		ReadTimeout:    3 * time.Second,
		WriteTimeout:   3 * time.Second,
	}
}

// New creates a new Redis client with the given configuration
func New(config *Config) *Client {
	c := &Client{
		locks:  make(map[string]string),
		config: config,
	}
	c.client = redis.NewClient(&redis.Options{
		Addr:            fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password:        config.Password,
		DB:              config.DB,
		PoolSize:        config.MaxConnections,
		MinIdleConns:    10,
		DialTimeout:     config.ConnTimeout,
		ReadTimeout:     config.ReadTimeout,
		WriteTimeout:    config.WriteTimeout,
		PoolTimeout:     4 * time.Second,
		ConnMaxIdleTime: 5 * time.Minute,
	})
	return c
}

// Ping checks the Redis connection
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get retrieves a string value by key
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	return val, err
}

// GetJSON retrieves a value by key and unmarshals it into result
func (c *Client) GetJSON(ctx context.Context, key string, result any) error {
	val, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), result)
}

// Set stores a value with an expiration
func (c *Client) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return c.client.Set(ctx, key, value, expiration).Err()
}

// SetJSON marshals a value to JSON and stores it with an expiration
func (c *Client) SetJSON(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, expiration).Err()
}

// Increment atomically bumps an integer counter. The expiration is
// attached only when the increment creates the key, so the window does
// not slide on later increments.
func (c *Client) Increment(ctx context.Context, key string, expiration time.Duration) (int64, error) {
	n, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 && expiration > 0 {
		c.client.Expire(ctx, key, expiration)
	}
	return n, nil
}

// Delete removes a key, returning whether it existed
func (c *Client) Delete(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Del(ctx, key).Result()
	return n > 0, err
}

// DeleteMany removes multiple keys, returning the number deleted
func (c *Client) DeleteMany(ctx context.Context, keys ...string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	return c.client.Del(ctx, keys...).Result()
}

// Expire updates the TTL of a key
func (c *Client) Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	return c.client.Expire(ctx, key, expiration).Result()
}

// releaseScript deletes a lock key only when held by the given owner
var releaseScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`)

// AcquireLock attempts to take a named advisory lock. The lock value is a
// random token so only the owner can release it.
func (c *Client) AcquireLock(ctx context.Context, lockName string, expiration time.Duration) (bool, error) {
	token := uuid.NewString()
	ok, err := c.client.SetNX(ctx, "lock:"+lockName, token, expiration).Result()
	if err != nil || !ok {
		return false, err
	}
	c.mu.Lock()
	c.locks[lockName] = token
	c.mu.Unlock()
	return true, nil
}

// ReleaseLock releases a lock previously acquired by this client instance
func (c *Client) ReleaseLock(ctx context.Context, lockName string) (bool, error) {
	c.mu.Lock()
	token, ok := c.locks[lockName]
	if ok {
		delete(c.locks, lockName)
	}
	c.mu.Unlock()
	if !ok {
		return false, nil
	}

	res, err := releaseScript.Run(ctx, c.client, []string{"lock:" + lockName}, token).Int64()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

// Close closes the underlying connection pool
func (c *Client) Close() error {
	return c.client.Close()
}

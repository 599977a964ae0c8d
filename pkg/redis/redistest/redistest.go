// Package redistest provides an in-memory RedisClient implementation
// for tests that exercise code depending on the cache.
package redistest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"talenthub-api/pkg/redis"
)

// ErrUnavailable simulates a cache that cannot be reached
var ErrUnavailable = errors.New("redistest: unavailable")

// Client is an in-memory stand-in for a Redis connection. The zero
// value is not usable; create instances with New.
type Client struct {
	mu    sync.Mutex
	data  map[string]string
	locks map[string]bool

	// FailAll makes every operation return ErrUnavailable, for
	// exercising cache-outage paths
	FailAll bool
}

// New creates an empty in-memory client
func New() *Client {
	return &Client{
		data:  make(map[string]string),
		locks: make(map[string]bool),
	}
}

func (c *Client) Ping(ctx context.Context) error {
	if c.FailAll {
		return ErrUnavailable
	}
	return nil
}

func (c *Client) Get(ctx context.Context, key string) (string, error) {
	if c.FailAll {
		return "", ErrUnavailable
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.data[key]
	if !ok {
		return "", redis.ErrNotFound
	}
	return value, nil
}

func (c *Client) GetJSON(ctx context.Context, key string, result any) error {
	value, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(value), result)
}

func (c *Client) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	if c.FailAll {
		return ErrUnavailable
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = fmt.Sprintf("%v", value)
	return nil
}

func (c *Client) SetJSON(ctx context.Context, key string, value any, expiration time.Duration) error {
	if c.FailAll {
		return ErrUnavailable
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = string(data)
	return nil
}

func (c *Client) Increment(ctx context.Context, key string, expiration time.Duration) (int64, error) {
	if c.FailAll {
		return 0, ErrUnavailable
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int64
	if value, ok := c.data[key]; ok {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, err
		}
		n = parsed
	}
	n++
	c.data[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (c *Client) Delete(ctx context.Context, key string) (bool, error) {
	if c.FailAll {
		return false, ErrUnavailable
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	delete(c.data, key)
	return ok, nil
}

func (c *Client) DeleteMany(ctx context.Context, keys ...string) (int64, error) {
	if c.FailAll {
		return 0, ErrUnavailable
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	var deleted int64
	for _, key := range keys {
		if _, ok := c.data[key]; ok {
			delete(c.data, key)
			deleted++
		}
	}
	return deleted, nil
}

func (c *Client) Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	if c.FailAll {
		return false, ErrUnavailable
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok, nil
}

func (c *Client) AcquireLock(ctx context.Context, lockName string, expiration time.Duration) (bool, error) {
	if c.FailAll {
		return false, ErrUnavailable
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.locks[lockName] {
		return false, nil
	}
	c.locks[lockName] = true
	return true, nil
}

func (c *Client) ReleaseLock(ctx context.Context, lockName string) (bool, error) {
	if c.FailAll {
		return false, ErrUnavailable
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	held := c.locks[lockName]
	delete(c.locks, lockName)
	return held, nil
}

func (c *Client) Close() error {
	return nil
}

// Ensure Client satisfies the production interface
var _ redis.RedisClient = (*Client)(nil)

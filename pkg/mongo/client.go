package mongo

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// DB is the global database handle
	DB *mongodriver.Database

	// client is the underlying driver client
	client *mongodriver.Client

	// once ensures the connection is initialized only once
	once sync.Once

	// dbConfig stores the database configuration
	dbConfig *Config
)

// Config holds MongoDB connection configuration
type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
	MinPoolSize    uint64
}

// DefaultConfig returns default MongoDB configuration
func DefaultConfig() *Config {
	return &Config{
		URI:            "mongodb://localhost:27017",
		Database:       "talenthub",
		ConnectTimeout: 10 * time.Second,
		MaxPoolSize:    100,
		MinPoolSize:    5,
	}
}

// Initialize sets up the database connection with connection pooling
func Initialize(cfg *Config) error {
	var err error

	once.Do(func() {
		dbConfig = cfg
		err = connect(cfg)
	})

	return err
}

// connect creates a new database connection with optimized settings
func connect(cfg *Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize)

	c, err := mongodriver.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Test connection
	if err := c.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}

	client = c
	DB = c.Database(cfg.Database)

	log.Printf("Connected to database %s (pool: %d-%d)",
		cfg.Database, cfg.MinPoolSize, cfg.MaxPoolSize)

	return nil
}

// GetDB returns the global database handle
func GetDB() *mongodriver.Database {
	if DB == nil {
		panic("Database not initialized. Call Initialize() first")
	}
	return DB
}

// Ping checks the database connection
func Ping(ctx context.Context) error {
	if client == nil {
		return fmt.Errorf("database not initialized")
	}
	return client.Ping(ctx, nil)
}

// Close disconnects the client
func Close() error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the application relies on. The unique
// index on users.email is the authoritative duplicate-registration guard.
func EnsureIndexes(ctx context.Context, db *mongodriver.Database) error {
	users := db.Collection("users")

	_, err := users.Indexes().CreateOne(ctx, mongodriver.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("idx_users_email"),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique email index: %w", err)
	}

	return nil
}

// IsDuplicateKey reports whether an error is a unique index violation
func IsDuplicateKey(err error) bool {
	return mongodriver.IsDuplicateKeyError(err)
}

// IsNotFound reports whether an error means no document matched
func IsNotFound(err error) bool {
	return err == mongodriver.ErrNoDocuments
}

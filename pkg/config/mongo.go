package config

import (
	"os"
	"strconv"
	"time"

	mongo "talenthub-api/pkg/mongo"
)

// LoadMongoConfig loads MongoDB configuration from environment variables
func LoadMongoConfig() *mongo.Config {
	config := mongo.DefaultConfig()

	// Override with environment variables if provided
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		config.URI = uri
	}

	if db := os.Getenv("MONGO_DB"); db != "" {
		config.Database = db
	}

	if connTimeout := os.Getenv("MONGO_CONNECT_TIMEOUT"); connTimeout != "" {
		if ct, err := strconv.ParseInt(connTimeout, 10, 64); err == nil && ct > 0 {
			config.ConnectTimeout = time.Duration(ct) * time.Second
		}
	}

	if maxPool := os.Getenv("MONGO_MAX_POOL_SIZE"); maxPool != "" {
		if mp, err := strconv.ParseUint(maxPool, 10, 64); err == nil && mp > 0 {
			config.MaxPoolSize = mp
		}
	}

	if minPool := os.Getenv("MONGO_MIN_POOL_SIZE"); minPool != "" {
		if mp, err := strconv.ParseUint(minPool, 10, 64); err == nil {
			config.MinPoolSize = mp
		}
	}

	return config
}

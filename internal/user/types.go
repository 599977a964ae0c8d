package user

import (
	"context"

	"talenthub-api/internal/logger"
	"talenthub-api/internal/models"
	"talenthub-api/pkg/redis"
)

// Service defines the user service
type Service struct {
	repo        Repository
	redisClient redis.RedisClient
	logger      *logger.Logger
}

// Repository defines the user repository interface
type Repository interface {
	SaveUser(ctx context.Context, user *models.User) error
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

// NewUser carries the fields required to create a user record. Password
// must already be hashed by the caller.
type NewUser struct {
	FullName       string
	Email          string
	PhoneNumber    string
	HashedPassword string
	Role           string
}

// ProfileUpdate carries the optional profile fields of an update request.
// Empty fields are left untouched; Skills is the raw comma-separated text.
type ProfileUpdate struct {
	FullName    string
	Email       string
	PhoneNumber string
	Bio         string
	Skills      string
}

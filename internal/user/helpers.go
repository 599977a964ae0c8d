package user

import (
	"context"
	"fmt"
	"time"

	"talenthub-api/internal/models"
)

const cacheExpiry = time.Hour

// Redis key generators
func redisKeyForUser(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}

func redisKeyForUserByEmail(email string) string {
	return fmt.Sprintf("user:email:%s", email)
}

// cachedUser is the cache representation of a user record. The password
// hash is excluded from the model's JSON form, so the envelope carries it
// separately; without it a cache hit would lose the credential.
type cachedUser struct {
	User       models.User `json:"user"`
	Password   string      `json:"password"`
	CreatedAt  int64       `json:"createdAt"`
	ModifiedAt int64       `json:"modifiedAt"`
}

// cacheUser stores a user and its email lookup key in the cache
func (s *Service) cacheUser(ctx context.Context, user *models.User) error {
	envelope := cachedUser{
		User:       *user,
		Password:   user.Password,
		CreatedAt:  user.CreatedAt,
		ModifiedAt: user.ModifiedAt,
	}
	if err := s.redisClient.SetJSON(ctx, redisKeyForUser(user.ID), envelope, cacheExpiry); err != nil {
		s.logger.SecureLog(err, "Failed to cache user", "cacheUser")
		return ErrCacheError
	}

	// Cache email lookup
	if err := s.redisClient.Set(ctx, redisKeyForUserByEmail(user.Email), user.ID, cacheExpiry); err != nil {
		s.logger.SecureLog(err, "Failed to cache user email lookup", "cacheUser")
		return ErrCacheError
	}

	return nil
}

// getUserFromCache retrieves a user from the cache by id
func (s *Service) getUserFromCache(ctx context.Context, userID string) (*models.User, error) {
	var envelope cachedUser
	if err := s.redisClient.GetJSON(ctx, redisKeyForUser(userID), &envelope); err != nil {
		return nil, ErrCacheError
	}
	user := envelope.User
	user.Password = envelope.Password
	user.CreatedAt = envelope.CreatedAt
	user.ModifiedAt = envelope.ModifiedAt
	return &user, nil
}

// getUserIDFromEmailCache retrieves a user id from the email lookup cache
func (s *Service) getUserIDFromEmailCache(ctx context.Context, email string) (string, error) {
	userID, err := s.redisClient.Get(ctx, redisKeyForUserByEmail(email))
	if err != nil || userID == "" {
		return "", ErrCacheError
	}
	return userID, nil
}

// invalidateUser drops the cached record and email lookups. Both the old
// and the current email key are cleared so a renamed account cannot be
// resolved through a stale lookup.
func (s *Service) invalidateUser(ctx context.Context, user *models.User, previousEmail string) {
	keys := []string{
		redisKeyForUser(user.ID),
		redisKeyForUserByEmail(user.Email),
	}
	if previousEmail != "" && previousEmail != user.Email {
		keys = append(keys, redisKeyForUserByEmail(previousEmail))
	}
	if _, err := s.redisClient.DeleteMany(ctx, keys...); err != nil {
		s.logger.SecureLog(err, "Failed to invalidate user cache", "invalidateUser")
	}
}

package user

import (
	"context"
	"strings"

	"talenthub-api/internal/logger"
	"talenthub-api/internal/models"
	"talenthub-api/pkg/redis"
)

// NewService creates a new user service
func NewService(repo Repository, redisClient redis.RedisClient, log *logger.Logger) *Service {
	return &Service{
		repo:        repo,
		redisClient: redisClient,
		logger:      log,
	}
}

// GetUserByID retrieves a user by ID with cache lookup
func (s *Service) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}

	// Try to get from cache first
	user, err := s.getUserFromCache(ctx, userID)
	if err == nil {
		return user, nil
	}

	// Not in cache, get from database
	user, err = s.repo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Cache the user
	_ = s.cacheUser(ctx, user)

	return user, nil
}

// GetUserByEmail retrieves a user by email
func (s *Service) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, ErrInvalidInput
	}

	// Normalize email
	email = NormalizeEmail(email)

	// Try to get user ID from cache
	userID, err := s.getUserIDFromEmailCache(ctx, email)
	if err == nil {
		return s.GetUserByID(ctx, userID)
	}

	// Not in cache, get from database
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// Cache the user
	_ = s.cacheUser(ctx, user)

	return user, nil
}

// CreateUser creates a new user record
func (s *Service) CreateUser(ctx context.Context, input NewUser) (*models.User, error) {
	// Check context for cancellation
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if input.FullName == "" || input.Email == "" || input.PhoneNumber == "" ||
		input.HashedPassword == "" || input.Role == "" {
		return nil, ErrInvalidInput
	}

	user := &models.User{
		FullName:    input.FullName,
		Email:       NormalizeEmail(input.Email),
		PhoneNumber: input.PhoneNumber,
		Password:    input.HashedPassword,
		Role:        input.Role,
	}
	user.PrepareForCreate()

	if err := s.repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	// Cache the new user
	_ = s.cacheUser(ctx, user)

	return user, nil
}

// UpdateProfile applies the provided fields to the user's record and
// persists it. Empty fields are left untouched. Skills is split on the
// comma delimiter into an ordered sequence.
func (s *Service) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.User, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	previousEmail := user.Email

	if update.FullName != "" {
		user.FullName = update.FullName
	}
	if update.Email != "" {
		user.Email = NormalizeEmail(update.Email)
	}
	if update.PhoneNumber != "" {
		user.PhoneNumber = update.PhoneNumber
	}
	if update.Bio != "" {
		user.Profile.Bio = update.Bio
	}
	if update.Skills != "" {
		user.Profile.Skills = strings.Split(update.Skills, ",")
	}

	user.Touch()

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	// Drop stale cache entries so the next read sees the updated record
	s.invalidateUser(ctx, user, previousEmail)

	return user, nil
}

// NormalizeEmail lower-cases and trims an email for storage and lookup
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

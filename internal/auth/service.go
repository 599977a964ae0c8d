package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"talenthub-api/internal/jwt"
	"talenthub-api/internal/logger"
	"talenthub-api/internal/models"
	"talenthub-api/internal/user"
	"talenthub-api/pkg/redis"

	"golang.org/x/crypto/bcrypt"
)

// registerLockTTL bounds how long a registration lock can stay held
const registerLockTTL = 5 * time.Second

// Service handles authentication operations
type Service struct {
	userService *user.Service
	jwtService  *jwt.Service
	redisClient redis.RedisClient
	logger      *logger.Logger
	bcryptCost  int
}

// NewService creates a new auth service
func NewService(
	userService *user.Service,
	jwtService *jwt.Service,
	redisClient redis.RedisClient,
	log *logger.Logger,
	bcryptCost int,
) *Service {
	return &Service{
		userService: userService,
		jwtService:  jwtService,
		redisClient: redisClient,
		logger:      log,
		bcryptCost:  bcryptCost,
	}
}

// TokenExpiry returns the lifetime of issued session tokens. The session
// cookie's max-age derives from this so cookie and token expire together.
func (s *Service) TokenExpiry() time.Duration {
	return s.jwtService.Expiry()
}

// Register hashes the password and creates a new user record. Uniqueness
// is ultimately enforced by the storage layer's unique email index; the
// advisory lock and the existence check only narrow the race window
// between two concurrent registrations for the same email.
func (s *Service) Register(ctx context.Context, fullName, email, phoneNumber, password, role string) error {
	email = user.NormalizeEmail(email)

	// Best-effort lock; registration proceeds even if Redis is unavailable
	if locked, _ := s.redisClient.AcquireLock(ctx, "register:"+email, registerLockTTL); locked {
		defer s.redisClient.ReleaseLock(ctx, "register:"+email)
	}

	existing, err := s.userService.GetUserByEmail(ctx, email)
	if err == nil && existing != nil {
		return ErrUserExists
	}
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return err
	}

	_, err = s.userService.CreateUser(ctx, user.NewUser{
		FullName:       fullName,
		Email:          email,
		PhoneNumber:    phoneNumber,
		HashedPassword: string(hash),
		Role:           role,
	})
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		return ErrUserExists
	}
	return err
}

// Login verifies the credentials and role and issues a session token.
// An unknown email and a wrong password fail with the same error so the
// response does not leak which one was wrong. The role comparison is
// case-insensitive.
func (s *Service) Login(ctx context.Context, email, password, role string) (*models.User, string, error) {
	email = user.NormalizeEmail(email)

	if err := s.checkRateLimiting(ctx, email); err != nil {
		return nil, "", err
	}

	u, err := s.userService.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			s.recordFailedAttempt(ctx, email)
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		s.recordFailedAttempt(ctx, email)
		return nil, "", ErrInvalidCredentials
	}

	if !strings.EqualFold(role, u.Role) {
		return nil, "", ErrRoleMismatch
	}

	token, err := s.jwtService.GenerateToken(u.ID)
	if err != nil {
		if errors.Is(err, jwt.ErrMissingSecret) {
			return nil, "", ErrMissingSecret
		}
		return nil, "", err
	}

	s.clearFailedAttempts(ctx, email)

	return u, token, nil
}

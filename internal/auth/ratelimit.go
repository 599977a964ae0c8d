package auth

import (
	"context"
	"fmt"
	"time"
)

const (
	// maxFailedAttempts is the number of failed logins allowed per email
	// before the account is temporarily throttled
	maxFailedAttempts = 5

	// failedAttemptWindow is how long failed attempt counters live
	failedAttemptWindow = 15 * time.Minute
)

func redisKeyForFailedAttempts(email string) string {
	return fmt.Sprintf("auth:failed:%s", email)
}

// checkRateLimiting checks if the login request should be rate limited.
// Cache failures count as zero attempts so an unavailable Redis never
// locks anyone out.
func (s *Service) checkRateLimiting(ctx context.Context, email string) error {
	attemptsStr, err := s.redisClient.Get(ctx, redisKeyForFailedAttempts(email))

	var attempts int
	if err == nil && attemptsStr != "" {
		fmt.Sscanf(attemptsStr, "%d", &attempts)
		if attempts >= maxFailedAttempts {
			return ErrRateLimited
		}
	}

	return nil
}

// recordFailedAttempt bumps the failed login counter for an email. The
// increment is atomic and the window starts when the first failure
// creates the key; later failures do not extend it.
func (s *Service) recordFailedAttempt(ctx context.Context, email string) {
	if _, err := s.redisClient.Increment(ctx, redisKeyForFailedAttempts(email), failedAttemptWindow); err != nil {
		s.logger.SecureLog(err, "Failed to record login attempt", "login")
	}
}

// clearFailedAttempts resets the counter after a successful login
func (s *Service) clearFailedAttempts(ctx context.Context, email string) {
	if _, err := s.redisClient.Delete(ctx, redisKeyForFailedAttempts(email)); err != nil {
		s.logger.SecureLog(err, "Failed to clear login attempts", "login")
	}
}

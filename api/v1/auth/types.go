package auth

import (
	"talenthub-api/internal/auth"
	"talenthub-api/internal/logger"
	"talenthub-api/pkg/config"
)

// Handler manages auth-related HTTP requests
type Handler struct {
	authService *auth.Service
	authConfig  *config.AuthConfig
	logger      *logger.Logger
}

package users

import (
	"talenthub-api/internal/logger"
	"talenthub-api/internal/user"
)

// Handler manages user profile HTTP requests
type Handler struct {
	userService *user.Service
	logger      *logger.Logger
}

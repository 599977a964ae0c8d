package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"talenthub-api/internal/auth"
	"talenthub-api/internal/logger"
	"talenthub-api/internal/middleware"
	"talenthub-api/pkg/config"
	"talenthub-api/pkg/status"
)

// NewHandler creates a new auth handler
func NewHandler(authService *auth.Service, authConfig *config.AuthConfig, log *logger.Logger) *Handler {
	return &Handler{
		authService: authService,
		authConfig:  authConfig,
		logger:      log,
	}
}

// secureLog logs errors without exposing sensitive information
func (h *Handler) secureLog(route string, err error) {
	h.logger.SecureLog(err, "Auth operation failed", route)
}

// HandleRegister creates a new user account
func (h *Handler) HandleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewValidationError(err))
		return
	}

	err := h.authService.Register(c.Request.Context(), req.FullName, req.Email, req.PhoneNumber, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserExists):
			c.JSON(http.StatusBadRequest, NewErrorResponse(err.Error(), status.StatusEmailAlreadyExists))
		default:
			h.secureLog("auth/register", err)
			c.JSON(http.StatusInternalServerError, NewErrorResponse("Internal Server Error", status.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusCreated, NewSuccessResponse("Account created successfully.", status.StatusSignupSuccess))
}

// HandleLogin verifies credentials and issues a session cookie
func (h *Handler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewValidationError(err))
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, NewErrorResponse(err.Error(), status.StatusInvalidCredentials))
		case errors.Is(err, auth.ErrRoleMismatch):
			c.JSON(http.StatusBadRequest, NewErrorResponse(err.Error(), status.StatusRoleMismatch))
		case errors.Is(err, auth.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, NewErrorResponse(err.Error(), status.StatusTooManyRequests))
		case errors.Is(err, auth.ErrMissingSecret):
			h.secureLog("auth/login", err)
			c.JSON(http.StatusInternalServerError, NewErrorResponse(err.Error(), status.StatusConfigError))
		default:
			h.secureLog("auth/login", err)
			c.JSON(http.StatusInternalServerError, NewErrorResponse("Internal Server Error", status.StatusInternalServerError))
		}
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		middleware.TokenCookieName,
		token,
		int(h.authService.TokenExpiry().Seconds()),
		"/",
		h.authConfig.CookieDomain,
		h.authConfig.CookieSecure,
		true,
	)

	c.JSON(http.StatusOK, NewLoginResponse(fmt.Sprintf("Welcome back %s", user.FullName), user, status.StatusLoginSuccess))
}

// HandleLogout clears the session cookie. Succeeds whether or not a
// valid session was presented.
func (h *Handler) HandleLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		middleware.TokenCookieName,
		"",
		-1,
		"/",
		h.authConfig.CookieDomain,
		h.authConfig.CookieSecure,
		true,
	)

	c.JSON(http.StatusOK, NewSuccessResponse("Logged out successfully.", status.StatusLogoutSuccess))
}

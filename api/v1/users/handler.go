package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"talenthub-api/internal/logger"
	"talenthub-api/internal/middleware"
	"talenthub-api/internal/user"
	"talenthub-api/pkg/status"
)

// NewHandler creates a new users handler
func NewHandler(userService *user.Service, log *logger.Logger) *Handler {
	return &Handler{
		userService: userService,
		logger:      log,
	}
}

func (h *Handler) secureLog(route string, err error) {
	h.logger.SecureLog(err, "User operation failed", route)
}

// UpdateProfile applies a partial update to the authenticated user's profile
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, NewErrorResponse("Unauthorized", status.StatusUnauthorized))
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse("Something is missing", status.StatusBadRequest))
		return
	}

	updated, err := h.userService.UpdateProfile(c.Request.Context(), userID, user.ProfileUpdate{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Bio:         req.Bio,
		Skills:      req.Skills,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			c.JSON(http.StatusNotFound, NewErrorResponse(err.Error(), status.StatusNotFound))
		case errors.Is(err, user.ErrEmailAlreadyExists):
			c.JSON(http.StatusBadRequest, NewErrorResponse(err.Error(), status.StatusEmailAlreadyExists))
		default:
			h.secureLog("users/profile/update", err)
			c.JSON(http.StatusInternalServerError, NewErrorResponse("Internal Server Error", status.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, NewUserResponse("Profile updated successfully.", updated, status.StatusProfileUpdated))
}

// GetMe returns the authenticated user's document
func (h *Handler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, NewErrorResponse("Unauthorized", status.StatusUnauthorized))
		return
	}

	u, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			c.JSON(http.StatusNotFound, NewErrorResponse(err.Error(), status.StatusNotFound))
		default:
			h.secureLog("users/me", err)
			c.JSON(http.StatusInternalServerError, NewErrorResponse("Internal Server Error", status.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, NewUserResponse("OK", u, status.StatusOK))
}

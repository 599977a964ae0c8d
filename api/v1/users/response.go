package users

import (
	"talenthub-api/internal/models"
)

// BaseResponse is the common response structure
type BaseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    int16  `json:"code,omitempty"`
}

// UserResponse carries a sanitized user document
type UserResponse struct {
	BaseResponse
	User *models.User `json:"user"`
}

// NewErrorResponse creates an error response with a message and status code
func NewErrorResponse(message string, code int16) BaseResponse {
	return BaseResponse{
		Success: false,
		Message: message,
		Code:    code,
	}
}

// NewUserResponse creates a success response carrying the user
func NewUserResponse(message string, user *models.User, code int16) UserResponse {
	return UserResponse{
		BaseResponse: BaseResponse{
			Success: true,
			Message: message,
			Code:    code,
		},
		User: user,
	}
}

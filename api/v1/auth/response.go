package auth

import (
	"github.com/go-playground/validator/v10"

	"talenthub-api/internal/models"
	"talenthub-api/pkg/status"
)

// BaseResponse is the common response structure
type BaseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    int16  `json:"code,omitempty"`
}

// LoginResponse carries the authenticated user alongside the base response.
// The session token itself travels only in the cookie.
type LoginResponse struct {
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

// NewSuccessResponse creates a success response with a message and status code
func NewSuccessResponse(message string, code int16) BaseResponse {
	return BaseResponse{
		Success: true,
		Message: message,
		Code:    code,
	}
}

// NewLoginResponse creates a success response carrying the sanitized user
func NewLoginResponse(message string, user *models.User, code int16) LoginResponse {
	return LoginResponse{
		BaseResponse: BaseResponse{
			Success: true,
			Message: message,
			Code:    code,
		},
		User: user,
	}
}

// NewValidationError collapses binding failures into a single client-facing
// message. Field-level details never leave the server; malformed JSON and
// missing fields are indistinguishable to the caller.
func NewValidationError(err error) BaseResponse {
	code := status.StatusValidationFailed
	if _, ok := err.(validator.ValidationErrors); !ok {
		code = status.StatusBadRequest
	}
	return BaseResponse{
		Success: false,
		Message: "Something is missing",
		Code:    code,
	}
}

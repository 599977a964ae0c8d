package status

// Status codes carried in API response bodies
// 1000-1999: Success codes
// 4000-4999: Client error codes
// 5000-5999: Server error codes

const (
	// Success codes (1000-1999)
	StatusOK             int16 = 1000
	StatusCreated        int16 = 1001
	StatusLoginSuccess   int16 = 1010
	StatusSignupSuccess  int16 = 1011
	StatusLogoutSuccess  int16 = 1012
	StatusProfileUpdated int16 = 1013

	// Client error codes (4000-4999)
	StatusBadRequest         int16 = 4000
	StatusUnauthorized       int16 = 4001
	StatusForbidden          int16 = 4002
	StatusNotFound           int16 = 4003
	StatusConflict           int16 = 4004
	StatusTooManyRequests    int16 = 4005
	StatusValidationFailed   int16 = 4010
	StatusInvalidCredentials int16 = 4011
	StatusInvalidToken       int16 = 4012
	StatusRoleMismatch       int16 = 4014
	StatusEmailAlreadyExists int16 = 4021

	// Server error codes (5000-5999)
	StatusInternalServerError int16 = 5000
	StatusDBError             int16 = 5010
	StatusRedisError          int16 = 5011
	StatusJWTError            int16 = 5030
	StatusConfigError         int16 = 5031
)

// CodeToString returns a descriptive string for the status code
func CodeToString(code int16) string {
	switch code {
	case StatusOK:
		return "OK"
	case StatusCreated:
		return "Resource created successfully"
	case StatusLoginSuccess:
		return "Login successful"
	case StatusSignupSuccess:
		return "Signup successful"
	case StatusLogoutSuccess:
		return "Logout successful"
	case StatusProfileUpdated:
		return "Profile updated successfully"
	case StatusBadRequest:
		return "Bad request"
	case StatusUnauthorized:
		return "Unauthorized"
	case StatusForbidden:
		return "Forbidden"
	case StatusNotFound:
		return "Resource not found"
	case StatusConflict:
		return "Resource conflict"
	case StatusTooManyRequests:
		return "Too many requests"
	case StatusValidationFailed:
		return "Validation failed"
	case StatusInvalidCredentials:
		return "Invalid credentials"
	case StatusInvalidToken:
		return "Invalid token"
	case StatusRoleMismatch:
		return "Role mismatch"
	case StatusEmailAlreadyExists:
		return "Email already exists"
	case StatusInternalServerError:
		return "Internal server error"
	case StatusDBError:
		return "Database error"
	case StatusRedisError:
		return "Cache error"
	case StatusJWTError:
		return "Token signing error"
	case StatusConfigError:
		return "Server configuration error"
	default:
		return "Unknown status code"
	}
}

// IsSuccess returns true if the code is a success code
func IsSuccess(code int16) bool {
	return code >= 1000 && code < 2000
}

// IsClientError returns true if the code is a client error code
func IsClientError(code int16) bool {
	return code >= 4000 && code < 5000
}

// IsServerError returns true if the code is a server error code
func IsServerError(code int16) bool {
	return code >= 5000 && code < 6000
}

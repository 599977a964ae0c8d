package middleware

import (
	"net/http"
	"strings"

	"talenthub-api/internal/jwt"

	"github.com/gin-gonic/gin"
)

// TokenCookieName is the cookie the session token travels in
const TokenCookieName = "token"

// JWTAuthMiddleware creates a middleware for session token authentication.
// The token is read from the token cookie or an Authorization bearer
// header; on success the user id is placed in the request context.
func JWTAuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractTokenFromSources(c, "Authorization", TokenCookieName)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required", "success": false})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token", "success": false})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Next()
	}
}

// GetUserID extracts the authenticated user id from the request context
func GetUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// Helper function to extract token from multiple sources (header or cookie)
func extractTokenFromSources(c *gin.Context, headerName, cookieName string) string {
	header := c.GetHeader(headerName)
	if headerName == "Authorization" && header != "" {
		parts := strings.Split(header, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	} else if header != "" {
		return header
	}

	cookie, err := c.Cookie(cookieName)
	if err == nil && cookie != "" {
		return cookie
	}

	return ""
}

package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Claims represents the session token claims. UserID is the only
// application claim; validity is carried entirely by the signature
// and the registered expiry.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Service provides session token generation and validation using an
// HMAC secret from process configuration.
type Service struct {
	secret []byte
	issuer string
	expiry time.Duration
}

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig holds token signing and credential hashing settings
type AuthConfig struct {
	// SecretKey signs session tokens. Login fails with a server
	// configuration error when it is empty.
	SecretKey string

	// TokenExpiry is the lifetime of an issued session token
	TokenExpiry time.Duration

	// Issuer is the iss claim on issued tokens
	Issuer string

	// BcryptCost is the bcrypt work factor for password hashing
	BcryptCost int

	// Cookie settings for the session token cookie
	CookieDomain string
	CookieSecure bool
}

// LoadAuthConfig loads auth configuration from environment variables
func LoadAuthConfig() *AuthConfig {
	cost := getEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost)
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &AuthConfig{
		SecretKey:    getEnv("SECRET_KEY", ""),
		TokenExpiry:  time.Duration(getEnvAsInt("TOKEN_EXPIRY_HOURS", 24)) * time.Hour,
		Issuer:       getEnv("TOKEN_ISSUER", "api.talenthub.io"),
		BcryptCost:   cost,
		CookieDomain: getEnv("COOKIE_DOMAIN", "localhost"),
		CookieSecure: getEnvAsBool("COOKIE_SECURE", false),
	}
}

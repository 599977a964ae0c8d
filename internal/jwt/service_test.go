package jwt

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "test-secret-key"

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewService(testSecret, "api.test.local", time.Hour)

	token, err := svc.GenerateToken("user-abc123")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken returned empty token")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UserID != "user-abc123" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-abc123")
	}
	if claims.Issuer != "api.test.local" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "api.test.local")
	}
}

func TestGenerateTokenMissingSecret(t *testing.T) {
	svc := NewService("", "api.test.local", time.Hour)

	_, err := svc.GenerateToken("user-abc123")
	if !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("GenerateToken error = %v, want ErrMissingSecret", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := NewService(testSecret, "api.test.local", time.Hour)
	other := NewService("another-secret", "api.test.local", time.Hour)

	token, err := svc.GenerateToken("user-abc123")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("ValidateToken accepted token signed with a different secret")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewService(testSecret, "api.test.local", -time.Minute)

	token, err := svc.GenerateToken("user-abc123")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("ValidateToken accepted expired token")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewService(testSecret, "api.test.local", time.Hour)

	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Fatal("ValidateToken accepted malformed token")
	}
}

package utils

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "secret"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !CheckPassword(password, hash) {
		t.Errorf("Expected password check to pass")
	}

	if CheckPassword("wrongpassword", hash) {
		t.Errorf("Expected password check to fail")
	}
}

func TestJWT(t *testing.T) {
	secret := "supersecret"
	userID := "123"
	role := "user"

	token, err := GenerateToken(userID, role, secret)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("Expected UserID %s, got %s", userID, claims.UserID)
	}

	if claims.Role != role {
		t.Errorf("Expected Role %s, got %s", role, claims.Role)
	}

	if _, err := ValidateToken(token, "wrongsecret"); err == nil {
		t.Errorf("Expected error with wrong secret")
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	secret := "supersecret"

	token, err := GenerateToken("42", "admin", secret)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("Expected three token segments, got %d", len(parts))
	}

	tampered := parts[0] + "." + parts[1] + "x." + parts[2]
	if _, err := ValidateToken(tampered, secret); err == nil {
		t.Errorf("Expected error for tampered payload")
	}

	if _, err := ValidateToken("not-a-token", secret); err == nil {
		t.Errorf("Expected error for malformed token")
	}
}

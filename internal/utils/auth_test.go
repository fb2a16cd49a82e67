package utils

import (
	"testing"

	"github.com/adrirubim/laserpack/internal/models"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("linea-3-torino")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPasswordHash("linea-3-torino", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	user := &models.UserAuth{ID: "op-1", Email: "op@example.com", Role: "operator"}
	secret := "test-secret"

	access, refresh, err := GenerateTokens(user, secret)
	if err != nil {
		t.Fatalf("GenerateTokens: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("empty tokens")
	}

	claims, err := ValidateToken(access, secret)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims["id"] != "op-1" {
		t.Errorf("id claim = %v, want op-1", claims["id"])
	}

	if _, err := ValidateToken(access, "other-secret"); err == nil {
		t.Error("token validated with the wrong secret")
	}
}

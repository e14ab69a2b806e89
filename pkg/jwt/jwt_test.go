package jwt

import (
	"testing"
	"time"

	"github.com/medilab/lab-api/config"
)

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewSessionService(config.SessionConfig{
		Secret:     "test-secret",
		Expiry:     time.Hour,
		CookieName: "lab_session",
	})

	token, tokenID, err := service.GenerateSessionToken(7, "Dr. House", "doctor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected a non-empty token ID")
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 7 || claims.Name != "Dr. House" || claims.Role != "doctor" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.TokenID != tokenID {
		t.Fatalf("expected token ID %s, got %s", tokenID, claims.TokenID)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewSessionService(config.SessionConfig{Secret: "secret-a", Expiry: time.Hour})
	verifier := NewSessionService(config.SessionConfig{Secret: "secret-b", Expiry: time.Hour})

	token, _, err := issuer.GenerateSessionToken(1, "intruder", "doctor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	service := NewSessionService(config.SessionConfig{Secret: "test-secret", Expiry: -time.Minute})

	token, _, err := service.GenerateSessionToken(1, "late", "secretary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail for an expired token")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	service := NewSessionService(config.SessionConfig{Secret: "test-secret", Expiry: time.Hour})
	if _, err := service.ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected validation to fail for malformed input")
	}
}

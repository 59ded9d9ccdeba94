package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dsanchezmx/shelfstock-backend/pkg/config"
	"github.com/dsanchezmx/shelfstock-backend/pkg/enums"
	pkgerrors "github.com/dsanchezmx/shelfstock-backend/pkg/errors"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "shelfstock",
		ExpirationMinutes: 60,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()
	now := time.Now()

	raw, expiresAt, err := MintAccessToken(cfg, userID, "manager@shelfstock.dev", enums.UserRoleManager, now)
	if err != nil {
		t.Fatalf("MintAccessToken: %v", err)
	}
	if got, want := expiresAt.Sub(now), time.Hour; got != want {
		t.Fatalf("expiry window = %v, want %v", got, want)
	}

	claims, err := ParseAccessToken(cfg, raw)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "manager@shelfstock.dev" {
		t.Fatalf("Email = %s", claims.Email)
	}
	if claims.Role != enums.UserRoleManager {
		t.Fatalf("Role = %s", claims.Role)
	}
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	raw, _, err := MintAccessToken(cfg, uuid.New(), "a@b.c", enums.UserRoleAdmin, time.Now())
	if err != nil {
		t.Fatalf("MintAccessToken: %v", err)
	}

	other := cfg
	other.Secret = "different-secret"
	_, err = ParseAccessToken(other, raw)
	if err == nil {
		t.Fatal("expected error for wrong secret")
	}
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("error = %v, want code %s", err, pkgerrors.CodeUnauthorized)
	}
}

func TestParseAccessTokenExpired(t *testing.T) {
	cfg := testJWTConfig()
	raw, _, err := MintAccessToken(cfg, uuid.New(), "a@b.c", enums.UserRoleAdmin, time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("MintAccessToken: %v", err)
	}
	if _, err := ParseAccessToken(cfg, raw); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseAccessTokenWrongIssuer(t *testing.T) {
	cfg := testJWTConfig()
	other := cfg
	other.Issuer = "someone-else"
	raw, _, err := MintAccessToken(other, uuid.New(), "a@b.c", enums.UserRoleAdmin, time.Now())
	if err != nil {
		t.Fatalf("MintAccessToken: %v", err)
	}
	if _, err := ParseAccessToken(cfg, raw); err == nil {
		t.Fatal("expected error for wrong issuer")
	}
}

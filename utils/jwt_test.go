package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("segredo")
	userID := uuid.New()

	token, err := GenerateJWT(secret, userID, "ana@example.com", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	gotID, gotEmail, err := ParseJWT(secret, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if gotID != userID || gotEmail != "ana@example.com" {
		t.Fatalf("claims mismatch: %v %s", gotID, gotEmail)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT([]byte("segredo"), uuid.New(), "ana@example.com", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, _, err := ParseJWT([]byte("outro"), token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestJWTRejectsExpired(t *testing.T) {
	secret := []byte("segredo")
	token, err := GenerateJWT(secret, uuid.New(), "ana@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, _, err := ParseJWT(secret, token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour, "automeet")
	userID := uuid.New()

	token, err := m.GenerateToken(userID, "alice@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s got %s", userID, claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email %s", claims.Email)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	m := NewManager("secret-a", time.Hour, "automeet")
	token, err := m.GenerateToken(uuid.New(), "bob@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	other := NewManager("secret-b", time.Hour, "automeet")
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with wrong secret")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, "automeet")
	token, err := m.GenerateToken(uuid.New(), "carol@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := m.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail for expired token")
	}
}

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	tokens, err := NewTokenManager("test-secret-key-12345", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id := uuid.New().String()

	token, err := tokens.GenerateToken(id, "admin@example.com", RoleAdmin)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := tokens.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}

	if claims.Subject != id {
		t.Errorf("subject = %s, want %s", claims.Subject, id)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("email = %s", claims.Email)
	}
	if claims.Role != RoleAdmin {
		t.Errorf("role = %s, want %s", claims.Role, RoleAdmin)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	a, _ := NewTokenManager("secret-a", time.Hour)
	b, _ := NewTokenManager("secret-b", time.Hour)

	token, err := a.GenerateToken("id", "admin@example.com", RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := b.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	tokens, _ := NewTokenManager("secret", time.Minute)

	issued := time.Now().Add(-2 * time.Hour)
	tokens.now = func() time.Time { return issued }

	token, err := tokens.GenerateToken("id", "admin@example.com", RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tokens.now = time.Now
	if _, err := tokens.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}
}

func TestNewTokenManager_EmptySecret(t *testing.T) {
	if _, err := NewTokenManager("", time.Hour); !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("expected ErrEmptySecret, got %v", err)
	}
}

func TestGenerateToken_EmptySubject(t *testing.T) {
	tokens, _ := NewTokenManager("secret", 0)
	if _, err := tokens.GenerateToken("", "a@b.c", RoleAdmin); err == nil {
		t.Fatal("expected error for empty subject")
	}
}

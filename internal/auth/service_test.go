package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, password string) (*Service, *TokenManager) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	tokens, err := NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}

	repo := NewInMemoryAdminRepository(Admin{
		Email:        "admin@example.com",
		PasswordHash: string(hash),
	})
	return NewService(repo, tokens), tokens
}

func TestLogin_IssuesAdminToken(t *testing.T) {
	service, tokens := newTestService(t, "Password@123")

	token, admin, err := service.Login(context.Background(), "Admin@Example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admin.ID == "" {
		t.Error("admin ID was not generated")
	}

	claims, err := tokens.ValidateToken(token)
	if err != nil {
		t.Fatalf("token did not validate: %v", err)
	}
	if claims.Role != RoleAdmin {
		t.Errorf("role = %s, want %s", claims.Role, RoleAdmin)
	}
}

func TestLogin_Rejects(t *testing.T) {
	service, _ := newTestService(t, "Password@123")

	tests := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{"wrong password", "admin@example.com", "nope", ErrInvalidCredentials},
		{"unknown email", "someone@example.com", "Password@123", ErrInvalidCredentials},
		{"missing password", "admin@example.com", "", ErrMissingCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := service.Login(context.Background(), tt.email, tt.password)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestHashPassword(t *testing.T) {
	password := "Password@123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == password {
		t.Fatal("password was returned in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		t.Fatalf("hash does not match password: %v", err)
	}

	if _, err := HashPassword(""); err == nil {
		t.Fatal("expected error for empty password")
	}
}

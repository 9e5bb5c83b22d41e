package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingCredentials = errors.New("email and password are required")
)

type Service struct {
	repo   AdminRepository
	tokens *TokenManager
}

func NewService(repo AdminRepository, tokens *TokenManager) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// LOGIN
func (s *Service) Login(ctx context.Context, email, password string) (string, *Admin, error) {
	if email == "" || password == "" {
		return "", nil, ErrMissingCredentials
	}

	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(admin.PasswordHash),
		[]byte(password),
	)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(admin.ID, admin.Email, admin.Role)
	if err != nil {
		return "", nil, err
	}

	return token, admin, nil
}

// HashPassword produces the value expected in ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrMissingCredentials
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

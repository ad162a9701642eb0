package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/swiss-tournament/models"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (models.UserRole, error)
}

type LoginInput struct {
	Password string `json:"password"`
}

type authService struct {
	directorPasswordHash []byte
}

// NewAuthService expects a bcrypt hash of the director password.
func NewAuthService(directorPasswordHash string) AuthService {
	return &authService{
		directorPasswordHash: []byte(directorPasswordHash),
	}
}

func (s *authService) Login(ctx context.Context, input LoginInput) (models.UserRole, error) {
	if input.Password == "" {
		return "", ErrAuthInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword(s.directorPasswordHash, []byte(input.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", ErrAuthInvalidCredentials
		}
		return "", fmt.Errorf("failed to compare password hash: %w", err)
	}
	return models.RoleDirector, nil
}

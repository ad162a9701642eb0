package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosada05/swiss-tournament/models"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("round-one"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	svc := NewAuthService(string(hash))

	role, err := svc.Login(context.Background(), LoginInput{Password: "round-one"})
	if err != nil {
		t.Fatalf("expected successful login, got %v", err)
	}
	if role != models.RoleDirector {
		t.Errorf("role = %q, want %q", role, models.RoleDirector)
	}

	for _, password := range []string{"", "round-two"} {
		if _, err := svc.Login(context.Background(), LoginInput{Password: password}); !errors.Is(err, ErrAuthInvalidCredentials) {
			t.Errorf("Login(%q): expected ErrAuthInvalidCredentials, got %v", password, err)
		}
	}
}

func TestAuthService_Login_MalformedHash(t *testing.T) {
	svc := NewAuthService("not-a-bcrypt-hash")

	_, err := svc.Login(context.Background(), LoginInput{Password: "anything"})
	if err == nil || errors.Is(err, ErrAuthInvalidCredentials) {
		t.Errorf("expected an internal error for a malformed hash, got %v", err)
	}
}

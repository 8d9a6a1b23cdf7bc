package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fixora/booking-api/internal/core/domain"
	"github.com/fixora/booking-api/internal/core/ports"
)

func newAuthService(repo *stubUserRepo, adminSecret string) *AuthService {
	tokens := NewTokenService("test-secret", time.Hour)
	return NewAuthService(repo, tokens, adminSecret, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, "elevate")

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Phone:    "0123456789",
		Password: "pass123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected session token")
	}
	if result.User.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", result.User.Email)
	}
	if result.User.Role != domain.RoleUser {
		t.Fatalf("expected role user, got %q", result.User.Role)
	}
	if result.User.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_AdminSecret(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, "elevate")

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:        "Root",
		Email:       "root@example.com",
		Password:    "pass123",
		AdminSecret: "elevate",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.User.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %q", result.User.Role)
	}
}

func TestAuthService_Register_WrongAdminSecret(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, "elevate")

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:        "Mallory",
		Email:       "mallory@example.com",
		Password:    "pass123",
		AdminSecret: "guess",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.User.Role != domain.RoleUser {
		t.Fatalf("wrong secret must yield a plain user, got %q", result.User.Role)
	}
}

func TestAuthService_Register_NoAdminSecretConfigured(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, "")

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:        "Eve",
		Email:       "eve@example.com",
		Password:    "pass123",
		AdminSecret: "",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.User.Role != domain.RoleUser {
		t.Fatalf("empty server secret must never elevate, got %q", result.User.Role)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, "")

	input := ports.RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "pass123"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register: %v", err)
	}

	input.Email = "BOB@example.com"
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, "")

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Carol", Email: "carol@example.com", Password: "s3cret",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.Login(context.Background(), "Carol@Example.com", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" || result.User.Email != "carol@example.com" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestAuthService_Login_GenericFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, "")

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Name: "Dave", Email: "dave@example.com", Password: "goodpass",
	})

	// Wrong password and unknown email must be indistinguishable.
	if _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "ghost@example.com", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Profile(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, "")

	created, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Frank", Email: "frank@example.com", Password: "pass123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.Profile(context.Background(), created.User.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if user.Email != "frank@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.Profile(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

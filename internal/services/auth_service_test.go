package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/StudyTrack/calendar-service/internal/models"
	"github.com/StudyTrack/calendar-service/internal/validator"
)

func newTestAuthService(repo *MockRepository) *authService {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewAuthService(repo, logger, validator.New(), "test-secret", time.Hour).(*authService)
}

func registerTestUser(t *testing.T, svc *authService, username, email string) *models.User {
	t.Helper()
	user, err := svc.Register(context.Background(), &RegisterRequest{
		Username: username,
		Email:    email,
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Failed to register %s: %v", username, err)
	}
	return user
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults", func(t *testing.T) {
		svc := newTestAuthService(NewMockRepository())
		user := registerTestUser(t, svc, "alice", "alice@example.com")

		if user.ID == 0 {
			t.Error("Expected a persisted id")
		}
		if user.Role != models.RoleStudent {
			t.Errorf("Expected default role STUDENT, got %s", user.Role)
		}
		if !user.Active {
			t.Error("Expected new users to be active")
		}
		if user.Password == "correct-horse" {
			t.Error("Password must be stored hashed")
		}
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		svc := newTestAuthService(NewMockRepository())
		registerTestUser(t, svc, "alice", "alice@example.com")

		// A different email does not rescue a taken username.
		_, err := svc.Register(ctx, &RegisterRequest{
			Username: "alice",
			Email:    "other@example.com",
			Password: "correct-horse",
		})
		if !errors.Is(err, ErrUsernameTaken) {
			t.Errorf("Expected ErrUsernameTaken, got %v", err)
		}
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		svc := newTestAuthService(NewMockRepository())
		registerTestUser(t, svc, "alice", "alice@example.com")

		_, err := svc.Register(ctx, &RegisterRequest{
			Username: "bob",
			Email:    "alice@example.com",
			Password: "correct-horse",
		})
		if !errors.Is(err, ErrEmailTaken) {
			t.Errorf("Expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("ExplicitRole", func(t *testing.T) {
		svc := newTestAuthService(NewMockRepository())
		role := models.RoleTeacher
		user, err := svc.Register(ctx, &RegisterRequest{
			Username: "carol",
			Email:    "carol@example.com",
			Password: "correct-horse",
			Role:     &role,
		})
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if user.Role != models.RoleTeacher {
			t.Errorf("Expected role TEACHER, got %s", user.Role)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc := newTestAuthService(NewMockRepository())
		registerTestUser(t, svc, "alice", "alice@example.com")

		resp, err := svc.Login(ctx, &LoginRequest{Username: "alice", Password: "correct-horse"})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if resp.Token == "" {
			t.Error("Expected a token")
		}
		if resp.Username != "alice" || resp.Role != models.RoleStudent {
			t.Errorf("Unexpected identity in response: %+v", resp)
		}
	})

	t.Run("FailuresAreIndistinguishable", func(t *testing.T) {
		svc := newTestAuthService(NewMockRepository())
		user := registerTestUser(t, svc, "alice", "alice@example.com")

		_, wrongPassword := svc.Login(ctx, &LoginRequest{Username: "alice", Password: "wrong"})
		_, unknownUser := svc.Login(ctx, &LoginRequest{Username: "nobody", Password: "correct-horse"})

		user.Active = false
		_, inactive := svc.Login(ctx, &LoginRequest{Username: "alice", Password: "correct-horse"})

		for name, err := range map[string]error{
			"wrong password": wrongPassword,
			"unknown user":   unknownUser,
			"inactive user":  inactive,
		} {
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("%s: expected ErrInvalidCredentials, got %v", name, err)
			}
		}
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Roundtrip", func(t *testing.T) {
		svc := newTestAuthService(NewMockRepository())
		registerTestUser(t, svc, "alice", "alice@example.com")

		resp, err := svc.Login(ctx, &LoginRequest{Username: "alice", Password: "correct-horse"})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}

		identity, err := svc.ValidateToken(resp.Token)
		if err != nil {
			t.Fatalf("ValidateToken failed: %v", err)
		}
		if identity.Username != "alice" {
			t.Errorf("Expected username alice, got %s", identity.Username)
		}
		if identity.Role != models.RoleStudent {
			t.Errorf("Expected role STUDENT, got %s", identity.Role)
		}
	})

	t.Run("Expired", func(t *testing.T) {
		svc := newTestAuthService(NewMockRepository())
		registerTestUser(t, svc, "alice", "alice@example.com")

		issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return issued }

		resp, err := svc.Login(ctx, &LoginRequest{Username: "alice", Password: "correct-horse"})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}

		// Still valid just before the TTL elapses.
		svc.now = func() time.Time { return issued.Add(59 * time.Minute) }
		if _, err := svc.ValidateToken(resp.Token); err != nil {
			t.Fatalf("Token should still be valid: %v", err)
		}

		svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
		if _, err := svc.ValidateToken(resp.Token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken for expired token, got %v", err)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		svc := newTestAuthService(NewMockRepository())
		if _, err := svc.ValidateToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		svc := newTestAuthService(NewMockRepository())
		registerTestUser(t, svc, "alice", "alice@example.com")

		resp, err := svc.Login(ctx, &LoginRequest{Username: "alice", Password: "correct-horse"})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}

		other := newTestAuthService(NewMockRepository())
		other.jwtSecret = []byte("different-secret")
		if _, err := other.ValidateToken(resp.Token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken for wrong secret, got %v", err)
		}
	})
}

func TestAuthService_Availability(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(NewMockRepository())
	registerTestUser(t, svc, "alice", "alice@example.com")

	available, err := svc.UsernameAvailable(ctx, "alice")
	if err != nil {
		t.Fatalf("UsernameAvailable failed: %v", err)
	}
	if available {
		t.Error("Expected alice to be taken")
	}

	available, err = svc.UsernameAvailable(ctx, "bob")
	if err != nil {
		t.Fatalf("UsernameAvailable failed: %v", err)
	}
	if !available {
		t.Error("Expected bob to be available")
	}

	available, err = svc.EmailAvailable(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("EmailAvailable failed: %v", err)
	}
	if available {
		t.Error("Expected alice@example.com to be taken")
	}
}

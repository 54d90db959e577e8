package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/UES-FIA-2024/placement-service/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	user := &models.User{ID: 42, RoleID: models.RoleCoordinator.ID()}

	token, err := svc.Generate(user)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.RoleID != models.RoleCoordinator.ID() {
		t.Errorf("RoleID = %d, want %d", claims.RoleID, models.RoleCoordinator.ID())
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).
		Generate(&models.User{ID: 1, RoleID: models.RoleAdmin.ID()})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := NewTokenService("secret-b", time.Hour).Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify with wrong secret: %v, want ErrInvalidToken", err)
	}
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)
	token, err := svc.Generate(&models.User{ID: 1, RoleID: models.RoleAdmin.ID()})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify of expired token: %v, want ErrInvalidToken", err)
	}
}

func TestTokenGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	for _, in := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if _, err := svc.Verify(in); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q): %v, want ErrInvalidToken", in, err)
		}
	}
}

func TestPasswordService(t *testing.T) {
	svc := NewPasswordService(4)

	hash, err := svc.Hash("secreto123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "secreto123" {
		t.Fatal("hash equals plaintext")
	}
	if !svc.Compare(hash, "secreto123") {
		t.Error("Compare rejected the correct password")
	}
	if svc.Compare(hash, "otracosa") {
		t.Error("Compare accepted a wrong password")
	}
}

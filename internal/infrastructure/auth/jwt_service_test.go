package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dheerendra45/news-analyzer/domain"
)

const testSecret = "unit-test-secret-key"

func newTestJWTService(ttl time.Duration) domain.TokenService {
	return NewJWTService(testSecret, "news-analyzer", ttl)
}

func testUser() *domain.User {
	return &domain.User{
		ID:       "64a1f0d2e5b3c6a7d8e9f001",
		Email:    "ops@replaceable.ai",
		Username: "ops",
		Role:     domain.RoleAdmin,
		IsActive: true,
	}
}

func TestJWTServiceImpl_IssueAndVerify(t *testing.T) {
	svc := newTestJWTService(30 * time.Minute)
	user := testUser()

	token, ttl, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
	if ttl != 30*time.Minute {
		t.Errorf("expected 30m ttl, got %v", ttl)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("expected sub %s, got %s", user.ID, claims.UserID)
	}
	if claims.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, claims.Email)
	}
	if claims.Role != domain.RoleAdmin {
		t.Errorf("expected role admin, got %s", claims.Role)
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Errorf("expected exp after iat, got iat=%d exp=%d", claims.IssuedAt, claims.ExpiresAt)
	}
}

func TestJWTServiceImpl_Verify_Expired(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, _, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	_, err = svc.Verify(token)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTServiceImpl_Verify_Tampered(t *testing.T) {
	svc := newTestJWTService(30 * time.Minute)

	token, _, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	// Flip a byte in the signature segment.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	if _, err := svc.Verify(string(tampered)); err == nil {
		t.Error("expected tampered token to be rejected")
	}
}

func TestJWTServiceImpl_Verify_WrongKey(t *testing.T) {
	token, _, err := newTestJWTService(30 * time.Minute).Issue(testUser())
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	other := NewJWTService("a-different-secret", "news-analyzer", 30*time.Minute)
	if _, err := other.Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTServiceImpl_Verify_Garbage(t *testing.T) {
	svc := newTestJWTService(30 * time.Minute)

	for _, token := range []string{"", "not-a-token", "aaaa.bbbb.cccc"} {
		if _, err := svc.Verify(token); err == nil {
			t.Errorf("expected %q to be rejected", token)
		}
	}
}

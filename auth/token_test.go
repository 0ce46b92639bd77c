package auth

import (
	"testing"
	"time"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	s := NewTokenService("test-secret")

	token, err := s.Issue(map[string]interface{}{"email": "s@x.com", "name": "Sam"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := s.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if got := SubjectEmail(claims); got != "s@x.com" {
		t.Fatalf("expected subject s@x.com, got %q", got)
	}
	if claims["name"] != "Sam" {
		t.Fatalf("expected passthrough claim name=Sam, got %v", claims["name"])
	}
}

func TestIssueRequiresEmail(t *testing.T) {
	s := NewTokenService("test-secret")

	if _, err := s.Issue(map[string]interface{}{"name": "nobody"}); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for missing email, got %v", err)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	s := &TokenService{secret: []byte("test-secret"), ttl: -time.Minute}

	token, err := s.Issue(map[string]interface{}{"email": "s@x.com"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := s.Verify(token); err != ErrExpiredToken {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestVerifyRejectsMalformedAndForeignTokens(t *testing.T) {
	s := NewTokenService("test-secret")

	if _, err := s.Verify("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}

	other := NewTokenService("different-secret")
	token, err := other.Issue(map[string]interface{}{"email": "s@x.com"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := s.Verify(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/un1ck-andy/courses-signup/internal/domain"
)

func newTestAuthority(t *testing.T) *Authority {
	t.Helper()

	authority, err := NewAuthority("test-secret", 15*time.Minute, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("NewAuthority returned error: %v", err)
	}
	return authority
}

func TestNewAuthority_EmptySecret(t *testing.T) {
	if _, err := NewAuthority("", time.Minute, time.Hour); err == nil {
		t.Error("expected an error for an empty secret")
	}
}

func TestAuthority_IssueAndVerifyAccessToken(t *testing.T) {
	authority := newTestAuthority(t)

	token, err := authority.IssueAccessToken(42, "neo@matrix.has.you")
	if err != nil {
		t.Fatalf("IssueAccessToken returned error: %v", err)
	}

	claims, err := authority.Verify(token, TokenTypeAccess)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}

	if claims.StudentID != 42 {
		t.Errorf("StudentID = %d, want 42", claims.StudentID)
	}
	if claims.Email != "neo@matrix.has.you" {
		t.Errorf("Email = %q, want %q", claims.Email, "neo@matrix.has.you")
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, TokenTypeAccess)
	}
	if claims.ID == "" {
		t.Error("expected a non-empty jti claim")
	}
}

func TestAuthority_IssuePair(t *testing.T) {
	authority := newTestAuthority(t)

	pair, err := authority.IssuePair(7, "a@b.com")
	if err != nil {
		t.Fatalf("IssuePair returned error: %v", err)
	}

	if _, err := authority.Verify(pair.AccessToken, TokenTypeAccess); err != nil {
		t.Errorf("access token failed verification: %v", err)
	}
	if _, err := authority.Verify(pair.RefreshToken, TokenTypeRefresh); err != nil {
		t.Errorf("refresh token failed verification: %v", err)
	}
}

func TestAuthority_Verify_RejectsWrongTokenType(t *testing.T) {
	authority := newTestAuthority(t)

	refreshToken, err := authority.IssueRefreshToken(7, "a@b.com")
	if err != nil {
		t.Fatalf("IssueRefreshToken returned error: %v", err)
	}

	if _, err := authority.Verify(refreshToken, TokenTypeAccess); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("verifying a refresh token as access: err = %v, want %v", err, domain.ErrInvalidToken)
	}
}

func TestAuthority_Verify_Expired(t *testing.T) {
	authority, err := NewAuthority("test-secret", -time.Minute, -time.Minute)
	if err != nil {
		t.Fatalf("NewAuthority returned error: %v", err)
	}

	token, err := authority.IssueAccessToken(1, "a@b.com")
	if err != nil {
		t.Fatalf("IssueAccessToken returned error: %v", err)
	}

	if _, err := authority.Verify(token, TokenTypeAccess); !errors.Is(err, domain.ErrExpiredToken) {
		t.Errorf("err = %v, want %v", err, domain.ErrExpiredToken)
	}
}

func TestAuthority_Verify_TamperedSignature(t *testing.T) {
	authority := newTestAuthority(t)

	token, err := authority.IssueAccessToken(1, "a@b.com")
	if err != nil {
		t.Fatalf("IssueAccessToken returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	flipped := byte('A')
	if parts[2][0] == 'A' {
		flipped = 'B'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(flipped) + parts[2][1:]

	if _, err := authority.Verify(tampered, TokenTypeAccess); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("err = %v, want %v", err, domain.ErrInvalidToken)
	}
}

func TestAuthority_Verify_WrongSecret(t *testing.T) {
	authority := newTestAuthority(t)

	other, err := NewAuthority("another-secret", 15*time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("NewAuthority returned error: %v", err)
	}

	token, err := other.IssueAccessToken(1, "a@b.com")
	if err != nil {
		t.Fatalf("IssueAccessToken returned error: %v", err)
	}

	if _, err := authority.Verify(token, TokenTypeAccess); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("err = %v, want %v", err, domain.ErrInvalidToken)
	}
}

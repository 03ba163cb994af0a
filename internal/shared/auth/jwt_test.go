package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestService(now time.Time) *TokenService {
	svc := NewTokenService(Config{
		Secret:   "test-secret",
		TokenTTL: 15 * time.Minute,
		Username: "user",
		Password: "password",
	})
	svc.now = func() time.Time { return now }
	return svc
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(time.Now())
	token, err := svc.Issue("user", "password")
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token string")
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("unexpected validate error: %v", err)
	}
	if claims.Subject != "user" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.Time.After(claims.IssuedAt.Time) {
		t.Fatalf("expiry not after issued-at: %+v", claims.RegisteredClaims)
	}
}

func TestIssueRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	svc := newTestService(time.Now())

	if _, err := svc.Issue("user", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := svc.Issue("invalid", "password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad username, got %v", err)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	t.Parallel()

	issuedAt := time.Now().Add(-time.Hour)
	svc := newTestService(issuedAt)
	token, err := svc.Issue("user", "password")
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}

	// Move the clock past issued-at + TTL.
	svc.now = time.Now
	if _, err := svc.Validate(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateMalformedToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(time.Now())

	if _, err := svc.Validate("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := svc.Validate("   "); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestValidateRejectsForeignSignature(t *testing.T) {
	t.Parallel()

	now := time.Now()
	svc := newTestService(now)
	other := NewTokenService(Config{Secret: "other-secret", Username: "user", Password: "password"})
	other.now = func() time.Time { return now }

	token, err := other.Issue("user", "password")
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}
	if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestExtractBearerTokenFromHeader(t *testing.T) {
	t.Parallel()

	if got := ExtractBearerTokenFromHeader("Bearer abc.def.ghi"); got != "abc.def.ghi" {
		t.Fatalf("unexpected token: %q", got)
	}
	if got := ExtractBearerTokenFromHeader("bearer abc"); got != "abc" {
		t.Fatalf("lowercase scheme not handled: %q", got)
	}
	if got := ExtractBearerTokenFromHeader("Basic dXNlcg=="); got != "" {
		t.Fatalf("expected empty token for non-bearer scheme, got %q", got)
	}
	if got := ExtractBearerTokenFromHeader(""); got != "" {
		t.Fatalf("expected empty token for empty header, got %q", got)
	}
}

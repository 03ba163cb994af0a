package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Claims carries the registered claim set of an issued token. The subject is
// the authenticated username.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenValidator is the narrow surface handlers and middleware depend on.
type TokenValidator interface {
	Validate(token string) (*Claims, error)
}

// TokenIssuer exchanges credentials for a signed token string.
type TokenIssuer interface {
	Issue(username, password string) (string, error)
}

// Config holds the process-wide signing and identity settings. Loaded once at
// startup and read-only afterwards.
type Config struct {
	Secret   string
	TokenTTL time.Duration
	Username string
	Password string
}

// TokenService issues and validates HS256 bearer tokens against a single
// configured identity. It keeps no per-token state: tokens are self-expiring
// and never persisted server-side.
type TokenService struct {
	secret   []byte
	ttl      time.Duration
	username string
	password string
	now      func() time.Time
}

func NewTokenService(cfg Config) *TokenService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &TokenService{
		secret:   []byte(strings.TrimSpace(cfg.Secret)),
		ttl:      ttl,
		username: cfg.Username,
		password: cfg.Password,
		now:      time.Now,
	}
}

// Issue validates the credentials and returns a signed token with
// subject = username, iat = now and exp = now + TTL. Any credential mismatch
// yields ErrInvalidCredentials.
func (s *TokenService) Issue(username, password string) (string, error) {
	if username != s.username || password != s.password {
		return "", ErrInvalidCredentials
	}

	issuedAt := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies signature and expiry. Expired tokens surface as
// ErrTokenExpired, any other parse failure as ErrInvalidToken. There is no
// refresh mechanism; an expired token requires re-authentication.
func (s *TokenService) Validate(token string) (*Claims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}
	if len(s.secret) == 0 {
		return nil, fmt.Errorf("%w: signing secret not configured", ErrInvalidToken)
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return claims, nil
}

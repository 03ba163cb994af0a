package transport

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"eatzaSearch/internal/shared/auth"
)

// LoginRequest is the credential payload presented to /authenticate.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// NewLoginHandler exposes POST /authenticate against the single configured
// identity.
func NewLoginHandler(issuer auth.TokenIssuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req LoginRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}

		token, err := issuer.Issue(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				slog.Warn("authentication rejected", slog.String("username", req.Username))
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Credentials")
			}
			slog.Error("token issuance failed", slog.Any("error", err))
			return echo.NewHTTPError(http.StatusInternalServerError, "unable to authenticate")
		}

		slog.Info("token issued", slog.String("subject", req.Username))
		return c.JSON(http.StatusOK, LoginResponse{Token: token})
	}
}

// claimsKey is where RequireToken stores the validated claims on the echo
// context.
const claimsKey = "auth.claims"

// RequireToken guards a route group: every request must carry a valid,
// unexpired bearer token. Stateless by construction, safe for unlimited
// concurrent requests.
func RequireToken(validator auth.TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := auth.ExtractBearerToken(c.Request())

			claims, err := validator.Validate(token)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrMissingToken):
					return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
				case errors.Is(err, auth.ErrTokenExpired):
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				default:
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the validated claims set by RequireToken, if any.
func ClaimsFrom(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*auth.Claims)
	return claims, ok
}

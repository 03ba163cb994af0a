package auth

import (
	"net/http"
	"strings"
)

// ExtractBearerToken extracts the bearer token from the Authorization header.
// It handles the "Bearer " prefix and returns an empty string if no token is
// present.
func ExtractBearerToken(r *http.Request) string {
	if r == nil {
		return ""
	}
	return ExtractBearerTokenFromHeader(r.Header.Get("Authorization"))
}

// ExtractBearerTokenFromHeader extracts the token from an Authorization
// header value, accepting any casing of the "Bearer" scheme.
func ExtractBearerTokenFromHeader(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}

	const bearerPrefix = "bearer "
	if strings.HasPrefix(strings.ToLower(header), bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}

	return ""
}

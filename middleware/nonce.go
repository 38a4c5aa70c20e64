package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const NonceKey contextKey = "csp_nonce"

const (
	cdnUnpkg     = "https://unpkg.com"
	cdnTailwind  = "https://cdn.tailwindcss.com"
	turnstileCDN = "https://challenges.cloudflare.com"
)

// cspDirectives lists the sources every page may load. script-src is built
// per request around the nonce.
var cspDirectives = []struct {
	name    string
	sources []string
}{
	{"default-src", []string{"'self'"}},
	// Tailwind's browser build compiles utility classes at runtime
	{"script-src", []string{"'self'", "'unsafe-eval'", cdnUnpkg, cdnTailwind, turnstileCDN}},
	{"style-src", []string{"'self'", "'unsafe-inline'", "https://fonts.googleapis.com"}},
	{"img-src", []string{"'self'", "data:", "https://images.unsplash.com"}},
	{"font-src", []string{"'self'", "https://fonts.gstatic.com"}},
	{"connect-src", []string{"'self'", turnstileCDN}},
	{"frame-src", []string{turnstileCDN}},
}

// ContentSecurityPolicy returns the policy header value allowing scripts that
// carry nonce
func ContentSecurityPolicy(nonce string) string {
	parts := make([]string, 0, len(cspDirectives))
	for _, d := range cspDirectives {
		sources := d.sources
		if d.name == "script-src" {
			sources = append([]string{sources[0], "'nonce-" + nonce + "'"}, sources[1:]...)
		}
		parts = append(parts, d.name+" "+strings.Join(sources, " "))
	}
	return strings.Join(parts, "; ")
}

// GenerateNonce creates a random nonce string
func GenerateNonce() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// CSPNonce middleware generates a nonce for each request and adds it to the context
func CSPNonce() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce, err := GenerateNonce()
			if err != nil {
				c.Logger().Errorf("Failed to generate nonce: %v", err)
				nonce = "fallback-nonce-value"
			}

			// Add to Echo context (for handlers)
			c.Set(string(NonceKey), nonce)

			// Add to Request context (for the views)
			ctx := context.WithValue(c.Request().Context(), NonceKey, nonce)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set("Content-Security-Policy", ContentSecurityPolicy(nonce))

			return next(c)
		}
	}
}

// GetNonce retrieves the nonce from the context
func GetNonce(ctx context.Context) string {
	if val, ok := ctx.Value(NonceKey).(string); ok {
		return val
	}
	return ""
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNonce(t *testing.T) {
	nonce1, err := GenerateNonce()
	assert.NoError(t, err)
	assert.NotEmpty(t, nonce1)

	nonce2, err := GenerateNonce()
	assert.NoError(t, err)
	assert.NotEqual(t, nonce1, nonce2)
}

func TestCSPNonce(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := CSPNonce()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, handler(c))

	// Check Echo context
	nonce := c.Get(string(NonceKey)).(string)
	assert.NotEmpty(t, nonce)

	// Check Request context
	assert.Equal(t, nonce, GetNonce(c.Request().Context()))

	// Check CSP Header
	csp := rec.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "nonce-"+nonce)
	assert.Contains(t, csp, "https://images.unsplash.com")
	assert.Contains(t, csp, "https://unpkg.com")
	assert.Contains(t, csp, "https://cdn.tailwindcss.com")
}

func TestContentSecurityPolicy(t *testing.T) {
	directives := map[string]string{}
	for _, part := range strings.Split(ContentSecurityPolicy("abc123"), "; ") {
		name, sources, ok := strings.Cut(part, " ")
		require.True(t, ok, part)
		directives[name] = sources
	}

	tests := []struct {
		directive string
		source    string
	}{
		{"script-src", "'nonce-abc123'"},
		{"script-src", "https://cdn.tailwindcss.com"},
		{"script-src", "'unsafe-eval'"},
		{"script-src", "https://unpkg.com"},
		{"script-src", "https://challenges.cloudflare.com"},
		{"frame-src", "https://challenges.cloudflare.com"},
		{"img-src", "https://images.unsplash.com"},
		{"default-src", "'self'"},
	}
	for _, tt := range tests {
		t.Run(tt.directive+" "+tt.source, func(t *testing.T) {
			assert.Contains(t, strings.Fields(directives[tt.directive]), tt.source)
		})
	}

	// Only scripts carry the nonce
	assert.Equal(t, 1, strings.Count(ContentSecurityPolicy("abc123"), "nonce-"))
	assert.True(t, strings.HasPrefix(directives["script-src"], "'self' 'nonce-abc123'"))
}

func TestGetNonce(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), NonceKey, "test-nonce")
		assert.Equal(t, "test-nonce", GetNonce(ctx))
	})

	t.Run("NotExists", func(t *testing.T) {
		assert.Equal(t, "", GetNonce(context.Background()))
	})
}

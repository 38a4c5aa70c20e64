package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSitemapHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/sitemap.xml", nil)
	require.NoError(t, GetSitemapHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMEApplicationXML, rec.Header().Get(echo.HeaderContentType))
	assert.True(t, strings.HasPrefix(rec.Body.String(), xml.Header))

	var set SitemapURLSet
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &set))
	require.Len(t, set.URLs, 5)
	assert.Equal(t, "https://beta-law.test/", set.URLs[0].Loc)
	for _, u := range set.URLs {
		assert.True(t, strings.HasPrefix(u.Loc, "https://beta-law.test/"))
		assert.NotContains(t, u.Loc, "/showcase")
	}
}

func TestGetRobotsHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/robots.txt", nil)
	require.NoError(t, GetRobotsHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Disallow: /showcase/")
	assert.Contains(t, rec.Body.String(), "Sitemap: https://beta-law.test/sitemap.xml")
}

func TestHealthHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		setupServices(t)

		_, c, rec := setupEcho(http.MethodGet, "/healthz", nil)
		require.NoError(t, HealthHandler(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","showcase_players":0}`, rec.Body.String())
	})

	t.Run("catalog missing", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/healthz", nil)
		require.NoError(t, HealthHandler(c))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"unavailable"`)
	})
}

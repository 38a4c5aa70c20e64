package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestVisitor(t *testing.T) {
	e := echo.New()
	handler := Visitor(true)(func(c echo.Context) error {
		return c.String(http.StatusOK, GetVisitorID(c))
	})

	t.Run("IssuesCookieOnFirstVisit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, handler(c))

		id := rec.Body.String()
		_, err := uuid.Parse(id)
		assert.NoError(t, err)

		cookies := rec.Result().Cookies()
		if assert.Len(t, cookies, 1) {
			assert.Equal(t, VisitorCookieName, cookies[0].Name)
			assert.Equal(t, id, cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
			assert.True(t, cookies[0].Secure)
		}
	})

	t.Run("ReusesExistingCookie", func(t *testing.T) {
		existing := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: VisitorCookieName, Value: existing})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, handler(c))
		assert.Equal(t, existing, rec.Body.String())
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("ReplacesMalformedCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: VisitorCookieName, Value: "not-a-uuid"})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, handler(c))
		assert.NotEqual(t, "not-a-uuid", rec.Body.String())
		assert.Len(t, rec.Result().Cookies(), 1)
	})
}

func TestGetVisitorIDMissing(t *testing.T) {
	c := echo.New().NewContext(nil, nil)
	assert.Equal(t, "", GetVisitorID(c))
}

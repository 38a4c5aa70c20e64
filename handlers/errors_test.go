package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"plain error", errors.New("boom"), http.StatusInternalServerError, statusMessages[http.StatusInternalServerError]},
		{"default echo message", echo.ErrNotFound, http.StatusNotFound, statusMessages[http.StatusNotFound]},
		{"custom message", echo.NewHTTPError(http.StatusBadRequest, msgInvalidShowcaseItem), http.StatusBadRequest, msgInvalidShowcaseItem},
		{"unknown code", echo.NewHTTPError(http.StatusTeapot), http.StatusTeapot, statusMessages[http.StatusInternalServerError]},
		{"wrapped", echo.NewHTTPError(http.StatusInternalServerError).SetInternal(echo.ErrForbidden), http.StatusForbidden, statusMessages[http.StatusForbidden]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, message := errorStatus(tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.message, message)
		})
	}
}

func TestHTTPErrorHandler(t *testing.T) {
	t.Run("htmx gets a fragment", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/showcase/select/9", nil)
		asHTMX(c)

		HTTPErrorHandler(echo.NewHTTPError(http.StatusBadRequest, msgInvalidShowcaseItem), c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `role="alert"`)
		assert.Contains(t, rec.Body.String(), msgInvalidShowcaseItem)
		assert.NotContains(t, rec.Body.String(), "<html")
	})

	t.Run("browsers get a page", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/missing", nil)

		HTTPErrorHandler(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "<html")
		assert.Contains(t, rec.Body.String(), statusMessages[http.StatusNotFound])
		assert.Contains(t, rec.Body.String(), `content="noindex, nofollow"`)
	})

	t.Run("head requests get no body", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodHead, "/missing", nil)

		HTTPErrorHandler(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("committed responses are left alone", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/", nil)
		assert.NoError(t, c.String(http.StatusOK, "done"))

		HTTPErrorHandler(errors.New("late"), c)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "done", rec.Body.String())
	})
}

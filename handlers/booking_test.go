package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"beta_law_site/models"
	"beta_law_site/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingForm(values map[string]string) *strings.Reader {
	form := url.Values{}
	for k, v := range values {
		form.Set(k, v)
	}
	return strings.NewReader(form.Encode())
}

func validBookingForm() map[string]string {
	return map[string]string{
		"name":    "ישראל ישראלי",
		"phone":   "050-123-4567",
		"email":   "israel@example.co.il",
		"message": "שאלה בנושא סימון מוצרים",
	}
}

func TestBookingPostHandler(t *testing.T) {
	t.Run("htmx success", func(t *testing.T) {
		setupServices(t)

		_, c, rec := setupEcho(http.MethodPost, "/booking", bookingForm(validBookingForm()))
		asHTMX(c)
		require.NoError(t, BookingPostHandler(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "תודה על פנייתך!")
		assert.Contains(t, body, `hx-get="/booking/form"`)
		assert.Contains(t, body, "מספר פנייה")
		assert.NotContains(t, body, "<html")
	})

	t.Run("full page success without htmx", func(t *testing.T) {
		setupServices(t)

		_, c, rec := setupEcho(http.MethodPost, "/booking", bookingForm(validBookingForm()))
		require.NoError(t, BookingPostHandler(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<html")
		assert.Contains(t, rec.Body.String(), "תודה על פנייתך!")
	})

	t.Run("validation errors keep the values", func(t *testing.T) {
		setupServices(t)

		form := validBookingForm()
		form["phone"] = "12345"
		form["email"] = ""
		_, c, rec := setupEcho(http.MethodPost, "/booking", bookingForm(form))
		asHTMX(c)
		require.NoError(t, BookingPostHandler(c))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, models.MsgInvalidPhone)
		assert.Contains(t, body, models.MsgRequired)
		assert.Contains(t, body, `value="ישראל ישראלי"`)
		assert.Contains(t, body, `value="12345"`)
		assert.Contains(t, body, `name="_csrf" value="test-csrf-token"`)
		assert.NotContains(t, body, "תודה על פנייתך!")
	})

	t.Run("validation errors without htmx render the page", func(t *testing.T) {
		setupServices(t)

		_, c, rec := setupEcho(http.MethodPost, "/booking", bookingForm(map[string]string{}))
		require.NoError(t, BookingPostHandler(c))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "<html")
		assert.Equal(t, 3, strings.Count(rec.Body.String(), `aria-invalid="true"`))
	})

	t.Run("turnstile token required when enabled", func(t *testing.T) {
		setupServices(t)

		_, c, rec := setupEcho(http.MethodPost, "/booking", bookingForm(validBookingForm()))
		asHTMX(c)
		cfg := testConfig()
		cfg.TurnstileSiteKey = "site-key"
		cfg.TurnstileSecretKey = "secret-key"
		c.Set("config", cfg)

		require.NoError(t, BookingPostHandler(c))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), msgTurnstileFailed)
		assert.Contains(t, rec.Body.String(), `data-sitekey="site-key"`)
	})

	t.Run("service unavailable", func(t *testing.T) {
		setupServices(t)
		services.Bookings = nil

		_, c, _ := setupEcho(http.MethodPost, "/booking", bookingForm(validBookingForm()))
		err := BookingPostHandler(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, err.(*echo.HTTPError).Code)
	})
}

func TestBookingFormHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/booking/form", nil)
	asHTMX(c)
	require.NoError(t, BookingFormHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<form"))
	assert.Contains(t, body, `value="test-csrf-token"`)
	assert.NotContains(t, body, `aria-invalid`)
}

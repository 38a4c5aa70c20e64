package handlers

import (
	"context"
	"errors"
	"net/http"

	"beta_law_site/models"
	"beta_law_site/services"
	"beta_law_site/templates/pages"
	"beta_law_site/templates/partials"

	"github.com/labstack/echo/v4"
)

const (
	msgBookingFailed   = "השליחה נכשלה, נסו שוב בעוד מספר רגעים"
	msgTurnstileFailed = "אימות האבטחה נכשל, נסו שוב"
	turnstileFormField = "cf-turnstile-response"
)

// BookingPostHandler accepts the consultation form. Nothing is stored or sent:
// the booking service simulates the submission and acknowledges it.
func BookingPostHandler(c echo.Context) error {
	cfg := appConfig(c)
	ctx := c.Request().Context()

	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}

	props := bookingFormProps(c)
	props.Values = req

	if cfg.TurnstileEnabled() {
		ok, err := services.VerifyTurnstileToken(ctx, c.FormValue(turnstileFormField), cfg.TurnstileSecretKey, c.RealIP())
		if err != nil {
			c.Logger().Warnf("Turnstile verification error: %v", err)
		}
		if !ok {
			props.Alert = msgTurnstileFailed
			return renderBookingForm(c, http.StatusUnprocessableEntity, props)
		}
	}

	if services.Bookings == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, msgBookingFailed)
	}

	receipt, fieldErrs, err := services.Bookings.Submit(ctx, req)
	switch {
	case errors.Is(err, services.ErrValidation):
		props.Errors = fieldErrs
		return renderBookingForm(c, http.StatusUnprocessableEntity, props)
	case errors.Is(err, context.Canceled):
		// Client went away during the simulated delay
		c.Logger().Infof("Booking submission cancelled by client")
		return nil
	case err != nil:
		c.Logger().Errorf("Booking submission failed: %v", err)
		props.Alert = msgBookingFailed
		return renderBookingForm(c, http.StatusInternalServerError, props)
	}

	if isHTMX(c) {
		return render(c, http.StatusOK, partials.Fragment(partials.BookingSuccess(receipt)))
	}
	return render(c, http.StatusOK, pages.BookingReceived(ctx, pageProps(c, "booking"), receipt))
}

// BookingFormHandler returns an empty form; the success message swaps it back in
func BookingFormHandler(c echo.Context) error {
	noStore(c)
	return render(c, http.StatusOK, partials.Fragment(partials.BookingForm(bookingFormProps(c))))
}

func renderBookingForm(c echo.Context, status int, props partials.BookingFormProps) error {
	if isHTMX(c) {
		return render(c, status, partials.Fragment(partials.BookingForm(props)))
	}
	return render(c, status, pages.Booking(c.Request().Context(), pageProps(c, "booking"), props))
}

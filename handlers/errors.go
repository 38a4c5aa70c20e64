package handlers

import (
	"errors"
	"net/http"

	"beta_law_site/templates/pages"
	"beta_law_site/templates/partials"

	"github.com/labstack/echo/v4"
)

var statusMessages = map[int]string{
	http.StatusBadRequest:          "הבקשה אינה תקינה",
	http.StatusForbidden:           "הבקשה נדחתה, רעננו את הדף ונסו שוב",
	http.StatusNotFound:            "הדף שחיפשתם לא נמצא",
	http.StatusMethodNotAllowed:    "הבקשה אינה נתמכת",
	http.StatusTooManyRequests:     "יותר מדי בקשות, נסו שוב בעוד מספר דקות",
	http.StatusInternalServerError: "אירעה שגיאה בלתי צפויה",
	http.StatusServiceUnavailable:  "השירות אינו זמין כרגע",
}

// HTTPErrorHandler renders errors as an alert fragment for htmx requests and
// as a full page otherwise. Handler-provided messages win over the defaults.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, message := errorStatus(err)
	if code >= http.StatusInternalServerError {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	var renderErr error
	switch {
	case c.Request().Method == http.MethodHead:
		renderErr = c.NoContent(code)
	case isHTMX(c):
		renderErr = render(c, code, partials.Fragment(partials.ErrorAlert(message)))
	default:
		renderErr = render(c, code, pages.Error(c.Request().Context(), pageProps(c, ""), code, message))
	}
	if renderErr != nil {
		c.Logger().Errorf("Failed to render error response: %v", renderErr)
	}
}

func errorStatus(err error) (int, string) {
	code := http.StatusInternalServerError
	var message string

	var he *echo.HTTPError
	if errors.As(err, &he) {
		if inner, ok := he.Internal.(*echo.HTTPError); ok {
			he = inner
		}
		code = he.Code
		if m, ok := he.Message.(string); ok && m != http.StatusText(code) {
			message = m
		}
	}

	if message == "" {
		message = statusMessages[code]
	}
	if message == "" {
		message = statusMessages[http.StatusInternalServerError]
	}
	return code, message
}

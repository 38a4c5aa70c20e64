package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// VisitorCookieName identifies a browser across requests so it keeps its own showcase
	VisitorCookieName = "beta_visitor"
	visitorContextKey = "visitor_id"
	visitorCookieTTL  = 30 * 24 * time.Hour
)

// Visitor makes sure every request carries a visitor id, issuing a cookie on first visit
func Visitor(secureCookies bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			visitorID := ""
			if cookie, err := c.Cookie(VisitorCookieName); err == nil {
				if id, err := uuid.Parse(cookie.Value); err == nil {
					visitorID = id.String()
				}
			}

			if visitorID == "" {
				visitorID = uuid.New().String()
				c.SetCookie(&http.Cookie{
					Name:     VisitorCookieName,
					Value:    visitorID,
					Path:     "/",
					HttpOnly: true,
					Secure:   secureCookies,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(visitorCookieTTL),
				})
			}

			c.Set(visitorContextKey, visitorID)

			return next(c)
		}
	}
}

// GetVisitorID returns the visitor id set by the Visitor middleware
func GetVisitorID(c echo.Context) string {
	if id, ok := c.Get(visitorContextKey).(string); ok {
		return id
	}
	return ""
}

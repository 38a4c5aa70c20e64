package handlers

import (
	"net/http"
	"time"

	"beta_law_site/config"
	"beta_law_site/db"
	"beta_law_site/middleware"
	"beta_law_site/services"
	"beta_law_site/templates/pages"
	"beta_law_site/templates/partials"

	"github.com/labstack/echo/v4"
)

const msgContentUnavailable = "לא ניתן לטעון את התוכן כרגע, נסו שוב מאוחר יותר"

// appConfig returns the config set by the server middleware
func appConfig(c echo.Context) *config.Config {
	if cfg, ok := c.Get("config").(*config.Config); ok {
		return cfg
	}
	return &config.Config{AppURL: "http://localhost:8080"}
}

func pageProps(c echo.Context, page string) pages.PageProps {
	cfg := appConfig(c)
	return pages.PageProps{
		SEO:              GetSEO(page, cfg.AppURL),
		CSRFToken:        middleware.GetCSRFToken(c),
		CurrentPath:      c.Request().URL.Path,
		Year:             time.Now().Year(),
		TurnstileSiteKey: turnstileSiteKey(cfg),
	}
}

func bookingFormProps(c echo.Context) partials.BookingFormProps {
	return partials.BookingFormProps{
		CSRFToken:        middleware.GetCSRFToken(c),
		TurnstileSiteKey: turnstileSiteKey(appConfig(c)),
	}
}

func turnstileSiteKey(cfg *config.Config) string {
	if cfg.TurnstileEnabled() {
		return cfg.TurnstileSiteKey
	}
	return ""
}

// LandingHandler renders the one-page site with a freshly mounted showcase
func LandingHandler(c echo.Context) error {
	content, err := services.GetHomeContent(db.DB)
	if err != nil {
		c.Logger().Errorf("Failed to load home content: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, msgContentUnavailable)
	}

	state, err := remountShowcase(c)
	if err != nil {
		return err
	}

	component := pages.Landing(c.Request().Context(), pages.LandingProps{
		Page:          pageProps(c, "landing"),
		Statistics:    content.Statistics,
		PracticeAreas: content.PracticeAreas,
		Team:          content.Team,
		Showcase:      state,
		Booking:       bookingFormProps(c),
	})
	return render(c, http.StatusOK, component)
}

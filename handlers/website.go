package handlers

import (
	"net/http"

	"beta_law_site/db"
	"beta_law_site/services"
	"beta_law_site/templates/pages"

	"github.com/labstack/echo/v4"
)

// Single-section pages reached from the navigation links

func WebsiteAboutHandler(c echo.Context) error {
	content, err := services.GetHomeContent(db.DB)
	if err != nil {
		c.Logger().Errorf("Failed to load about content: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, msgContentUnavailable)
	}

	component := pages.About(c.Request().Context(), pageProps(c, "about"), content.Statistics, content.Team)
	return render(c, http.StatusOK, component)
}

func WebsiteServicesHandler(c echo.Context) error {
	areas, err := services.GetPracticeAreas(db.DB)
	if err != nil {
		c.Logger().Errorf("Failed to load practice areas: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, msgContentUnavailable)
	}

	state, err := remountShowcase(c)
	if err != nil {
		return err
	}

	component := pages.Services(c.Request().Context(), pageProps(c, "services"), areas, state)
	return render(c, http.StatusOK, component)
}

func WebsiteBookingHandler(c echo.Context) error {
	component := pages.Booking(c.Request().Context(), pageProps(c, "booking"), bookingFormProps(c))
	return render(c, http.StatusOK, component)
}

func WebsiteContactHandler(c echo.Context) error {
	component := pages.Contact(c.Request().Context(), pageProps(c, "contact"))
	return render(c, http.StatusOK, component)
}

package handlers

import (
	"errors"
	"net/http"

	"beta_law_site/db"
	"beta_law_site/services"

	"github.com/labstack/echo/v4"
)

var errCatalogNotInitialized = errors.New("content catalog not initialized")

// HealthHandler reports whether the content catalog answers
func HealthHandler(c echo.Context) error {
	status := http.StatusOK
	body := echo.Map{"status": "ok"}

	if err := pingCatalog(); err != nil {
		status = http.StatusServiceUnavailable
		body["status"] = "unavailable"
		body["error"] = err.Error()
	}
	if services.Showcases != nil {
		body["showcase_players"] = services.Showcases.Len()
	}
	return c.JSON(status, body)
}

func pingCatalog() error {
	if db.DB == nil {
		return errCatalogNotInitialized
	}
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

package handlers

import (
	"database/sql"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"beta_law_site/config"
	"beta_law_site/db"
	"beta_law_site/models"
	"beta_law_site/services"
	"beta_law_site/services/showcase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testVisitorID = "5f0c7a52-8d7e-4a53-9f0e-2b2f3a1c9d10"

// pausedScheduler never fires, so tests drive the showcase by hand
type pausedScheduler struct{}

func (pausedScheduler) Every(time.Duration, func()) func() { return func() {} }

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use unique shared memory name to isolate tests
	dsn := "file:mem_" + uuid.New().String() + "?mode=memory&cache=shared"
	testDB, err := db.Open(dsn, "test")
	require.NoError(t, err)

	require.NoError(t, testDB.AutoMigrate(models.ContentModels()...))
	require.NoError(t, services.SeedContent(testDB))

	// Set global DB
	db.DB = testDB

	t.Cleanup(func() {
		if sqlDB, err := testDB.DB(); err == nil {
			sqlDB.Close()
		}
		db.DB = nil
	})
	return testDB
}

// setupServices mounts a fresh showcase registry and an instant booking service
func setupServices(t *testing.T) *showcase.Registry {
	t.Helper()
	testDB := setupTestDB(t)

	items, err := services.LoadShowcaseItems(testDB)
	require.NoError(t, err)

	registry, err := showcase.NewRegistry(items, showcase.RegistryConfig{
		Interval:  time.Second,
		Scheduler: pausedScheduler{},
	})
	require.NoError(t, err)

	services.Showcases = registry
	services.Bookings = services.NewBookingService(0)

	t.Cleanup(func() {
		registry.Close()
		services.Showcases = nil
		services.Bookings = nil
	})
	return registry
}

func testConfig() *config.Config {
	return &config.Config{
		ServerPort:  "8080",
		Environment: "test",
		AppURL:      "https://beta-law.test",
	}
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config, CSRF token and visitor to context
	c.Set("config", testConfig())
	c.Set("csrf", "test-csrf-token")
	c.Set("visitor_id", testVisitorID)

	return e, c, rec
}

func asHTMX(c echo.Context) {
	c.Request().Header.Set("HX-Request", "true")
}

func dbHandle(t *testing.T) (*sql.DB, error) {
	t.Helper()
	return db.DB.DB()
}

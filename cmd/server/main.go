package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"beta_law_site/config"
	"beta_law_site/db"
	"beta_law_site/handlers"
	"beta_law_site/middleware"
	"beta_law_site/models"
	"beta_law_site/services"
	"beta_law_site/services/showcase"
	"beta_law_site/static"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize the in-memory content catalog
	if err := db.Initialize(cfg.ContentDBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(models.ContentModels()...); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := services.SeedContent(db.DB); err != nil {
		log.Fatalf("Failed to seed content: %v", err)
	}

	// Showcase players, one per visitor
	items, err := services.LoadShowcaseItems(db.DB)
	if err != nil {
		log.Fatalf("Failed to load showcase items: %v", err)
	}
	registry, err := showcase.NewRegistry(items, showcase.RegistryConfig{
		Interval:    cfg.ShowcaseInterval,
		IdleTimeout: cfg.VisitorIdleTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to create showcase registry: %v", err)
	}
	services.Showcases = registry
	services.Bookings = services.NewBookingService(cfg.BookingDelay)

	middleware.InitAssetVersions(static.FS)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "0",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		HSTSMaxAge:         hstsMaxAge(cfg),
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	e.Use(middleware.CSPNonce())

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files, cache-busted by content hash
	assets := e.Group("/static", middleware.StaticCache())
	assets.StaticFS("/", static.FS)

	// Crawlers and probes
	e.GET("/healthz", handlers.HealthHandler)
	e.GET("/robots.txt", handlers.GetRobotsHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)

	bookingLimiter := middleware.BookingRateLimiter()
	showcaseLimiter := middleware.ShowcaseRateLimiter()

	// Site routes carry a visitor cookie and CSRF protection
	site := e.Group("")
	site.Use(middleware.Visitor(cfg.SecureCookies))
	site.Use(middleware.CSRF(cfg.SecureCookies))
	{
		site.GET("/", handlers.LandingHandler)
		site.GET("/about", handlers.WebsiteAboutHandler)
		site.GET("/services", handlers.WebsiteServicesHandler)
		site.GET("/booking", handlers.WebsiteBookingHandler)
		site.GET("/contact", handlers.WebsiteContactHandler)

		// Booking form (simulated submission)
		site.POST("/booking", handlers.BookingPostHandler, bookingLimiter.Middleware())
		site.GET("/booking/form", handlers.BookingFormHandler)

		// Testimonials showcase
		showcaseRoutes := site.Group("/showcase")
		{
			showcaseRoutes.GET("", handlers.ShowcaseFragmentHandler)
			showcaseRoutes.GET("/stream", handlers.ShowcaseStreamHandler)
			showcaseRoutes.POST("/prev", handlers.ShowcasePrevHandler, showcaseLimiter.Middleware())
			showcaseRoutes.POST("/next", handlers.ShowcaseNextHandler, showcaseLimiter.Middleware())
			showcaseRoutes.POST("/pause", handlers.ShowcasePauseHandler, showcaseLimiter.Middleware())
			showcaseRoutes.POST("/resume", handlers.ShowcaseResumeHandler, showcaseLimiter.Middleware())
			showcaseRoutes.POST("/select/:index", handlers.ShowcaseSelectHandler, showcaseLimiter.Middleware())
		}
	}

	// Background jobs stop with the server
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go registry.Run(ctx, cfg.VisitorSweepInterval)
	go cleanupLimiters(ctx, bookingLimiter, showcaseLimiter)

	// Start server
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()

	log.Println("[INFO] Shutting down")
	registry.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARNING] Server shutdown: %v", err)
	}
}

// cleanupLimiters drops idle rate limit buckets every few minutes
func cleanupLimiters(ctx context.Context, limiters ...*middleware.RateLimiter) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := 0
			for _, l := range limiters {
				removed += l.Cleanup()
			}
			if removed > 0 {
				log.Printf("[INFO] Removed %d idle rate limit entries", removed)
			}
		}
	}
}

func hstsMaxAge(cfg *config.Config) int {
	if cfg.IsProduction() {
		return 31536000
	}
	return 0
}

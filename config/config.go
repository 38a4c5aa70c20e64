package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultShowcaseInterval is how often the testimonials rotate on their own
	DefaultShowcaseInterval = 5 * time.Second
	// DefaultBookingDelay simulates the latency of a booking submission
	DefaultBookingDelay = 1500 * time.Millisecond
)

var validEnvironments = []string{"development", "production", "test"}

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	// Content catalog (in-memory sqlite, seeded at startup)
	ContentDBPath string
	// Testimonials showcase
	ShowcaseInterval     time.Duration
	VisitorIdleTimeout   time.Duration
	VisitorSweepInterval time.Duration
	// Booking form
	BookingDelay time.Duration
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Other
	AllowedOrigins []string
	SecureCookies  bool
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")

	return &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		Environment:          environment,
		AppURL:               strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		ContentDBPath:        getEnv("CONTENT_DB_PATH", "file:content?mode=memory&cache=shared"),
		ShowcaseInterval:     getEnvDuration("SHOWCASE_INTERVAL", DefaultShowcaseInterval),
		VisitorIdleTimeout:   getEnvDuration("VISITOR_IDLE_TIMEOUT", 30*time.Minute),
		VisitorSweepInterval: getEnvDuration("VISITOR_SWEEP_INTERVAL", time.Minute),
		BookingDelay:         getEnvDuration("BOOKING_DELAY", DefaultBookingDelay),
		TurnstileSiteKey:     getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey:   getEnv("TURNSTILE_SECRET_KEY", ""),
		AllowedOrigins:       strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		SecureCookies:        getEnvBool("SECURE_COOKIES", environment == "production"),
	}
}

// Validate checks the values that would otherwise fail at runtime
func (c *Config) Validate() error {
	if !isValidEnvironment(c.Environment) {
		return fmt.Errorf("invalid ENVIRONMENT %q (expected one of %s)", c.Environment, strings.Join(validEnvironments, ", "))
	}
	if _, err := strconv.Atoi(c.ServerPort); err != nil {
		return fmt.Errorf("invalid SERVER_PORT %q: %w", c.ServerPort, err)
	}
	if c.ShowcaseInterval <= 0 {
		return fmt.Errorf("SHOWCASE_INTERVAL must be positive (got %s)", c.ShowcaseInterval)
	}
	if c.VisitorIdleTimeout <= 0 || c.VisitorSweepInterval <= 0 {
		return fmt.Errorf("VISITOR_IDLE_TIMEOUT and VISITOR_SWEEP_INTERVAL must be positive")
	}
	if c.BookingDelay < 0 {
		return fmt.Errorf("BOOKING_DELAY must not be negative (got %s)", c.BookingDelay)
	}
	return nil
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// TurnstileEnabled reports whether the booking form requires a CAPTCHA
func (c *Config) TurnstileEnabled() bool {
	return c.TurnstileSiteKey != "" && c.TurnstileSecretKey != ""
}

func isValidEnvironment(env string) bool {
	for _, v := range validEnvironments {
		if env == v {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// getEnvDuration accepts Go durations ("5s", "1m30s") or a bare number of milliseconds
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	log.Printf("[WARNING] Invalid duration for %s: %q, using %s", key, value, defaultValue)
	return defaultValue
}

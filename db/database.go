package db

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB holds the site content catalog. It is seeded once at startup and only read afterwards.
var DB *gorm.DB

// Open connects to a sqlite DSN. The default DSN is a shared in-memory database,
// so nothing outlives the process.
func Open(dsn string, environment string) (*gorm.DB, error) {
	logLevel := logger.Warn
	if environment == "development" {
		logLevel = logger.Info
	}

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open content database: %w", err)
	}

	// A shared-cache memory database disappears when its last connection closes
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return conn, nil
}

// Initialize opens the global content database
func Initialize(dsn string, environment string) error {
	conn, err := Open(dsn, environment)
	if err != nil {
		return err
	}
	DB = conn

	log.Println("[INFO] Content database ready")
	return nil
}

// AutoMigrate creates the catalog tables for the provided models
func AutoMigrate(models ...interface{}) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	if err := DB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("[INFO] Content tables created")
	return nil
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}

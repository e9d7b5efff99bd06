package postgres

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/DsDac0/Website/domain/models"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	DSN      string
	LogLevel string
}

func (c DatabaseConfig) dsn() string {
	if c.DSN != "" {
		return c.DSN
	}
	if c.Driver == DriverSQLite {
		return "mega_auto_parts.db"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.Host, c.User, c.Password, c.DBName, c.Port, c.SSLMode)
}

// NewDatabase opens postgres, or sqlite for local runs and tests. Both dialects
// get case-sensitive LIKE so catalog search behaves the same everywhere.
func NewDatabase(config DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(parseLogLevel(config.LogLevel)),
	}

	var dialector gorm.Dialector
	switch strings.ToLower(config.Driver) {
	case "", DriverPostgres:
		dialector = postgres.Open(config.dsn())
	case DriverSQLite:
		dialector = sqlite.Open(config.dsn())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	if strings.EqualFold(config.Driver, DriverSQLite) {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// One connection keeps the pragma and in-memory databases consistent.
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA case_sensitive_like = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable case sensitive like: %v", err)
		}
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %v", err)
		}
	}

	return db, nil
}

func parseLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// Catalog
		&models.Category{},
		&models.CarBrand{},
		&models.CarModel{},
		&models.Product{},
		// Shopping
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.ContactMessage{},
		// Admin
		&models.AdminUser{},
		&models.AdminSession{},
	)
}

// NewInMemoryDatabase opens a private in-memory sqlite database with the schema applied.
func NewInMemoryDatabase(name string) (*gorm.DB, error) {
	db, err := NewDatabase(DatabaseConfig{
		Driver:   DriverSQLite,
		DSN:      fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		LogLevel: "silent",
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

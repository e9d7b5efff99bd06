package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Session  SessionConfig
	Log      LogConfig
	Storage  StorageConfig
	Mail     MailConfig
	Telegram TelegramConfig
	Stripe   StripeConfig
	PayPal   PayPalConfig
	Shop     ShopConfig
	Metrics  MetricsConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Env         string
	CorsOrigins string
}

// DatabaseConfig selects the gorm dialector by Driver (postgres, sqlite).
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	DSN      string // sqlite file path or full postgres DSN; overrides the fields above
	LogLevel string // silent, error, warn, info
}

// RedisConfig is optional; an empty URL disables caching and the redis session store.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// NATSConfig is optional; an empty URL keeps order events in-process.
type NATSConfig struct {
	URL string
}

type SessionConfig struct {
	Secret     string
	CookieName string
	MaxAge     int // seconds
	Secure     bool
	PurgeCron  string
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

type StorageConfig struct {
	Type          string // local, s3
	BasePath      string
	BaseURL       string
	MaxUploadSize int64
	S3            S3Config
}

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
	PublicURL string
}

type MailConfig struct {
	SendGridAPIKey string
	FromAddress    string
	FromName       string
}

type TelegramConfig struct {
	BotToken string
	ChatID   string
}

func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != ""
}

type StripeConfig struct {
	SecretKey string
	Currency  string
}

type PayPalConfig struct {
	ClientID     string
	ClientSecret string
	Environment  string // sandbox, live
}

// ShopConfig holds storefront business rules.
type ShopConfig struct {
	Currency              string
	FreeShippingThreshold string // decimal string, MKD
	ShippingFee           string // decimal string, MKD
	SeedData              bool
	DefaultAdminUsername  string
	DefaultAdminPassword  string
	StaffAlertEnabled     bool
}

type MetricsConfig struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	Endpoint       string // host:port of the OTLP/HTTP collector
	Headers        string // comma separated key=value
	Insecure       bool
}

func LoadConfig() (*Config, error) {
	// .env is optional; plain environment variables work as well
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	sessionMaxAge, _ := strconv.Atoi(getEnv("SESSION_MAX_AGE", "86400"))
	maxUploadSize, _ := strconv.ParseInt(getEnv("STORAGE_MAX_UPLOAD_SIZE", "10485760"), 10, 64)

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Mega Auto Parts"),
			Port:        getEnv("APP_PORT", "5000"),
			Env:         getEnv("APP_ENV", "development"),
			CorsOrigins: getEnv("CORS_ORIGINS", "http://localhost:5000,http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "postgres"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "mega_auto_parts"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
			DSN:      getEnv("DATABASE_URL", ""),
			LogLevel: getEnv("DB_LOG_LEVEL", "warn"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", ""),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", "mega-auto-parts-secret-key"),
			CookieName: getEnv("SESSION_COOKIE_NAME", "map_admin"),
			MaxAge:     sessionMaxAge,
			Secure:     getBool("SESSION_COOKIE_SECURE", getEnv("APP_ENV", "development") == "production"),
			PurgeCron:  getEnv("SESSION_PURGE_CRON", "0 * * * *"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   getBool("LOG_COMPRESS", true),
		},
		Storage: StorageConfig{
			Type:          getEnv("STORAGE_TYPE", "local"),
			BasePath:      getEnv("STORAGE_BASE_PATH", "./uploads"),
			BaseURL:       getEnv("STORAGE_BASE_URL", "http://localhost:5000/files"),
			MaxUploadSize: maxUploadSize,
			S3: S3Config{
				Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
				AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
				SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
				Bucket:    getEnv("S3_BUCKET", "product-images"),
				UseSSL:    getBool("S3_USE_SSL", false),
				Region:    getEnv("S3_REGION", "us-east-1"),
				PublicURL: getEnv("S3_PUBLIC_URL", ""),
			},
		},
		Mail: MailConfig{
			SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
			FromAddress:    getEnv("MAIL_FROM_ADDRESS", "orders@megaautoparts.mk"),
			FromName:       getEnv("MAIL_FROM_NAME", "MEGA AUTO PARTS"),
		},
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
		},
		Stripe: StripeConfig{
			SecretKey: getEnv("STRIPE_SECRET_KEY", ""),
			Currency:  getEnv("STRIPE_CURRENCY", "mkd"),
		},
		PayPal: PayPalConfig{
			ClientID:     getEnv("PAYPAL_CLIENT_ID", ""),
			ClientSecret: getEnv("PAYPAL_CLIENT_SECRET", ""),
			Environment:  getEnv("PAYPAL_ENVIRONMENT", "sandbox"),
		},
		Shop: ShopConfig{
			Currency:              getEnv("SHOP_CURRENCY", "MKD"),
			FreeShippingThreshold: getEnv("SHOP_FREE_SHIPPING_THRESHOLD", "3000"),
			ShippingFee:           getEnv("SHOP_SHIPPING_FEE", "200"),
			SeedData:              getBool("SEED_DATA", true),
			DefaultAdminUsername:  getEnv("DEFAULT_ADMIN_USERNAME", "admin"),
			DefaultAdminPassword:  getEnv("DEFAULT_ADMIN_PASSWORD", "admin123"),
			StaffAlertEnabled:     getBool("STAFF_ALERT_ENABLED", true),
		},
		Metrics: MetricsConfig{
			Enabled:        getBool("OTEL_METRICS_ENABLED", false),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "mega-auto-parts"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			Insecure:       getBool("OTEL_EXPORTER_OTLP_INSECURE", true),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getBool(key string, defaultValue bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch value {
	case "":
		return defaultValue
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// SplitList splits a comma separated setting and drops empty entries.
func SplitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

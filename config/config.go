package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the service settings read from the environment
type Config struct {
	Port            string
	DatabaseURL     string
	StoreName       string
	WhatsAppNumber  string
	PricingConfig   string
	RedisAddr       string
	CacheTTL        time.Duration
	SessionTTL      time.Duration
	ShutdownTimeout time.Duration

	JWTSecret         string
	AdminUser         string
	AdminPasswordHash string

	GoogleCredentials   string
	DriveUploadFolderID string
	ChromePath          string
	MaxUploadBytes      int64
}

// LoadEnvFile loads .env in development. In production, variables should be set directly.
func LoadEnvFile() {
	if os.Getenv("ENV") == "production" {
		return
	}

	// Use Overload to ensure .env values override system environment variables
	envPath := ".env"
	if err := godotenv.Overload(envPath); err != nil {
		log.Printf("Warning: .env file not found at %s, using system environment variables", envPath)
		return
	}
	log.Printf("Successfully loaded environment variables from %s (overriding system variables)", envPath)
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         databaseURL(),
		StoreName:           getEnv("STORE_NAME", "Pizzaria"),
		WhatsAppNumber:      os.Getenv("WHATSAPP_NUMBER"),
		PricingConfig:       os.Getenv("PRICING_CONFIG"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		CacheTTL:            getEnvDuration("CACHE_TTL", 5*time.Minute),
		SessionTTL:          getEnvDuration("SESSION_TTL", 2*time.Hour),
		ShutdownTimeout:     getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		AdminUser:           getEnv("ADMIN_USER", "admin"),
		AdminPasswordHash:   os.Getenv("ADMIN_PASSWORD_HASH"),
		GoogleCredentials:   os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		DriveUploadFolderID: os.Getenv("DRIVE_UPLOAD_FOLDER_ID"),
		ChromePath:          os.Getenv("CHROME_PATH"),
		MaxUploadBytes:      int64(getEnvInt("MAX_UPLOAD_MB", 10)) << 20,
	}

	// Remove leading colon if present (PORT from Render doesn't include it)
	if len(cfg.Port) > 0 && cfg.Port[0] == ':' {
		cfg.Port = cfg.Port[1:]
	}

	if cfg.WhatsAppNumber == "" {
		return nil, fmt.Errorf("WHATSAPP_NUMBER environment variable is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	return cfg, nil
}

// Addr returns the listen address. 0.0.0.0 accepts connections from all interfaces (required for Docker).
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

// databaseURL returns DATABASE_URL or builds a connection string from the individual variables
func databaseURL() string {
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		return connStr
	}

	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	dbname := os.Getenv("DB_NAME")
	if host == "" || user == "" || dbname == "" {
		return ""
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, getEnv("DB_PORT", "5432"), user, os.Getenv("DB_PASSWORD"), dbname, getEnv("DB_SSLMODE", "disable"))
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration returns environment variable as duration or default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Printf("Warning: invalid duration value for %s: %s, using default: %s", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	// DefaultJWTSecret is only acceptable while owner auth is disabled.
	DefaultJWTSecret = "defaultsecret"
)

type Config struct {
	APIPort  string
	AppEnv   string
	LogLevel string

	JWTKey            []byte
	JWTExp            time.Duration
	OwnerName         string
	OwnerPasswordHash string

	StorageDriver string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	DBConnStr     string
	SQLitePath    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	NotificationQueueName string
	NotificationQueueSize int
	NotificationFeedKey   string
	NotificationFeedSize  int

	TotalQuestionsAvailable int
	OverviewRecentLimit     int

	RateLimitRPS   float64
	RateLimitBurst int
}

var AppConfig *Config

// Load reads .env (if present) and the environment into AppConfig.
// It reports whether a .env file was found.
func Load() (*Config, bool) {
	envFileFound := godotenv.Load() == nil

	AppConfig = &Config{
		APIPort:  getEnv("API_PORT", "8080"),
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		JWTKey:            []byte(getEnv("JWT_SECRET", DefaultJWTSecret)),
		JWTExp:            time.Duration(getEnvAsInt("JWT_EXPIRATION_HOURS", 72)) * time.Hour,
		OwnerName:         getEnv("OWNER_NAME", "owner"),
		OwnerPasswordHash: getEnv("OWNER_PASSWORD_HASH", ""),

		StorageDriver: getEnv("STORAGE_DRIVER", DriverMemory),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "user"),
		DBPassword:    getEnv("DB_PASSWORD", "password"),
		DBName:        getEnv("DB_NAME", "dsa_tracker"),
		DBSslMode:     getEnv("DB_SSLMODE", "disable"),
		SQLitePath:    getEnv("SQLITE_PATH", "dsa_tracker.db"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		NotificationQueueName: getEnv("NOTIFICATION_QUEUE_NAME", "notifications_queue"),
		NotificationQueueSize: getEnvAsInt("NOTIFICATION_QUEUE_SIZE", 1000),
		NotificationFeedKey:   getEnv("NOTIFICATION_FEED_KEY", "notifications_feed"),
		NotificationFeedSize:  getEnvAsInt("NOTIFICATION_FEED_SIZE", 50),

		TotalQuestionsAvailable: getEnvAsInt("TOTAL_QUESTIONS_AVAILABLE", 300),
		OverviewRecentLimit:     getEnvAsInt("OVERVIEW_RECENT_LIMIT", 3),

		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 40),
	}

	AppConfig.DBConnStr = "host=" + AppConfig.DBHost +
		" port=" + AppConfig.DBPort +
		" user=" + AppConfig.DBUser +
		" password=" + AppConfig.DBPassword +
		" dbname=" + AppConfig.DBName +
		" sslmode=" + AppConfig.DBSslMode

	return AppConfig, envFileFound
}

// AuthEnabled reports whether mutations require an owner token.
func (c *Config) AuthEnabled() bool {
	return c.OwnerPasswordHash != ""
}

// WeakJWTSecret reports whether the signing key is empty or still the built-in default.
func (c *Config) WeakJWTSecret() bool {
	return len(c.JWTKey) == 0 || string(c.JWTKey) == DefaultJWTSecret
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

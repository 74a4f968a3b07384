package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings, read from the environment with
// development defaults.
type Config struct {
	Port          string
	RedisAddr     string
	SessionSecret string
	SessionTTL    time.Duration

	MailerLiteBaseURL string
	MailerLiteAPIKey  string

	GroupContentCreator string
	GroupGettingThere   string
	GroupConversionPro  string
	GroupDefault        string

	CORSAllowedOrigins string
	CORSAllowedMethods string
	CORSAllowedHeaders string
}

// Load reads configuration from the environment, loading an optional .env
// file first (missing file is fine, production sets real vars).
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		SessionSecret: getEnv("SESSION_SECRET", "change-this-secret-in-production"),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_MINUTES", 30)) * time.Minute,

		MailerLiteBaseURL: getEnv("MAILERLITE_BASE_URL", "https://connect.mailerlite.com/api"),
		MailerLiteAPIKey:  getEnv("MAILERLITE_API_KEY", ""),

		GroupContentCreator: getEnv("MAILERLITE_CONTENT_CREATOR_GROUP_ID", ""),
		GroupGettingThere:   getEnv("MAILERLITE_GETTING_THERE_GROUP_ID", ""),
		GroupConversionPro:  getEnv("MAILERLITE_CONVERSION_PRO_GROUP_ID", ""),
		GroupDefault:        getEnv("MAILERLITE_GROUP_ID", ""),

		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		CORSAllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET, POST, PUT, DELETE, OPTIONS"),
		CORSAllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type, Authorization"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}

package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	DBUrl                string
	JWTSecret            string
	AppEnv               string
	RazorpayKeyID        string
	RazorpayKeySecret    string
	VideoAppID           string
	VideoAppSecret       string
	DefaultAdminEmail    string
	DefaultAdminPassword string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	jwtSecret, exists := os.LookupEnv("JWT_SECRET")
	if !exists || jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		Port:                 getEnv("PORT", "8080"),
		DBUrl:                getEnv("DB_URL", ""),
		JWTSecret:            jwtSecret,
		AppEnv:               normalizeEnv(getEnv("APP_ENV", "production")),
		RazorpayKeyID:        getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret:    getEnv("RAZORPAY_KEY_SECRET", ""),
		VideoAppID:           getEnv("VIDEO_APP_ID", "fitlife-plus"),
		VideoAppSecret:       getEnv("VIDEO_APP_SECRET", ""),
		DefaultAdminEmail:    getEnv("DEFAULT_ADMIN_EMAIL", ""),
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

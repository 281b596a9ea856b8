package config

import (
	"log"
	"os"
	"strconv"
)

const (
	DefaultTokenExpiryHours = 24
	DefaultCookieExpiryDays = 3
	DefaultOTPExpiryMinutes = 5
)

type Config struct {
	Env              string
	Port             string
	DBURL            string
	JWTSecret        string
	TokenExpiryHours int
	CookieExpiryDays int
	OTPExpiryMinutes int

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	AppName      string
}

func Load() *Config {
	return &Config{
		Env:              getEnv("ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		DBURL:            mustGetEnv("DB_URL"),
		JWTSecret:        mustGetEnv("JWT_SECRET"),
		TokenExpiryHours: getEnvAsInt("TOKEN_EXPIRY_HOURS", DefaultTokenExpiryHours),
		CookieExpiryDays: getEnvAsInt("COOKIE_EXPIRY_DAYS", DefaultCookieExpiryDays),
		OTPExpiryMinutes: getEnvAsInt("OTP_EXPIRY_MINUTES", DefaultOTPExpiryMinutes),
		SMTPHost:         getEnv("SMTP_HOST", "localhost"),
		SMTPPort:         getEnvAsInt("SMTP_PORT", 587),
		SMTPUser:         getEnv("SMTP_USER", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		AppName:          getEnv("APP_NAME", "Academix"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

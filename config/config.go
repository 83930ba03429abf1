package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Settings
	AppPort string
	Host    string

	// Database Settings
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// JWT Settings
	JWTSecret string
	JWTExpiry time.Duration

	// CORS Settings
	CORSAllowOrigins string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		AppPort: getEnv("PORT", "5001"),
		Host:    getEnv("HOST", ""),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "looncamp"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "looncamp"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTExpiry: parseExpiry(getEnv("JWT_EXPIRES_IN", "24h")),

		CORSAllowOrigins: getEnv("FRONTEND_URL", "*"),
	}

	return config
}

// DSN builds the MySQL connection string for GORM.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func parseExpiry(raw string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Invalid JWT_EXPIRES_IN %q, falling back to 24h", raw)
		return 24 * time.Hour
	}
	return d
}

// getEnv returns an environment variable or a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

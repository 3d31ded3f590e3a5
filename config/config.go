package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	CORS_ORIGIN string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string

	FRONTEND_URL string
	APP_BASE_URL string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")

	GOOGLE_CLIENT_ID = mustEnv("GOOGLE_CLIENT_ID")
	GOOGLE_CLIENT_SECRET = mustEnv("GOOGLE_CLIENT_SECRET")
	GOOGLE_REDIRECT_URL = mustEnv("GOOGLE_REDIRECT_URL")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")

	FRONTEND_URL = getEnv("FRONTEND_URL", "http://localhost:5173")
	APP_BASE_URL = getEnv("APP_BASE_URL", "http://localhost:8080")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JwtSecret          string
	ServerPort         string
	Issuer             string
	CorsOrigins        []string
	DeliveryConfigPath string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("ISSUER", "portal")
	CorsOrigins = strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173"), ",")
	DeliveryConfigPath = getEnv("DELIVERY_CONFIG", "")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                    string
	Production              bool
	RequestTimeout          time.Duration
	SsstikUrl               string
	SsstikToken             string
	TikmateApiUrl           string
	AllowUnverifiedFallback bool
	StoragePath             string
}

func LoadConfig() Config {
	// .env is optional, environment variables may be set directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return Config{
		Port:                    getEnv("PORT", "3000"),
		Production:              getEnv("PRODUCTION", "false") == "true",
		RequestTimeout:          time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,
		SsstikUrl:               getEnv("SSSTIK_URL", "https://ssstik.io/abc"),
		SsstikToken:             getEnv("SSSTIK_TOKEN", "azM1a2M"),
		TikmateApiUrl:           getEnv("TIKMATE_API_URL", "https://api.tikmate.app/api/lookup"),
		AllowUnverifiedFallback: getEnv("ALLOW_UNVERIFIED_FALLBACK", "true") == "true",
		StoragePath:             getEnv("STORAGE_PATH", "./storage"),
	}
}

// getEnv obtains an environment variable or falls back to a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return value
}

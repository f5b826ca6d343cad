// config.go - Configuration loaded from environment variables

package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	// Gemini AI Configuration
	GEMINI_API_KEY string
	MODEL_NAME     string
	AI_PROVIDER    string

	// Server Configuration
	PORT            string
	ALLOWED_ORIGINS string

	// Upload limits
	MAX_FILE_SIZE_MB int

	// Extraction behavior
	EXTRACTION_TIMEOUT_SEC int

	// Per-client rate limiting
	RATE_LIMIT_REQUESTS   int
	RATE_LIMIT_WINDOW_SEC int
)

// LoadConfig loads configuration from environment variables.
//
// A missing GEMINI_API_KEY is deliberately not fatal here: the service
// still boots and answers /health, and the extract handler rejects
// requests with a 500 until the key is configured.
func LoadConfig() {
	// Load .env file if exists (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	GEMINI_API_KEY = getEnv("GEMINI_API_KEY", "")
	if GEMINI_API_KEY == "" {
		log.Println("GEMINI_API_KEY is not set; extraction requests will be rejected until it is configured")
	}

	MODEL_NAME = getEnv("MODEL_NAME", "gemini-2.5-flash")
	AI_PROVIDER = getEnv("AI_PROVIDER", "gemini")

	PORT = getEnv("PORT", "8080")
	ALLOWED_ORIGINS = getEnv("ALLOWED_ORIGINS", "*")

	MAX_FILE_SIZE_MB = getEnvInt("MAX_FILE_SIZE_MB", 15)
	EXTRACTION_TIMEOUT_SEC = getEnvInt("EXTRACTION_TIMEOUT_SEC", 120)

	RATE_LIMIT_REQUESTS = getEnvInt("RATE_LIMIT_REQUESTS", 20)
	RATE_LIMIT_WINDOW_SEC = getEnvInt("RATE_LIMIT_WINDOW_SEC", 60)

	log.Println("Configuration loaded")
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

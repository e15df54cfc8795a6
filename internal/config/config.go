package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Config holds all application configuration loaded from environment variables.
type Config struct {
	ListenAddr   string
	FetchTimeout time.Duration
	DialTimeout  time.Duration
	MaxBodyBytes int64
	UserAgent    string

	// DatabaseURL is optional; when empty the Postgres sink is disabled.
	DatabaseURL   string
	CSVOutputPath string
}

// Load reads the .env file (if present) and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		ListenAddr:   getEnv("LISTEN_ADDR", ":8080"),
		FetchTimeout: time.Duration(getEnvInt("FETCH_TIMEOUT_MS", 15000)) * time.Millisecond,
		DialTimeout:  time.Duration(getEnvInt("DIAL_TIMEOUT_MS", 5000)) * time.Millisecond,
		MaxBodyBytes: int64(getEnvInt("MAX_BODY_BYTES", 5*1024*1024)),
		UserAgent:    getEnv("USER_AGENT", defaultUserAgent),

		DatabaseURL:   os.Getenv("DATABASE_URL"),
		CSVOutputPath: getEnv("CSV_OUTPUT_PATH", "./output/reviews.csv"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

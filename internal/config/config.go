package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	NatsURL string

	// Per-username login throttling.
	LoginRateWindow time.Duration
	LoginRateLimit  int

	// Token bucket for the unauthenticated share endpoint.
	ShareRatePerSecond float64
	ShareRateBurst     int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:               GetEnvAsString("PORT", "8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTTTL:             GetEnvAsDuration("JWT_TTL", 24*time.Hour),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:            GetEnvAsInt("REDIS_DB", 0),
		NatsURL:            os.Getenv("NATS_URL"),
		LoginRateWindow:    GetEnvAsDuration("LOGIN_RATE_WINDOW", time.Minute),
		LoginRateLimit:     GetEnvAsInt("LOGIN_RATE_LIMIT", 10),
		ShareRatePerSecond: float64(GetEnvAsInt("SHARE_RATE_PER_SECOND", 50)),
		ShareRateBurst:     GetEnvAsInt("SHARE_RATE_BURST", 100),
	}
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

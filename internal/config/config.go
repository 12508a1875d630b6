package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string

	// Server
	Port        string
	FrontendURL string

	// Redis (telemetry is disabled when empty)
	RedisURL         string
	TelemetryChannel string

	// Frame driver
	TickRateHz     int
	MaxFrameMillis int
	InputQueueSize int

	// Desktop window
	WindowScale float64
	BallSprites string // optional sprite sheet path
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Redis
		RedisURL:         getEnv("REDIS_URL", ""),
		TelemetryChannel: getEnv("TELEMETRY_CHANNEL", "table_events"),

		// Frame driver
		TickRateHz:     getEnvInt("TICK_RATE_HZ", 60),
		MaxFrameMillis: getEnvInt("MAX_FRAME_MS", 100),
		InputQueueSize: getEnvInt("INPUT_QUEUE_SIZE", 64),

		// Desktop window
		WindowScale: getEnvFloat("WINDOW_SCALE", 1.0),
		BallSprites: getEnv("BALL_SPRITES", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil && intVal > 0 {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
			return f
		}
	}
	return defaultValue
}

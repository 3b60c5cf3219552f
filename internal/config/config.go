package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Analyzer AnalyzerConfig
	Upload   UploadConfig
	Worker   WorkerConfig
	Session  SessionConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type AnalyzerConfig struct {
	BaseURL  string
	Contract string
	// Timeout of zero leaves the HTTP transport defaults in charge.
	Timeout time.Duration
}

type UploadConfig struct {
	MaxFileSize int64
}

type WorkerConfig struct {
	Concurrency int
	QueueSize   int
}

type SessionConfig struct {
	IdleTimeout   time.Duration
	SweepInterval time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Analyzer: AnalyzerConfig{
			BaseURL:  getEnv("ANALYZER_BASE_URL", "http://localhost:5000"),
			Contract: getEnv("ANALYZER_CONTRACT", "full_analysis"),
			Timeout:  getEnvAsDuration("ANALYZER_TIMEOUT", "0s"),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 5242880),
		},
		Worker: WorkerConfig{
			Concurrency: getEnvAsInt("WORKER_CONCURRENCY", 3),
			QueueSize:   getEnvAsInt("WORKER_QUEUE_SIZE", 100),
		},
		Session: SessionConfig{
			IdleTimeout:   getEnvAsDuration("SESSION_IDLE_TIMEOUT", "30m"),
			SweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", "1m"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

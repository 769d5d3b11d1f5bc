package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Decision Config
	// Окно решения и интервал обхода настраиваемые, значения по умолчанию: 30s и 10s
	DecisionWindow time.Duration `env:"DECISION_WINDOW" envDefault:"30s"`
	SweepInterval  time.Duration `env:"SWEEP_INTERVAL" envDefault:"10s"`

	// Contact Notification Config
	ContactWebhookURL     string        `env:"CONTACT_WEBHOOK_URL"`
	ContactWebhookSecret  string        `env:"CONTACT_WEBHOOK_SECRET"`
	ContactWebhookTimeout time.Duration `env:"CONTACT_WEBHOOK_TIMEOUT" envDefault:"5s"`

	// Broadcast Webhook Config
	BroadcastWebhookURL     string        `env:"BROADCAST_WEBHOOK_URL"`
	BroadcastWebhookSecret  string        `env:"BROADCAST_WEBHOOK_SECRET"`
	BroadcastWebhookTimeout time.Duration `env:"BROADCAST_WEBHOOK_TIMEOUT" envDefault:"5s"`
	BroadcastMaxRetries     int           `env:"BROADCAST_MAX_RETRIES" envDefault:"3"`
	BroadcastBaseDelay      time.Duration `env:"BROADCAST_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		HTTPPort:                getEnv("HTTP_PORT", "8080"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		RedisAddr:               getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:               os.Getenv("REDIS_PASSWORD"),
		RedisDB:                 getEnvAsInt("REDIS_DB", 0),
		DecisionWindow:          getEnvAsDuration("DECISION_WINDOW", 30*time.Second),
		SweepInterval:           getEnvAsDuration("SWEEP_INTERVAL", 10*time.Second),
		ContactWebhookURL:       os.Getenv("CONTACT_WEBHOOK_URL"),
		ContactWebhookSecret:    os.Getenv("CONTACT_WEBHOOK_SECRET"),
		ContactWebhookTimeout:   getEnvAsDuration("CONTACT_WEBHOOK_TIMEOUT", 5*time.Second),
		BroadcastWebhookURL:     os.Getenv("BROADCAST_WEBHOOK_URL"),
		BroadcastWebhookSecret:  os.Getenv("BROADCAST_WEBHOOK_SECRET"),
		BroadcastWebhookTimeout: getEnvAsDuration("BROADCAST_WEBHOOK_TIMEOUT", 5*time.Second),
		BroadcastMaxRetries:     getEnvAsInt("BROADCAST_MAX_RETRIES", 3),
		BroadcastBaseDelay:      getEnvAsDuration("BROADCAST_BASE_DELAY", time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.DecisionWindow <= 0 {
		return nil, fmt.Errorf("DECISION_WINDOW must be positive")
	}

	if cfg.SweepInterval <= 0 {
		return nil, fmt.Errorf("SWEEP_INTERVAL must be positive")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

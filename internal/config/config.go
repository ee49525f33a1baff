package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	// Database Config
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME"`

	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Пароли фиксированных ролей
	AdminPass   string `env:"ADMIN_PASS"`
	CommandPass string `env:"COMM_PASS"`
	FieldPass   string `env:"FIELD_PASS"`

	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"12h"`

	// OpenWeatherMap
	OpenWeatherAPIKey  string        `env:"OPENWEATHER_API_KEY"`
	WeatherTimeout     time.Duration `env:"WEATHER_TIMEOUT" envDefault:"5s"`
	AlertPollInterval  time.Duration `env:"ALERT_POLL_INTERVAL" envDefault:"300s"`
	AlertRetryInterval time.Duration `env:"ALERT_RETRY_INTERVAL" envDefault:"60s"`
	RainfallCacheTTL   time.Duration `env:"RAINFALL_CACHE_TTL" envDefault:"600s"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     os.Getenv("DB_NAME"),

		HTTPPort: getEnv("HTTP_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass: os.Getenv("REDIS_PASSWORD"),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		AdminPass:   os.Getenv("ADMIN_PASS"),
		CommandPass: os.Getenv("COMM_PASS"),
		FieldPass:   os.Getenv("FIELD_PASS"),

		SessionTTL: getEnvAsDuration("SESSION_TTL", 12*time.Hour),

		OpenWeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		WeatherTimeout:     getEnvAsDuration("WEATHER_TIMEOUT", 5*time.Second),
		AlertPollInterval:  getEnvAsDuration("ALERT_POLL_INTERVAL", 300*time.Second),
		AlertRetryInterval: getEnvAsDuration("ALERT_RETRY_INTERVAL", 60*time.Second),
		RainfallCacheTTL:   getEnvAsDuration("RAINFALL_CACHE_TTL", 600*time.Second),

		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	if cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("DB_USER and DB_NAME environment variables are required")
	}

	if cfg.AdminPass == "" || cfg.CommandPass == "" || cfg.FieldPass == "" {
		return nil, fmt.Errorf("ADMIN_PASS, COMM_PASS and FIELD_PASS environment variables are required")
	}

	return cfg, nil
}

// DatabaseURL собирает строку подключения PostgreSQL, пароль экранируется
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		url.QueryEscape(c.DBUser),
		url.QueryEscape(c.DBPassword),
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
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

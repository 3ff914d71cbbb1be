package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Backend  BackendConfig
	Booking  BookingConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Debug       bool
	LogPath     string
	Timezone    string
	Location    *time.Location
	CORSOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type BackendConfig struct {
	URL         string
	Token       string
	Timeout     time.Duration
	MaxAttempts int
}

type BookingConfig struct {
	SeatsPerRow  int
	SelectionTTL time.Duration
	PurgeEvery   time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type RabbitMQConfig struct {
	URL   string
	Queue string
}

// LoadConfig reads configuration from the environment, with an optional .env
// file in the working directory.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	v.SetDefault("APP_NAME", "cinema-ticketing")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("APP_TIMEZONE", "UTC")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("BACKEND_URL", "http://localhost:3000/api")
	v.SetDefault("BACKEND_TIMEOUT_SECONDS", 10)
	v.SetDefault("BACKEND_MAX_ATTEMPTS", 3)
	v.SetDefault("SEATS_PER_ROW", 10)
	v.SetDefault("SELECTION_TTL_MINUTES", 20)
	v.SetDefault("SELECTION_PURGE_SECONDS", 60)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL_SECONDS", 30)
	v.SetDefault("RABBITMQ_QUEUE", "booking.submitted")

	if _, err := os.Stat(".env"); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	v.AutomaticEnv()

	timezone := v.GetString("APP_TIMEZONE")
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", timezone, err)
	}

	config := &Config{
		App: AppConfig{
			Name:        v.GetString("APP_NAME"),
			Port:        v.GetString("PORT"),
			Debug:       v.GetBool("DEBUG"),
			LogPath:     v.GetString("LOG_PATH"),
			Timezone:    timezone,
			Location:    location,
			CORSOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Backend: BackendConfig{
			URL:         strings.TrimRight(v.GetString("BACKEND_URL"), "/"),
			Token:       v.GetString("BACKEND_TOKEN"),
			Timeout:     time.Duration(v.GetInt("BACKEND_TIMEOUT_SECONDS")) * time.Second,
			MaxAttempts: v.GetInt("BACKEND_MAX_ATTEMPTS"),
		},
		Booking: BookingConfig{
			SeatsPerRow:  v.GetInt("SEATS_PER_ROW"),
			SelectionTTL: time.Duration(v.GetInt("SELECTION_TTL_MINUTES")) * time.Minute,
			PurgeEvery:   time.Duration(v.GetInt("SELECTION_PURGE_SECONDS")) * time.Second,
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			CacheTTL: time.Duration(v.GetInt("CACHE_TTL_SECONDS")) * time.Second,
		},
		RabbitMQ: RabbitMQConfig{
			URL:   v.GetString("RABBITMQ_URL"),
			Queue: v.GetString("RABBITMQ_QUEUE"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.Backend.URL == "" {
		errs = append(errs, errors.New("BACKEND_URL is required"))
	}
	if c.Booking.SeatsPerRow < 1 {
		errs = append(errs, fmt.Errorf("SEATS_PER_ROW must be positive, got %d", c.Booking.SeatsPerRow))
	}
	if c.Booking.SelectionTTL <= 0 {
		errs = append(errs, errors.New("SELECTION_TTL_MINUTES must be positive"))
	}
	return errors.Join(errs...)
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Selection SelectionConfig
	Events    EventsConfig
	Auth      AuthConfig
	Tracing   TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SelectionConfig struct {
	StateKey        string
	QueryLimit      int
	ListCacheTTLSec int
	// WebsocketChannel is the redis pub/sub channel that fans snapshots out
	// to every instance.
	WebsocketChannel string
}

type EventsConfig struct {
	Transport string // "nats" or "channel"
	Topic     string
}

type AuthConfig struct {
	JwtSecret string
}

type TracingConfig struct {
	Enabled     bool
	ServiceName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Selection: SelectionConfig{
			StateKey:         getEnv("SELECTION_STATE_KEY", "swimtrack:selection:v1"),
			QueryLimit:       getEnvAsInt("SELECTION_QUERY_LIMIT", 30),
			ListCacheTTLSec:  getEnvAsInt("LIST_CACHE_TTL_SECONDS", 30),
			WebsocketChannel: getEnv("SELECTION_WS_CHANNEL", "swimtrack:selection:changes"),
		},
		Events: EventsConfig{
			Transport: strings.ToLower(getEnv("SEASON_EVENTS_TRANSPORT", "nats")),
			Topic:     getEnv("SEASON_EVENTS_TOPIC", "season_events"),
		},
		Auth: AuthConfig{
			JwtSecret: getEnv("JWT_SECRET", ""),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "swimtrack-backend"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

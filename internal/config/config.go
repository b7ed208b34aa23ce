package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Dataset DatasetConfig
	Tracing TracingConfig
}

type AppConfig struct {
	Host               string
	Port               string
	Title              string
	Environment        string
	Debug              bool
	LogFilePath        string
	WsLogFilePath      string
	CorsAllowedOrigins string
}

type DatasetConfig struct {
	Path string
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Host:               getEnv("APP_HOST", "127.0.0.1"),
			Port:               getEnv("APP_PORT", getEnv("PORT", "8050")),
			Title:              getEnv("APP_TITLE", "STEM Bills Passed by Congress since 1973"),
			Environment:        getEnv("GO_ENV", "development"),
			Debug:              getEnvAsBool("APP_DEBUG", false),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			WsLogFilePath:      getEnv("WS_LOG_FILE_PATH", "logs/websocket.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Dataset: DatasetConfig{
			Path: getEnv("DATASET_PATH", "stembillsus.csv"),
		},
		Tracing: TracingConfig{
			Enabled:  getEnvAsBool("OTEL_ENABLED", false),
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

// Addr is the listen address of the dashboard server.
func (c *AppConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
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

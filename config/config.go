package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Backend BackendConfig
	Gemini  GeminiConfig
}

type ServerConfig struct {
	AppEnv          string
	HTTPPort        string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
	// Engine selects the chat implementation: "rules" or "gemini".
	Engine string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type BackendConfig struct {
	// BaseURL is the Node inventory backend API root, e.g. http://localhost:5000/api
	BaseURL string
	Timeout time.Duration
	// TransactionLookbackDays bounds the startDate query param on /transactions.
	TransactionLookbackDays int
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

func LoadEnv() *Config {
	// Basic config loading
	// In a real scenario, use structured config loader like viper or koanf
	return &Config{
		Server: ServerConfig{
			AppEnv:          getEnv("APP_ENV", "dev"),
			HTTPPort:        getEnv("HTTP_PORT", ":8001"),
			CORSOrigins:     getEnvSlice("CORS_ORIGINS", []string{"http://localhost:5173"}),
			ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT", 15)) * time.Second,
			Engine:          getEnv("AI_ENGINE", "rules"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Backend: BackendConfig{
			BaseURL:                 getEnv("NODE_BACKEND_URL", "http://localhost:5000/api"),
			Timeout:                 time.Duration(getEnvInt("BACKEND_TIMEOUT", 10)) * time.Second,
			TransactionLookbackDays: getEnvInt("TRANSACTION_LOOKBACK_DAYS", 30),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.0-flash-exp"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.Split(value, ",")
	}
	return fallback
}

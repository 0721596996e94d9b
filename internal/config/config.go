package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig      `toml:"app"`
	Database DatabaseConfig `toml:"database"`
	Session  SessionConfig  `toml:"session"`
	Ai       AIConfig       `toml:"ai"`
}

type AppConfig struct {
	Name               string `toml:"name"`
	Port               string `toml:"port"`
	Environment        string `toml:"environment"`
	LogFilePath        string `toml:"log_file_path"`
	CorsAllowedOrigins string `toml:"cors_allowed_origins"`
	NatsURL            string `toml:"nats_url"` // empty keeps events in-process
	RedisURL           string `toml:"redis_url"`
}

type DatabaseConfig struct {
	Driver     string `toml:"driver"` // "postgres" or "sqlite"
	Connection string `toml:"connection"`
	Schema     string `toml:"schema"`
	FilePath   string `toml:"file_path"` // sqlite only
	LogLevel   string `toml:"log_level"`
}

type SessionConfig struct {
	Store           string        `toml:"store"` // "memory" or "redis"
	TTL             time.Duration `toml:"ttl"`
	CleanupInterval time.Duration `toml:"cleanup_interval"`
}

type AIConfig struct {
	Provider  string `toml:"provider"`
	ModelName string `toml:"model_name"`
	APIKey    string `toml:"api_key"`
	BaseURL   string `toml:"base_url"`
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Load reads .env, then the optional TOML file named by CONFIG_FILE, then
// lets the process environment override both.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if err := loadFile(configPath, cfg); err != nil {
		log.Printf("[WARN] %v", err)
	}

	overrideByEnv(cfg)
	return cfg
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("decode config file %s failed: %w", path, err)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:               "ai-assistant-backend",
			Port:               "3000",
			Environment:        "development",
			LogFilePath:        "app.log",
			CorsAllowedOrigins: "http://localhost:5173",
			NatsURL:            "",
			RedisURL:           "redis://localhost:6379",
		},
		Database: DatabaseConfig{
			Driver:   "postgres",
			Schema:   "conv",
			FilePath: "assistant.db",
			LogLevel: "warn",
		},
		Session: SessionConfig{
			Store:           "memory",
			TTL:             time.Hour,
			CleanupInterval: 10 * time.Minute,
		},
		Ai: AIConfig{
			Provider:  "stub",
			ModelName: "gpt-4o-mini",
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Port = getEnv("APP_PORT", cfg.App.Port)
	cfg.App.Environment = getEnv("GO_ENV", cfg.App.Environment)
	cfg.App.LogFilePath = getEnv("LOG_FILE_PATH", cfg.App.LogFilePath)
	cfg.App.CorsAllowedOrigins = getEnv("CORS_ALLOWED_ORIGINS", cfg.App.CorsAllowedOrigins)
	cfg.App.NatsURL = getEnv("NATS_URL", cfg.App.NatsURL)
	cfg.App.RedisURL = getEnv("REDIS_URL", cfg.App.RedisURL)

	cfg.Database.Driver = getEnv("DB_DRIVER", cfg.Database.Driver)
	cfg.Database.Connection = getEnv("DB_CONNECTION_STRING", cfg.Database.Connection)
	cfg.Database.Schema = getEnv("DB_SCHEMA", cfg.Database.Schema)
	cfg.Database.FilePath = getEnv("DB_FILE_PATH", cfg.Database.FilePath)
	cfg.Database.LogLevel = getEnv("DB_LOG_LEVEL", cfg.Database.LogLevel)

	cfg.Session.Store = getEnv("SESSION_STORE", cfg.Session.Store)
	cfg.Session.TTL = getEnvAsDuration("SESSION_TTL", cfg.Session.TTL)
	cfg.Session.CleanupInterval = getEnvAsDuration("SESSION_CLEANUP_INTERVAL", cfg.Session.CleanupInterval)

	cfg.Ai.Provider = getEnv("LLM_PROVIDER", cfg.Ai.Provider)
	cfg.Ai.ModelName = getEnv("OPEN_AI_MODEL_NAME", cfg.Ai.ModelName)
	cfg.Ai.APIKey = getEnv("OPEN_AI_KEY", cfg.Ai.APIKey)
	cfg.Ai.BaseURL = getEnv("LLM_BASE_URL", cfg.Ai.BaseURL)
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

// getEnvAsDuration accepts Go durations ("90s") or plain seconds ("90").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if d, err := time.ParseDuration(strValue); err == nil {
		return d
	}
	if secs := getEnvAsInt(key, -1); secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Storage
	Postgres PostgresConfig

	// Auth
	JWT JWTConfig

	// Task analysis
	Analysis  AnalysisConfig
	RateLimit RateLimitConfig

	// Timezone used to resolve relative due dates
	Timezone string
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// AnalysisConfig selects the provider behind the task analysis engine.
// Provider is one of none, gemini, qwen or deepseek.
type AnalysisConfig struct {
	Provider           string
	APIKey             string
	Model              string
	BaseURL            string
	Timeout            time.Duration
	ScaleByDescription bool
	// MaxSubtasks is nil when not configured; 0 is a valid setting.
	MaxSubtasks *int
}

type RateLimitConfig struct {
	RequestsPerMin int
	Burst          int
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// CORS: viper might not parse an array from env, so accept a comma list too
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))
	if origin := viper.GetString("client_url"); origin != "" {
		cfg.CORS.AllowedOrigins = splitList(origin)
	}

	// Postgres
	cfg.Postgres.DSN = expandEnvVar(viper.GetString("postgres.dsn"))
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")

	// JWT
	cfg.JWT.Secret = expandEnvVar(viper.GetString("jwt.secret"))
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.JWT.Secret = secret
	}
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")

	// Task analysis
	cfg.Analysis.Provider = viper.GetString("analysis.provider")
	if provider := viper.GetString("ai_provider"); provider != "" {
		cfg.Analysis.Provider = provider
	}
	cfg.Analysis.APIKey = expandEnvVar(viper.GetString("analysis.api_key"))
	cfg.Analysis.Model = viper.GetString("analysis.model")
	cfg.Analysis.BaseURL = viper.GetString("analysis.base_url")
	cfg.Analysis.Timeout = viper.GetDuration("analysis.timeout")
	cfg.Analysis.ScaleByDescription = viper.GetBool("analysis.scale_by_description")
	if viper.IsSet("analysis.max_subtasks") {
		maxSubtasks := viper.GetInt("analysis.max_subtasks")
		cfg.Analysis.MaxSubtasks = &maxSubtasks
	}

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	cfg.Timezone = viper.GetString("timezone")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 5000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "http://localhost:3000")

	viper.SetDefault("postgres.max_open_conns", 25)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")

	viper.SetDefault("jwt.issuer", "taskmaster-ai")
	viper.SetDefault("jwt.ttl", "168h")

	// Analysis defaults: heuristic only until a provider is configured
	viper.SetDefault("analysis.provider", "none")
	viper.SetDefault("analysis.timeout", "10s")
	viper.SetDefault("analysis.scale_by_description", false)

	viper.SetDefault("rate_limit.requests_per_min", 30)
	viper.SetDefault("rate_limit.burst", 10)

	viper.SetDefault("timezone", "UTC")
}

func validate(cfg *Config) error {
	if cfg.Postgres.DSN == "" {
		return fmt.Errorf("postgres.dsn (or DATABASE_URL) is required")
	}
	if cfg.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret (or JWT_SECRET) is required")
	}
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

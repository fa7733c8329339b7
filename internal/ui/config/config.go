package config

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
)

// Front-end server config
type Config struct {
	Environment    string        `env:"ENVIRONMENT,default=dev"`
	Host           string        `env:"HOST,default=0.0.0.0"`
	Port           int           `env:"PORT,default=3000"`
	LogLevel       string        `env:"LOG_LEVEL,default=debug"`
	ReadTimeout    time.Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout   time.Duration `env:"WRITE_TIMEOUT,default=15s"`
	IdleTimeout    time.Duration `env:"IDLE_TIMEOUT,default=60s"`
	APIBaseURL     string        `env:"API_BASE_URL,default=http://localhost:8081"`
	APITimeout     time.Duration `env:"API_TIMEOUT,default=60s"`
	StaticDir      string        `env:"STATIC_DIR,default=./web/dist"`
	AllowedOrigins string        `env:"ALLOWED_ORIGINS,default=*"`
	RateLimitRPS   int           `env:"RATE_LIMIT_RPS,default=50"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST,default=100"`
	MaxRequestSize int64         `env:"MAX_REQUEST_SIZE,default=1048576"`
}

var validEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"prod":    true,
	"staging": true,
}

func NewConfig() (*Config, error) {
	var cfg Config

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if !validEnvs[cfg.Environment] {
		return fmt.Errorf("invalid environment '%s'. Valid environments: dev, test, staging, prod", cfg.Environment)
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Port)
	}

	if cfg.ReadTimeout <= 0 {
		return fmt.Errorf("read timeout must be positive, got %v", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout <= 0 {
		return fmt.Errorf("write timeout must be positive, got %v", cfg.WriteTimeout)
	}
	if cfg.IdleTimeout <= 0 {
		return fmt.Errorf("idle timeout must be positive, got %v", cfg.IdleTimeout)
	}

	if cfg.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL cannot be empty")
	}
	if cfg.APITimeout <= 0 {
		return fmt.Errorf("api timeout must be positive, got %v", cfg.APITimeout)
	}

	if cfg.RateLimitRPS < 1 {
		return fmt.Errorf("rate limit must be at least 1 request per second, got %d", cfg.RateLimitRPS)
	}
	if cfg.MaxRequestSize < 1 {
		return fmt.Errorf("max request size must be positive, got %d", cfg.MaxRequestSize)
	}

	return nil
}

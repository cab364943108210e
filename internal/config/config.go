package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string        `yaml:"port" env:"SERVER_PORT"`
		Mode            string        `yaml:"mode" env:"SERVER_MODE"`
		StaticDir       string        `yaml:"static_dir" env:"SERVER_STATIC_DIR"`
		ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
		MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES"`
	} `yaml:"server"`

	Generation struct {
		Provider        string        `yaml:"provider" env:"GENERATION_PROVIDER"`
		Model           string        `yaml:"model" env:"GENERATION_MODEL"`
		GeminiAPIKey    string        `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
		AnthropicAPIKey string        `yaml:"anthropic_api_key" env:"ANTHROPIC_API_KEY"`
		Timeout         time.Duration `yaml:"timeout" env:"GENERATION_TIMEOUT"`
		Temperature     float64       `yaml:"temperature" env:"GENERATION_TEMPERATURE"`
		MaxTokens       int           `yaml:"max_tokens" env:"GENERATION_MAX_TOKENS"`
	} `yaml:"generation"`

	Session struct {
		IdleTimeout   time.Duration `yaml:"idle_timeout" env:"SESSION_IDLE_TIMEOUT"`
		SweepInterval time.Duration `yaml:"sweep_interval" env:"SESSION_SWEEP_INTERVAL"`
	} `yaml:"session"`

	Export struct {
		ProductName string `yaml:"product_name" env:"EXPORT_PRODUCT_NAME"`
	} `yaml:"export"`

	CORS struct {
		AllowOrigins string `yaml:"allow_origins" env:"CORS_ALLOW_ORIGINS"`
	} `yaml:"cors"`

	Tracing struct {
		Enabled     bool    `yaml:"enabled" env:"OTEL_ENABLED"`
		Exporter    string  `yaml:"exporter" env:"OTEL_EXPORTER"`
		Endpoint    string  `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
		ServiceName string  `yaml:"service_name" env:"OTEL_SERVICE_NAME"`
		SampleRatio float64 `yaml:"sample_ratio" env:"OTEL_SAMPLE_RATIO"`
	} `yaml:"tracing"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// LoadConfig loads configuration from a file, a local .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "3000"
	config.Server.Mode = "development"
	config.Server.StaticDir = "dist"
	config.Server.ReadTimeout = 15 * time.Second
	config.Server.WriteTimeout = 120 * time.Second
	config.Server.ShutdownTimeout = 10 * time.Second
	config.Server.MaxUploadBytes = 10 << 20

	config.Generation.Provider = ProviderGemini
	config.Generation.Timeout = 90 * time.Second
	config.Generation.MaxTokens = 32000

	config.Session.IdleTimeout = 2 * time.Hour
	config.Session.SweepInterval = 5 * time.Minute

	config.Export.ProductName = "CurricuForge"

	config.CORS.AllowOrigins = "*"

	config.Tracing.Exporter = "stdout"
	config.Tracing.ServiceName = "curricuforge"
	config.Tracing.SampleRatio = 1.0

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid.
// A missing provider credential is not an error here: generation requests
// fail with a missing-credential error instead.
func validateConfig(config *Config) error {
	switch config.Server.Mode {
	case "development", "production", "test":
	default:
		return fmt.Errorf("unknown server mode %q", config.Server.Mode)
	}

	switch config.Generation.Provider {
	case ProviderGemini, ProviderAnthropic:
	default:
		return fmt.Errorf("unknown generation provider %q", config.Generation.Provider)
	}

	if config.Generation.Timeout <= 0 {
		return fmt.Errorf("generation timeout must be positive")
	}

	if config.Session.IdleTimeout <= 0 || config.Session.SweepInterval <= 0 {
		return fmt.Errorf("session idle timeout and sweep interval must be positive")
	}

	if config.Export.ProductName == "" {
		return fmt.Errorf("export product name is required")
	}

	if config.Tracing.SampleRatio < 0 || config.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing sample ratio must be within [0,1]")
	}

	return nil
}

// APIKey returns the credential for the configured provider, empty if unset
func (c *Config) APIKey() string {
	if c.Generation.Provider == ProviderAnthropic {
		return c.Generation.AnthropicAPIKey
	}
	return c.Generation.GeminiAPIKey
}

// Model returns the configured model or the provider default
func (c *Config) Model() string {
	if c.Generation.Model != "" {
		return c.Generation.Model
	}
	if c.Generation.Provider == ProviderAnthropic {
		return "claude-sonnet-4-5"
	}
	return "gemini-2.5-flash"
}

// AllowedOrigins splits the comma separated CORS origin list
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORS.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

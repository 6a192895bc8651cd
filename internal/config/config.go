package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Providers ProvidersConfig `mapstructure:"providers"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Path string
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

// ProvidersConfig holds the LLM backends. A proxy, if needed, is declared
// here and applied once at startup; there is no runtime port probing.
type ProvidersConfig struct {
	Default  string         `mapstructure:"default"`
	ProxyURL string         `mapstructure:"proxy_url"`
	DeepSeek DeepSeekConfig `mapstructure:"deepseek"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
}

type DeepSeekConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout_seconds"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("ESSAY_COACH")
	viper.AutomaticEnv()

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Database
	viper.BindEnv("database.path", "DATABASE_PATH")

	// Providers
	viper.BindEnv("providers.default", "PROVIDER_DEFAULT")
	viper.BindEnv("providers.proxy_url", "PROXY_URL")
	viper.BindEnv("providers.deepseek.api_key", "DEEPSEEK_API_KEY")
	viper.BindEnv("providers.deepseek.base_url", "DEEPSEEK_BASE_URL")
	viper.BindEnv("providers.deepseek.model", "DEEPSEEK_MODEL")
	viper.BindEnv("providers.gemini.api_key", "GOOGLE_API_KEY")
	viper.BindEnv("providers.gemini.model", "GEMINI_MODEL")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Providers.DeepSeek.Timeout = cfg.Providers.DeepSeek.Timeout * time.Second

	if cfg.Database.Path == "" {
		cfg.Database.Path = "essay_coach.db"
	}
	if cfg.Providers.Default == "" {
		cfg.Providers.Default = "deepseek"
	}

	switch cfg.Providers.Default {
	case "deepseek", "gemini":
	default:
		return nil, fmt.Errorf("unknown default provider %q", cfg.Providers.Default)
	}

	return &cfg, nil
}

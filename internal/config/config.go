package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LLM gateway
	GatewayURL     string        `envconfig:"GATEWAY_URL" default:"https://api.openai.com/v1"`
	GatewayAPIKey  string        `envconfig:"GATEWAY_API_KEY"`
	GatewayModel   string        `envconfig:"GATEWAY_MODEL"`
	GatewayTimeout time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"30s"`

	// Identity provider user-info endpoint used to validate bearer tokens
	AuthURL      string        `envconfig:"AUTH_URL" required:"true"`
	AuthCacheTTL time.Duration `envconfig:"AUTH_CACHE_TTL" default:"5m"`

	// Optional YAML catalog override; the built-in catalog is used otherwise
	CatalogPath string `envconfig:"CATALOG_PATH"`

	// Optional: search logs are recorded when set
	DatabaseURL string `envconfig:"DATABASE_URL"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("DOCSEARCH", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) HasGateway() bool {
	return c.GatewayAPIKey != ""
}

func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

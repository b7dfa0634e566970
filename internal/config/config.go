package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config is the full process configuration, parsed from the environment
type Config struct {
	HTTPPort  string `env:"PORT" envDefault:"8080"`
	MongoURI  string `env:"MONGO_URI"`
	MongoDB   string `env:"MONGO_DB" envDefault:"sanguo"`
	RedisURI  string `env:"REDIS_URI"`
	JWTSecret string `env:"JWT_SECRET" envDefault:"super-secret-key-change-in-production"`

	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
	CORSAllowedMethods string `env:"CORS_ALLOWED_METHODS" envDefault:"GET, POST, PUT, DELETE, OPTIONS"`
	CORSAllowedHeaders string `env:"CORS_ALLOWED_HEADERS" envDefault:"Content-Type, Authorization"`

	AI   AIConfig
	Game GameConfig
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Game.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// RedisAddr returns the Redis address without a redis:// scheme
func (c *Config) RedisAddr() string {
	return strings.TrimPrefix(c.RedisURI, "redis://")
}

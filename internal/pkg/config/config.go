package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string        `env:"PORT,        default=8080"`
	Env         string        `env:"ENV,         default=development"`
	JWTSecret   string        `env:"JWT_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,   default=168h"`
	AdminSecret string        `env:"ADMIN_SECRET"`
	LogLevel    string        `env:"LOG_LEVEL,   default=info"`

	Mongo     MongoConfig
	Redis     RedisConfig
	SMTP      SMTPConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=fixora"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host       string `env:"SMTP_HOST, default=localhost"`
	Port       int    `env:"SMTP_PORT, default=587"`
	Username   string `env:"SMTP_USER"`
	Password   string `env:"SMTP_PASS"`
	From       string `env:"SMTP_FROM,   default=no-reply@fixora.local"`
	AdminEmail string `env:"ADMIN_EMAIL, default=admin@fixora.local"`
}

type RateLimitConfig struct {
	// Limit is the number of auth requests allowed per IP per window.
	Limit  int64         `env:"RATE_LIMIT,        default=10"`
	Window time.Duration `env:"RATE_LIMIT_WINDOW, default=1m"`
}

// IsProduction reports whether the service runs with production hardening
// (secure cookies, JSON logs).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	JWTSecret  string        `env:"JWT_SECRET"`
	JWTTTL     time.Duration `env:"JWT_TTL,     default=24h"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`
	CORSOrigin string        `env:"CORS_ORIGIN, default=http://localhost:3000"`

	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=task_manager"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// RateLimitConfig enumerates one window/max pair per scope. Store selects
// the counter backend: "memory" for a single replica, "redis" to share
// limits across replicas.
type RateLimitConfig struct {
	Store string `env:"RATE_LIMIT_STORE, default=memory"`

	GeneralMax    int           `env:"RATE_LIMIT_GENERAL_MAX,    default=100"`
	GeneralWindow time.Duration `env:"RATE_LIMIT_GENERAL_WINDOW, default=15m"`

	AuthMax    int           `env:"RATE_LIMIT_AUTH_MAX,    default=5"`
	AuthWindow time.Duration `env:"RATE_LIMIT_AUTH_WINDOW, default=15m"`

	CreateMax    int           `env:"RATE_LIMIT_CREATE_MAX,    default=10"`
	CreateWindow time.Duration `env:"RATE_LIMIT_CREATE_WINDOW, default=1m"`
}

// IsDevelopment reports whether the process runs in development mode.
// Diagnostic detail in error responses is gated on this.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

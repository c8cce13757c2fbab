package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Store driver names accepted in STORE_DRIVER.
const (
	DriverMemory = "memory"
	DriverMongo  = "mongo"
)

type Config struct {
	Port      string `env:"PORT,        default=8080"`
	Env       string `env:"ENV,         default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL,   default=info"`

	// StoreDriver selects the catalog store backend: memory (default, with
	// optional seed fixtures) or mongo. The session slot follows the same
	// choice: in-process for memory, Redis for mongo.
	StoreDriver string `env:"STORE_DRIVER, default=memory"`
	SeedData    bool   `env:"SEED_DATA,    default=true"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=artmarket"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.StoreDriver != DriverMemory && cfg.StoreDriver != DriverMongo {
		return nil, fmt.Errorf("config: unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	return &cfg, nil
}

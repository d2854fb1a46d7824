package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string `env:"PORT,            default=8080"`
	Env           string `env:"ENV,             default=development"`
	JWTSecret     string `env:"JWT_SECRET"`
	TokenTTLHours int    `env:"TOKEN_TTL_HOURS, default=24"`
	LogLevel      string `env:"LOG_LEVEL,       default=info"`

	// NotifyWorkers is the number of notification dispatcher workers.
	NotifyWorkers int `env:"NOTIFY_WORKERS, default=4"`

	Snapshot SnapshotConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

// SnapshotConfig selects where the dataset snapshot is persisted.
// Backend is one of: memory, file, redis, mongo.
type SnapshotConfig struct {
	Backend string `env:"SNAPSHOT_BACKEND, default=redis"`
	File    string `env:"SNAPSHOT_FILE,    default=workforce.json"`
	Key     string `env:"SNAPSHOT_KEY,     default=workforce:dataset"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=workforce"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Package config loads the process configuration from NEARLISTENER_*
// environment variables and validates it.
package config

import (
	"time"

	"github.com/hasselalcala/near-event-listener/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces every environment variable consumed by this process.
const envPrefix = "NEARLISTENER"

// Config is the full process configuration.
type Config struct {
	// RPCEndpoint is the NEAR JSON-RPC node URL, e.g.
	// https://rpc.testnet.near.org.
	RPCEndpoint string `envconfig:"RPC_ENDPOINT" validate:"required"`

	// AccountID is the contract account to observe.
	AccountID string `envconfig:"ACCOUNT_ID" validate:"required"`

	// MethodName is the contract method whose invocations emit the events
	// of interest.
	MethodName string `envconfig:"METHOD_NAME" validate:"required"`

	// StartHeight is the last block height considered already processed;
	// zero starts at the current chain tip.
	StartHeight uint64 `envconfig:"START_HEIGHT" default:"0"`

	// PollInterval is the wait between polls once the listener caught up
	// with the chain tip.
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"2s"`

	// RetryAttempts bounds the backoff applied to each chain fetch.
	RetryAttempts uint          `envconfig:"RETRY_ATTEMPTS" default:"3"`
	RetryDelay    time.Duration `envconfig:"RETRY_DELAY" default:"1s"`
	RetryMaxDelay time.Duration `envconfig:"RETRY_MAX_DELAY" default:"5s"`

	// HTTPTimeout is the per-request deadline on the RPC transport.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`

	// RedisAddr enables checkpoint persistence when set; empty keeps the
	// cursor in memory only.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// LogLevel is the minimum level of the global logger.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

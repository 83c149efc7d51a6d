// Package config loads the process configuration from environment variables
// prefixed with KASPAWATCH_ and validates it.
//
// Example:
//
//	KASPAWATCH_TELEGRAM_TOKEN=123:abc
//	KASPAWATCH_STORAGE_BACKEND=redis
//	KASPAWATCH_STORAGE_REDIS_ADDR=localhost:6379
//	KASPAWATCH_MONITOR_POLL_INTERVAL=30s
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/gabapcia/kaspawatch/internal/pkg/validator"
)

// Prefix is the prefix of every environment variable read by Load.
const Prefix = "KASPAWATCH"

// Storage backends.
const (
	StorageBackendFile  = "file"
	StorageBackendRedis = "redis"
)

var (
	// ErrInvalidConfig is returned when the environment cannot be parsed or validated.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMissingBotToken is returned by Telegram.RequireToken when
	// KASPAWATCH_TELEGRAM_TOKEN is not set.
	ErrMissingBotToken = errors.New("missing telegram bot token")
)

type (
	// Telegram configures the Bot API client and the update loop. The token
	// is only needed to run the bot; see RequireToken.
	Telegram struct {
		Token        string        `envconfig:"TOKEN"`
		BaseURL      string        `envconfig:"BASE_URL" default:"https://api.telegram.org" validate:"required,url"`
		PollTimeout  time.Duration `envconfig:"POLL_TIMEOUT" default:"30s" validate:"gte=1s"`
		ErrorBackoff time.Duration `envconfig:"ERROR_BACKOFF" default:"5s" validate:"gte=0"`
	}

	// Kaspa configures the upstream REST API client.
	Kaspa struct {
		BaseURL     string        `envconfig:"BASE_URL" default:"https://api.kaspa.org" validate:"required,url"`
		Timeout     time.Duration `envconfig:"TIMEOUT" default:"10s" validate:"gt=0"`
		RetryMax    int           `envconfig:"RETRY_MAX" default:"2" validate:"gte=0"`
		ExplorerURL string        `envconfig:"EXPLORER_URL" default:"https://explorer.kaspa.org" validate:"required,url"`
	}

	// Storage selects and configures the snapshot backend.
	Storage struct {
		Backend       string `envconfig:"BACKEND" default:"file" validate:"oneof=file redis"`
		FilePath      string `envconfig:"FILE_PATH" default:"wallets_data.json" validate:"required_if=Backend file"`
		RedisAddr     string `envconfig:"REDIS_ADDR" validate:"required_if=Backend redis"`
		RedisUsername string `envconfig:"REDIS_USERNAME"`
		RedisPassword string `envconfig:"REDIS_PASSWORD"`
		RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`

		// LeaseTTL bounds how long a crashed process keeps the snapshot locked.
		LeaseTTL time.Duration `envconfig:"LEASE_TTL" default:"30s" validate:"gte=1s"`
	}

	// Monitor configures the polling scheduler.
	Monitor struct {
		PollInterval            time.Duration `envconfig:"POLL_INTERVAL" default:"30s" validate:"gt=0"`
		BackoffInterval         time.Duration `envconfig:"BACKOFF_INTERVAL" default:"60s" validate:"gt=0"`
		MaxTransactionsPerFetch int           `envconfig:"MAX_TRANSACTIONS_PER_FETCH" default:"20" validate:"gt=0"`
		NotificationPause       time.Duration `envconfig:"NOTIFICATION_PAUSE" default:"500ms" validate:"gte=0"`
		AddressPause            time.Duration `envconfig:"ADDRESS_PAUSE" default:"1s" validate:"gte=0"`
	}

	// Telemetry configures the OTLP exporters. Disabled by default.
	Telemetry struct {
		Enabled     bool   `envconfig:"ENABLED" default:"false"`
		ServiceName string `envconfig:"SERVICE_NAME" default:"kaspawatch" validate:"required"`
		Endpoint    string `envconfig:"ENDPOINT"`
		Insecure    bool   `envconfig:"INSECURE" default:"false"`
	}

	// Config is the whole process configuration.
	Config struct {
		LogLevel  string    `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
		Telegram  Telegram  `envconfig:"TELEGRAM"`
		Kaspa     Kaspa     `envconfig:"KASPA"`
		Storage   Storage   `envconfig:"STORAGE"`
		Monitor   Monitor   `envconfig:"MONITOR"`
		Telemetry Telemetry `envconfig:"TELEMETRY"`
	}
)

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}

	return cfg, nil
}

// botToken validates the token on its own.
type botToken struct {
	Token string `validate:"required"`
}

// RequireToken returns an error unless the bot token is set.
func (t Telegram) RequireToken() error {
	if err := validator.Validate(botToken{Token: strings.TrimSpace(t.Token)}); err != nil {
		return errors.Join(ErrInvalidConfig, ErrMissingBotToken, err)
	}

	return nil
}

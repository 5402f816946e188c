// Package config loads the process configuration from the environment.
package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogFile   string `env:"LOG_FILE"`

	// TrackingWorkers is the number of sharded refresh workers.
	TrackingWorkers int `env:"TRACKING_WORKERS, default=8"`

	FedEx FedExConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// FedExConfig holds the carrier credentials, endpoints and the notification
// defaults merged under every shipment.
type FedExConfig struct {
	Key      string        `env:"FEDEX_KEY"`
	Password string        `env:"FEDEX_PASSWORD"`
	Account  string        `env:"FEDEX_ACCOUNT"`
	Meter    string        `env:"FEDEX_METER"`
	TestURL  string        `env:"FEDEX_TEST_URL, default=https://gatewaybeta.fedex.com:443/xml"`
	LiveURL  string        `env:"FEDEX_LIVE_URL, default=https://gateway.fedex.com:443/xml"`
	Timeout  time.Duration `env:"FEDEX_TIMEOUT,  default=30s"`

	// UseTest, when set, selects the endpoint for every operation unless a
	// call says otherwise. Empty keeps each operation's own default.
	UseTest string `env:"FEDEX_USE_TEST"`

	NotifyEmails          []string `env:"FEDEX_NOTIFY_EMAILS"`
	NotifyEvents          []string `env:"FEDEX_NOTIFY_EVENTS, default=delivery,exception"`
	NotifyFormat          string   `env:"FEDEX_NOTIFY_FORMAT, default=HTML"`
	NotifyLanguage        string   `env:"FEDEX_NOTIFY_LANGUAGE, default=EN"`
	NotificationAggregate string   `env:"FEDEX_NOTIFICATION_AGGREGATION_TYPE"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=fedex_carrier"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads an optional .env file and then the environment. It panics when
// the environment cannot be decoded.
func Load() *Config {
	// A missing .env file is the normal case outside local development.
	_ = godotenv.Load()

	cfg, err := load(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for _, ev := range c.FedEx.NotifyEvents {
		switch strings.ToLower(strings.TrimSpace(ev)) {
		case "delivery", "exception", "shipment", "tender":
		default:
			return fmt.Errorf("FEDEX_NOTIFY_EVENTS: unknown event %q", ev)
		}
	}
	if c.FedEx.UseTest != "" {
		if _, err := strconv.ParseBool(c.FedEx.UseTest); err != nil {
			return fmt.Errorf("FEDEX_USE_TEST: %w", err)
		}
	}
	if c.TrackingWorkers < 0 {
		return fmt.Errorf("TRACKING_WORKERS: must not be negative")
	}
	return nil
}

// TestMode returns the configured endpoint choice, nil when unset.
func (f FedExConfig) TestMode() *bool {
	if f.UseTest == "" {
		return nil
	}
	v, err := strconv.ParseBool(f.UseTest)
	if err != nil {
		return nil
	}
	return &v
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

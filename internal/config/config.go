// Package config loads the service configuration.
//
// Values come from, in increasing precedence: built-in defaults, a YAML
// file named by --config or TUFFPUFF_CONFIG, the DATABASE_URL and
// AUTH_SECRET environment variables, and command line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/nikolayk812/tuffpuff/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfig      = "TUFFPUFF_CONFIG"
	EnvDatabaseURL = "DATABASE_URL"
	EnvAuthSecret  = "AUTH_SECRET"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Store    StoreConfig    `yaml:"store"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL      string `yaml:"url"`
	MaxConns int32  `yaml:"max_conns"`
}

// AuthConfig selects RS256 when PublicKeyFile is set and HS256 otherwise.
type AuthConfig struct {
	Secret        string `yaml:"secret"`
	PublicKeyFile string `yaml:"public_key_file"`
	Issuer        string `yaml:"issuer"`
	Audience      string `yaml:"audience"`
}

// StoreConfig amounts are decimal strings in Currency.
type StoreConfig struct {
	Currency              string `yaml:"currency"`
	FreeDeliveryThreshold string `yaml:"free_delivery_threshold"`
	DeliveryFee           string `yaml:"delivery_fee"`
	EstimatedDelivery     string `yaml:"estimated_delivery"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is json or text.
	Format string `yaml:"format"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":5000",
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			MaxConns: 10,
		},
		Store: StoreConfig{
			Currency:              currency.USD.String(),
			FreeDeliveryThreshold: domain.DefaultFreeDeliveryThreshold.String(),
			DeliveryFee:           domain.DefaultDeliveryFee.String(),
			EstimatedDelivery:     domain.DefaultEstimatedDelivery,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from args (without the program name) and
// the environment looked up through getenv.
func Load(args []string, getenv func(string) string) (*Config, error) {
	flags := pflag.NewFlagSet("tuffpuff", pflag.ContinueOnError)

	configPath := flags.String("config", getenv(EnvConfig), "path to the YAML config file")
	addr := flags.String("addr", "", "listen address, overrides server.addr")
	databaseURL := flags.String("database-url", "", "postgres connection string, overrides database.url")
	logLevel := flags.String("log-level", "", "debug, info, warn or error")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("flags.Parse: %w", err)
	}

	cfg := Default()

	if *configPath != "" {
		if err := cfg.loadFile(*configPath); err != nil {
			return nil, fmt.Errorf("cfg.loadFile[%s]: %w", *configPath, err)
		}
	}

	if v := getenv(EnvDatabaseURL); v != "" {
		cfg.Database.URL = v
	}
	if v := getenv(EnvAuthSecret); v != "" {
		cfg.Auth.Secret = v
	}

	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *databaseURL != "" {
		cfg.Database.URL = *databaseURL
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cfg.Validate: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, c)
}

func (c *Config) Validate() error {
	var errs []error

	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}

	if c.Database.URL == "" {
		errs = append(errs, fmt.Errorf("database.url is required (or set %s)", EnvDatabaseURL))
	}
	if c.Database.MaxConns < 1 {
		errs = append(errs, errors.New("database.max_conns must be positive"))
	}

	if c.Auth.Secret == "" && c.Auth.PublicKeyFile == "" {
		errs = append(errs, fmt.Errorf("auth.secret or auth.public_key_file is required (or set %s)", EnvAuthSecret))
	}

	if _, err := c.Pricing(); err != nil {
		errs = append(errs, err)
	}

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		errs = append(errs, fmt.Errorf("log.format must be json or text, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// Pricing is the delivery pricing policy of the store.
func (c *Config) Pricing() (domain.Pricing, error) {
	unit, err := currency.ParseISO(c.Store.Currency)
	if err != nil {
		return domain.Pricing{}, fmt.Errorf("store.currency: %w", err)
	}

	threshold, err := decimal.NewFromString(c.Store.FreeDeliveryThreshold)
	if err != nil || threshold.IsNegative() {
		return domain.Pricing{}, fmt.Errorf("store.free_delivery_threshold: invalid amount %q", c.Store.FreeDeliveryThreshold)
	}

	fee, err := decimal.NewFromString(c.Store.DeliveryFee)
	if err != nil || fee.IsNegative() {
		return domain.Pricing{}, fmt.Errorf("store.delivery_fee: invalid amount %q", c.Store.DeliveryFee)
	}

	return domain.Pricing{
		Currency:              unit,
		FreeDeliveryThreshold: threshold,
		DeliveryFee:           fee,
		EstimatedDelivery:     c.Store.EstimatedDelivery,
	}, nil
}

func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.Log.Level))); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// PublicKeyPEM reads the RS256 verification key, empty when none is configured.
func (c *Config) PublicKeyPEM() (string, error) {
	if c.Auth.PublicKeyFile == "" {
		return "", nil
	}

	data, err := os.ReadFile(c.Auth.PublicKeyFile)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile: %w", err)
	}
	return string(data), nil
}

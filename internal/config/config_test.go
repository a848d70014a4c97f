package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nikolayk812/tuffpuff/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

const fileConfig = `
server:
  addr: ":8080"
  allowed_origins:
    - https://shop.example.com
  shutdown_timeout: 30s
database:
  url: postgres://file@localhost/tuffpuff
  max_conns: 4
auth:
  secret: from-file
  issuer: https://securetoken.example.com/tuffpuff
store:
  currency: EUR
  free_delivery_threshold: "40"
  delivery_fee: "3.50"
log:
  level: debug
  format: text
`

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tuffpuff.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(nil, env(map[string]string{
		config.EnvDatabaseURL: "postgres://env@localhost/tuffpuff",
		config.EnvAuthSecret:  "env-secret",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "postgres://env@localhost/tuffpuff", cfg.Database.URL)
	assert.Equal(t, "env-secret", cfg.Auth.Secret)

	pricing, err := cfg.Pricing()
	require.NoError(t, err)
	assert.Equal(t, currency.USD, pricing.Currency)
	assert.True(t, decimal.NewFromInt(50).Equal(pricing.FreeDeliveryThreshold))
	assert.True(t, decimal.RequireFromString("4.99").Equal(pricing.DeliveryFee))
	assert.Equal(t, "30-45 minutes", pricing.EstimatedDelivery)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, fileConfig)

	cfg, err := config.Load([]string{"--config", path}, env(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"https://shop.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "postgres://file@localhost/tuffpuff", cfg.Database.URL)
	assert.Equal(t, int32(4), cfg.Database.MaxConns)
	assert.Equal(t, "from-file", cfg.Auth.Secret)
	assert.Equal(t, "text", cfg.Log.Format)

	pricing, err := cfg.Pricing()
	require.NoError(t, err)
	assert.Equal(t, currency.EUR, pricing.Currency)
	assert.True(t, decimal.RequireFromString("3.5").Equal(pricing.DeliveryFee))

	// estimated delivery keeps its default when the file omits it
	assert.Equal(t, "30-45 minutes", pricing.EstimatedDelivery)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, fileConfig)

	cfg, err := config.Load(
		[]string{"--addr", ":9090", "--log-level", "warn"},
		env(map[string]string{
			config.EnvConfig:      path,
			config.EnvDatabaseURL: "postgres://env@localhost/tuffpuff",
			config.EnvAuthSecret:  "env-secret",
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "postgres://env@localhost/tuffpuff", cfg.Database.URL)
	assert.Equal(t, "env-secret", cfg.Auth.Secret)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	cfg, err = config.Load(
		[]string{"--database-url", "postgres://flag@localhost/tuffpuff"},
		env(map[string]string{config.EnvConfig: path, config.EnvDatabaseURL: "postgres://env@localhost/tuffpuff"}),
	)
	require.NoError(t, err)
	assert.Equal(t, "postgres://flag@localhost/tuffpuff", cfg.Database.URL)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		content string
		wantErr []string
	}{
		{
			name:    "missing database and auth",
			wantErr: []string{"database.url is required", "auth.secret or auth.public_key_file is required"},
		},
		{
			name: "bad currency",
			env:  map[string]string{config.EnvDatabaseURL: "postgres://x", config.EnvAuthSecret: "s"},
			content: `
store:
  currency: DOLLARS
`,
			wantErr: []string{"store.currency"},
		},
		{
			name: "negative fee",
			env:  map[string]string{config.EnvDatabaseURL: "postgres://x", config.EnvAuthSecret: "s"},
			content: `
store:
  delivery_fee: "-1"
`,
			wantErr: []string{`store.delivery_fee: invalid amount "-1"`},
		},
		{
			name:    "bad log level",
			args:    []string{"--log-level", "loud"},
			env:     map[string]string{config.EnvDatabaseURL: "postgres://x", config.EnvAuthSecret: "s"},
			wantErr: []string{"log.level"},
		},
		{
			name:    "unknown flag",
			args:    []string{"--nope"},
			wantErr: []string{"flags.Parse"},
		},
		{
			name:    "missing file",
			args:    []string{"--config", "/does/not/exist.yaml"},
			wantErr: []string{"cfg.loadFile[/does/not/exist.yaml]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.args
			if tt.content != "" {
				args = append(args, "--config", writeConfig(t, tt.content))
			}

			_, err := config.Load(args, env(tt.env))
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.ErrorContains(t, err, want)
			}
		})
	}
}

func TestPublicKeyPEM(t *testing.T) {
	cfg := config.Default()

	pem, err := cfg.PublicKeyPEM()
	require.NoError(t, err)
	assert.Empty(t, pem)

	cfg.Auth.PublicKeyFile = writeConfig(t, "-----BEGIN PUBLIC KEY-----\n")
	pem, err = cfg.PublicKeyPEM()
	require.NoError(t, err)
	assert.Equal(t, "-----BEGIN PUBLIC KEY-----\n", pem)
}

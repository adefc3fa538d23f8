package testenv

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
)

// OverrideFile is the conventional dotenv-format override file for the test
// environment. Absence is not an error.
const OverrideFile = ".env.test"

// Environment keys resolved by Init.
const (
	EnvMode          = "APP_ENV"
	EnvDatabaseURL   = "DATABASE_URL"
	EnvRedisURL      = "REDIS_URL"
	EnvAccessSecret  = "JWT_ACCESS_SECRET"
	EnvRefreshSecret = "JWT_REFRESH_SECRET"
)

// ModeTest is written to EnvMode on every Init, overwriting any prior value.
const ModeTest = "test"

const (
	defaultDatabaseURL   = "postgresql://localhost:5432/eve_trading_test"
	defaultRedisURL      = "redis://localhost:6379/1"
	defaultAccessSecret  = "test-access-secret"
	defaultRefreshSecret = "test-refresh-secret"
)

// Timeout bounds individual tests that reach out to Postgres or Redis.
const Timeout = 30 * time.Second

// Value provenance recorded in the resolution log.
const (
	sourceEnv     = "env"
	sourceFile    = "file"
	sourceDefault = "default"
	sourceForced  = "forced"
)

// Config is the resolved backend test configuration. RunID tags the bootstrap
// run that produced it.
type Config struct {
	RunID         string
	Mode          string
	DatabaseURL   string
	RedisURL      string
	AccessSecret  string
	RefreshSecret string
}

// Load resolves the backend keys against the given override file without
// touching the process environment. Precedence per key: pre-set environment
// value, then override file, then default. Mode is always ModeTest.
func Load(overridePath string) Config {
	cfg, _ := resolve(overridePath)
	return cfg
}

// Init resolves the backend test configuration from OverrideFile and
// publishes it into the process environment. Every key has a defined value
// afterwards. Running Init again produces the same final environment.
func Init() Config {
	cfg, sources := resolve(OverrideFile)

	_ = os.Setenv(EnvMode, cfg.Mode)
	_ = os.Setenv(EnvDatabaseURL, cfg.DatabaseURL)
	_ = os.Setenv(EnvRedisURL, cfg.RedisURL)
	_ = os.Setenv(EnvAccessSecret, cfg.AccessSecret)
	_ = os.Setenv(EnvRefreshSecret, cfg.RefreshSecret)

	logResolution(cfg, sources)
	return cfg
}

func resolve(overridePath string) (Config, map[string]string) {
	v := viper.New()
	v.SetConfigFile(overridePath)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault(EnvDatabaseURL, defaultDatabaseURL)
	v.SetDefault(EnvRedisURL, defaultRedisURL)
	v.SetDefault(EnvAccessSecret, defaultAccessSecret)
	v.SetDefault(EnvRefreshSecret, defaultRefreshSecret)

	// Override file is optional; pre-set env plus defaults are fine. A file
	// that fails to parse is skipped the same way.
	_ = v.ReadInConfig()

	cfg := Config{
		RunID:         RunID(),
		Mode:          ModeTest,
		DatabaseURL:   v.GetString(EnvDatabaseURL),
		RedisURL:      v.GetString(EnvRedisURL),
		AccessSecret:  v.GetString(EnvAccessSecret),
		RefreshSecret: v.GetString(EnvRefreshSecret),
	}

	sources := map[string]string{EnvMode: sourceForced}
	for _, key := range []string{EnvDatabaseURL, EnvRedisURL, EnvAccessSecret, EnvRefreshSecret} {
		switch {
		case os.Getenv(key) != "":
			sources[key] = sourceEnv
		case v.InConfig(key):
			sources[key] = sourceFile
		default:
			sources[key] = sourceDefault
		}
	}
	return cfg, sources
}

// Context returns a context bound by Timeout, cancelled at test cleanup.
// Tests performing network or storage calls should derive deadlines from it.
func Context(t testing.TB) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	t.Cleanup(cancel)
	return ctx
}

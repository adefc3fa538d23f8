// Command eve-smoke bootstraps the eve-trading test environment and reports
// readiness.
//
// It resolves the backend configuration keys (a pre-set environment value
// beats the optional .env.test override file, which beats the hardcoded test
// defaults), publishes them into the process environment, and logs the
// outcome. Exit code 0 means the module loaded and every key resolved.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"eve-trading/internal/ready"
	"eve-trading/internal/testenv"
)

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "[set]"
}

func main() {
	cfg := testenv.Init()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With("run_id", cfg.RunID))

	slog.Info(
		"test environment initialized",
		"mode", cfg.Mode,
		"database_url", cfg.DatabaseURL,
		"redis_url", cfg.RedisURL,
		"jwt_access_secret", redact(cfg.AccessSecret),
		"jwt_refresh_secret", redact(cfg.RefreshSecret),
	)
	if path := os.Getenv(testenv.EnvLogPath); path != "" {
		slog.Info("resolution log enabled", "path", path)
	}

	fmt.Println(ready.Check())
}

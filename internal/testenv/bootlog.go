package testenv

import (
	"bufio"
	"encoding/json"
	"os"
	"time"
)

// EnvLogPath enables NDJSON resolution records when set. Leave unset to
// disable file logging.
const EnvLogPath = "TESTENV_LOG_PATH"

type resolutionRecord struct {
	RunID     string `json:"run_id"`
	Timestamp string `json:"ts"`
	Key       string `json:"key"`
	Source    string `json:"source"`
	Value     string `json:"value,omitempty"`
}

// logResolution appends one record per key to the file named by EnvLogPath.
// Signing secrets record their source only, never the value. All failures are
// swallowed; the bootstrap never fails on telemetry.
func logResolution(cfg Config, sources map[string]string) {
	path := os.Getenv(EnvLogPath)
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)
	ts := time.Now().UTC().Format(time.RFC3339Nano)
	for _, rec := range []resolutionRecord{
		{Key: EnvMode, Source: sources[EnvMode], Value: cfg.Mode},
		{Key: EnvDatabaseURL, Source: sources[EnvDatabaseURL], Value: cfg.DatabaseURL},
		{Key: EnvRedisURL, Source: sources[EnvRedisURL], Value: cfg.RedisURL},
		{Key: EnvAccessSecret, Source: sources[EnvAccessSecret]},
		{Key: EnvRefreshSecret, Source: sources[EnvRefreshSecret]},
	} {
		rec.RunID = cfg.RunID
		rec.Timestamp = ts
		line, err := json.Marshal(rec)
		if err != nil {
			continue
		}
		_, _ = w.Write(append(line, '\n'))
	}
	_ = w.Flush()
}

package config

import "strings"

// Config holds runtime configuration for a season load.
type Config struct {
	Source  SourceConfig
	Load    LoadConfig
	Log     LogConfig
	Metrics MetricsConfig
	Tracing TracingConfig
}

// SourceConfig says where the manifest and season files are read from.
type SourceConfig struct {
	Kind    string // fs, http or fixture
	DataDir string
	BaseURL string
}

// LoadConfig controls how the aggregator fetches season files.
type LoadConfig struct {
	Mode         string // strict or lenient
	FetchTimeout Duration
	Retries      int
	Backoff      Duration
	Concurrency  int
	Debug        bool
}

// LogConfig selects log level and handler format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Source: SourceConfig{
			Kind:    strings.ToLower(envOrDefault(envSource, defaultSource)),
			DataDir: envOrDefault(envDataDir, defaultDataDir),
			BaseURL: envOrDefault(envDataBaseURL, ""),
		},
		Load: LoadConfig{
			Mode:         loadMode(envOrDefault(envLoadMode, defaultLoadMode)),
			FetchTimeout: durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
			Retries:      intEnvOrDefault(envFetchRetries, defaultFetchRetries),
			Backoff:      durationEnvOrDefault(envFetchBackoff, defaultFetchBackoff),
			Concurrency:  intEnvOrDefault(envConcurrency, defaultConcurrency),
			Debug:        boolEnvOrDefault(envDebug, false),
		},
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, "info"),
			Format: envOrDefault(envLogFormat, "text"),
		},
		Metrics: loadMetrics(),
		Tracing: loadTracing(),
	}
}

func loadMode(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), "lenient") {
		return "lenient"
	}
	return defaultLoadMode
}

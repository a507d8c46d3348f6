package config

import "time"

const (
	envSource       = "SEASONS_SOURCE"
	envDataDir      = "DATA_DIR"
	envDataBaseURL  = "DATA_BASE_URL"
	envLoadMode     = "LOAD_MODE"
	envFetchTimeout = "FETCH_TIMEOUT"
	envFetchRetries = "FETCH_RETRIES"
	envFetchBackoff = "FETCH_BACKOFF"
	envConcurrency  = "FETCH_CONCURRENCY"
	envDebug        = "DEBUG"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsOn    = "METRICS_ENABLED"
	envMetricsFile  = "METRICS_TEXTFILE"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envTracingOn    = "TRACING_ENABLED"

	defaultSource      = "fs"
	defaultDataDir     = "data/seasons"
	defaultLoadMode    = "strict"
	defaultServiceName = "triple-crown"
	// Static files are small; a slow response is more likely a dead host than a big payload.
	defaultFetchTimeout = 10 * Duration(time.Second)
	defaultFetchRetries = 3
	defaultFetchBackoff = 200 * Duration(time.Millisecond)
	defaultConcurrency  = 8
)

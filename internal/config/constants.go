package config

import "time"

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envESPNBaseURL  = "ESPN_BASE_URL"
	envESPNTimeout  = "ESPN_TIMEOUT_MS"
	envTTL          = "SCOREBOARD_TTL_MS"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "4000"
	defaultProvider = "espn"
	// Upstream fetch is the only suspension point; keep it well under typical
	// client/proxy timeouts so a slow ESPN response degrades to fallback
	// instead of stalling the request.
	defaultFetchTimeout = 8 * Duration(time.Second)
	// Scoreboards change slowly outside live windows; 15 minutes keeps us
	// far below any upstream quota.
	defaultTTL         = 15 * Duration(time.Minute)
	defaultMetricsPort = "9090"
)

package config

// ScoreboardConfig controls cache freshness and upstream fetch bounds.
type ScoreboardConfig struct {
	TTL          Duration
	FetchTimeout Duration
}

func loadScoreboard() ScoreboardConfig {
	return ScoreboardConfig{
		TTL:          millisEnvOrDefault(envTTL, defaultTTL),
		FetchTimeout: millisEnvOrDefault(envESPNTimeout, defaultFetchTimeout),
	}
}

package config

// ESPNConfig holds settings for the ESPN site API client.
type ESPNConfig struct {
	BaseURL string
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL: envOrDefault(envESPNBaseURL, ""),
	}
}

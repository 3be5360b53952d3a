package server

import (
	"strings"

	"github.com/blaze-intelligence/scoreboard-service/internal/config"
	"github.com/blaze-intelligence/scoreboard-service/internal/providers"
	"github.com/blaze-intelligence/scoreboard-service/internal/providers/espn"
	"github.com/blaze-intelligence/scoreboard-service/internal/providers/fixture"
)

// buildProvider selects the upstream provider from configuration.
// Unknown values fall back to the real ESPN client.
func buildProvider(cfg config.Config) providers.ScoreProvider {
	switch strings.ToLower(cfg.Provider) {
	case "fixture":
		return fixture.New()
	default:
		return espn.NewClient(espn.Config{BaseURL: cfg.ESPN.BaseURL})
	}
}

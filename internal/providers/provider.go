package providers

import (
	"context"

	"github.com/blaze-intelligence/scoreboard-service/internal/domain"
)

// ScoreProvider defines how upstream scoreboard data is fetched and normalized.
// Implementations return events in upstream order and must honor ctx
// cancellation; the caller bounds each fetch with a timeout context.
type ScoreProvider interface {
	FetchScoreboard(ctx context.Context, sport domain.SportKey) ([]domain.Event, error)
}

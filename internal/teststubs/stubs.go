package teststubs

import (
	"context"
	"sync/atomic"

	"github.com/blaze-intelligence/scoreboard-service/internal/domain"
)

// StubProvider is a test double for providers.ScoreProvider.
type StubProvider struct {
	Events []domain.Event
	Err    error
	Calls  atomic.Int32
}

// FetchScoreboard returns configured events and error while tracking calls.
func (s *StubProvider) FetchScoreboard(ctx context.Context, sport domain.SportKey) ([]domain.Event, error) {
	_ = ctx
	s.Calls.Add(1)
	_ = sport
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Events, nil
}

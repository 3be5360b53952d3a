package fixture

import (
	"context"
	"time"

	"github.com/blaze-intelligence/scoreboard-service/internal/domain"
)

// Provider returns a static set of events useful for local development
// (PROVIDER=fixture) and bootstrapping without hitting ESPN.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchScoreboard returns a deterministic pair of events for any supported sport.
func (p *Provider) FetchScoreboard(ctx context.Context, sport domain.SportKey) ([]domain.Event, error) {
	_ = ctx
	if !sport.Valid() {
		return nil, &domain.InvalidSportError{Sport: string(sport)}
	}

	start := p.now().UTC().Truncate(time.Hour)
	first := score(3)
	second := score(1)

	return []domain.Event{
		{
			ID:        "fixture-" + string(sport) + "-1",
			Name:      "Fixture Home Club at Fixture Away Club",
			ShortName: "FAC @ FHC",
			Date:      start.Add(-2 * time.Hour).Format(time.RFC3339),
			Status:    domain.Status{State: domain.StateIn, Detail: "In Progress"},
			Competitors: []domain.Competitor{
				{ID: "fixture-home", Name: "Fixture Home Club", Abbreviation: "FHC", Score: first, HomeAway: domain.Home},
				{ID: "fixture-away", Name: "Fixture Away Club", Abbreviation: "FAC", Score: second, HomeAway: domain.Away},
			},
		},
		{
			ID:        "fixture-" + string(sport) + "-2",
			Name:      "Fixture North at Fixture South",
			ShortName: "FN @ FS",
			Date:      start.Add(3 * time.Hour).Format(time.RFC3339),
			Status:    domain.Status{State: domain.StatePre, Detail: "Scheduled"},
			Competitors: []domain.Competitor{
				{ID: "fixture-south", Name: "Fixture South", Abbreviation: "FS", HomeAway: domain.Home},
				{ID: "fixture-north", Name: "Fixture North", Abbreviation: "FN", HomeAway: domain.Away},
			},
		},
	}, nil
}

func score(v int) *int {
	return &v
}

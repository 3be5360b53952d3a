package fixture

import (
	"context"
	"testing"

	"github.com/blaze-intelligence/scoreboard-service/internal/domain"
)

func TestFetchScoreboardReturnsEventsForEverySport(t *testing.T) {
	p := New()
	for _, sport := range domain.Sports() {
		events, err := p.FetchScoreboard(context.Background(), sport)
		if err != nil {
			t.Fatalf("expected events for %q, got %v", sport, err)
		}
		if len(events) == 0 {
			t.Fatalf("expected non-empty events for %q", sport)
		}
		for _, event := range events {
			homes, aways := 0, 0
			for _, c := range event.Competitors {
				switch c.HomeAway {
				case domain.Home:
					homes++
				case domain.Away:
					aways++
				}
			}
			if homes != 1 || aways != 1 {
				t.Fatalf("event %q violates home/away invariant", event.ID)
			}
		}
	}
}

func TestFetchScoreboardRejectsUnknownSport(t *testing.T) {
	p := New()
	_, err := p.FetchScoreboard(context.Background(), domain.SportKey("cricket"))
	if _, ok := domain.AsInvalidSportError(err); !ok {
		t.Fatalf("expected InvalidSportError, got %v", err)
	}
}

func TestFetchScoreboardPreGameHasNilScore(t *testing.T) {
	p := New()
	events, err := p.FetchScoreboard(context.Background(), domain.SportBaseball)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var checked bool
	for _, event := range events {
		if event.Status.State != domain.StatePre {
			continue
		}
		checked = true
		for _, c := range event.Competitors {
			if c.Score != nil {
				t.Fatalf("pre-game competitor %q has a score", c.ID)
			}
		}
	}
	if !checked {
		t.Fatal("expected at least one pre-game fixture event")
	}
}

package espn

import (
	"testing"

	"github.com/blaze-intelligence/scoreboard-service/internal/domain"
)

func validEvent() eventResponse {
	return eventResponse{
		ID:        "401547417",
		Name:      "Houston Astros at Texas Rangers",
		ShortName: "HOU @ TEX",
		Date:      "2025-06-14T19:05Z",
		Status: statusResponse{
			Type: statusTypeResponse{State: "in", Detail: "Bottom 6th"},
		},
		Competitions: []competitionResponse{{
			Competitors: []competitorResponse{
				{ID: "140", HomeAway: "home", Score: "4", Team: teamResponse{DisplayName: "Texas Rangers", Abbreviation: "TEX"}},
				{ID: "117", HomeAway: "away", Score: "2", Team: teamResponse{DisplayName: "Houston Astros", Abbreviation: "HOU"}},
			},
		}},
	}
}

func TestMapEventsHappyPath(t *testing.T) {
	events := mapEvents(scoreboardResponse{Events: []eventResponse{validEvent()}})
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	event := events[0]
	if event.ID != "401547417" || event.ShortName != "HOU @ TEX" {
		t.Fatalf("unexpected event mapping: %+v", event)
	}
	if event.Status.State != domain.StateIn || event.Status.Detail != "Bottom 6th" {
		t.Fatalf("unexpected status mapping: %+v", event.Status)
	}
	if len(event.Competitors) != 2 {
		t.Fatalf("expected 2 competitors, got %d", len(event.Competitors))
	}
	home := event.Competitors[0]
	if home.HomeAway != domain.Home || home.Score == nil || *home.Score != 4 {
		t.Fatalf("unexpected home competitor: %+v", home)
	}
	if home.Name != "Texas Rangers" || home.Abbreviation != "TEX" {
		t.Fatalf("unexpected home team mapping: %+v", home)
	}
}

func TestMapEventsPreservesUpstreamOrder(t *testing.T) {
	first := validEvent()
	first.ID = "a"
	second := validEvent()
	second.ID = "b"

	events := mapEvents(scoreboardResponse{Events: []eventResponse{first, second}})
	if len(events) != 2 || events[0].ID != "a" || events[1].ID != "b" {
		t.Fatalf("expected upstream order preserved, got %+v", events)
	}
}

func TestMapEventsMissingScoreBecomesNil(t *testing.T) {
	raw := validEvent()
	raw.Competitions[0].Competitors[0].Score = ""
	raw.Competitions[0].Competitors[1].Score = "not-a-number"

	events := mapEvents(scoreboardResponse{Events: []eventResponse{raw}})
	if len(events) != 1 {
		t.Fatalf("expected event to survive missing scores, got %d", len(events))
	}
	for _, c := range events[0].Competitors {
		if c.Score != nil {
			t.Fatalf("expected nil score, got %d", *c.Score)
		}
	}
}

func TestMapEventsMissingDetailBecomesEmpty(t *testing.T) {
	raw := validEvent()
	raw.Status = statusResponse{}

	events := mapEvents(scoreboardResponse{Events: []eventResponse{raw}})
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Status.Detail != "" {
		t.Fatalf("expected empty detail, got %q", events[0].Status.Detail)
	}
	if events[0].Status.State != domain.StatePre {
		t.Fatalf("expected unknown state to map to pre, got %q", events[0].Status.State)
	}
}

func TestMapEventsDropsMalformedCompetitorLists(t *testing.T) {
	noCompetitions := validEvent()
	noCompetitions.Competitions = nil

	oneCompetitor := validEvent()
	oneCompetitor.Competitions[0].Competitors = oneCompetitor.Competitions[0].Competitors[:1]

	twoHomes := validEvent()
	twoHomes.Competitions[0].Competitors[1].HomeAway = "home"

	unknownSide := validEvent()
	unknownSide.Competitions[0].Competitors[1].HomeAway = "neutral"

	events := mapEvents(scoreboardResponse{Events: []eventResponse{
		noCompetitions, oneCompetitor, twoHomes, unknownSide,
	}})
	if len(events) != 0 {
		t.Fatalf("expected all malformed events dropped, got %d", len(events))
	}
}

func TestMapEventsHomeAwayInvariant(t *testing.T) {
	events := mapEvents(scoreboardResponse{Events: []eventResponse{validEvent()}})
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
			t.Fatalf("expected exactly one home and one away, got %d/%d", homes, aways)
		}
	}
}

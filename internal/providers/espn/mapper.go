package espn

import (
	"strconv"
	"strings"

	"github.com/blaze-intelligence/scoreboard-service/internal/domain"
)

// mapEvents normalizes a raw scoreboard payload, preserving upstream order.
// Events without a usable home/away competitor pair are dropped rather than
// failing the fetch; an all-malformed payload simply yields zero events.
func mapEvents(payload scoreboardResponse) []domain.Event {
	events := make([]domain.Event, 0, len(payload.Events))
	for _, raw := range payload.Events {
		if event, ok := mapEvent(raw); ok {
			events = append(events, event)
		}
	}
	return events
}

func mapEvent(raw eventResponse) (domain.Event, bool) {
	competitors, ok := mapCompetitors(raw.Competitions)
	if !ok {
		return domain.Event{}, false
	}

	return domain.Event{
		ID:          raw.ID,
		Name:        raw.Name,
		ShortName:   raw.ShortName,
		Date:        raw.Date,
		Status:      mapStatus(raw.Status),
		Competitors: competitors,
	}, true
}

// mapCompetitors requires exactly two competitors, one home and one away,
// from the first competition. Upstream order is preserved.
func mapCompetitors(competitions []competitionResponse) ([]domain.Competitor, bool) {
	if len(competitions) == 0 {
		return nil, false
	}

	raw := competitions[0].Competitors
	if len(raw) != 2 {
		return nil, false
	}

	homes := 0
	competitors := make([]domain.Competitor, 0, 2)
	for _, c := range raw {
		side, ok := mapHomeAway(c.HomeAway)
		if !ok {
			return nil, false
		}
		if side == domain.Home {
			homes++
		}
		competitors = append(competitors, domain.Competitor{
			ID:           c.ID,
			Name:         c.Team.DisplayName,
			Abbreviation: c.Team.Abbreviation,
			Score:        mapScore(c.Score),
			HomeAway:     side,
		})
	}
	if homes != 1 {
		return nil, false
	}
	return competitors, true
}

func mapHomeAway(raw string) (domain.HomeAway, bool) {
	switch strings.ToLower(raw) {
	case "home":
		return domain.Home, true
	case "away":
		return domain.Away, true
	}
	return "", false
}

// mapScore returns nil for absent or unparseable scores ("undefined" pre-game).
func mapScore(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	score, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &score
}

func mapStatus(raw statusResponse) domain.Status {
	return domain.Status{
		State:  mapState(raw.Type.State),
		Detail: raw.Type.Detail,
	}
}

func mapState(raw string) domain.StatusState {
	switch strings.ToLower(raw) {
	case "in":
		return domain.StateIn
	case "post":
		return domain.StatePost
	default:
		return domain.StatePre
	}
}

package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseSportAcceptsSupportedKeys(t *testing.T) {
	for _, sport := range Sports() {
		parsed, err := ParseSport(string(sport))
		if err != nil {
			t.Fatalf("expected %q to parse, got %v", sport, err)
		}
		if parsed != sport {
			t.Fatalf("expected %q, got %q", sport, parsed)
		}
	}
}

func TestParseSportRejectsUnknownKeys(t *testing.T) {
	for _, raw := range []string{"cricket", "", "Baseball", "track_field", "mlb"} {
		_, err := ParseSport(raw)
		if err == nil {
			t.Fatalf("expected %q to be rejected", raw)
		}
		sportErr, ok := AsInvalidSportError(err)
		if !ok {
			t.Fatalf("expected InvalidSportError for %q, got %T", raw, err)
		}
		if sportErr.Sport != raw {
			t.Fatalf("expected error to name %q, got %q", raw, sportErr.Sport)
		}
	}
}

func TestInvalidSportErrorNamesKey(t *testing.T) {
	err := &InvalidSportError{Sport: "cricket"}
	if !strings.Contains(err.Error(), "cricket") {
		t.Fatalf("expected message to name the key, got %q", err.Error())
	}
}

func TestSportsIsStable(t *testing.T) {
	want := []SportKey{SportBaseball, SportFootball, SportBasketball, SportTrackField}
	got := Sports()
	if len(got) != len(want) {
		t.Fatalf("expected %d sports, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %q at index %d, got %q", want[i], i, got[i])
		}
	}
}

func TestCompetitorScoreOmittedWhenNil(t *testing.T) {
	pre := Competitor{ID: "tex", Name: "Texas Rangers", Abbreviation: "TEX", HomeAway: Home}
	raw, err := json.Marshal(pre)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(raw), "score") {
		t.Fatalf("expected nil score to be omitted, got %s", raw)
	}

	score := 5
	post := Competitor{ID: "tex", Score: &score, HomeAway: Home}
	raw, err = json.Marshal(post)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(raw), `"score":5`) {
		t.Fatalf("expected numeric score in payload, got %s", raw)
	}
}

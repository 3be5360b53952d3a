package domain

import "time"

// SportKey identifies one of the fixed set of supported sports.
type SportKey string

const (
	SportBaseball   SportKey = "baseball"
	SportFootball   SportKey = "football"
	SportBasketball SportKey = "basketball"
	SportTrackField SportKey = "track-field"
)

// Sports lists every supported sport in stable order.
func Sports() []SportKey {
	return []SportKey{SportBaseball, SportFootball, SportBasketball, SportTrackField}
}

// Valid reports whether the key is one of the supported sports.
func (s SportKey) Valid() bool {
	switch s {
	case SportBaseball, SportFootball, SportBasketball, SportTrackField:
		return true
	}
	return false
}

// ParseSport validates a raw sport key from an untrusted source (URL path).
func ParseSport(raw string) (SportKey, error) {
	key := SportKey(raw)
	if !key.Valid() {
		return "", &InvalidSportError{Sport: raw}
	}
	return key, nil
}

// StatusState is the coarse lifecycle phase of an event.
type StatusState string

const (
	StatePre  StatusState = "pre"
	StateIn   StatusState = "in"
	StatePost StatusState = "post"
)

// Status describes where an event is in its lifecycle.
type Status struct {
	State  StatusState `json:"state"`
	Detail string      `json:"detail"`
}

// HomeAway marks which side of the matchup a competitor is on.
type HomeAway string

const (
	Home HomeAway = "home"
	Away HomeAway = "away"
)

// Competitor is one side of an event. Score is nil before the game starts.
type Competitor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Abbreviation string   `json:"abbreviation"`
	Score        *int     `json:"score,omitempty"`
	HomeAway     HomeAway `json:"homeAway"`
}

// Event is a single normalized game/match. Competitors always holds exactly
// two entries, one home and one away, in upstream order.
type Event struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	ShortName   string       `json:"shortName"`
	Date        string       `json:"date"`
	Status      Status       `json:"status"`
	Competitors []Competitor `json:"competitors"`
}

// Source tags where scoreboard data came from so clients can judge freshness.
type Source string

const (
	SourceLive     Source = "live"
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
)

// Scoreboard is the per-sport response envelope.
type Scoreboard struct {
	Sport     SportKey  `json:"sport"`
	Events    []Event   `json:"events"`
	Source    Source    `json:"source"`
	FetchedAt time.Time `json:"fetchedAt"`
}

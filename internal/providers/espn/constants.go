package espn

import "github.com/blaze-intelligence/scoreboard-service/internal/domain"

const providerName = "espn"

const defaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports"

// sportPaths maps each supported sport onto its ESPN league path. All four
// share the same scoreboard payload schema; only the path differs.
// ESPN has no dependable track & field scoreboard feed, so requests for it
// normally degrade to the fallback data.
var sportPaths = map[domain.SportKey]string{
	domain.SportBaseball:   "baseball/mlb",
	domain.SportFootball:   "football/nfl",
	domain.SportBasketball: "basketball/nba",
	domain.SportTrackField: "track-and-field/all",
}

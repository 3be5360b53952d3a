package espn

// Raw upstream payload shapes. Every field is optional as far as we are
// concerned; the mapper treats anything missing as absent rather than failing
// the fetch.

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	ShortName    string                `json:"shortName"`
	Date         string                `json:"date"`
	Status       statusResponse        `json:"status"`
	Competitions []competitionResponse `json:"competitions"`
}

type statusResponse struct {
	Type statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	State  string `json:"state"`
	Detail string `json:"detail"`
}

type competitionResponse struct {
	Competitors []competitorResponse `json:"competitors"`
}

type competitorResponse struct {
	ID       string       `json:"id"`
	HomeAway string       `json:"homeAway"`
	Score    string       `json:"score"`
	Team     teamResponse `json:"team"`
}

type teamResponse struct {
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
}

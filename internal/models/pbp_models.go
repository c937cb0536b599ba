package models

// ScoringEvent is one official play-by-play record. Period counts 1-4 for
// regulation and 5+ for overtime; Clock is the countdown "MM:SS" within the
// period.
type ScoringEvent struct {
	Period int    `json:"period"`
	Clock  string `json:"clock"`
	Team   string `json:"team"`
	Points int    `json:"points"`
	Desc   string `json:"desc"`
	GameID string `json:"game_id,omitempty"`
}

// ElapsedEvent is a ScoringEvent aligned to elapsed game seconds via the
// inverse clock mapping. Precision is limited to the logged countdown value.
type ElapsedEvent struct {
	ScoringEvent
	Elapsed int64 `json:"elapsed"`
}

package models

// SentimentLabel is always exactly one of pos, neg, or mixed.
type SentimentLabel string

const (
	SentimentPos   SentimentLabel = "pos"
	SentimentNeg   SentimentLabel = "neg"
	SentimentMixed SentimentLabel = "mixed"
)

// TimelineEntry is the terminal output for one window. Entries are emitted
// ascending by window index and never mutated after assembly.
type TimelineEntry struct {
	TS           string         `json:"ts"`
	Event        string         `json:"event"`
	FanSentiment SentimentLabel `json:"fan_sentiment"`
}

// GameTimeline is one game's ordered entries plus the optional theme side
// channel.
type GameTimeline struct {
	GameID  string          `json:"game_id"`
	Entries []TimelineEntry `json:"timeline"`
	Themes  []string        `json:"themes,omitempty"`
}

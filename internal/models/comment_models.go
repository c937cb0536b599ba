package models

// Comment is one crowd comment from a game thread, validated and normalized
// at the ingestion boundary. Body is rewritten once during normalization and
// treated as immutable afterwards.
type Comment struct {
	Body       string `json:"body"`
	CreatedUTC int64  `json:"created_utc"`
	Score      int    `json:"score"`
	Author     string `json:"author"`
}

// ElapsedComment is a Comment aligned to the game: Elapsed is seconds since
// tip-off, clamped at zero. Derived once, never re-derived.
type ElapsedComment struct {
	Comment
	Elapsed int64 `json:"elapsed"`
}

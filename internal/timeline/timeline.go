// Package timeline assembles windows into the final annotated timeline, one
// entry per window, and batches that over many games.
package timeline

import (
	"sort"
	"sync"

	"github.com/tarund3/sports-fan-timeline/internal/gameclock"
	"github.com/tarund3/sports-fan-timeline/internal/models"
	"github.com/tarund3/sports-fan-timeline/internal/sentiment"
	"github.com/tarund3/sports-fan-timeline/internal/summarizer"
	"github.com/tarund3/sports-fan-timeline/internal/themes"
	"github.com/tarund3/sports-fan-timeline/internal/utils"
	"github.com/tarund3/sports-fan-timeline/internal/windowing"
)

// Labeler turns aligned windows into timeline entries. The analyzer is
// injected once and shared read-only.
type Labeler struct {
	analyzer  *sentiment.Analyzer
	windowLen int
}

func NewLabeler(analyzer *sentiment.Analyzer, windowLen int) *Labeler {
	if windowLen <= 0 {
		windowLen = windowing.DefaultWindowSeconds
	}
	return &Labeler{analyzer: analyzer, windowLen: windowLen}
}

// LabelWindow composes one TimelineEntry from a window's members. A window
// with no comments and no events still labels: the summarizer's terminal
// fallback and the aggregator's default mixed.
func (l *Labeler) LabelWindow(win *models.Window) models.TimelineEntry {
	return models.TimelineEntry{
		TS:           gameclock.PeriodLabel(win.Period) + " " + win.ClockStart,
		Event:        summarizer.Summarize(win),
		FanSentiment: l.analyzer.Aggregate(win.Comments),
	}
}

// BuildGame runs the full alignment for one game and returns its entries
// ascending by window index. Comment bodies are expected to be normalized
// already (the ingestion boundary does that); no window that exists is ever
// dropped.
func (l *Labeler) BuildGame(gameID string, comments []models.Comment, events []models.ScoringEvent, startUTC int64) models.GameTimeline {
	aligned := windowing.AlignComments(comments, startUTC)
	alignedEvents := windowing.AlignEvents(events)

	windows := windowing.Build(aligned, alignedEvents, l.windowLen)
	windowing.AttachMeta(windows, alignedEvents, l.windowLen)

	indices := make([]int, 0, len(windows))
	for idx := range windows {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	entries := make([]models.TimelineEntry, 0, len(indices))
	for _, idx := range indices {
		entries = append(entries, l.LabelWindow(windows[idx]))
	}

	bodies := make([]string, 0, len(aligned))
	for _, c := range aligned {
		bodies = append(bodies, c.Body)
	}

	return models.GameTimeline{
		GameID:  gameID,
		Entries: entries,
		Themes:  themes.Top(bodies),
	}
}

// GameInput bundles one game's parsed records for batch processing.
type GameInput struct {
	GameID   string
	StartUTC int64
	Comments []models.Comment
	Events   []models.ScoringEvent
}

// BuildBatch labels many games, sharding one goroutine per game. Window
// outputs depend only on their own members, so games compute independently;
// the only ordering applied is on emission, grouped by game id in input
// order with entries ascending by window.
func (l *Labeler) BuildBatch(games []GameInput) []models.GameTimeline {
	buffer := utils.NewBatchBuffer[models.GameTimeline]()

	var wg sync.WaitGroup
	for _, g := range games {
		wg.Add(1)
		go func(g GameInput) {
			defer wg.Done()
			buffer.Add(l.BuildGame(g.GameID, g.Comments, g.Events, g.StartUTC))
		}(g)
	}
	wg.Wait()

	byID := make(map[string]models.GameTimeline, len(games))
	for _, result := range buffer.GetAndClear() {
		byID[result.GameID] = result
	}

	out := make([]models.GameTimeline, 0, len(games))
	for _, g := range games {
		if result, ok := byID[g.GameID]; ok {
			out = append(out, result)
		}
	}
	return out
}

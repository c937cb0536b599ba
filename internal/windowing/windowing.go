// Package windowing aligns comments and scoring events to elapsed game time
// and buckets them into fixed-length windows.
package windowing

import (
	"log/slog"
	"sort"

	"github.com/tarund3/sports-fan-timeline/internal/gameclock"
	"github.com/tarund3/sports-fan-timeline/internal/models"
)

// DefaultWindowSeconds is the window length used when none is configured.
const DefaultWindowSeconds = 60

// AlignComments derives elapsed seconds for each comment from its timestamp.
// Pre-game comments clamp to elapsed 0. Derivation happens exactly once; the
// input slice is never touched again.
func AlignComments(comments []models.Comment, startUTC int64) []models.ElapsedComment {
	out := make([]models.ElapsedComment, 0, len(comments))
	for _, c := range comments {
		elapsed := c.CreatedUTC - startUTC
		if elapsed < 0 {
			elapsed = 0
		}
		out = append(out, models.ElapsedComment{Comment: c, Elapsed: elapsed})
	}
	return out
}

// AlignEvents derives elapsed seconds for each scoring event via the inverse
// clock mapping. An event whose clock cannot be parsed is skipped and logged;
// one bad record never aborts the batch.
func AlignEvents(events []models.ScoringEvent) []models.ElapsedEvent {
	out := make([]models.ElapsedEvent, 0, len(events))
	for _, e := range events {
		elapsed, err := gameclock.ElapsedFromClock(e.Period, e.Clock)
		if err != nil {
			slog.Warn("[Windowing] Skipping event with unusable clock",
				slog.String("team", e.Team),
				slog.String("clock", e.Clock),
				slog.String("error", err.Error()))
			continue
		}
		out = append(out, models.ElapsedEvent{ScoringEvent: e, Elapsed: elapsed})
	}
	return out
}

// Build buckets aligned records into windows keyed by elapsed / windowLen.
// Windows are created lazily on first member, and member order within a
// window preserves input order. Membership is a pure function of elapsed and
// windowLen: identical inputs always rebuild identical windows.
func Build(comments []models.ElapsedComment, events []models.ElapsedEvent, windowLen int) map[int]*models.Window {
	if windowLen <= 0 {
		windowLen = DefaultWindowSeconds
	}
	windows := make(map[int]*models.Window)
	get := func(idx int) *models.Window {
		w, ok := windows[idx]
		if !ok {
			w = &models.Window{Index: idx}
			windows[idx] = w
		}
		return w
	}
	for _, c := range comments {
		w := get(int(c.Elapsed) / windowLen)
		w.Comments = append(w.Comments, c)
	}
	for _, e := range events {
		w := get(int(e.Elapsed) / windowLen)
		w.Events = append(w.Events, e)
	}
	return windows
}

// AttachMeta fills every window's period, clock-start, and running
// score-before/score-after. Clock fields come from the same gameclock
// helpers that label raw timestamps, so a window and a comment at the same
// instant always carry the same label. Scores accumulate per team over all
// events ordered by elapsed time.
func AttachMeta(windows map[int]*models.Window, events []models.ElapsedEvent, windowLen int) {
	if windowLen <= 0 {
		windowLen = DefaultWindowSeconds
	}

	ordered := append([]models.ElapsedEvent(nil), events...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Elapsed < ordered[j].Elapsed })

	indices := make([]int, 0, len(windows))
	for idx := range windows {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	running := models.Scoreboard{}
	pos := 0
	advance := func(until int64) {
		for pos < len(ordered) && ordered[pos].Elapsed < until {
			if e := ordered[pos]; e.Team != "" && e.Points > 0 {
				running[e.Team] += e.Points
			}
			pos++
		}
	}

	for _, idx := range indices {
		w := windows[idx]
		start := int64(idx) * int64(windowLen)
		w.Period = gameclock.PeriodAt(start)
		w.ClockStart = gameclock.CountdownAt(start)

		advance(start)
		w.ScoreBefore = running.Clone()
		advance(start + int64(windowLen))
		w.ScoreAfter = running.Clone()
	}
}

// Package summarizer turns a window's scoring events and top comments into a
// short rule-derived description. Detectors run in fixed priority order,
// first match wins, and every branch terminates in a guaranteed default.
package summarizer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/tarund3/sports-fan-timeline/internal/models"
)

const (
	// MaxTokens caps every description, quotes included.
	MaxTokens      = 28
	fallbackTokens = 20
	runThreshold   = 8

	maxQuotes     = 2
	quoteMaxChars = 40
	quoteMaxWords = 8

	// Attribution data is team-level only; the actor slots use generic role
	// placeholders rather than fabricated names.
	runActor     = "star"
	genericActor = "player"
)

var highlightKeywords = []string{"block", "dunk", "steal", "alley-oop", "behind-the-back", "no-look"}

var nonWordPattern = regexp.MustCompile(`[^\w\s\-']`)

type rule struct {
	name  string
	match func(win *models.Window) (string, bool)
}

// rules in priority order; no fallthrough once one matches.
var rules = []rule{
	{name: "scoring-run", match: scoringRun},
	{name: "lead-change", match: leadChange},
	{name: "highlight", match: highlight},
}

// Summarize produces the window's description: highest-priority matching
// rule (or the fallback), up to two fan quotes, then a hard cap at MaxTokens
// whitespace-delimited tokens. Quotes may be partially cut by the cap.
func Summarize(win *models.Window) string {
	return truncateWords(appendQuotes(describe(win), win.Comments), MaxTokens)
}

func describe(win *models.Window) string {
	for _, r := range rules {
		if s, ok := r.match(win); ok {
			return s
		}
	}
	if n := len(win.Events); n > 0 {
		if desc := strings.TrimSpace(win.Events[n-1].Desc); desc != "" {
			return truncateWords(capitalize(desc), fallbackTokens)
		}
	}
	return "Game action continues."
}

// scoringRun fires when one team's points in the window sum to at least
// runThreshold. Ties between teams break on team code for determinism.
func scoringRun(win *models.Window) (string, bool) {
	totals := models.Scoreboard{}
	for _, e := range win.Events {
		if e.Team != "" && e.Points > 0 {
			totals[e.Team] += e.Points
		}
	}
	team, pts := "", 0
	for t, p := range totals {
		if p > pts || (p == pts && team != "" && t < team) {
			team, pts = t, p
		}
	}
	if pts < runThreshold {
		return "", false
	}
	return fmt.Sprintf("%s %d-0 run as %s scores %d straight.", team, pts, runActor, pts), true
}

// leadChange fires when the leading team differs between the window's
// score-before and score-after (taking the lead from a tie counts). The shot
// type comes from the new leader's latest scoring play in the window.
func leadChange(win *models.Window) (string, bool) {
	after, ok := win.ScoreAfter.Leader()
	if !ok {
		return "", false
	}
	if before, hadLeader := win.ScoreBefore.Leader(); hadLeader && before == after {
		return "", false
	}
	for i := len(win.Events) - 1; i >= 0; i-- {
		e := win.Events[i]
		if e.Team == after && e.Points > 0 {
			return fmt.Sprintf("%s retake the lead on %s %s.", after, genericActor, shotType(e.Desc)), true
		}
	}
	return "", false
}

func shotType(desc string) string {
	switch {
	case strings.Contains(desc, "3PT"):
		return "three-pointer"
	case strings.Contains(desc, "Free Throw"):
		return "free throw"
	case strings.Contains(desc, "Dunk"):
		return "dunk"
	case strings.Contains(desc, "Layup"):
		return "layup"
	default:
		return "shot"
	}
}

func highlight(win *models.Window) (string, bool) {
	for _, e := range win.Events {
		desc := strings.ToLower(e.Desc)
		for _, kw := range highlightKeywords {
			if strings.Contains(desc, kw) {
				return fmt.Sprintf("%s emphatic %s fires up fans.", genericActor, kw), true
			}
		}
	}
	return "", false
}

// appendQuotes attaches up to maxQuotes fragments from the highest-scoring
// comments. A quote qualifies when its cleaned text is short enough to quote
// verbatim.
func appendQuotes(summary string, comments []models.ElapsedComment) string {
	if len(comments) == 0 {
		return summary
	}
	ranked := append([]models.ElapsedComment(nil), comments...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	added := 0
	for _, c := range ranked {
		if added >= maxQuotes {
			break
		}
		clean := strings.TrimSpace(nonWordPattern.ReplaceAllString(c.Body, ""))
		if clean == "" || len(clean) > quoteMaxChars || len(strings.Fields(clean)) > quoteMaxWords {
			continue
		}
		summary += ` "` + clean + `"`
		added++
	}
	return summary
}

func truncateWords(s string, limit int) string {
	words := strings.Fields(s)
	if len(words) <= limit {
		return s
	}
	return strings.Join(words[:limit], " ") + "..."
}

func capitalize(s string) string {
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

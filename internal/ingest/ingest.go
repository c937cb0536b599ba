// Package ingest parses local game-thread and play-by-play files into the
// validated records the pipeline operates on. Malformed individual records
// are skipped; a file that cannot be parsed at all fails only its own game.
package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/tarund3/sports-fan-timeline/internal/models"
	"github.com/tarund3/sports-fan-timeline/internal/normalize"
)

const maxLineBytes = 1 << 20

// LoadComments reads crowd comments from a JSONL file. Bodies are normalized
// on the way in; records that normalize to nothing are skipped with a debug
// log. A line that fails to parse is fatal for the whole file, with the
// offending location in the error.
func LoadComments(path string) ([]models.Comment, error) {
	var out []models.Comment
	err := scanJSONL(path, func(line int, raw []byte) error {
		var c models.Comment
		if err := json.Unmarshal(raw, &c); err != nil {
			return err
		}
		c.Body = normalize.Clean(c.Body)
		if c.Body == "" {
			slog.Debug("[Ingest] Skipping comment with no usable text",
				slog.String("file", path),
				slog.Int("line", line))
			return nil
		}
		out = append(out, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LoadEvents reads scoring events from a JSONL file and tags them with
// gameID. NBA-feed clock strings ("PT11M40.00S") normalize to "MM:SS", and
// points are derived from the description when the field is absent. Events
// with no description are skipped.
func LoadEvents(path, gameID string) ([]models.ScoringEvent, error) {
	var out []models.ScoringEvent
	err := scanJSONL(path, func(line int, raw []byte) error {
		var e models.ScoringEvent
		if err := json.Unmarshal(raw, &e); err != nil {
			return err
		}
		if e.GameID == "" {
			e.GameID = gameID
		}
		e.Clock = normalizeClock(e.Clock)
		if e.Period < 1 {
			e.Period = 1
		}
		if e.Points == 0 {
			e.Points = pointsFromDesc(e.Desc)
		}
		if strings.TrimSpace(e.Desc) == "" {
			slog.Debug("[Ingest] Skipping event with no description",
				slog.String("file", path),
				slog.Int("line", line))
			return nil
		}
		out = append(out, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func scanJSONL(path string, handle func(line int, raw []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		if err := handle(line, []byte(raw)); err != nil {
			return fmt.Errorf("%s:%d: %w", path, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// normalizeClock accepts either "MM:SS" or the NBA feed's ISO-8601-ish
// "PT11M40.00S" form. Unrecognized values fall back to a full clock.
func normalizeClock(clock string) string {
	if clock == "" {
		return "12:00"
	}
	if !strings.HasPrefix(clock, "PT") {
		return clock
	}
	trimmed := strings.TrimSuffix(strings.TrimPrefix(clock, "PT"), "S")
	parts := strings.SplitN(trimmed, "M", 2)
	if len(parts) != 2 {
		return "12:00"
	}
	mins, errM := strconv.ParseFloat(parts[0], 64)
	secs, errS := strconv.ParseFloat(parts[1], 64)
	if errM != nil || errS != nil {
		return "12:00"
	}
	return fmt.Sprintf("%02d:%02d", int(mins), int(secs))
}

// pointsFromDesc recovers points from a made-shot description when the feed
// omits the points field.
func pointsFromDesc(desc string) int {
	if !strings.Contains(desc, "Made") {
		return 0
	}
	switch {
	case strings.Contains(desc, "3PT"):
		return 3
	case strings.Contains(desc, "Free Throw"):
		return 1
	default:
		return 2
	}
}

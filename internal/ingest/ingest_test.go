package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCommentsNormalizesBodies(t *testing.T) {
	path := writeFile(t, "comments.jsonl", `
{"body":"check https://example.com what a game","created_utc":1000,"score":5,"author":"fan1"}

{"body":"**huge** win","created_utc":1010,"score":2,"author":"fan2"}
`)

	comments, err := LoadComments(path)

	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, "check what a game", comments[0].Body)
	require.Equal(t, "huge win", comments[1].Body)
	require.EqualValues(t, 1000, comments[0].CreatedUTC)
}

func TestLoadCommentsSkipsEmptyBodies(t *testing.T) {
	path := writeFile(t, "comments.jsonl", `
{"body":"https://example.com","created_utc":1000,"score":1,"author":"fan1"}
{"body":"real text","created_utc":1010,"score":1,"author":"fan2"}
`)

	comments, err := LoadComments(path)

	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Equal(t, "real text", comments[0].Body)
}

func TestLoadCommentsMalformedLineIsFatal(t *testing.T) {
	path := writeFile(t, "comments.jsonl", `
{"body":"fine","created_utc":1000,"score":1,"author":"a"}
{not json}
`)

	_, err := LoadComments(path)

	require.Error(t, err)
	require.Contains(t, err.Error(), path)
	require.Contains(t, err.Error(), ":3:")
}

func TestLoadCommentsMissingFile(t *testing.T) {
	_, err := LoadComments(filepath.Join(t.TempDir(), "nope.jsonl"))
	require.Error(t, err)
}

func TestLoadEventsTagsAndNormalizes(t *testing.T) {
	path := writeFile(t, "pbp.jsonl", `
{"period":1,"clock":"PT11M40.00S","team":"LAL","points":0,"desc":"Driving 3PT Made"}
{"period":2,"clock":"06:30","team":"DAL","points":2,"desc":"Layup Made"}
`)

	events, err := LoadEvents(path, "LAL-DAL")

	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "11:40", events[0].Clock)
	require.Equal(t, 3, events[0].Points, "points recovered from description")
	require.Equal(t, "LAL-DAL", events[0].GameID)
	require.Equal(t, "06:30", events[1].Clock)
	require.Equal(t, 2, events[1].Points)
}

func TestLoadEventsSkipsDescriptionless(t *testing.T) {
	path := writeFile(t, "pbp.jsonl", `
{"period":1,"clock":"11:00","team":"LAL","points":2,"desc":"  "}
{"period":1,"clock":"10:00","team":"DAL","points":2,"desc":"Jumper Made"}
`)

	events, err := LoadEvents(path, "g")

	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "DAL", events[0].Team)
}

func TestNormalizeClock(t *testing.T) {
	require.Equal(t, "11:40", normalizeClock("PT11M40.00S"))
	require.Equal(t, "12:00", normalizeClock("PT12M00.00S"))
	require.Equal(t, "12:00", normalizeClock(""))
	require.Equal(t, "12:00", normalizeClock("PTgarbage"))
	require.Equal(t, "07:15", normalizeClock("07:15"))
}

func TestPointsFromDesc(t *testing.T) {
	require.Equal(t, 3, pointsFromDesc("26' 3PT Made"))
	require.Equal(t, 1, pointsFromDesc("Free Throw 2 of 2 Made"))
	require.Equal(t, 2, pointsFromDesc("2PT Jumper Made"))
	require.Equal(t, 2, pointsFromDesc("Layup Made"))
	require.Equal(t, 0, pointsFromDesc("Jumper Missed"))
}

func TestLoadSchedule(t *testing.T) {
	path := writeFile(t, "schedule.yaml", `
games:
  LAL-DAL-20240115: 1705351800
  BOS-MIA-20240116: 1705438200
`)

	schedule, err := LoadSchedule(path)

	require.NoError(t, err)
	require.Len(t, schedule.Games, 2)
	require.EqualValues(t, 1705351800, schedule.Games["LAL-DAL-20240115"])
}

func TestLoadScheduleRejectsEmptyAndBadFiles(t *testing.T) {
	_, err := LoadSchedule(writeFile(t, "empty.yaml", "games: {}\n"))
	require.Error(t, err)

	_, err = LoadSchedule(writeFile(t, "bad.yaml", "games: [not: a: map\n"))
	require.Error(t, err)

	_, err = LoadSchedule(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

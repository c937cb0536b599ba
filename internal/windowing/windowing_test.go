package windowing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tarund3/sports-fan-timeline/internal/models"
)

func elapsedComment(elapsed int64, body string) models.ElapsedComment {
	return models.ElapsedComment{Comment: models.Comment{Body: body}, Elapsed: elapsed}
}

func elapsedEvent(elapsed int64, team string, points int, desc string) models.ElapsedEvent {
	return models.ElapsedEvent{
		ScoringEvent: models.ScoringEvent{Team: team, Points: points, Desc: desc},
		Elapsed:      elapsed,
	}
}

func TestBuildOneWindowPerMinute(t *testing.T) {
	comments := []models.ElapsedComment{
		elapsedComment(5, "first"),
		elapsedComment(65, "second"),
		elapsedComment(125, "third"),
	}

	windows := Build(comments, nil, 60)

	require.Len(t, windows, 3)
	for _, idx := range []int{0, 1, 2} {
		require.Contains(t, windows, idx)
		require.Len(t, windows[idx].Comments, 1)
	}
	require.Equal(t, "first", windows[0].Comments[0].Body)
	require.Equal(t, "third", windows[2].Comments[0].Body)
}

func TestBuildIsIdempotent(t *testing.T) {
	comments := []models.ElapsedComment{
		elapsedComment(10, "a"),
		elapsedComment(11, "b"),
		elapsedComment(70, "c"),
	}
	events := []models.ElapsedEvent{
		elapsedEvent(30, "LAL", 2, "Jumper"),
		elapsedEvent(95, "DAL", 3, "3PT"),
	}

	first := Build(comments, events, 60)
	second := Build(comments, events, 60)

	require.Equal(t, first, second)
}

func TestBuildPreservesInsertionOrder(t *testing.T) {
	comments := []models.ElapsedComment{
		elapsedComment(10, "a"),
		elapsedComment(5, "b"),
		elapsedComment(59, "c"),
	}

	windows := Build(comments, nil, 60)

	require.Len(t, windows, 1)
	bodies := []string{}
	for _, c := range windows[0].Comments {
		bodies = append(bodies, c.Body)
	}
	require.Equal(t, []string{"a", "b", "c"}, bodies)
}

func TestBuildDefaultsWindowLength(t *testing.T) {
	windows := Build([]models.ElapsedComment{elapsedComment(61, "x")}, nil, 0)
	require.Contains(t, windows, 1)
}

func TestAlignCommentsClampsPregame(t *testing.T) {
	comments := []models.Comment{
		{Body: "early", CreatedUTC: 900},
		{Body: "on time", CreatedUTC: 1065},
	}

	aligned := AlignComments(comments, 1000)

	require.Len(t, aligned, 2)
	require.EqualValues(t, 0, aligned[0].Elapsed)
	require.EqualValues(t, 65, aligned[1].Elapsed)
}

func TestAlignEventsSkipsUnparseableClocks(t *testing.T) {
	events := []models.ScoringEvent{
		{Period: 1, Clock: "11:30", Team: "LAL", Points: 2, Desc: "Jumper"},
		{Period: 1, Clock: "99:99", Team: "DAL", Points: 3, Desc: "bad clock"},
		{Period: 2, Clock: "11:30", Team: "DAL", Points: 3, Desc: "3PT"},
	}

	aligned := AlignEvents(events)

	require.Len(t, aligned, 2)
	require.EqualValues(t, 30, aligned[0].Elapsed)
	require.EqualValues(t, 750, aligned[1].Elapsed)
}

func TestAttachMetaClockFields(t *testing.T) {
	events := []models.ElapsedEvent{
		elapsedEvent(30, "LAL", 2, "Jumper"),
		elapsedEvent(780, "DAL", 3, "3PT"),
	}
	windows := Build(nil, events, 60)

	AttachMeta(windows, events, 60)

	require.Equal(t, 1, windows[0].Period)
	require.Equal(t, "11:59", windows[0].ClockStart)
	require.Equal(t, 2, windows[13].Period)
	require.Equal(t, "10:59", windows[13].ClockStart)
}

func TestAttachMetaRunningScores(t *testing.T) {
	events := []models.ElapsedEvent{
		elapsedEvent(30, "LAL", 2, "Jumper"),
		elapsedEvent(70, "DAL", 3, "3PT"),
		elapsedEvent(130, "LAL", 3, "3PT"),
	}
	windows := Build(nil, events, 60)

	AttachMeta(windows, events, 60)

	require.Equal(t, models.Scoreboard{}, windows[0].ScoreBefore)
	require.Equal(t, models.Scoreboard{"LAL": 2}, windows[0].ScoreAfter)

	require.Equal(t, models.Scoreboard{"LAL": 2}, windows[1].ScoreBefore)
	require.Equal(t, models.Scoreboard{"LAL": 2, "DAL": 3}, windows[1].ScoreAfter)

	require.Equal(t, models.Scoreboard{"LAL": 2, "DAL": 3}, windows[2].ScoreBefore)
	require.Equal(t, models.Scoreboard{"LAL": 5, "DAL": 3}, windows[2].ScoreAfter)
}

func TestAttachMetaIgnoresTeamlessAndZeroPointEvents(t *testing.T) {
	events := []models.ElapsedEvent{
		elapsedEvent(10, "", 2, "no team"),
		elapsedEvent(20, "LAL", 0, "miss"),
		elapsedEvent(30, "LAL", 2, "Jumper"),
	}
	windows := Build(nil, events, 60)

	AttachMeta(windows, events, 60)

	require.Equal(t, models.Scoreboard{"LAL": 2}, windows[0].ScoreAfter)
}

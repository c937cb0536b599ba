package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreboardLeader(t *testing.T) {
	_, ok := Scoreboard{}.Leader()
	require.False(t, ok)

	_, ok = Scoreboard{"LAL": 10, "DAL": 10}.Leader()
	require.False(t, ok, "tied boards have no leader")

	leader, ok := Scoreboard{"LAL": 10, "DAL": 12}.Leader()
	require.True(t, ok)
	require.Equal(t, "DAL", leader)
}

func TestScoreboardCloneIsIndependent(t *testing.T) {
	original := Scoreboard{"LAL": 10}
	clone := original.Clone()
	clone["LAL"] = 99

	require.Equal(t, 10, original["LAL"])
}

func TestScoreboardFormat(t *testing.T) {
	require.Equal(t, "0-0", Scoreboard{}.Format())
	require.Equal(t, "LAL 10-0", Scoreboard{"LAL": 10}.Format())
	require.Equal(t, "DAL 12-10 LAL", Scoreboard{"LAL": 10, "DAL": 12}.Format())
	// Ties rank by team code.
	require.Equal(t, "DAL 10-10 LAL", Scoreboard{"LAL": 10, "DAL": 10}.Format())
}

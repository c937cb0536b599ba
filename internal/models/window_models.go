package models

import (
	"fmt"
	"sort"
)

// Scoreboard tracks cumulative points per team code.
type Scoreboard map[string]int

// Clone returns an independent copy so windows can hold point-in-time scores.
func (s Scoreboard) Clone() Scoreboard {
	out := make(Scoreboard, len(s))
	for team, pts := range s {
		out[team] = pts
	}
	return out
}

// Leader returns the team with the most points. ok is false when the board is
// empty or the top teams are tied.
func (s Scoreboard) Leader() (string, bool) {
	leader := ""
	best := -1
	tied := false
	for team, pts := range s {
		switch {
		case pts > best:
			leader, best, tied = team, pts, false
		case pts == best:
			tied = true
		}
	}
	if leader == "" || tied {
		return "", false
	}
	return leader, true
}

// Format renders the board as "LAL 54-50 DAL" (points descending, team code as
// a tiebreak). An empty board reads "0-0".
func (s Scoreboard) Format() string {
	if len(s) == 0 {
		return "0-0"
	}
	type teamScore struct {
		team string
		pts  int
	}
	ranked := make([]teamScore, 0, len(s))
	for team, pts := range s {
		ranked = append(ranked, teamScore{team, pts})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].pts != ranked[j].pts {
			return ranked[i].pts > ranked[j].pts
		}
		return ranked[i].team < ranked[j].team
	})
	if len(ranked) == 1 {
		return fmt.Sprintf("%s %d-0", ranked[0].team, ranked[0].pts)
	}
	return fmt.Sprintf("%s %d-%d %s", ranked[0].team, ranked[0].pts, ranked[1].pts, ranked[1].team)
}

// Window is one fixed-length bucket of aligned comments and scoring events.
// It is built once and read-only downstream; member order preserves input
// insertion order.
type Window struct {
	Index       int
	Period      int
	ClockStart  string
	ScoreBefore Scoreboard
	ScoreAfter  Scoreboard
	Comments    []ElapsedComment
	Events      []ElapsedEvent
}

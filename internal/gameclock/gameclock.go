// Package gameclock converts between absolute timestamps and the
// period/countdown game-clock representation. Every label the pipeline
// produces goes through the helpers here, so components can never disagree
// about the same instant.
package gameclock

import (
	"fmt"
	"strconv"
	"strings"
)

// PeriodSeconds is the length of one regulation or overtime period.
const PeriodSeconds int64 = 720

const regulationPeriods = 4

// Phase classifies a timestamp relative to a game.
type Phase int

const (
	PhasePregame Phase = iota
	PhaseInGame
	PhasePostgame
)

// PeriodAt returns the 1-based period for an elapsed offset. Periods past
// regulation are overtime; there is no ceiling.
func PeriodAt(elapsed int64) int {
	return int(elapsed/PeriodSeconds) + 1
}

// PeriodLabel renders a period as "Q1".."Q4" or "OT1", "OT2", ... beyond
// regulation.
func PeriodLabel(period int) string {
	if period > regulationPeriods {
		return fmt.Sprintf("OT%d", period-regulationPeriods)
	}
	return fmt.Sprintf("Q%d", period)
}

// CountdownAt formats the in-period game clock for an elapsed offset. The
// clock reads one tick behind nominal (elapsed 0 is "11:59", not "12:00");
// existing timelines were labeled this way, so the convention is kept.
func CountdownAt(elapsed int64) string {
	into := elapsed % PeriodSeconds
	mm := 11 - into/60
	ss := 59 - into%60
	if mm < 0 {
		mm = 0
	}
	if ss < 0 {
		ss = 0
	}
	return fmt.Sprintf("%02d:%02d", mm, ss)
}

// RealTimeBin labels off-clock chatter with a wall-clock minute bin like
// "03:00–03:59". Negative deltas clamp to the first bin.
func RealTimeBin(delta int64) string {
	mm := delta / 60
	if mm < 0 {
		mm = 0
	}
	return fmt.Sprintf("%02d:00–%02d:59", mm, mm)
}

// ToGameClock maps an absolute timestamp to a display label: a real-time bin
// before tip-off, otherwise "Q3 07:41"-style period and countdown.
func ToGameClock(ts, start int64) string {
	delta := ts - start
	if delta < 0 {
		return RealTimeBin(delta)
	}
	return PeriodLabel(PeriodAt(delta)) + " " + CountdownAt(delta)
}

// PhaseOf classifies a timestamp. gameEnd is the absolute end of play when the
// caller knows it (tip-off plus regulation and any overtime); zero means
// unknown, in which case nothing after tip-off is called post-game.
func PhaseOf(ts, start, gameEnd int64) Phase {
	switch {
	case ts < start:
		return PhasePregame
	case gameEnd > 0 && ts >= gameEnd:
		return PhasePostgame
	default:
		return PhaseInGame
	}
}

// ParseClock parses a countdown "MM:SS" into seconds remaining in the period.
func ParseClock(clock string) (int64, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("clock %q is not MM:SS", clock)
	}
	mm, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("clock %q minutes: %w", clock, err)
	}
	ss, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("clock %q seconds: %w", clock, err)
	}
	if mm < 0 || ss < 0 || ss > 59 {
		return 0, fmt.Errorf("clock %q out of range", clock)
	}
	total := int64(mm)*60 + int64(ss)
	if total > PeriodSeconds {
		return 0, fmt.Errorf("clock %q exceeds period length", clock)
	}
	return total, nil
}

// ElapsedFromClock converts an event-log (period, countdown) pair to elapsed
// seconds since tip-off. The mapping has no sub-period precision beyond the
// logged countdown value. Elapsed is strictly increasing across periods, so
// arbitrarily deep overtime still orders correctly.
func ElapsedFromClock(period int, clock string) (int64, error) {
	if period < 1 {
		return 0, fmt.Errorf("period %d out of range", period)
	}
	remaining, err := ParseClock(clock)
	if err != nil {
		return 0, err
	}
	return int64(period-1)*PeriodSeconds + (PeriodSeconds - remaining), nil
}

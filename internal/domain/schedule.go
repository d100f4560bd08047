package domain

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// DefaultStartTime is suggested for the first activity of an empty day.
const DefaultStartTime = "09:00"

// defaultDurationMinutes is assumed when an activity has no Duration set.
const defaultDurationMinutes = 60

// AddActivity appends act to the date bucket. Unless the append is part of
// a batch edit, the whole bucket is re-sorted by Time afterwards; the sort
// is stable, so entries with equal times keep their relative insertion
// order. Manual reorders are sticky until the next non-batch append.
func AddActivity(list []Activity, act Activity, batch bool) []Activity {
	list = append(list, act)
	if !batch {
		SortByTime(list)
	}
	return list
}

// SortByTime sorts a bucket by its "HH:MM" field. Lexicographic comparison
// is correct for zero-padded 24-hour times.
func SortByTime(list []Activity) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Time < list[j].Time
	})
}

// SightseeingEntry is one row of a batch sightseeing submission.
type SightseeingEntry struct {
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
	Duration string `json:"duration"` // "<float>h"
}

// BatchSightseeing expands a batch of same-day sightseeing entries into
// sequential activities: the first entry starts at startTime, and each
// entry's OWN duration advances the cursor for the next one. Times wrap
// within a 24-hour clock; an entry scheduled past midnight silently wraps
// to a small hour value.
//
// IDs are left empty; the caller assigns them.
func BatchSightseeing(startTime string, entries []SightseeingEntry) []Activity {
	cursor, err := parseClock(startTime)
	if err != nil {
		cursor = 0
	}

	acts := make([]Activity, 0, len(entries))
	for _, e := range entries {
		acts = append(acts, Activity{
			Time:     formatClock(cursor),
			Title:    e.Title,
			Location: e.Location,
			Type:     ActivitySightseeing,
			Duration: e.Duration,
		})
		cursor += DurationMinutes(e.Duration, defaultDurationMinutes)
	}
	return acts
}

// NextDefaultStartTime suggests a start time for a new activity on a day:
// the end time of the day's last activity. For a flight that is the arrival
// time; for anything else, Time plus Duration (60 minutes when absent),
// with minute overflow carried into hours and hours wrapped modulo 24.
// An empty day suggests DefaultStartTime.
func NextDefaultStartTime(list []Activity) string {
	if len(list) == 0 {
		return DefaultStartTime
	}
	last := list[len(list)-1]

	if last.Type == ActivityFlight && last.FlightInfo != nil && last.FlightInfo.ArrivalTime != "" {
		return last.FlightInfo.ArrivalTime
	}

	start, err := parseClock(last.Time)
	if err != nil {
		return DefaultStartTime
	}
	return formatClock(start + DurationMinutes(last.Duration, defaultDurationMinutes))
}

// UpdateActivity replaces the bucket entry matching updated.ID, keeping its
// position. Edits never re-sort: a changed Time does not reposition the
// entry, preserving any manual order. Returns false when no entry matches.
func UpdateActivity(list []Activity, updated Activity) bool {
	for i := range list {
		if list[i].ID == updated.ID {
			list[i] = updated
			return true
		}
	}
	return false
}

// DeleteActivity removes the entry with the given id.
// Returns the (possibly unchanged) bucket and whether a match was removed.
func DeleteActivity(list []Activity, id string) ([]Activity, bool) {
	for i := range list {
		if list[i].ID == id {
			return append(list[:i], list[i+1:]...), true
		}
	}
	return list, false
}

// Reorder moves the entry at from to position to, shifting the
// rest. Degenerate input is a no-op: equal or out-of-range indices, a
// locked list, or a list with fewer than 2 entries (always locked).
func Reorder(list []Activity, from, to int, locked bool) {
	if locked || len(list) < 2 || from == to {
		return
	}
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) {
		return
	}
	moved := list[from]
	if from < to {
		copy(list[from:], list[from+1:to+1])
	} else {
		copy(list[to+1:], list[to:from])
	}
	list[to] = moved
}

// DurationMinutes parses a "<float>h" duration string into minutes, rounded
// to the nearest minute. Empty or malformed input yields fallback.
func DurationMinutes(s string, fallback int) int {
	s = strings.TrimSuffix(strings.TrimSpace(s), "h")
	if s == "" {
		return fallback
	}
	hours, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return int(math.Round(hours * 60))
}

// parseClock converts "HH:MM" into minutes since midnight.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed time %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed time %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time out of range %q", s)
	}
	return h*60 + m, nil
}

// formatClock renders minutes since midnight as "HH:MM", wrapping within a
// 24-hour clock. There is no day rollover tracking.
func formatClock(minutes int) string {
	minutes %= 24 * 60
	if minutes < 0 {
		minutes += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

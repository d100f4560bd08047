package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkramer/wayfare/backend/internal/domain"
)

func act(id, clock, title string) domain.Activity {
	return domain.Activity{ID: id, Time: clock, Title: title, Type: domain.ActivitySightseeing}
}

func times(list []domain.Activity) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.Time
	}
	return out
}

func TestAddActivity_SortsOnAppend(t *testing.T) {
	list := []domain.Activity{act("a", "14:00", "Museum")}

	list = domain.AddActivity(list, act("b", "09:30", "Market"), false)

	assert.Equal(t, []string{"09:30", "14:00"}, times(list))
}

// Equal times keep their relative insertion order: the sort is stable.
func TestAddActivity_DuplicateTimes_StableOrder(t *testing.T) {
	var list []domain.Activity
	list = domain.AddActivity(list, act("a", "10:00", "First"), false)
	list = domain.AddActivity(list, act("b", "10:00", "Second"), false)
	list = domain.AddActivity(list, act("c", "10:00", "Third"), false)

	assert.Equal(t, "First", list[0].Title)
	assert.Equal(t, "Second", list[1].Title)
	assert.Equal(t, "Third", list[2].Title)
}

func TestAddActivity_BatchAppend_NoResort(t *testing.T) {
	list := []domain.Activity{act("a", "14:00", "Museum")}

	list = domain.AddActivity(list, act("b", "09:30", "Market"), true)

	assert.Equal(t, []string{"14:00", "09:30"}, times(list))
}

func TestBatchSightseeing_SequentialTimes(t *testing.T) {
	entries := []domain.SightseeingEntry{
		{Title: "X", Duration: "1h"},
		{Title: "Y", Duration: "0.5h"},
	}

	acts := domain.BatchSightseeing("09:00", entries)

	require.Len(t, acts, 2)
	assert.Equal(t, "09:00", acts[0].Time)
	assert.Equal(t, "10:00", acts[1].Time)
	assert.Equal(t, domain.ActivitySightseeing, acts[0].Type)
}

// Each entry's own duration advances the cursor for the NEXT entry.
func TestBatchSightseeing_CursorUsesOwnDuration(t *testing.T) {
	entries := []domain.SightseeingEntry{
		{Title: "A", Duration: "0.5h"},
		{Title: "B", Duration: "2h"},
		{Title: "C", Duration: "1h"},
	}

	acts := domain.BatchSightseeing("08:00", entries)

	assert.Equal(t, []string{"08:00", "08:30", "10:30"}, times(acts))
}

// Past-midnight scheduling wraps silently to a small hour value.
func TestBatchSightseeing_WrapsPastMidnight(t *testing.T) {
	entries := []domain.SightseeingEntry{
		{Title: "Late", Duration: "2h"},
		{Title: "Later", Duration: "1h"},
	}

	acts := domain.BatchSightseeing("23:30", entries)

	assert.Equal(t, []string{"23:30", "01:30"}, times(acts))
}

func TestNextDefaultStartTime_EmptyDay(t *testing.T) {
	assert.Equal(t, "09:00", domain.NextDefaultStartTime(nil))
}

func TestNextDefaultStartTime_FromLastActivity(t *testing.T) {
	list := []domain.Activity{{ID: "a", Time: "10:00", Duration: "1.5h"}}

	assert.Equal(t, "11:30", domain.NextDefaultStartTime(list))
}

func TestNextDefaultStartTime_DefaultDuration60m(t *testing.T) {
	list := []domain.Activity{{ID: "a", Time: "10:00"}}

	assert.Equal(t, "11:00", domain.NextDefaultStartTime(list))
}

func TestNextDefaultStartTime_MinuteCarryAndHourWrap(t *testing.T) {
	list := []domain.Activity{{ID: "a", Time: "23:45", Duration: "0.5h"}}

	assert.Equal(t, "00:15", domain.NextDefaultStartTime(list))
}

func TestNextDefaultStartTime_FlightUsesArrivalTime(t *testing.T) {
	list := []domain.Activity{{
		ID:   "f",
		Time: "08:00",
		Type: domain.ActivityFlight,
		FlightInfo: &domain.FlightInfo{
			DepartureTime: "08:00",
			ArrivalTime:   "12:45",
		},
	}}

	assert.Equal(t, "12:45", domain.NextDefaultStartTime(list))
}

func TestUpdateActivity_ReplacesInPlace_NoResort(t *testing.T) {
	list := []domain.Activity{act("a", "09:00", "Market"), act("b", "11:00", "Museum")}

	updated := act("a", "18:00", "Night Market")
	ok := domain.UpdateActivity(list, updated)

	require.True(t, ok)
	// Edited Time does not reposition the entry.
	assert.Equal(t, "Night Market", list[0].Title)
	assert.Equal(t, "18:00", list[0].Time)
	assert.Equal(t, "Museum", list[1].Title)
}

func TestUpdateActivity_UnknownID(t *testing.T) {
	list := []domain.Activity{act("a", "09:00", "Market")}

	assert.False(t, domain.UpdateActivity(list, act("zzz", "10:00", "Nope")))
}

func TestDeleteActivity(t *testing.T) {
	list := []domain.Activity{act("a", "09:00", "Market"), act("b", "11:00", "Museum")}

	list, ok := domain.DeleteActivity(list, "a")

	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, "Museum", list[0].Title)
}

func TestDeleteActivity_UnknownID(t *testing.T) {
	list := []domain.Activity{act("a", "09:00", "Market")}

	list, ok := domain.DeleteActivity(list, "zzz")

	assert.False(t, ok)
	assert.Len(t, list, 1)
}

func TestReorder_MovesForwardAndBack(t *testing.T) {
	list := []domain.Activity{act("a", "09:00", "A"), act("b", "10:00", "B"), act("c", "11:00", "C")}

	domain.Reorder(list, 0, 2, false)
	assert.Equal(t, []string{"B", "C", "A"}, titles(list))

	domain.Reorder(list, 2, 0, false)
	assert.Equal(t, []string{"A", "B", "C"}, titles(list))
}

func TestReorder_Degenerate_NoOp(t *testing.T) {
	list := []domain.Activity{act("a", "09:00", "A"), act("b", "10:00", "B")}

	domain.Reorder(list, 1, 1, false)  // drag onto self
	domain.Reorder(list, -1, 0, false) // out of range
	domain.Reorder(list, 0, 5, false)  // out of range

	assert.Equal(t, []string{"A", "B"}, titles(list))
}

func TestReorder_Locked_NoOp(t *testing.T) {
	list := []domain.Activity{act("a", "09:00", "A"), act("b", "10:00", "B")}

	domain.Reorder(list, 0, 1, true)

	assert.Equal(t, []string{"A", "B"}, titles(list))
}

// Lists with fewer than 2 entries are always treated as locked.
func TestReorder_SingleEntry_NoOp(t *testing.T) {
	list := []domain.Activity{act("a", "09:00", "A")}

	domain.Reorder(list, 0, 0, false)

	assert.Equal(t, "A", list[0].Title)
}

func TestDurationMinutes(t *testing.T) {
	assert.Equal(t, 60, domain.DurationMinutes("1h", 0))
	assert.Equal(t, 30, domain.DurationMinutes("0.5h", 0))
	assert.Equal(t, 90, domain.DurationMinutes("1.5h", 0))
	assert.Equal(t, 60, domain.DurationMinutes("", 60))
	assert.Equal(t, 60, domain.DurationMinutes("soon", 60))
}

func titles(list []domain.Activity) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.Title
	}
	return out
}

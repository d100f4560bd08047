package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkramer/wayfare/backend/internal/domain"
)

// multiCityFixture is a two-stop trip: Tokyo 04-01..04-03, Osaka 04-03..04-05.
// 2025-04-03 is the transition day.
func multiCityFixture() domain.Trip {
	return domain.Trip{
		Name:        "Japan Trip",
		Destination: "Tokyo - Osaka",
		StartDate:   "2025-04-01",
		EndDate:     "2025-04-05",
		Type:        domain.TripMulti,
		Stops: []domain.Stop{
			{ID: 1, Destination: "Tokyo", StartDate: "2025-04-01", EndDate: "2025-04-03"},
			{ID: 2, Destination: "Osaka", StartDate: "2025-04-03", EndDate: "2025-04-05"},
		},
	}
}

func TestCalendarDates_InclusiveRange(t *testing.T) {
	dates := domain.CalendarDates("2025-04-01", "2025-04-03")

	require.Len(t, dates, 3)
	assert.Equal(t, domain.Date("2025-04-01"), dates[0])
	assert.Equal(t, domain.Date("2025-04-02"), dates[1])
	assert.Equal(t, domain.Date("2025-04-03"), dates[2])
}

func TestCalendarDates_SingleDay(t *testing.T) {
	dates := domain.CalendarDates("2025-04-01", "2025-04-01")

	require.Len(t, dates, 1)
	assert.Equal(t, domain.Date("2025-04-01"), dates[0])
}

// Contiguous, gap-free, duplicate-free across a month boundary.
func TestCalendarDates_MonthBoundary(t *testing.T) {
	dates := domain.CalendarDates("2025-01-30", "2025-02-02")

	require.Len(t, dates, 4)
	seen := map[domain.Date]bool{}
	for i, d := range dates {
		assert.False(t, seen[d], "duplicate date %s", d)
		seen[d] = true
		if i > 0 {
			assert.Equal(t, dates[i-1].AddDays(1), d, "gap before %s", d)
		}
	}
	assert.Equal(t, domain.Date("2025-02-02"), dates[3])
}

func TestCalendarDates_EndBeforeStart_Empty(t *testing.T) {
	assert.Empty(t, domain.CalendarDates("2025-04-03", "2025-04-01"))
}

func TestCalendarDates_Malformed_Empty(t *testing.T) {
	assert.Empty(t, domain.CalendarDates("not-a-date", "2025-04-01"))
}

func TestDayOrdinal_StartIsDayOne(t *testing.T) {
	assert.Equal(t, 1, domain.DayOrdinal("2025-04-01", "2025-04-01"))
}

func TestDayOrdinal_CountsFromStart(t *testing.T) {
	assert.Equal(t, 3, domain.DayOrdinal("2025-04-01", "2025-04-03"))
}

// A date before the start still yields a positive ordinal: the difference is
// taken as an absolute value.
func TestDayOrdinal_BeforeStart_AbsoluteDifference(t *testing.T) {
	assert.Equal(t, 2, domain.DayOrdinal("2025-04-03", "2025-04-02"))
}

func TestActiveLocation_SingleTrip_TruncatesAtComma(t *testing.T) {
	trip := domain.Trip{Type: domain.TripSingle, Destination: "Tokyo, Japan"}

	loc := domain.ActiveLocation(trip, "2025-04-01")

	assert.Equal(t, "Tokyo", loc.Place)
	assert.False(t, loc.Transition)
}

func TestActiveLocation_TransitionDay_ReturnsPair(t *testing.T) {
	loc := domain.ActiveLocation(multiCityFixture(), "2025-04-03")

	assert.True(t, loc.Transition)
	assert.Equal(t, "Tokyo", loc.Origin)
	assert.Equal(t, "Osaka", loc.Place)
	assert.Equal(t, "Tokyo → Osaka", loc.String())
}

func TestActiveLocation_WithinStopRange(t *testing.T) {
	loc := domain.ActiveLocation(multiCityFixture(), "2025-04-02")

	assert.False(t, loc.Transition)
	assert.Equal(t, "Tokyo", loc.Place)
}

func TestActiveLocation_TripEnd_LastStop(t *testing.T) {
	loc := domain.ActiveLocation(multiCityFixture(), "2025-04-05")

	assert.False(t, loc.Transition)
	assert.Equal(t, "Osaka", loc.Place)
}

// A date outside every stop range falls back to the trip destination string.
func TestActiveLocation_NoMatch_FallsBackToDestination(t *testing.T) {
	trip := multiCityFixture()

	loc := domain.ActiveLocation(trip, "2025-04-09")

	assert.Equal(t, "Tokyo - Osaka", loc.Place)
}

func TestWeatherQueryCity_TransitionDay_ArrivalCity(t *testing.T) {
	assert.Equal(t, "Osaka", domain.WeatherQueryCity(multiCityFixture(), "2025-04-03"))
}

func TestWeatherQueryCity_NormalDay(t *testing.T) {
	assert.Equal(t, "Tokyo", domain.WeatherQueryCity(multiCityFixture(), "2025-04-01"))
}

func TestLinkStopBoundary_EndDateEdit_PropagatesToNextStart(t *testing.T) {
	trip := multiCityFixture()

	domain.LinkStopBoundary(trip.Stops, 0, domain.StopEndDate, "2025-04-04")

	assert.Equal(t, domain.Date("2025-04-04"), trip.Stops[0].EndDate)
	assert.Equal(t, domain.Date("2025-04-04"), trip.Stops[1].StartDate)
	// One hop only: the neighbour's own end date is untouched.
	assert.Equal(t, domain.Date("2025-04-05"), trip.Stops[1].EndDate)
}

func TestLinkStopBoundary_StartDateEdit_NoPropagation(t *testing.T) {
	trip := multiCityFixture()

	domain.LinkStopBoundary(trip.Stops, 1, domain.StopStartDate, "2025-04-04")

	assert.Equal(t, domain.Date("2025-04-04"), trip.Stops[1].StartDate)
	assert.Equal(t, domain.Date("2025-04-03"), trip.Stops[0].EndDate)
}

func TestLinkStopBoundary_LastStopEndDate_NoNeighbour(t *testing.T) {
	trip := multiCityFixture()

	domain.LinkStopBoundary(trip.Stops, 1, domain.StopEndDate, "2025-04-06")

	assert.Equal(t, domain.Date("2025-04-06"), trip.Stops[1].EndDate)
}

func TestLinkStopBoundary_OutOfRange_NoOp(t *testing.T) {
	trip := multiCityFixture()
	before := append([]domain.Stop(nil), trip.Stops...)

	domain.LinkStopBoundary(trip.Stops, 5, domain.StopEndDate, "2025-04-06")

	assert.Equal(t, before, trip.Stops)
}

func TestRenumberStops_Dense(t *testing.T) {
	stops := []domain.Stop{{ID: 3}, {ID: 7}, {ID: 1}}

	domain.RenumberStops(stops)

	assert.Equal(t, 1, stops[0].ID)
	assert.Equal(t, 2, stops[1].ID)
	assert.Equal(t, 3, stops[2].ID)
}

func TestJoinedDestination(t *testing.T) {
	assert.Equal(t, "Tokyo - Osaka", domain.JoinedDestination(multiCityFixture().Stops))
	assert.Equal(t, "", domain.JoinedDestination(nil))
}

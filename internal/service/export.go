package service

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tkramer/wayfare/backend/internal/domain"
	"github.com/tkramer/wayfare/backend/internal/repo"
)

// ExportService renders the active trip as shareable plain text and builds
// calendar deep links for individual activities.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided TripRepo.
func NewExportService(r repo.TripRepo) *ExportService {
	return &ExportService{trips: r}
}

// PlainText renders the active trip with RenderPlainText.
func (s *ExportService) PlainText() (string, error) {
	trip, err := s.trips.LoadActive()
	if err != nil {
		return "", fmt.Errorf("service.ExportService.PlainText: %w", err)
	}
	return RenderPlainText(trip), nil
}

// CalendarLink builds a calendar deep link for one activity of the active trip.
func (s *ExportService) CalendarLink(date domain.Date, activityID string) (string, error) {
	trip, err := s.trips.LoadActive()
	if err != nil {
		return "", fmt.Errorf("service.ExportService.CalendarLink: %w", err)
	}
	for _, act := range trip.Activities[date] {
		if act.ID == activityID {
			return CalendarLinkFor(act, date), nil
		}
	}
	return "", fmt.Errorf("service.ExportService.CalendarLink: activity %s: %w", activityID, domain.ErrNotFound)
}

// RenderPlainText renders a trip as a deterministic text document: header
// block, stop list for multi-city trips, itinerary grouped by ascending date
// (only non-empty days), expense ledger in insertion order with per-currency
// totals, and the packing list split into unchecked-then-checked sections.
//
// The layout is byte-exact for a given trip; golden tests depend on it.
func RenderPlainText(trip domain.Trip) string {
	var b strings.Builder

	rule := strings.Repeat("=", 40)
	b.WriteString(rule + "\n")
	b.WriteString(trip.Name + "\n")
	b.WriteString("Destination: " + trip.Destination + "\n")
	b.WriteString(fmt.Sprintf("Dates: %s ~ %s\n", trip.StartDate, trip.EndDate))
	b.WriteString(rule + "\n")

	if trip.Type == domain.TripMulti && len(trip.Stops) > 0 {
		b.WriteString("\nStops:\n")
		for _, stop := range trip.Stops {
			b.WriteString(fmt.Sprintf("%d. %s (%s ~ %s)\n", stop.ID, stop.Destination, stop.StartDate, stop.EndDate))
		}
	}

	writeItinerary(&b, trip)
	writeExpenses(&b, trip.Expenses)
	writePacking(&b, trip.PackingList)

	return b.String()
}

// writeItinerary lists non-empty days in ascending date order under
// "[YYYY-MM-DD] DAY n" section headers.
func writeItinerary(b *strings.Builder, trip domain.Trip) {
	dates := make([]domain.Date, 0, len(trip.Activities))
	for d, acts := range trip.Activities {
		if len(acts) > 0 {
			dates = append(dates, d)
		}
	}
	if len(dates) == 0 {
		return
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	b.WriteString("\nItinerary:\n")
	for _, d := range dates {
		b.WriteString(fmt.Sprintf("\n[%s] DAY %d", d, domain.DayOrdinal(trip.StartDate, d)))
		if theme := trip.Themes[d]; theme != "" {
			b.WriteString(" - " + theme)
		}
		b.WriteString("\n")
		for _, act := range trip.Activities[d] {
			b.WriteString(activityLine(act) + "\n")
		}
	}
}

// activityLine renders one itinerary entry. Flights print their departure
// time rather than the generic time field, so the derived value is not
// duplicated, plus the route and elapsed duration.
func activityLine(act domain.Activity) string {
	if act.Type == domain.ActivityFlight && act.FlightInfo != nil {
		fi := act.FlightInfo
		line := fmt.Sprintf("%s - %s [%s %s-%s", fi.DepartureTime, act.Title, fi.FlightNumber, fi.DepartureCode, fi.ArrivalCode)
		if fi.Duration != "" {
			line += ", " + fi.Duration
		}
		return line + "]"
	}

	line := fmt.Sprintf("%s - %s", act.Time, act.Title)
	if act.Location != "" {
		line += " (@" + act.Location + ")"
	}
	return line
}

// writeExpenses prints the ledger in insertion order, then one total per
// currency in order of first appearance.
func writeExpenses(b *strings.Builder, expenses []domain.Expense) {
	if len(expenses) == 0 {
		return
	}

	b.WriteString("\nExpenses:\n")
	totals := map[string]decimal.Decimal{}
	var currencies []string
	for _, e := range expenses {
		b.WriteString(fmt.Sprintf("- %s: %s %s (%s)\n", e.Category, e.Amount.String(), e.Currency, e.Date))
		if _, seen := totals[e.Currency]; !seen {
			currencies = append(currencies, e.Currency)
		}
		totals[e.Currency] = totals[e.Currency].Add(e.Amount)
	}
	for _, c := range currencies {
		b.WriteString(fmt.Sprintf("Total: %s %s\n", totals[c].String(), c))
	}
}

// writePacking prints unchecked items first, then checked ones, with
// distinct glyph markers.
func writePacking(b *strings.Builder, items []domain.PackingItem) {
	if len(items) == 0 {
		return
	}

	b.WriteString("\nPacking List:\n")
	for _, item := range items {
		if !item.Checked {
			b.WriteString("[ ] " + item.Name + "\n")
		}
	}
	for _, item := range items {
		if item.Checked {
			b.WriteString("[x] " + item.Name + "\n")
		}
	}
}

const calendarBaseURL = "https://calendar.google.com/calendar/render"

// CalendarLinkFor builds a Google Calendar deep link for one activity on a
// given date. Normal activities span their start time plus duration
// ("<float>h", default 1h) read as UTC wall-clock; flights use their own
// departure/arrival stamps shifted by the endpoint UTC offsets.
func CalendarLinkFor(act domain.Activity, date domain.Date) string {
	var start, end time.Time

	if act.Type == domain.ActivityFlight && act.FlightInfo != nil {
		fi := act.FlightInfo
		start = stampUTC(fi.DepartureDate, fi.DepartureTime).Add(-time.Duration(fi.DepartureTimezone) * time.Hour)
		end = stampUTC(fi.ArrivalDate, fi.ArrivalTime).Add(-time.Duration(fi.ArrivalTimezone) * time.Hour)
	} else {
		start = stampUTC(date, act.Time)
		end = start.Add(time.Duration(domain.DurationMinutes(act.Duration, 60)) * time.Minute)
	}

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", act.Title)
	params.Set("dates", start.Format("20060102T150405Z")+"/"+end.Format("20060102T150405Z"))
	if act.Description != "" {
		params.Set("details", act.Description)
	}
	if act.Location != "" {
		params.Set("location", act.Location)
	}
	return calendarBaseURL + "?" + params.Encode()
}

// stampUTC reads date+clock as a literal UTC wall-clock instant.
// Malformed input collapses to the date at midnight, or the zero time.
func stampUTC(d domain.Date, clock string) time.Time {
	if t, err := time.Parse(domain.DateLayout+" 15:04", string(d)+" "+clock); err == nil {
		return t
	}
	t, _ := d.Time()
	return t
}

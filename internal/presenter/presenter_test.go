package presenter

import (
	"database/sql"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-seating/internal/model"
	"github.com/iliyamo/event-seating/internal/repository"
	"github.com/iliyamo/event-seating/internal/service"
	"github.com/iliyamo/event-seating/internal/stats"
)

func sampleEvent() model.Event {
	return model.Event{
		ID:           7,
		Name:         "AI Summit",
		Description:  sql.NullString{String: "Talks", Valid: true},
		Venue:        "Hall 1",
		Date:         time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		StartTime:    sql.NullString{String: "19:30:00", Valid: true},
		SeatMapImage: sql.NullString{String: "seat_maps/hall1.png", Valid: true},
		IsActive:     true,
	}
}

func TestClock(t *testing.T) {
	got := Clock(sql.NullString{String: "19:30:00", Valid: true}, ClockLayout)
	require.NotNil(t, got)
	assert.Equal(t, "19:30", *got)

	got = Clock(sql.NullString{String: "09:05:00", Valid: true}, MapClockLayout)
	require.NotNil(t, got)
	assert.Equal(t, "09:05 AM", *got)

	got = Clock(sql.NullString{String: "21:15", Valid: true}, MapClockLayout)
	require.NotNil(t, got)
	assert.Equal(t, "09:15 PM", *got)

	assert.Nil(t, Clock(sql.NullString{}, ClockLayout))
	assert.Nil(t, Clock(sql.NullString{String: "late", Valid: true}, ClockLayout))
}

func TestTruncate(t *testing.T) {
	exact := strings.Repeat("a", 150)
	assert.Equal(t, exact, Truncate(exact, DescriptionLimit))

	long := strings.Repeat("b", 151)
	got := Truncate(long, DescriptionLimit)
	assert.Equal(t, strings.Repeat("b", 150)+"...", got)

	multi := strings.Repeat("é", 151)
	assert.Equal(t, strings.Repeat("é", 150)+"...", Truncate(multi, DescriptionLimit))
}

func TestMediaURL(t *testing.T) {
	got := MediaURL("/media/", sql.NullString{String: "seat_maps/a.png", Valid: true})
	require.NotNil(t, got)
	assert.Equal(t, "/media/seat_maps/a.png", *got)
	assert.Nil(t, MediaURL("/media/", sql.NullString{}))
	assert.Nil(t, MediaURL("/media/", sql.NullString{String: " ", Valid: true}))
}

func TestEventSearchBody(t *testing.T) {
	ev := sampleEvent()
	ev.StartTime = sql.NullString{}
	res := &service.EventSearchResult{
		Query:      "AI",
		DateFilter: repository.DateFilterAll,
		Events: []service.EventOverview{{
			Event:     ev,
			Occupancy: stats.Compute(30, 15),
			Past:      true,
		}},
	}

	raw, err := json.Marshal(EventSearch(res))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, "all", body["date_filter"])

	item := body["results"].([]any)[0].(map[string]any)
	assert.Equal(t, "2026-04-05", item["date"])
	assert.Nil(t, item["time"])
	assert.Equal(t, float64(30), item["total_seats"])
	assert.Equal(t, float64(15), item["available_seats"])
	assert.Equal(t, 50.0, item["occupancy_rate"])
	assert.Equal(t, "past", item["status"])
	assert.Equal(t, "/event/7/map/", item["url"])
	assert.NotContains(t, body, "error")
}

func TestAttendeeSearchBody(t *testing.T) {
	short := AttendeeSearch(&service.AttendeeSearchResult{TooShort: true, Query: "a"})
	assert.Equal(t, ShortQueryMessage, short.Message)
	assert.True(t, short.Success)
	assert.Empty(t, short.Results)
	assert.NotNil(t, short.Results)

	res := AttendeeSearch(&service.AttendeeSearchResult{
		Query: "mor",
		Matches: []repository.AttendeeMatch{{
			Attendee:    model.Attendee{ID: 3, Name: "Alex Morgan", TicketNumber: "TKT-0003"},
			Seat:        model.Seat{Row: "B", SeatNumber: "12", X: 40.5, Y: 22},
			SectionName: "VIP",
			EventID:     7,
			EventName:   "AI Summit",
			EventDate:   time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		}},
	})
	require.Len(t, res.Results, 1)
	r := res.Results[0]
	assert.Equal(t, "Row B, Seat 12", r.SeatInfo)
	assert.Equal(t, "2026-04-05", r.EventDate)
	assert.Equal(t, Coordinates{X: 40.5, Y: 22}, r.SeatCoordinates)
	assert.Equal(t, 1, res.Count)
	assert.Empty(t, res.Message)
}

func TestMapDataUsesLongFormats(t *testing.T) {
	ev := sampleEvent()
	body := MapData(&ev, "/media/")
	assert.Equal(t, "Apr 05, 2026", body.Event.Date)
	require.NotNil(t, body.Event.Time)
	assert.Equal(t, "07:30 PM", *body.Event.Time)
	require.NotNil(t, body.Event.SeatMapURL)
	assert.Equal(t, "/media/seat_maps/hall1.png", *body.Event.SeatMapURL)
}

func TestEventDetailKeepsFullDescription(t *testing.T) {
	ev := sampleEvent()
	ev.Description = sql.NullString{String: strings.Repeat("x", 200), Valid: true}
	body := EventDetail(&service.EventOverview{Event: ev, Occupancy: stats.Compute(0, 0)})
	require.NotNil(t, body.Description)
	assert.Len(t, *body.Description, 200)
	assert.Equal(t, StatusUpcoming, body.Status)
	assert.Equal(t, 0.0, body.OccupancyRate)
	require.NotNil(t, body.Time)
	assert.Equal(t, "19:30", *body.Time)
}

func TestStatisticsBody(t *testing.T) {
	st := &service.EventStatistics{
		Event: sampleEvent(),
		Sections: []service.SectionOccupancy{
			{Section: model.Section{ID: 1, Name: "VIP", Color: "#ff0000"}, Occupancy: stats.Compute(10, 4)},
		},
		Overall: stats.Compute(10, 4),
	}
	raw, err := json.Marshal(Statistics(st))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	overall := body["overall_statistics"].(map[string]any)
	assert.Equal(t, 40.0, overall["occupancy_rate"])
	sec := body["sections_statistics"].([]any)[0].(map[string]any)
	assert.Equal(t, "#ff0000", sec["color"])
	assert.Equal(t, float64(6), sec["available_seats"])
	assert.Equal(t, "Talks", body["event"].(map[string]any)["description"])
}

func TestSeatInfoOmitsAttendeeWhenFree(t *testing.T) {
	free := SeatInfo(&repository.SeatDetail{Seat: model.Seat{ID: 1, Row: "A", SeatNumber: "1", IsAvailable: true}})
	raw, err := json.Marshal(free)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, false, body["occupied"])
	assert.NotContains(t, body, "attendee_name")
	assert.NotContains(t, body, "ticket_number")
	assert.NotContains(t, body, "attendee_id")

	taken := SeatInfo(&repository.SeatDetail{Seat: model.Seat{
		ID:       2,
		Attendee: &model.Attendee{ID: 9, Name: "Sam Lee", TicketNumber: "TKT-9"},
	}})
	assert.True(t, taken.Occupied)
	require.NotNil(t, taken.AttendeeID)
	assert.Equal(t, uint64(9), *taken.AttendeeID)
	assert.Equal(t, "Sam Lee", *taken.AttendeeName)
}

func TestIndexPaginatorLinks(t *testing.T) {
	page := &service.EventPage{Number: 2, NumPages: 3, Total: 30, Events: []service.EventOverview{{Event: sampleEvent()}}}
	m := Index(page, "jazz night", repository.DateFilterUpcoming)

	assert.True(t, m.Page.HasPrevious)
	assert.True(t, m.Page.HasNext)
	assert.Equal(t, "/?date_filter=upcoming&page=1&search=jazz+night", m.Page.PreviousLink)
	assert.Equal(t, "/?date_filter=upcoming&page=3&search=jazz+night", m.Page.NextLink)
	assert.Equal(t, int64(30), m.TotalEvents)
	require.Len(t, m.Events, 1)
	assert.Equal(t, "07:30 PM", m.Events[0].Time)

	selected := 0
	for _, f := range m.Filters {
		if f.Selected {
			selected++
			assert.Equal(t, "upcoming", f.Value)
		}
	}
	assert.Equal(t, 1, selected)
}

func TestSeatMapPage(t *testing.T) {
	m := &service.SeatMap{
		Event: sampleEvent(),
		Sections: []service.SectionSeats{{
			Section: model.Section{ID: 1, Name: "VIP", Color: "#00f"},
			Seats: []model.Seat{
				{ID: 1, Row: "A", SeatNumber: "1", X: 10, Y: 20, IsAvailable: true, Attendee: &model.Attendee{Name: "Ana"}},
				{ID: 2, Row: "A", SeatNumber: "2", X: 12, Y: 20, IsAvailable: true},
			},
		}},
		Occupancy: stats.Compute(2, 1),
	}
	page := SeatMap(m, "/media/")
	assert.Equal(t, "/media/seat_maps/hall1.png", page.SeatMapURL)
	require.Len(t, page.Sections, 1)
	require.Len(t, page.Sections[0].Seats, 2)
	assert.True(t, page.Sections[0].Seats[0].Occupied)
	assert.Equal(t, "Ana", page.Sections[0].Seats[0].Attendee)
	assert.False(t, page.Sections[0].Seats[1].Occupied)
	assert.Equal(t, 50.0, page.Occupancy.OccupancyRate)
}

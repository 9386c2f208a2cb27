package model

import (
	"database/sql"
	"time"
)

// Event is a scheduled happening with a venue, a date and seating.  It owns
// zero or more sections; deleting an event cascades to its sections.
//
// Fields:
//
//	ID           – primary key identifier.
//	Name         – display name.
//	Description  – optional free text.
//	Venue        – where the event takes place.
//	Date         – calendar day of the event (time of day ignored).
//	StartTime    – optional start time stored as "HH:MM:SS".
//	SeatMapImage – optional relative path of the seat-map image.
//	IsActive     – inactive events are invisible to every public read.
//	CreatedAt    – creation timestamp.
//	UpdatedAt    – last update timestamp.
type Event struct {
	ID           uint64         // events.id
	Name         string         // events.name
	Description  sql.NullString // events.description (nullable)
	Venue        string         // events.venue
	Date         time.Time      // events.date
	StartTime    sql.NullString // events.time (nullable)
	SeatMapImage sql.NullString // events.seat_map_image (nullable)
	IsActive     bool           // events.is_active
	CreatedAt    time.Time      // events.created_at
	UpdatedAt    time.Time      // events.updated_at
}

// IsPast reports whether the event's date lies strictly before the calendar
// day of now, as seen in now's location.  The result is never persisted.
func (e Event) IsPast(now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, e.Date.Location())
	return DateOnly(e.Date).Before(today)
}

// DateOnly truncates t to midnight of its own calendar day, keeping the location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

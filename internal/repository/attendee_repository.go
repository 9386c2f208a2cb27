package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/event-seating/internal/model"
)

// AttendeeSearchQuery matches attendees by name or ticket number.  EventID
// optionally restricts matches to one event.
type AttendeeSearchQuery struct {
	Text    string
	EventID *uint64
	Limit   int
}

// AttendeeMatch is an attendee joined with the seat, section and event it
// belongs to.  Seat.Attendee is left nil.
type AttendeeMatch struct {
	model.Attendee
	Seat        model.Seat
	SectionName string
	EventID     uint64
	EventName   string
	EventDate   time.Time
}

// AttendeeRepo provides read access to attendees.
type AttendeeRepo struct {
	db *sql.DB
}

// NewAttendeeRepo constructs an AttendeeRepo with the given DB handle.
func NewAttendeeRepo(db *sql.DB) *AttendeeRepo {
	return &AttendeeRepo{db: db}
}

// Search returns attendees of active events whose name or ticket number
// contains q.Text, ordered by attendee name.
func (r *AttendeeRepo) Search(ctx context.Context, q AttendeeSearchQuery) ([]AttendeeMatch, error) {
	p := containsPattern(q.Text)
	query := `SELECT a.id, a.name, a.email, a.phone, a.ticket_number,
	                 s.id, s.section_id, s.seat_number, s.row_label, s.x_coordinate, s.y_coordinate, s.is_available,
	                 sec.name, e.id, e.name, e.date
	          FROM attendees a
	          JOIN seats s      ON s.id = a.seat_id
	          JOIN sections sec ON sec.id = s.section_id
	          JOIN events e     ON e.id = sec.event_id
	          WHERE e.is_active = 1
	            AND (LOWER(a.name) LIKE ? OR LOWER(a.ticket_number) LIKE ?)`
	args := []any{p, p}
	if q.EventID != nil {
		query += `
	            AND e.id = ?`
		args = append(args, *q.EventID)
	}
	query += `
	          ORDER BY a.name ASC`
	if q.Limit > 0 {
		query += `
	          LIMIT ?`
		args = append(args, q.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AttendeeMatch, 0)
	for rows.Next() {
		var m AttendeeMatch
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Email, &m.Phone, &m.TicketNumber,
			&m.Seat.ID, &m.Seat.SectionID, &m.Seat.SeatNumber, &m.Seat.Row, &m.Seat.X, &m.Seat.Y, &m.Seat.IsAvailable,
			&m.SectionName, &m.EventID, &m.EventName, &m.EventDate,
		); err != nil {
			return nil, err
		}
		m.SeatID = m.Seat.ID
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

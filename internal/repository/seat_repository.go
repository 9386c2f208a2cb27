package repository // repository defines data access for seats

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel comparisons

	"github.com/iliyamo/event-seating/internal/model"
)

// SeatDetail is a seat resolved together with its section and active event.
type SeatDetail struct {
	model.Seat
	SectionName string
	EventID     uint64
	EventName   string
}

// SeatRepo provides methods to read seats in the database.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// ListByEvent retrieves every seat of an event with its attendee, if any, in
// one query.  Seats are ordered by section, row label then seat number.
func (r *SeatRepo) ListByEvent(ctx context.Context, eventID uint64) ([]model.Seat, error) {
	const q = `SELECT s.id, s.section_id, s.seat_number, s.row_label, s.x_coordinate, s.y_coordinate, s.is_available,
	                  a.id, a.name, a.email, a.phone, a.ticket_number
	           FROM seats s
	           JOIN sections sec     ON sec.id = s.section_id
	           LEFT JOIN attendees a ON a.seat_id = s.id
	           WHERE sec.event_id = ?
	           ORDER BY s.section_id, s.row_label, s.seat_number`
	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Seat
	for rows.Next() {
		var (
			s  model.Seat
			ao attendeeColumns
		)
		if err := rows.Scan(
			&s.ID, &s.SectionID, &s.SeatNumber, &s.Row, &s.X, &s.Y, &s.IsAvailable,
			&ao.id, &ao.name, &ao.email, &ao.phone, &ao.ticket,
		); err != nil {
			return nil, err
		}
		s.Attendee = ao.attendee(s.ID)
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetActiveDetail retrieves a seat with its section, event and attendee.  It
// returns ErrSeatNotFound when the seat is missing or its event is inactive.
func (r *SeatRepo) GetActiveDetail(ctx context.Context, id uint64) (*SeatDetail, error) {
	const q = `SELECT s.id, s.section_id, s.seat_number, s.row_label, s.x_coordinate, s.y_coordinate, s.is_available,
	                  sec.name, e.id, e.name,
	                  a.id, a.name, a.email, a.phone, a.ticket_number
	           FROM seats s
	           JOIN sections sec     ON sec.id = s.section_id
	           JOIN events e         ON e.id = sec.event_id
	           LEFT JOIN attendees a ON a.seat_id = s.id
	           WHERE s.id = ? AND e.is_active = 1`
	var (
		d  SeatDetail
		ao attendeeColumns
	)
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.ID, &d.SectionID, &d.SeatNumber, &d.Row, &d.X, &d.Y, &d.IsAvailable,
		&d.SectionName, &d.EventID, &d.EventName,
		&ao.id, &ao.name, &ao.email, &ao.phone, &ao.ticket,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	d.Attendee = ao.attendee(d.ID)
	return &d, nil
}

// attendeeColumns receives the nullable side of a LEFT JOIN on attendees.
type attendeeColumns struct {
	id     sql.NullInt64
	name   sql.NullString
	email  sql.NullString
	phone  sql.NullString
	ticket sql.NullString
}

func (c attendeeColumns) attendee(seatID uint64) *model.Attendee {
	if !c.id.Valid {
		return nil
	}
	return &model.Attendee{
		ID:           uint64(c.id.Int64),
		SeatID:       seatID,
		Name:         c.name.String,
		Email:        c.email.String,
		Phone:        c.phone.String,
		TicketNumber: c.ticket.String,
	}
}

package model

import "time"

// Attendee is a person assigned to exactly one seat.  TicketNumber is
// globally unique; removing the seat removes the attendee.
type Attendee struct {
	ID           uint64    // attendees.id
	SeatID       uint64    // attendees.seat_id (unique)
	Name         string    // attendees.name
	Email        string    // attendees.email
	Phone        string    // attendees.phone (may be empty)
	TicketNumber string    // attendees.ticket_number
	CreatedAt    time.Time // attendees.created_at
	UpdatedAt    time.Time // attendees.updated_at
}

package model

// Seat describes an addressable position within a section.  X and Y are
// percentages in [0,100] relative to the event's seat-map image.  Seats are
// unique by (section_id, seat_number, row_label).
//
// IsAvailable is an administrative flag.  Occupancy is a separate fact derived
// only from a linked attendee; the two are never reconciled here.
type Seat struct {
	ID          uint64    // seats.id
	SectionID   uint64    // seats.section_id
	SeatNumber  string    // seats.seat_number
	Row         string    // seats.row_label
	X           float64   // seats.x_coordinate
	Y           float64   // seats.y_coordinate
	IsAvailable bool      // seats.is_available
	Attendee    *Attendee // linked attendee, nil when the seat is free
}

// Occupied reports whether an attendee is linked to the seat.
func (s Seat) Occupied() bool {
	return s.Attendee != nil
}

// InBounds reports whether both coordinates lie within [0,100].
func (s Seat) InBounds() bool {
	return s.X >= 0 && s.X <= 100 && s.Y >= 0 && s.Y <= 100
}

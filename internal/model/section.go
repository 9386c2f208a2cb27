package model

// Section is a named subdivision of an event's seating (VIP, Balcony...).
// The (event_id, name) pair is unique and seats cascade on delete.
type Section struct {
	ID       uint64 // sections.id
	EventID  uint64 // sections.event_id
	Name     string // sections.name
	Color    string // sections.color, hex colour used on the map
	Capacity uint32 // sections.capacity, declared only
}

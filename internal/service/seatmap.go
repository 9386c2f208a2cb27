package service

import (
	"context"
	"fmt"

	"github.com/iliyamo/event-seating/internal/model"
	"github.com/iliyamo/event-seating/internal/stats"
)

// SectionSeats is a section with its seats in row/number order.
type SectionSeats struct {
	Section model.Section
	Seats   []model.Seat
}

// SeatMap is everything needed to draw an event's seat map.  Unplaced counts
// seats whose coordinates fall outside the image; they are left out of
// Sections but still counted in Occupancy.
type SeatMap struct {
	Event     model.Event
	Sections  []SectionSeats
	Occupancy stats.Occupancy
	Unplaced  int
}

// SeatMap assembles sections, seats and attendees of an active event in
// three queries regardless of the number of seats.  Totals count seats
// flagged available; occupancy counts seats with an attendee.
func (c *Catalog) SeatMap(ctx context.Context, id uint64) (*SeatMap, error) {
	ev, err := c.events.GetActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", id, err)
	}
	sections, err := c.sections.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("sections for event %d: %w", id, err)
	}
	seats, err := c.seats.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("seats for event %d: %w", id, err)
	}

	bySection := make(map[uint64][]model.Seat, len(sections))
	total, occupied, unplaced := 0, 0, 0
	for _, s := range seats {
		if s.InBounds() {
			bySection[s.SectionID] = append(bySection[s.SectionID], s)
		} else {
			unplaced++
		}
		if s.IsAvailable {
			total++
		}
		if s.Occupied() {
			occupied++
		}
	}

	m := &SeatMap{Event: *ev, Sections: make([]SectionSeats, 0, len(sections)), Unplaced: unplaced}
	for _, sec := range sections {
		list := bySection[sec.ID]
		if list == nil {
			list = []model.Seat{}
		}
		m.Sections = append(m.Sections, SectionSeats{Section: sec, Seats: list})
	}
	m.Occupancy = stats.Compute(total, occupied)
	return m, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/iliyamo/event-seating/internal/model"
	"github.com/iliyamo/event-seating/internal/stats"
)

// SectionOccupancy is the occupancy of one section.
type SectionOccupancy struct {
	Section   model.Section
	Occupancy stats.Occupancy
}

// EventStatistics holds the per-section figures and their sum.
type EventStatistics struct {
	Event    model.Event
	Overall  stats.Occupancy
	Sections []SectionOccupancy
}

// EventStatistics computes occupancy per section of an active event.  The
// overall figure is the sum of the sections, never an independent count.
func (c *Catalog) EventStatistics(ctx context.Context, id uint64) (*EventStatistics, error) {
	ev, err := c.events.GetActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", id, err)
	}
	rows, err := c.sections.StatsByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("section statistics for event %d: %w", id, err)
	}

	out := &EventStatistics{Event: *ev, Sections: make([]SectionOccupancy, 0, len(rows))}
	parts := make([]stats.Occupancy, 0, len(rows))
	for _, r := range rows {
		occ := stats.Compute(r.TotalSeats, r.OccupiedSeats)
		out.Sections = append(out.Sections, SectionOccupancy{Section: r.Section, Occupancy: occ})
		parts = append(parts, occ)
	}
	out.Overall = stats.Sum(parts...)
	return out, nil
}

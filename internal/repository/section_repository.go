package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/event-seating/internal/model"
)

// SectionStats is a section with its raw seat counts: seats flagged
// available and attendees linked through the section's seats.
type SectionStats struct {
	model.Section
	TotalSeats    int
	OccupiedSeats int
}

// SectionRepo provides read access to sections.
type SectionRepo struct {
	db *sql.DB
}

// NewSectionRepo constructs a SectionRepo with the given DB handle.
func NewSectionRepo(db *sql.DB) *SectionRepo {
	return &SectionRepo{db: db}
}

// ListByEvent returns every section of an event ordered by name.
func (r *SectionRepo) ListByEvent(ctx context.Context, eventID uint64) ([]model.Section, error) {
	const q = `SELECT id, event_id, name, color, capacity
	           FROM sections
	           WHERE event_id = ?
	           ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Section, 0)
	for rows.Next() {
		var s model.Section
		if err := rows.Scan(&s.ID, &s.EventID, &s.Name, &s.Color, &s.Capacity); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// StatsByEvent aggregates seat counts per section of an event in a single
// grouped query, ordered by section name.
func (r *SectionRepo) StatsByEvent(ctx context.Context, eventID uint64) ([]SectionStats, error) {
	const q = `SELECT sec.id, sec.event_id, sec.name, sec.color, sec.capacity,
	                  COUNT(CASE WHEN s.is_available = 1 THEN s.id END) AS total_seats,
	                  COUNT(a.id) AS occupied_seats
	           FROM sections sec
	           LEFT JOIN seats s     ON s.section_id = sec.id
	           LEFT JOIN attendees a ON a.seat_id = s.id
	           WHERE sec.event_id = ?
	           GROUP BY sec.id
	           ORDER BY sec.name`
	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SectionStats, 0)
	for rows.Next() {
		var s SectionStats
		if err := rows.Scan(
			&s.ID, &s.EventID, &s.Name, &s.Color, &s.Capacity,
			&s.TotalSeats, &s.OccupiedSeats,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

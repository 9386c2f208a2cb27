// Package repository contains data access logic separated from HTTP handlers.
// This file holds the event queries: filtered search with seat aggregates,
// the matching count for pagination and single event lookups.  Every query
// restricts to active events.
package repository

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel comparisons
	"strings"      // strings builds WHERE clauses
	"time"         // time carries the reference day for date filters

	"github.com/iliyamo/event-seating/internal/model"
)

// EventSearchQuery defines filters & pagination for listing events.  Text is
// matched case-insensitively against name, description and venue; an empty
// Text applies no text filter.  Today anchors the date filter.
type EventSearchQuery struct {
	Text       string
	DateFilter DateFilter
	Today      time.Time
	Limit      int
	Offset     int
}

// EventSummary is an event together with its raw seat counts.  TotalSeats
// counts seats flagged available, OccupiedSeats counts linked attendees.
type EventSummary struct {
	model.Event
	TotalSeats    int
	OccupiedSeats int
}

// EventRepo provides read access to events.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo with the given DB handle.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

const eventColumns = `e.id, e.name, e.description, e.venue, e.date, e.time,
		e.seat_map_image, e.is_active, e.created_at, e.updated_at`

// seat aggregates over the LEFT JOIN chain sections -> seats -> attendees
const eventAggregateSQL = `SELECT ` + eventColumns + `,
		COUNT(DISTINCT CASE WHEN s.is_available = 1 THEN s.id END) AS total_seats,
		COUNT(DISTINCT a.id) AS occupied_seats
	FROM events e
	LEFT JOIN sections sec ON sec.event_id = e.id
	LEFT JOIN seats s      ON s.section_id = sec.id
	LEFT JOIN attendees a  ON a.seat_id = s.id`

func searchWhere(q EventSearchQuery) (string, []any) {
	where := []string{"e.is_active = 1"}
	args := []any{}

	if q.Text != "" {
		where = append(where, "(LOWER(e.name) LIKE ? OR LOWER(COALESCE(e.description, '')) LIKE ? OR LOWER(e.venue) LIKE ?)")
		p := containsPattern(q.Text)
		args = append(args, p, p, p)
	}
	if cond, dateArgs := q.DateFilter.clause(q.Today); cond != "" {
		where = append(where, cond)
		args = append(args, dateArgs...)
	}
	return strings.Join(where, " AND "), args
}

// Search returns active events matching q ordered by date then time, both
// descending, with their seat aggregates.  Limit <= 0 returns every match.
func (r *EventRepo) Search(ctx context.Context, q EventSearchQuery) ([]EventSummary, error) {
	cond, args := searchWhere(q)
	query := eventAggregateSQL + `
	WHERE ` + cond + `
	GROUP BY e.id
	ORDER BY e.date DESC, e.time DESC`
	if q.Limit > 0 {
		query += `
	LIMIT ? OFFSET ?`
		args = append(args, q.Limit, q.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]EventSummary, 0)
	for rows.Next() {
		var es EventSummary
		if err := scanEventSummary(rows, &es); err != nil {
			return nil, err
		}
		out = append(out, es)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns how many active events match q, ignoring Limit and Offset.
func (r *EventRepo) Count(ctx context.Context, q EventSearchQuery) (int64, error) {
	cond, args := searchWhere(q)
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events e WHERE `+cond, args...).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// GetActiveSummary loads one active event with its seat aggregates.  It
// returns ErrEventNotFound when the event is missing or inactive.
func (r *EventRepo) GetActiveSummary(ctx context.Context, id uint64) (*EventSummary, error) {
	query := eventAggregateSQL + `
	WHERE e.id = ? AND e.is_active = 1
	GROUP BY e.id`
	var es EventSummary
	if err := scanEventSummary(r.db.QueryRowContext(ctx, query, id), &es); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &es, nil
}

// GetActive loads one active event without aggregates.
func (r *EventRepo) GetActive(ctx context.Context, id uint64) (*model.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events e WHERE e.id = ? AND e.is_active = 1`
	var e model.Event
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&e.ID, &e.Name, &e.Description, &e.Venue, &e.Date, &e.StartTime,
		&e.SeatMapImage, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &e, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEventSummary(row rowScanner, es *EventSummary) error {
	return row.Scan(
		&es.ID, &es.Name, &es.Description, &es.Venue, &es.Date, &es.StartTime,
		&es.SeatMapImage, &es.IsActive, &es.CreatedAt, &es.UpdatedAt,
		&es.TotalSeats, &es.OccupiedSeats,
	)
}

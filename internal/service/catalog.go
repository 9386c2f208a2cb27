// Package service holds the read-side operations behind the public API:
// event search and listing, attendee search, event detail, per-section
// statistics, seat-map assembly and seat lookup.  Each call is a pure read
// over the current store contents; nothing is mutated.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iliyamo/event-seating/internal/model"
	"github.com/iliyamo/event-seating/internal/repository"
	"github.com/iliyamo/event-seating/internal/stats"
)

const (
	// MinQueryLength is the shortest free-text query that is applied.
	MinQueryLength = 2

	DefaultEventLimit    = 12
	DefaultAttendeeLimit = 10
	MaxLimit             = 50
	EventsPerPage        = 12
)

// EventStore reads events.
type EventStore interface {
	Search(ctx context.Context, q repository.EventSearchQuery) ([]repository.EventSummary, error)
	Count(ctx context.Context, q repository.EventSearchQuery) (int64, error)
	GetActiveSummary(ctx context.Context, id uint64) (*repository.EventSummary, error)
	GetActive(ctx context.Context, id uint64) (*model.Event, error)
}

// SectionStore reads sections.
type SectionStore interface {
	ListByEvent(ctx context.Context, eventID uint64) ([]model.Section, error)
	StatsByEvent(ctx context.Context, eventID uint64) ([]repository.SectionStats, error)
}

// SeatStore reads seats.
type SeatStore interface {
	ListByEvent(ctx context.Context, eventID uint64) ([]model.Seat, error)
	GetActiveDetail(ctx context.Context, id uint64) (*repository.SeatDetail, error)
}

// AttendeeStore reads attendees.
type AttendeeStore interface {
	Search(ctx context.Context, q repository.AttendeeSearchQuery) ([]repository.AttendeeMatch, error)
}

// Catalog answers the public read queries.  Now supplies the reference
// instant for date filters and past/upcoming status.
type Catalog struct {
	events    EventStore
	sections  SectionStore
	seats     SeatStore
	attendees AttendeeStore
	now       func() time.Time
}

// NewCatalog wires a Catalog.  A nil clock falls back to time.Now.
func NewCatalog(events EventStore, sections SectionStore, seats SeatStore, attendees AttendeeStore, now func() time.Time) *Catalog {
	if events == nil || sections == nil || seats == nil || attendees == nil {
		panic("nil store passed to NewCatalog")
	}
	if now == nil {
		now = time.Now
	}
	return &Catalog{events: events, sections: sections, seats: seats, attendees: attendees, now: now}
}

// EventOverview is an event with its occupancy and status relative to now.
type EventOverview struct {
	Event     model.Event
	Occupancy stats.Occupancy
	Past      bool
}

func (c *Catalog) overview(es repository.EventSummary, now time.Time) EventOverview {
	return EventOverview{
		Event:     es.Event,
		Occupancy: stats.Compute(es.TotalSeats, es.OccupiedSeats),
		Past:      es.IsPast(now),
	}
}

// ClampLimit applies the default for non-positive limits and caps at MaxLimit.
func ClampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// EventSearchParams are the inputs of SearchEvents.  Limit 0 means default.
type EventSearchParams struct {
	Query      string
	DateFilter repository.DateFilter
	Limit      int
}

// EventSearchResult echoes the effective query next to the matches.
type EventSearchResult struct {
	Events     []EventOverview
	Query      string
	DateFilter repository.DateFilter
}

// SearchEvents lists active events most-recent-first.  Queries shorter than
// MinQueryLength apply no text filter.
func (c *Catalog) SearchEvents(ctx context.Context, p EventSearchParams) (*EventSearchResult, error) {
	query := strings.TrimSpace(p.Query)
	text := query
	if len([]rune(text)) < MinQueryLength {
		text = ""
	}
	now := c.now()
	rows, err := c.events.Search(ctx, repository.EventSearchQuery{
		Text:       text,
		DateFilter: p.DateFilter,
		Today:      model.DateOnly(now),
		Limit:      ClampLimit(p.Limit, DefaultEventLimit),
	})
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	out := make([]EventOverview, 0, len(rows))
	for _, r := range rows {
		out = append(out, c.overview(r, now))
	}
	return &EventSearchResult{Events: out, Query: query, DateFilter: p.DateFilter}, nil
}

// ListParams are the inputs of the listing page.  Any non-empty Search is
// applied.  Page is 1-based.
type ListParams struct {
	Search     string
	DateFilter repository.DateFilter
	Page       int
}

// EventPage is one page of the listing.
type EventPage struct {
	Events   []EventOverview
	Number   int
	NumPages int
	Total    int64
}

func (p EventPage) HasPrevious() bool { return p.Number > 1 }
func (p EventPage) HasNext() bool     { return p.Number < p.NumPages }

// PageBounds resolves the requested page against the total count.  There is
// always at least one page; out-of-range requests snap to the nearest page.
func PageBounds(requested int, total int64, perPage int) (number, numPages int) {
	numPages = int((total + int64(perPage) - 1) / int64(perPage))
	if numPages < 1 {
		numPages = 1
	}
	number = requested
	if number < 1 {
		number = 1
	}
	if number > numPages {
		number = numPages
	}
	return number, numPages
}

// ListEvents returns a page of active events for the listing page.
func (c *Catalog) ListEvents(ctx context.Context, p ListParams) (*EventPage, error) {
	now := c.now()
	q := repository.EventSearchQuery{
		Text:       strings.TrimSpace(p.Search),
		DateFilter: p.DateFilter,
		Today:      model.DateOnly(now),
	}
	total, err := c.events.Count(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	number, numPages := PageBounds(p.Page, total, EventsPerPage)
	q.Limit = EventsPerPage
	q.Offset = (number - 1) * EventsPerPage

	page := &EventPage{Number: number, NumPages: numPages, Total: total, Events: []EventOverview{}}
	if total == 0 {
		return page, nil
	}
	rows, err := c.events.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	for _, r := range rows {
		page.Events = append(page.Events, c.overview(r, now))
	}
	return page, nil
}

// AttendeeSearchParams are the inputs of SearchAttendees.
type AttendeeSearchParams struct {
	Query   string
	EventID *uint64
	Limit   int
}

// AttendeeSearchResult holds matches.  TooShort is set, with no matches,
// when the query had fewer than MinQueryLength characters.
type AttendeeSearchResult struct {
	Matches  []repository.AttendeeMatch
	Query    string
	TooShort bool
}

// SearchAttendees finds attendees of active events by name or ticket number.
func (c *Catalog) SearchAttendees(ctx context.Context, p AttendeeSearchParams) (*AttendeeSearchResult, error) {
	query := strings.TrimSpace(p.Query)
	if len([]rune(query)) < MinQueryLength {
		return &AttendeeSearchResult{Matches: []repository.AttendeeMatch{}, Query: query, TooShort: true}, nil
	}
	matches, err := c.attendees.Search(ctx, repository.AttendeeSearchQuery{
		Text:    query,
		EventID: p.EventID,
		Limit:   ClampLimit(p.Limit, DefaultAttendeeLimit),
	})
	if err != nil {
		return nil, fmt.Errorf("search attendees: %w", err)
	}
	return &AttendeeSearchResult{Matches: matches, Query: query}, nil
}

// EventDetail loads one active event with its occupancy.
func (c *Catalog) EventDetail(ctx context.Context, id uint64) (*EventOverview, error) {
	es, err := c.events.GetActiveSummary(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", id, err)
	}
	ov := c.overview(*es, c.now())
	return &ov, nil
}

// MapData loads the active event shown above a seat map.
func (c *Catalog) MapData(ctx context.Context, id uint64) (*model.Event, error) {
	ev, err := c.events.GetActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", id, err)
	}
	return ev, nil
}

// SeatInfo resolves a seat of an active event with its occupant, if any.
func (c *Catalog) SeatInfo(ctx context.Context, id uint64) (*repository.SeatDetail, error) {
	d, err := c.seats.GetActiveDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("seat %d: %w", id, err)
	}
	return d, nil
}

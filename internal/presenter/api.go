package presenter

import (
	"github.com/iliyamo/event-seating/internal/model"
	"github.com/iliyamo/event-seating/internal/repository"
	"github.com/iliyamo/event-seating/internal/service"
	"github.com/iliyamo/event-seating/internal/stats"
)

// Coordinates is a seat position in percent of the seat-map image.
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EventResult is one item of the event search.
type EventResult struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Venue       string  `json:"venue"`
	Date        string  `json:"date"`
	Time        *string `json:"time"`
	stats.Occupancy
	Status string `json:"status"`
	URL    string `json:"url"`
}

// EventSearchResponse is the body of the event search endpoint.
type EventSearchResponse struct {
	Results    []EventResult `json:"results"`
	Count      int           `json:"count"`
	Query      string        `json:"query"`
	DateFilter string        `json:"date_filter"`
	Success    bool          `json:"success"`
	Error      string        `json:"error,omitempty"`
}

// EventSearch renders a search result.
func EventSearch(res *service.EventSearchResult) EventSearchResponse {
	out := make([]EventResult, 0, len(res.Events))
	for _, ov := range res.Events {
		e := ov.Event
		out = append(out, EventResult{
			ID:          e.ID,
			Name:        e.Name,
			Description: Truncate(e.Description.String, DescriptionLimit),
			Venue:       e.Venue,
			Date:        e.Date.Format(DateLayout),
			Time:        Clock(e.StartTime, ClockLayout),
			Occupancy:   ov.Occupancy,
			Status:      Status(ov.Past),
			URL:         EventURL(e.ID),
		})
	}
	return EventSearchResponse{
		Results:    out,
		Count:      len(out),
		Query:      res.Query,
		DateFilter: string(res.DateFilter),
		Success:    true,
	}
}

// AttendeeResult is one item of the attendee search.
type AttendeeResult struct {
	ID              uint64      `json:"id"`
	Name            string      `json:"name"`
	TicketNumber    string      `json:"ticket_number"`
	SeatInfo        string      `json:"seat_info"`
	Section         string      `json:"section"`
	Event           string      `json:"event"`
	EventID         uint64      `json:"event_id"`
	EventDate       string      `json:"event_date"`
	SeatCoordinates Coordinates `json:"seat_coordinates"`
}

// AttendeeSearchResponse is the body of the attendee search endpoint.
// Message is set for short queries and rejected event ids.
type AttendeeSearchResponse struct {
	Results []AttendeeResult `json:"results"`
	Message string           `json:"message,omitempty"`
	Count   int              `json:"count"`
	Query   string           `json:"query,omitempty"`
	Success bool             `json:"success"`
	Error   string           `json:"error,omitempty"`
}

// ShortQueryMessage asks for a longer attendee query.
const ShortQueryMessage = "Please enter at least 2 characters"

// AttendeeSearch renders an attendee search result.
func AttendeeSearch(res *service.AttendeeSearchResult) AttendeeSearchResponse {
	if res.TooShort {
		return AttendeeSearchResponse{Results: []AttendeeResult{}, Message: ShortQueryMessage, Success: true}
	}
	out := make([]AttendeeResult, 0, len(res.Matches))
	for _, m := range res.Matches {
		out = append(out, attendeeResult(m))
	}
	return AttendeeSearchResponse{Results: out, Count: len(out), Query: res.Query, Success: true}
}

func attendeeResult(m repository.AttendeeMatch) AttendeeResult {
	return AttendeeResult{
		ID:              m.ID,
		Name:            m.Name,
		TicketNumber:    m.TicketNumber,
		SeatInfo:        SeatLabel(m.Seat.Row, m.Seat.SeatNumber),
		Section:         m.SectionName,
		Event:           m.EventName,
		EventID:         m.EventID,
		EventDate:       m.EventDate.Format(DateLayout),
		SeatCoordinates: Coordinates{X: m.Seat.X, Y: m.Seat.Y},
	}
}

// EventDetailResponse is the body of the event detail endpoint.
type EventDetailResponse struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Venue       string  `json:"venue"`
	Date        string  `json:"date"`
	Time        *string `json:"time"`
	stats.Occupancy
	Status   string `json:"status"`
	IsActive bool   `json:"is_active"`
	Success  bool   `json:"success"`
}

// EventDetail renders one event with its occupancy.
func EventDetail(ov *service.EventOverview) EventDetailResponse {
	e := ov.Event
	return EventDetailResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: nullable(e.Description),
		Venue:       e.Venue,
		Date:        e.Date.Format(DateLayout),
		Time:        Clock(e.StartTime, ClockLayout),
		Occupancy:   ov.Occupancy,
		Status:      Status(ov.Past),
		IsActive:    e.IsActive,
		Success:     true,
	}
}

// StatisticsEvent identifies the event in a statistics body.
type StatisticsEvent struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Time        *string `json:"time"`
	Venue       string  `json:"venue"`
	Description *string `json:"description"`
}

// SectionStatistics is the occupancy of one section.
type SectionStatistics struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	stats.Occupancy
}

// StatisticsResponse is the body of the statistics endpoint.
type StatisticsResponse struct {
	Event    StatisticsEvent     `json:"event"`
	Overall  stats.Occupancy     `json:"overall_statistics"`
	Sections []SectionStatistics `json:"sections_statistics"`
	Success  bool                `json:"success"`
}

// Statistics renders per-section and overall occupancy.
func Statistics(st *service.EventStatistics) StatisticsResponse {
	sections := make([]SectionStatistics, 0, len(st.Sections))
	for _, s := range st.Sections {
		sections = append(sections, SectionStatistics{
			ID:        s.Section.ID,
			Name:      s.Section.Name,
			Color:     s.Section.Color,
			Occupancy: s.Occupancy,
		})
	}
	return StatisticsResponse{
		Event:    statisticsEvent(st.Event),
		Overall:  st.Overall,
		Sections: sections,
		Success:  true,
	}
}

func statisticsEvent(e model.Event) StatisticsEvent {
	return StatisticsEvent{
		ID:          e.ID,
		Name:        e.Name,
		Date:        e.Date.Format(DateLayout),
		Time:        Clock(e.StartTime, ClockLayout),
		Venue:       e.Venue,
		Description: nullable(e.Description),
	}
}

// MapEvent is the event summary shown above a seat map.
type MapEvent struct {
	ID         uint64  `json:"id"`
	Name       string  `json:"name"`
	Venue      string  `json:"venue"`
	Date       string  `json:"date"`
	Time       *string `json:"time"`
	SeatMapURL *string `json:"seat_map_url"`
}

// MapDataResponse is the body of the map-data endpoint.
type MapDataResponse struct {
	Success bool     `json:"success"`
	Event   MapEvent `json:"event"`
}

// MapData renders the map-data body.  mediaURL prefixes the stored image.
func MapData(e *model.Event, mediaURL string) MapDataResponse {
	return MapDataResponse{
		Success: true,
		Event: MapEvent{
			ID:         e.ID,
			Name:       e.Name,
			Venue:      e.Venue,
			Date:       e.Date.Format(MapDateLayout),
			Time:       Clock(e.StartTime, MapClockLayout),
			SeatMapURL: MediaURL(mediaURL, e.SeatMapImage),
		},
	}
}

// SeatInfoResponse is the body of the seat detail endpoint.  Attendee fields
// are present only when the seat is occupied.
type SeatInfoResponse struct {
	ID           uint64      `json:"id"`
	SeatNumber   string      `json:"seat_number"`
	Row          string      `json:"row"`
	Section      string      `json:"section"`
	Event        string      `json:"event"`
	IsAvailable  bool        `json:"is_available"`
	Coordinates  Coordinates `json:"coordinates"`
	Occupied     bool        `json:"occupied"`
	AttendeeName *string     `json:"attendee_name,omitempty"`
	TicketNumber *string     `json:"ticket_number,omitempty"`
	AttendeeID   *uint64     `json:"attendee_id,omitempty"`
	Success      bool        `json:"success"`
}

// SeatInfo renders a seat with its occupant, if any.
func SeatInfo(d *repository.SeatDetail) SeatInfoResponse {
	out := SeatInfoResponse{
		ID:          d.ID,
		SeatNumber:  d.SeatNumber,
		Row:         d.Row,
		Section:     d.SectionName,
		Event:       d.EventName,
		IsAvailable: d.IsAvailable,
		Coordinates: Coordinates{X: d.X, Y: d.Y},
		Occupied:    d.Occupied(),
		Success:     true,
	}
	if a := d.Attendee; a != nil {
		name, ticket, id := a.Name, a.TicketNumber, a.ID
		out.AttendeeName = &name
		out.TicketNumber = &ticket
		out.AttendeeID = &id
	}
	return out
}

// ErrorResponse is the body of every failed JSON request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

package presenter

import (
	"net/url"
	"strconv"

	"github.com/iliyamo/event-seating/internal/repository"
	"github.com/iliyamo/event-seating/internal/service"
	"github.com/iliyamo/event-seating/internal/stats"
)

// FilterOption is one entry of the date filter selector.
type FilterOption struct {
	Value    string
	Label    string
	Selected bool
}

var dateFilterLabels = []struct {
	f     repository.DateFilter
	label string
}{
	{repository.DateFilterAll, "All events"},
	{repository.DateFilterUpcoming, "Upcoming"},
	{repository.DateFilterPast, "Past"},
	{repository.DateFilterThisWeek, "This week"},
	{repository.DateFilterThisMonth, "This month"},
}

// EventCard is an event as listed on the index page.
type EventCard struct {
	ID          uint64
	Name        string
	Description string
	Venue       string
	Date        string
	Time        string
	Status      string
	URL         string
	Occupancy   stats.Occupancy
}

// Paginator holds the links of the listing pager.
type Paginator struct {
	Number       int
	NumPages     int
	HasPrevious  bool
	HasNext      bool
	PreviousLink string
	NextLink     string
	FirstLink    string
	LastLink     string
}

// IndexPage is the model of the event listing page.
type IndexPage struct {
	Events      []EventCard
	Search      string
	DateFilter  string
	Filters     []FilterOption
	TotalEvents int64
	Page        Paginator
}

// Index builds the listing page model.
func Index(page *service.EventPage, search string, filter repository.DateFilter) IndexPage {
	cards := make([]EventCard, 0, len(page.Events))
	for _, ov := range page.Events {
		e := ov.Event
		card := EventCard{
			ID:          e.ID,
			Name:        e.Name,
			Description: Truncate(e.Description.String, DescriptionLimit),
			Venue:       e.Venue,
			Date:        e.Date.Format(MapDateLayout),
			Status:      Status(ov.Past),
			URL:         EventURL(e.ID),
			Occupancy:   ov.Occupancy,
		}
		if t := Clock(e.StartTime, MapClockLayout); t != nil {
			card.Time = *t
		}
		cards = append(cards, card)
	}

	filters := make([]FilterOption, 0, len(dateFilterLabels))
	for _, l := range dateFilterLabels {
		filters = append(filters, FilterOption{Value: string(l.f), Label: l.label, Selected: l.f == filter})
	}

	link := func(n int) string { return pageLink(search, filter, n) }
	return IndexPage{
		Events:      cards,
		Search:      search,
		DateFilter:  string(filter),
		Filters:     filters,
		TotalEvents: page.Total,
		Page: Paginator{
			Number:       page.Number,
			NumPages:     page.NumPages,
			HasPrevious:  page.HasPrevious(),
			HasNext:      page.HasNext(),
			PreviousLink: link(page.Number - 1),
			NextLink:     link(page.Number + 1),
			FirstLink:    link(1),
			LastLink:     link(page.NumPages),
		},
	}
}

func pageLink(search string, filter repository.DateFilter, n int) string {
	v := url.Values{}
	if search != "" {
		v.Set("search", search)
	}
	if filter != "" && filter != repository.DateFilterAll {
		v.Set("date_filter", string(filter))
	}
	v.Set("page", strconv.Itoa(n))
	return "/?" + v.Encode()
}

// MapSeat is a seat positioned on the seat-map page.
type MapSeat struct {
	ID          uint64
	Label       string
	X           float64
	Y           float64
	IsAvailable bool
	Occupied    bool
	Attendee    string
}

// MapSection is a section with its seats on the seat-map page.
type MapSection struct {
	ID       uint64
	Name     string
	Color    string
	Capacity uint32
	Seats    []MapSeat
}

// SeatMapPage is the model of the seat-map page.
type SeatMapPage struct {
	Event      MapEvent
	Sections   []MapSection
	Occupancy  stats.Occupancy
	SeatMapURL string
}

// SeatMap builds the seat-map page model.
func SeatMap(m *service.SeatMap, mediaURL string) SeatMapPage {
	ev := MapData(&m.Event, mediaURL).Event
	page := SeatMapPage{
		Event:     ev,
		Sections:  make([]MapSection, 0, len(m.Sections)),
		Occupancy: m.Occupancy,
	}
	if ev.SeatMapURL != nil {
		page.SeatMapURL = *ev.SeatMapURL
	}
	for _, s := range m.Sections {
		sec := MapSection{
			ID:       s.Section.ID,
			Name:     s.Section.Name,
			Color:    s.Section.Color,
			Capacity: s.Section.Capacity,
			Seats:    make([]MapSeat, 0, len(s.Seats)),
		}
		for _, seat := range s.Seats {
			ms := MapSeat{
				ID:          seat.ID,
				Label:       SeatLabel(seat.Row, seat.SeatNumber),
				X:           seat.X,
				Y:           seat.Y,
				IsAvailable: seat.IsAvailable,
				Occupied:    seat.Occupied(),
			}
			if seat.Attendee != nil {
				ms.Attendee = seat.Attendee.Name
			}
			sec.Seats = append(sec.Seats, ms)
		}
		page.Sections = append(page.Sections, sec)
	}
	return page
}

// Package presenter turns catalog results into the JSON bodies and page
// models served over HTTP.  Date and time layouts differ per endpoint and
// are kept here so handlers never format values themselves.
package presenter

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04"
	MapDateLayout  = "Jan 02, 2006"
	MapClockLayout = "03:04 PM"

	// DescriptionLimit is the longest description shown in list views.
	DescriptionLimit = 150

	StatusPast     = "past"
	StatusUpcoming = "upcoming"
)

// storage layouts accepted for events.time
var storedClockLayouts = []string{"15:04:05", "15:04"}

// Clock reformats a stored start time with layout.  It returns nil when the
// time is absent or cannot be parsed.
func Clock(t sql.NullString, layout string) *string {
	if !t.Valid {
		return nil
	}
	raw := strings.TrimSpace(t.String)
	for _, l := range storedClockLayouts {
		if parsed, err := time.Parse(l, raw); err == nil {
			s := parsed.Format(layout)
			return &s
		}
	}
	return nil
}

// Truncate shortens s to limit characters followed by "..." when longer.
func Truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}

// SeatLabel is the combined human readable seat position.
func SeatLabel(row, number string) string {
	return fmt.Sprintf("Row %s, Seat %s", row, number)
}

// EventURL is the path of an event's seat-map page.
func EventURL(id uint64) string {
	return fmt.Sprintf("/event/%d/map/", id)
}

// Status labels an event past or upcoming.
func Status(past bool) string {
	if past {
		return StatusPast
	}
	return StatusUpcoming
}

// MediaURL joins the media prefix and a stored file reference.  It returns
// nil when no file is stored.
func MediaURL(prefix string, file sql.NullString) *string {
	if !file.Valid || strings.TrimSpace(file.String) == "" {
		return nil
	}
	u := strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file.String, "/")
	return &u
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

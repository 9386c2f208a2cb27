package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvent_IsPast(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		date time.Time
		want bool
	}{
		{"yesterday", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), true},
		{"today earlier clock", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"tomorrow", time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), false},
		{"last year", time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Event{Date: tc.date}.IsPast(now))
		})
	}
}

func TestSeat_OccupiedIsIndependentOfAvailability(t *testing.T) {
	free := Seat{IsAvailable: false}
	assert.False(t, free.Occupied())

	taken := Seat{IsAvailable: true, Attendee: &Attendee{ID: 7}}
	assert.True(t, taken.Occupied())
	assert.True(t, taken.IsAvailable)
}

func TestSeat_InBounds(t *testing.T) {
	assert.True(t, Seat{X: 0, Y: 100}.InBounds())
	assert.True(t, Seat{X: 55.5, Y: 12.25}.InBounds())
	assert.False(t, Seat{X: -0.1, Y: 50}.InBounds())
	assert.False(t, Seat{X: 50, Y: 100.01}.InBounds())
}

func TestEvent_IsPast_ComparesCalendarDaysAcrossZones(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	// 2026-03-16 01:00 in Tokyo is still 2026-03-15 in UTC
	now := time.Date(2026, 3, 16, 1, 0, 0, 0, tokyo)
	ev := Event{Date: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)}

	assert.True(t, ev.IsPast(now))
	assert.False(t, ev.IsPast(now.UTC()))
}

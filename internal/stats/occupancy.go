// Package stats computes seat occupancy aggregates.  Totals always count
// seats flagged available; occupancy counts linked attendees.  The two are
// independent inputs and are never reconciled against each other.
package stats

import "github.com/shopspring/decimal"

// Occupancy is the derived seat summary for a section or an event.
type Occupancy struct {
	TotalSeats     int     `json:"total_seats"`
	OccupiedSeats  int     `json:"occupied_seats"`
	AvailableSeats int     `json:"available_seats"`
	OccupancyRate  float64 `json:"occupancy_rate"`
}

// Compute derives available seats and the occupancy rate from raw counts.
// Available seats never go below zero and the rate is 0 when total is 0.
func Compute(total, occupied int) Occupancy {
	available := total - occupied
	if available < 0 {
		available = 0
	}
	return Occupancy{
		TotalSeats:     total,
		OccupiedSeats:  occupied,
		AvailableSeats: available,
		OccupancyRate:  Rate(occupied, total),
	}
}

// Rate returns occupied/total*100 rounded to one decimal, ties to even.
func Rate(occupied, total int) float64 {
	if total <= 0 {
		return 0
	}
	r := decimal.NewFromInt(int64(occupied)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		RoundBank(1)
	return r.InexactFloat64()
}

// Sum adds the raw counts of parts and recomputes the aggregate, so an
// event-level total always agrees with its sections.
func Sum(parts ...Occupancy) Occupancy {
	total, occupied := 0, 0
	for _, p := range parts {
		total += p.TotalSeats
		occupied += p.OccupiedSeats
	}
	return Compute(total, occupied)
}
